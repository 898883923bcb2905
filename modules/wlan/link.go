// wlaninfo/modules/wlan/link.go
package wlan

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var (
	reConnected  = regexp.MustCompile(`^Connected to ([0-9a-f:]{17})`)
	reSSID       = regexp.MustCompile(`^SSID:\s*(.+)$`)
	reFreq       = regexp.MustCompile(`^freq:\s*([\d.]+)`)
	reSignal     = regexp.MustCompile(`^signal:\s*(-?[\d.]+)\s*dBm`)
	reRxBitrate  = regexp.MustCompile(`^rx bitrate:\s*([\d.]+ MBit/s.*)$`)
	reTxBitrate  = regexp.MustCompile(`^tx bitrate:\s*([\d.]+ MBit/s.*)$`)
	reType       = regexp.MustCompile(`^type\s+(\S+)`)
	reChannel    = regexp.MustCompile(`^channel\s+(\d+)\s+\((\d+)\s*MHz\)(?:,\s*width:\s*(\d+)\s*MHz)?`)
	reTxPower    = regexp.MustCompile(`^txpower\s+([\d.]+)\s*dBm`)
	reConnTime   = regexp.MustCompile(`^connected time:\s*(\d+)\s*seconds`)
	reExpectedTP = regexp.MustCompile(`^expected throughput:\s*([\d.]+)\s*Mbps`)
)

// LinkInfo is the parsed output of `iw dev <if> link`.
type LinkInfo struct {
	Connected bool
	BSSID     string
	SSID      string
	FreqMHz   int
	SignalDBm float64
	HasSignal bool
	RxBitrate string
	TxBitrate string
}

// ParseIwLink scrapes `iw dev <if> link` output. A disconnected
// interface prints "Not connected." and yields the zero value.
func ParseIwLink(out string) LinkInfo {
	var li LinkInfo
	for _, raw := range strings.Split(out, "\n") {
		line := strings.TrimSpace(raw)
		if m := reConnected.FindStringSubmatch(line); m != nil {
			li.Connected = true
			li.BSSID = m[1]
			continue
		}
		if m := reSSID.FindStringSubmatch(line); m != nil {
			li.SSID = m[1]
			continue
		}
		if m := reFreq.FindStringSubmatch(line); m != nil {
			// newer iw prints fractional MHz (e.g. 5180.0)
			if f, err := strconv.ParseFloat(m[1], 64); err == nil {
				li.FreqMHz = int(f)
			}
			continue
		}
		if m := reSignal.FindStringSubmatch(line); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				li.SignalDBm = v
				li.HasSignal = true
			}
			continue
		}
		if m := reRxBitrate.FindStringSubmatch(line); m != nil {
			li.RxBitrate = m[1]
			continue
		}
		if m := reTxBitrate.FindStringSubmatch(line); m != nil {
			li.TxBitrate = m[1]
		}
	}
	return li
}

// DevInfo is the parsed output of `iw dev <if> info`.
type DevInfo struct {
	Mode     string
	Channel  int
	FreqMHz  int
	WidthMHz int
	TxPower  string
}

// ParseIwInfo scrapes `iw dev <if> info` output.
func ParseIwInfo(out string) DevInfo {
	var di DevInfo
	for _, raw := range strings.Split(out, "\n") {
		line := strings.TrimSpace(raw)
		if m := reType.FindStringSubmatch(line); m != nil {
			di.Mode = m[1]
			continue
		}
		if m := reChannel.FindStringSubmatch(line); m != nil {
			di.Channel, _ = strconv.Atoi(m[1])
			di.FreqMHz, _ = strconv.Atoi(m[2])
			if m[3] != "" {
				di.WidthMHz, _ = strconv.Atoi(m[3])
			}
			continue
		}
		if m := reTxPower.FindStringSubmatch(line); m != nil {
			di.TxPower = m[1] + " dBm"
		}
	}
	return di
}

// StationInfo is the parsed output of `iw dev <if> station dump`,
// restricted to the first (and for managed mode, only) station.
type StationInfo struct {
	ConnectedSec int
	ExpectedMbps float64
}

// ParseStationDump scrapes `iw dev <if> station dump` output.
func ParseStationDump(out string) StationInfo {
	var si StationInfo
	for _, raw := range strings.Split(out, "\n") {
		line := strings.TrimSpace(raw)
		if m := reConnTime.FindStringSubmatch(line); m != nil {
			si.ConnectedSec, _ = strconv.Atoi(m[1])
			continue
		}
		if m := reExpectedTP.FindStringSubmatch(line); m != nil {
			si.ExpectedMbps, _ = strconv.ParseFloat(m[1], 64)
		}
	}
	return si
}

func (c *Collector) collectInfo(r *Report) {
	out, err := c.run.Run("iw", "dev", r.Interface, "info")
	if err != nil {
		c.log.Debug("iw info failed", zap.String("iface", r.Interface), zap.Error(err))
		return
	}
	di := ParseIwInfo(out)
	if di.Mode != "" {
		r.Mode = di.Mode
	}
	if di.Channel > 0 {
		r.Channel = FormatChannel(di.Channel, di.FreqMHz, di.WidthMHz)
	}
	if di.TxPower != "" {
		r.TxPower = di.TxPower
	}
}

func (c *Collector) collectLink(r *Report) {
	out, err := c.run.Run("iw", "dev", r.Interface, "link")
	if err != nil {
		c.log.Debug("iw link failed", zap.String("iface", r.Interface), zap.Error(err))
		return
	}
	li := ParseIwLink(out)
	if !li.Connected {
		return
	}
	r.BSSID = li.BSSID
	if li.SSID != "" {
		r.SSID = li.SSID
	}
	if li.HasSignal {
		r.Signal = FormatSignal(li.SignalDBm)
	}
	if r.Channel == NA && li.FreqMHz > 0 {
		r.Channel = FormatChannel(ChannelFromFreq(li.FreqMHz), li.FreqMHz, 0)
	}
	switch {
	case li.RxBitrate != "" && li.TxBitrate != "":
		r.Bitrate = fmt.Sprintf("rx %s / tx %s", li.RxBitrate, li.TxBitrate)
	case li.RxBitrate != "":
		r.Bitrate = "rx " + li.RxBitrate
	case li.TxBitrate != "":
		r.Bitrate = "tx " + li.TxBitrate
	}
	if gen := GenerationFromBitrates(li.RxBitrate, li.TxBitrate, BandFromFreq(li.FreqMHz)); gen != "" {
		r.Standard = gen
	}
}

func (c *Collector) collectStation(r *Report) {
	out, err := c.run.Run("iw", "dev", r.Interface, "station", "dump")
	if err != nil {
		c.log.Debug("iw station dump failed", zap.String("iface", r.Interface), zap.Error(err))
		return
	}
	si := ParseStationDump(out)
	if si.ConnectedSec > 0 {
		r.ConnectedTime = FormatDuration(si.ConnectedSec)
	}
	if si.ExpectedMbps > 0 {
		r.Throughput = fmt.Sprintf("%.1f Mbps expected", si.ExpectedMbps)
	}
}
