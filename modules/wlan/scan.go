// wlaninfo/modules/wlan/scan.go
package wlan

import (
	"bufio"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	reScanBSS     = regexp.MustCompile(`^BSS\s+([0-9a-f:]{17})\b`)
	reScanSSID    = regexp.MustCompile(`^\s*SSID:\s*(.*)$`)
	reScanSignal  = regexp.MustCompile(`^\s*signal:\s*([-\d.]+)\s*dBm`)
	reScanFreq    = regexp.MustCompile(`^\s*freq:\s*([\d.]+)`)
	reScanChannel = regexp.MustCompile(`^\s*DS Parameter set:\s*channel\s*(\d+)`)
)

// AP holds one access point from an `iw scan` survey.
type AP struct {
	BSSID   string
	SSID    string
	Signal  float64 // dBm, closer to 0 is stronger
	FreqMHz int
	Channel int
}

// ParseScan parses `iw dev <if> scan` output into APs, strongest first.
func ParseScan(out string) []AP {
	var results []AP
	var cur *AP
	scanner := bufio.NewScanner(strings.NewReader(out))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if m := reScanBSS.FindStringSubmatch(line); m != nil {
			if cur != nil {
				results = append(results, *cur)
			}
			cur = &AP{BSSID: strings.ToLower(m[1])}
			continue
		}
		if cur == nil {
			continue
		}
		if m := reScanSSID.FindStringSubmatch(line); m != nil {
			cur.SSID = m[1]
			continue
		}
		if m := reScanSignal.FindStringSubmatch(line); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				cur.Signal = v
			}
			continue
		}
		if m := reScanFreq.FindStringSubmatch(line); m != nil {
			if f, err := strconv.ParseFloat(m[1], 64); err == nil {
				cur.FreqMHz = int(f)
				if cur.Channel == 0 {
					cur.Channel = ChannelFromFreq(cur.FreqMHz)
				}
			}
			continue
		}
		if m := reScanChannel.FindStringSubmatch(line); m != nil {
			cur.Channel, _ = strconv.Atoi(m[1])
		}
	}
	if cur != nil {
		results = append(results, *cur)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Signal > results[j].Signal })
	return results
}

// Scan runs an AP survey on the interface. Triggering a scan usually
// needs root; the kernel error comes back verbatim in that case.
func (c *Collector) Scan(iface string) ([]AP, error) {
	out, err := c.run.Run("iw", "dev", iface, "scan")
	if err != nil {
		return nil, fmt.Errorf("iw scan on %s: %v; output:\n%s", iface, err, out)
	}
	return ParseScan(out), nil
}

// RedactAPs masks BSSIDs and SSIDs of survey results for privacy mode.
func RedactAPs(aps []AP) []AP {
	masked := make([]AP, len(aps))
	for i, ap := range aps {
		ap.BSSID = redactMAC(ap.BSSID)
		if ap.SSID != "" {
			ap.SSID = "********"
		}
		masked[i] = ap
	}
	return masked
}
