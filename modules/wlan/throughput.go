// wlaninfo/modules/wlan/throughput.go
package wlan

import (
	"fmt"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcap"
)

// RateSample is an observed traffic rate over a sampling window.
type RateSample struct {
	RxBitsPerSec float64
	TxBitsPerSec float64
	Window       time.Duration
}

// Format renders the sample the way the report prints throughput.
func (s RateSample) Format() string {
	return fmt.Sprintf("rx %s / tx %s", formatBits(s.RxBitsPerSec), formatBits(s.TxBitsPerSec))
}

func formatBits(bps float64) string {
	switch {
	case bps >= 1e9:
		return fmt.Sprintf("%.2f Gbit/s", bps/1e9)
	case bps >= 1e6:
		return fmt.Sprintf("%.2f Mbit/s", bps/1e6)
	case bps >= 1e3:
		return fmt.Sprintf("%.2f kbit/s", bps/1e3)
	default:
		return fmt.Sprintf("%.0f bit/s", bps)
	}
}

// SampleThroughput measures live traffic on the interface for the
// given window by capturing and counting bytes. Needs capture
// privileges; callers fall back to SampleCounters when it fails.
func SampleThroughput(iface string, window time.Duration) (RateSample, error) {
	handle, err := pcap.OpenLive(iface, 256, false, pcap.BlockForever)
	if err != nil {
		return RateSample{}, err
	}
	defer handle.Close()

	src := gopacket.NewPacketSource(handle, handle.LinkType())
	deadline := time.After(window)
	var total uint64
	for {
		select {
		case pkt, ok := <-src.Packets():
			if !ok {
				return RateSample{}, fmt.Errorf("capture on %s ended early", iface)
			}
			total += uint64(pkt.Metadata().Length)
		case <-deadline:
			// capture cannot tell rx from tx apart without radiotap
			// headers; report the aggregate on both directions
			bps := float64(total*8) / window.Seconds()
			return RateSample{RxBitsPerSec: bps, TxBitsPerSec: bps, Window: window}, nil
		}
	}
}

// SampleCounters derives the traffic rate from two sysfs byte counter
// reads spaced one window apart. Works without privileges.
func (c *Collector) SampleCounters(iface string, window time.Duration) (RateSample, error) {
	before, err := c.Counters(iface)
	if err != nil {
		return RateSample{}, err
	}
	time.Sleep(window)
	after, err := c.Counters(iface)
	if err != nil {
		return RateSample{}, err
	}
	return RateFromCounters(before, after, window), nil
}

// RateFromCounters converts two counter samples into a rate.
func RateFromCounters(before, after CounterSample, window time.Duration) RateSample {
	sec := window.Seconds()
	if sec <= 0 {
		return RateSample{Window: window}
	}
	return RateSample{
		RxBitsPerSec: float64(after.RxBytes-before.RxBytes) * 8 / sec,
		TxBitsPerSec: float64(after.TxBytes-before.TxBytes) * 8 / sec,
		Window:       window,
	}
}
