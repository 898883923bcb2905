// wlaninfo/modules/wlan/report.go
package wlan

import (
	"fmt"
	"strings"

	"wlaninfo/tui"
)

type field struct {
	name  string
	value string
}

func (r Report) fields() []field {
	return []field{
		{"State", r.State},
		{"Phy", r.Phy},
		{"Vendor", r.Vendor},
		{"Model", r.Model},
		{"Bus", r.Bus},
		{"Driver", r.Driver},
		{"Power mgmt", r.PowerMgmt},
		{"MAC", r.MAC},
		{"IPv4", r.IPv4},
		{"IPv6", r.IPv6},
		{"MTU", r.MTU},
		{"Mode", r.Mode},
		{"SSID", r.SSID},
		{"BSSID", r.BSSID},
		{"Signal", r.Signal},
		{"Channel", r.Channel},
		{"Bitrate", r.Bitrate},
		{"Standard", r.Standard},
		{"Throughput", r.Throughput},
		{"Connected time", r.ConnectedTime},
		{"TX power", r.TxPower},
	}
}

// Render produces the full per-interface block.
func Render(r Report) string {
	var b strings.Builder
	b.WriteString(tui.RenderHeader(r.Interface))
	b.WriteString("\n")
	for _, f := range r.fields() {
		b.WriteString(tui.RenderField(f.name, f.value, f.value == NA))
		b.WriteString("\n")
	}
	return tui.RenderBlock(strings.TrimRight(b.String(), "\n"))
}

// RenderCompact produces the one-line summary for -c mode.
func RenderCompact(r Report) string {
	signal := r.Signal
	if i := strings.Index(signal, " ("); i > 0 {
		signal = signal[:i]
	}
	channel := r.Channel
	if i := strings.Index(channel, " ("); i > 0 {
		channel = channel[:i]
	}
	return fmt.Sprintf("%s%s",
		tui.CompactNameStyle.Render(r.Interface),
		fmt.Sprintf("%s  ssid:%s  sig:%s  ch:%s  drv:%s  mac:%s",
			r.State, r.SSID, signal, channel, r.Driver, r.MAC))
}

// RenderScan produces the columnar AP survey table.
func RenderScan(aps []AP) string {
	var b strings.Builder
	b.WriteString(tui.HeaderStyle.Render(fmt.Sprintf("%-17s %9s %7s %6s  %s",
		"BSSID", "SIGNAL", "CHANNEL", "FREQ", "SSID")))
	b.WriteString("\n")
	for _, ap := range aps {
		ssid := ap.SSID
		if ssid == "" {
			ssid = "<hidden>"
		}
		b.WriteString(fmt.Sprintf("%-17s %5.1f dBm %7d %6d  %s\n",
			ap.BSSID, ap.Signal, ap.Channel, ap.FreqMHz, ssid))
	}
	return strings.TrimRight(b.String(), "\n")
}
