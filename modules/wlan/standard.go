// wlaninfo/modules/wlan/standard.go
package wlan

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ChannelFromFreq maps a center frequency in MHz to its channel number.
func ChannelFromFreq(mhz int) int {
	switch {
	case mhz == 2484:
		return 14
	case mhz >= 2412 && mhz <= 2472:
		return (mhz - 2407) / 5
	case mhz >= 5925 && mhz <= 7125:
		return (mhz - 5950) / 5
	case mhz >= 4910 && mhz <= 5885:
		return (mhz - 5000) / 5
	default:
		return 0
	}
}

// BandFromFreq maps a frequency in MHz to its band label.
func BandFromFreq(mhz int) string {
	switch {
	case mhz >= 2400 && mhz < 2500:
		return "2.4 GHz"
	case mhz >= 4900 && mhz < 5900:
		return "5 GHz"
	case mhz >= 5925 && mhz <= 7125:
		return "6 GHz"
	default:
		return ""
	}
}

// FormatChannel renders channel, frequency and optional width into one
// field, e.g. "36 (5180 MHz, 5 GHz, 80 MHz wide)".
func FormatChannel(channel, freqMHz, widthMHz int) string {
	if channel <= 0 {
		return NA
	}
	parts := []string{}
	if freqMHz > 0 {
		parts = append(parts, fmt.Sprintf("%d MHz", freqMHz))
	}
	if band := BandFromFreq(freqMHz); band != "" {
		parts = append(parts, band)
	}
	if widthMHz > 0 {
		parts = append(parts, fmt.Sprintf("%d MHz wide", widthMHz))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%d", channel)
	}
	return fmt.Sprintf("%d (%s)", channel, strings.Join(parts, ", "))
}

// QualityFromDBm converts a dBm reading to a rough percentage over the
// usable range [-110, -40].
func QualityFromDBm(dbm float64) int {
	switch {
	case dbm >= -40:
		return 100
	case dbm <= -110:
		return 0
	default:
		return int((dbm + 110) / 70 * 100)
	}
}

// FormatSignal renders "-52 dBm (82%)".
func FormatSignal(dbm float64) string {
	return fmt.Sprintf("%.0f dBm (%d%%)", dbm, QualityFromDBm(dbm))
}

// FormatDuration renders a station's connected time, e.g. "1h 12m 3s".
func FormatDuration(seconds int) string {
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// GenerationFromBitrates derives the Wi-Fi generation from the MCS
// markers iw prints in bitrate lines. Band disambiguates Wi-Fi 6 from
// 6E. Empty string means the bitrates carry no marker.
func GenerationFromBitrates(rx, tx, band string) string {
	rates := rx + " " + tx
	switch {
	case strings.Contains(rates, "EHT-MCS"):
		return "Wi-Fi 7 (802.11be)"
	case strings.Contains(rates, "HE-MCS"):
		if band == "6 GHz" {
			return "Wi-Fi 6E (802.11ax)"
		}
		return "Wi-Fi 6 (802.11ax)"
	case strings.Contains(rates, "VHT-MCS"):
		return "Wi-Fi 5 (802.11ac)"
	case strings.Contains(rates, "MCS"):
		return "Wi-Fi 4 (802.11n)"
	default:
		return ""
	}
}

// GenerationFromPhy inspects `iw phy <phy> info` capability dumps for
// the newest supported standard. Used when the link is down and no
// bitrate markers exist.
func GenerationFromPhy(out string) string {
	switch {
	case strings.Contains(out, "EHT Capabilities"), strings.Contains(out, "EHT MAC Capabilities"):
		return "Wi-Fi 7 (802.11be) capable"
	case strings.Contains(out, "HE PHY Capabilities"), strings.Contains(out, "HE Iftypes"):
		return "Wi-Fi 6 (802.11ax) capable"
	case strings.Contains(out, "VHT Capabilities"):
		return "Wi-Fi 5 (802.11ac) capable"
	case strings.Contains(out, "HT TX/RX MCS rate indexes supported"), strings.Contains(out, "Capabilities: 0x"):
		return "Wi-Fi 4 (802.11n) capable"
	default:
		return ""
	}
}

func (c *Collector) collectStandard(r *Report) {
	if r.Standard != NA {
		return
	}
	if r.Phy == NA {
		return
	}
	out, err := c.run.Run("iw", "phy", r.Phy, "info")
	if err != nil {
		c.log.Debug("iw phy info failed", zap.String("phy", r.Phy), zap.Error(err))
		return
	}
	if gen := GenerationFromPhy(out); gen != "" {
		r.Standard = gen
	}
}
