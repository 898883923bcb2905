// wlaninfo/modules/wlan/privacy.go
package wlan

import "strings"

// Redact masks identifying data for privacy mode: MAC and BSSID keep
// the vendor OUI, addresses keep their leading component, the SSID is
// replaced wholesale. Pure function, the input record is not modified.
func Redact(r Report) Report {
	r.MAC = redactMAC(r.MAC)
	r.BSSID = redactMAC(r.BSSID)
	r.IPv4 = redactList(r.IPv4, redactIPv4)
	r.IPv6 = redactList(r.IPv6, redactIPv6)
	if r.SSID != NA {
		r.SSID = "********"
	}
	return r
}

func redactMAC(mac string) string {
	if mac == NA {
		return mac
	}
	parts := strings.Split(mac, ":")
	if len(parts) != 6 {
		return "xx:xx:xx:xx:xx:xx"
	}
	return strings.Join(parts[:3], ":") + ":xx:xx:xx"
}

func redactList(val string, f func(string) string) string {
	if val == NA {
		return val
	}
	items := strings.Split(val, ", ")
	for i, item := range items {
		items[i] = f(item)
	}
	return strings.Join(items, ", ")
}

func redactIPv4(addr string) string {
	ip, suffix, _ := strings.Cut(addr, "/")
	octets := strings.Split(ip, ".")
	if len(octets) != 4 {
		return "x.x.x.x"
	}
	masked := octets[0] + ".x.x.x"
	if suffix != "" {
		masked += "/" + suffix
	}
	return masked
}

func redactIPv6(addr string) string {
	ip, suffix, _ := strings.Cut(addr, "/")
	head, _, ok := strings.Cut(ip, ":")
	if !ok {
		return "x::x"
	}
	masked := head + "::x"
	if suffix != "" {
		masked += "/" + suffix
	}
	return masked
}
