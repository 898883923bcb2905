// wlaninfo/modules/wlan/vendor.go
package wlan

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var reLsusbID = regexp.MustCompile(`ID\s+([0-9a-f]{4}:[0-9a-f]{4})\s+(.+)$`)

// LookupUSB finds the device description for a vendor:product ID in
// `lsusb` output.
func LookupUSB(out, busID string) string {
	for _, line := range strings.Split(out, "\n") {
		m := reLsusbID.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if strings.EqualFold(m[1], busID) {
			return strings.TrimSpace(m[2])
		}
	}
	return ""
}

// LookupPCI finds the device description for a vendor:device ID in
// `lspci -nn` output, where every line ends with "[vvvv:dddd]".
func LookupPCI(out, busID string) string {
	needle := "[" + strings.ToLower(busID) + "]"
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(strings.ToLower(line), needle) {
			continue
		}
		// description sits after the class part: "...]: Intel ... [8086:2723] (rev 1a)"
		if _, desc, ok := strings.Cut(line, "]: "); ok {
			if idx := strings.LastIndex(desc, " ["); idx > 0 {
				desc = desc[:idx]
			}
			return strings.TrimSpace(desc)
		}
	}
	return ""
}

var vendorMarkers = []string{
	"Corporation", "Corp.", "Corp", "Inc.", "Inc", "Ltd.", "Ltd",
	"Co.", "Technology", "Technologies", "Semiconductor", "Systems",
	"Communications", "Electronics",
}

func isVendorMarker(word string) bool {
	word = strings.TrimSuffix(word, ",")
	for _, marker := range vendorMarkers {
		if word == marker {
			return true
		}
	}
	return false
}

// SplitVendorModel separates a lsusb/lspci device description into a
// vendor part and a model part. Vendors mostly end in one or more
// company-form marker words ("Semiconductor Corp.", "Co., Ltd.");
// without any marker the first word is taken as vendor.
func SplitVendorModel(desc string) (vendor, model string) {
	words := strings.Fields(desc)
	if len(words) == 0 {
		return "", ""
	}
	cut := 1
	for i, w := range words {
		if isVendorMarker(w) {
			cut = i + 1
			for cut < len(words) && isVendorMarker(words[cut]) {
				cut++
			}
			break
		}
	}
	vendor = strings.Join(words[:cut], " ")
	model = strings.Join(words[cut:], " ")
	return vendor, model
}

func (c *Collector) collectVendor(r *Report) {
	data, err := os.ReadFile(filepath.Join(c.sysfs, "class", "net", r.Interface, "device", "uevent"))
	if err != nil {
		return
	}
	ue := ParseUevent(string(data))
	if ue.BusID == "" {
		return
	}

	var desc string
	switch ue.Bus {
	case "usb":
		out, err := c.run.Run("lsusb")
		if err != nil {
			c.log.Debug("lsusb failed", zap.Error(err))
			return
		}
		desc = LookupUSB(out, ue.BusID)
	case "pci":
		out, err := c.run.Run("lspci", "-nn")
		if err != nil {
			c.log.Debug("lspci failed", zap.Error(err))
			return
		}
		desc = LookupPCI(out, ue.BusID)
	default:
		// sdio and platform devices have no lsusb/lspci entry
		return
	}
	if desc == "" {
		return
	}
	vendor, model := SplitVendorModel(desc)
	if vendor != "" {
		r.Vendor = vendor
	}
	if model != "" {
		r.Model = model
	}
}
