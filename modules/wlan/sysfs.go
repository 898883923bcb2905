// wlaninfo/modules/wlan/sysfs.go
package wlan

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// collectSysfs reads the fields that live directly under
// /sys/class/net/<if>: MAC, MTU, operstate and the device uevent.
func (c *Collector) collectSysfs(r *Report) {
	base := filepath.Join(c.sysfs, "class", "net", r.Interface)

	if mac := c.readSysfs(filepath.Join(base, "address")); mac != "" {
		r.MAC = mac
	}
	if mtu := c.readSysfs(filepath.Join(base, "mtu")); mtu != "" {
		r.MTU = mtu
	}
	if state := c.readSysfs(filepath.Join(base, "operstate")); state != "" {
		r.State = state
	}

	data, err := os.ReadFile(filepath.Join(base, "device", "uevent"))
	if err != nil {
		c.log.Debug("uevent not readable", zap.String("iface", r.Interface), zap.Error(err))
		return
	}
	ue := ParseUevent(string(data))
	if ue.Driver != "" {
		r.Driver = ue.Driver
	}
	if ue.Bus != "" {
		r.Bus = ue.Bus
	}
}

func (c *Collector) readSysfs(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Uevent is the subset of /sys/class/net/<if>/device/uevent wlaninfo
// cares about.
type Uevent struct {
	Driver string
	Bus    string // usb, pci or sdio
	BusID  string // vendor:device, lowercase hex
}

// ParseUevent extracts driver and bus identity from uevent text.
func ParseUevent(text string) Uevent {
	var ue Uevent
	for _, line := range strings.Split(text, "\n") {
		key, val, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		switch key {
		case "DRIVER":
			ue.Driver = val
		case "PCI_ID":
			ue.Bus = "pci"
			ue.BusID = strings.ToLower(val)
		case "SDIO_ID":
			ue.Bus = "sdio"
			ue.BusID = strings.ToLower(val)
		case "PRODUCT":
			// usb uevents encode vendor/product as e.g. bda/8812/0
			ue.Bus = "usb"
			parts := strings.Split(val, "/")
			if len(parts) >= 2 {
				ue.BusID = pad4(parts[0]) + ":" + pad4(parts[1])
			}
		case "DEVTYPE":
			if val == "usb_interface" || val == "usb_device" {
				ue.Bus = "usb"
			}
		}
	}
	return ue
}

func pad4(s string) string {
	s = strings.ToLower(s)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}

// CounterSample is a point-in-time read of the interface byte counters.
type CounterSample struct {
	RxBytes uint64
	TxBytes uint64
}

// Counters reads rx/tx byte counters from sysfs statistics.
func (c *Collector) Counters(iface string) (CounterSample, error) {
	base := filepath.Join(c.sysfs, "class", "net", iface, "statistics")
	rx, err := readUint(filepath.Join(base, "rx_bytes"))
	if err != nil {
		return CounterSample{}, err
	}
	tx, err := readUint(filepath.Join(base, "tx_bytes"))
	if err != nil {
		return CounterSample{}, err
	}
	return CounterSample{RxBytes: rx, TxBytes: tx}, nil
}

func readUint(path string) (uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
}
