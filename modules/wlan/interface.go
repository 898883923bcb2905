// wlaninfo/modules/wlan/interface.go
package wlan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// IFNAMSIZ bounds a Linux interface name, terminating NUL included.
const IFNAMSIZ = 16

// ValidName checks an interface name against the kernel's rules before
// it gets interpolated into sysfs paths and command lines.
func ValidName(name string) error {
	if name == "" {
		return fmt.Errorf("empty interface name")
	}
	if len(name) >= IFNAMSIZ {
		return fmt.Errorf("interface name %q longer than %d characters", name, IFNAMSIZ-1)
	}
	if strings.ContainsAny(name, "/ \t\n") {
		return fmt.Errorf("interface name %q contains invalid characters", name)
	}
	return nil
}

// Interfaces returns the wireless interfaces on this host, sorted by
// name. Enumeration walks /sys/class/ieee80211/<phy>/device/net and
// falls back to `iw dev` when sysfs is not available.
func (c *Collector) Interfaces() ([]string, error) {
	ifaces, err := c.sysfsInterfaces()
	if err == nil && len(ifaces) > 0 {
		return ifaces, nil
	}
	return c.iwInterfaces()
}

func (c *Collector) sysfsInterfaces() ([]string, error) {
	phys, err := os.ReadDir(filepath.Join(c.sysfs, "class", "ieee80211"))
	if err != nil {
		return nil, err
	}
	var ifaces []string
	for _, phy := range phys {
		netDir := filepath.Join(c.sysfs, "class", "ieee80211", phy.Name(), "device", "net")
		entries, err := os.ReadDir(netDir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			ifaces = append(ifaces, e.Name())
		}
	}
	sort.Strings(ifaces)
	return ifaces, nil
}

func (c *Collector) iwInterfaces() ([]string, error) {
	out, err := c.run.Run("iw", "dev")
	if err != nil {
		return nil, fmt.Errorf("iw dev: %w", err)
	}
	var ifaces []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Interface ") {
			ifaces = append(ifaces, strings.TrimPrefix(line, "Interface "))
		}
	}
	sort.Strings(ifaces)
	return ifaces, nil
}

// IsWireless reports whether name is a wireless interface, checked
// through the phy symlink every mac80211 interface carries.
func (c *Collector) IsWireless(name string) bool {
	if _, err := os.Stat(filepath.Join(c.sysfs, "class", "net", name, "phy80211")); err == nil {
		return true
	}
	ifaces, err := c.iwInterfaces()
	if err != nil {
		return false
	}
	for _, ifc := range ifaces {
		if ifc == name {
			return true
		}
	}
	return false
}

// Phy returns the phy name (phy0, ...) backing the interface.
func (c *Collector) Phy(name string) (string, error) {
	link, err := os.Readlink(filepath.Join(c.sysfs, "class", "net", name, "phy80211"))
	if err != nil {
		return "", err
	}
	return filepath.Base(link), nil
}
