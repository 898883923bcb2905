// wlaninfo/modules/wlan/collect.go
package wlan

import (
	"fmt"

	"go.uber.org/zap"
)

// Collector gathers interface metadata from sysfs and external tools.
type Collector struct {
	run   Runner
	sysfs string
	log   *zap.Logger
}

// Option tweaks a Collector, mainly so tests can point it at fixtures.
type Option func(*Collector)

// WithRunner replaces the command runner.
func WithRunner(r Runner) Option {
	return func(c *Collector) { c.run = r }
}

// WithSysfs replaces the sysfs root (default /sys).
func WithSysfs(root string) Option {
	return func(c *Collector) { c.sysfs = root }
}

// NewCollector builds a Collector using the real system by default.
func NewCollector(log *zap.Logger, opts ...Option) *Collector {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Collector{
		run:   NewRunner(log),
		sysfs: "/sys",
		log:   log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckTools verifies the hard requirements are present. Only iw is
// fatal; everything else degrades to n/a fields.
func (c *Collector) CheckTools() error {
	if _, err := c.run.LookPath("iw"); err != nil {
		return fmt.Errorf("required tool iw not found in PATH")
	}
	for _, tool := range []string{"iwconfig", "ip", "lsusb", "lspci"} {
		if _, err := c.run.LookPath(tool); err != nil {
			c.log.Debug("optional tool missing, some fields will be n/a",
				zap.String("tool", tool))
		}
	}
	return nil
}

// Collect fills a Report for one interface. Collectors run one after
// another; each failure is logged and leaves its fields at n/a.
func (c *Collector) Collect(iface string) Report {
	r := NewReport(iface)

	if phy, err := c.Phy(iface); err == nil {
		r.Phy = phy
	}
	c.collectSysfs(&r)
	c.collectVendor(&r)
	c.collectInfo(&r)
	c.collectLink(&r)
	c.collectStation(&r)
	c.collectPower(&r)
	c.collectAddrs(&r)
	c.collectStandard(&r)

	return r
}
