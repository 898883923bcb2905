// wlaninfo/modules/wlan/power.go
package wlan

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var rePowerMgmt = regexp.MustCompile(`Power Management:\s*(\S+)`)

// ParseIwconfigPower extracts the power management state from
// `iwconfig <if>` output ("on" / "off").
func ParseIwconfigPower(out string) string {
	if m := rePowerMgmt.FindStringSubmatch(out); m != nil {
		return strings.ToLower(strings.TrimSpace(m[1]))
	}
	return ""
}

func (c *Collector) collectPower(r *Report) {
	if _, err := c.run.LookPath("iwconfig"); err != nil {
		c.log.Debug("iwconfig missing, power management stays n/a")
		return
	}
	out, err := c.run.Run("iwconfig", r.Interface)
	if err != nil {
		c.log.Debug("iwconfig failed", zap.String("iface", r.Interface), zap.Error(err))
		return
	}
	if pm := ParseIwconfigPower(out); pm != "" {
		r.PowerMgmt = pm
	}
}
