// wlaninfo/modules/wlan/addr.go
package wlan

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var (
	reIPAddr4 = regexp.MustCompile(`\binet\s+([\d.]+(?:/\d+)?)`)
	reIPAddr6 = regexp.MustCompile(`\binet6\s+([0-9a-fA-F:]+(?:/\d+)?)`)
)

// ParseAddrs extracts IPv4 and IPv6 addresses from either `ip -o addr`
// or `ifconfig` output; both tools print "inet"/"inet6" markers.
func ParseAddrs(out string) (v4, v6 []string) {
	for _, line := range strings.Split(out, "\n") {
		if m := reIPAddr4.FindStringSubmatch(line); m != nil {
			v4 = append(v4, m[1])
		}
		if m := reIPAddr6.FindStringSubmatch(line); m != nil {
			v6 = append(v6, m[1])
		}
	}
	return v4, v6
}

func (c *Collector) collectAddrs(r *Report) {
	var out string
	if _, err := c.run.LookPath("ip"); err == nil {
		o, err := c.run.Run("ip", "-o", "addr", "show", "dev", r.Interface)
		if err != nil {
			c.log.Debug("ip addr failed", zap.String("iface", r.Interface), zap.Error(err))
			return
		}
		out = o
	} else if _, err := c.run.LookPath("ifconfig"); err == nil {
		o, err := c.run.Run("ifconfig", r.Interface)
		if err != nil {
			c.log.Debug("ifconfig failed", zap.String("iface", r.Interface), zap.Error(err))
			return
		}
		out = o
	} else {
		c.log.Debug("neither ip nor ifconfig found, addresses stay n/a")
		return
	}

	v4, v6 := ParseAddrs(out)
	if len(v4) > 0 {
		r.IPv4 = strings.Join(v4, ", ")
	}
	if len(v6) > 0 {
		r.IPv6 = strings.Join(v6, ", ")
	}
}
