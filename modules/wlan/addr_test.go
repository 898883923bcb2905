package wlan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAddrs(t *testing.T) {
	t.Run("ip output", func(t *testing.T) {
		v4, v6 := ParseAddrs(ipAddrFixture)
		assert.Equal(t, []string{"192.168.1.23/24"}, v4)
		assert.Equal(t, []string{"fe80::1ff:fe23:4567:890a/64"}, v6)
	})

	t.Run("ifconfig output", func(t *testing.T) {
		v4, v6 := ParseAddrs(ifconfigFixture)
		assert.Equal(t, []string{"192.168.1.23"}, v4)
		assert.Equal(t, []string{"fe80::1ff:fe23:4567:890a"}, v6)
	})

	t.Run("no addresses", func(t *testing.T) {
		v4, v6 := ParseAddrs("")
		assert.Empty(t, v4)
		assert.Empty(t, v6)
	})
}

func TestCollectAddrsFallsBackToIfconfig(t *testing.T) {
	run := newFakeRunner()
	run.missing["ip"] = true
	run.outputs[cmdKey("ifconfig", "wlan0")] = ifconfigFixture

	c := NewCollector(nil, WithRunner(run))
	r := NewReport("wlan0")
	c.collectAddrs(&r)

	assert.Equal(t, "192.168.1.23", r.IPv4)
	assert.Equal(t, "fe80::1ff:fe23:4567:890a", r.IPv6)
}
