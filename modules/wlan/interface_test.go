package wlan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidName(t *testing.T) {
	assert.NoError(t, ValidName("wlan0"))
	assert.NoError(t, ValidName("wlp2s0"))
	assert.Error(t, ValidName(""))
	assert.Error(t, ValidName(strings.Repeat("a", IFNAMSIZ)))
	assert.NoError(t, ValidName(strings.Repeat("a", IFNAMSIZ-1)))
	assert.Error(t, ValidName("wlan0/../etc"))
	assert.Error(t, ValidName("wlan 0"))
}

func TestInterfacesFromSysfs(t *testing.T) {
	c := NewCollector(nil, WithRunner(newFakeRunner()), WithSysfs(fakeSysfs(t, "wlan0")))
	ifaces, err := c.Interfaces()
	require.NoError(t, err)
	assert.Equal(t, []string{"wlan0"}, ifaces)
}

func TestInterfacesFallsBackToIw(t *testing.T) {
	run := newFakeRunner()
	run.outputs[cmdKey("iw", "dev")] = iwDevFixture

	c := NewCollector(nil, WithRunner(run), WithSysfs(t.TempDir()))
	ifaces, err := c.Interfaces()
	require.NoError(t, err)
	assert.Equal(t, []string{"wlan0", "wlan1"}, ifaces)
}

func TestInterfacesNoneFound(t *testing.T) {
	run := newFakeRunner()
	run.outputs[cmdKey("iw", "dev")] = ""

	c := NewCollector(nil, WithRunner(run), WithSysfs(t.TempDir()))
	ifaces, err := c.Interfaces()
	require.NoError(t, err)
	assert.Empty(t, ifaces)
}

func TestIsWireless(t *testing.T) {
	run := newFakeRunner()
	run.outputs[cmdKey("iw", "dev")] = iwDevFixture

	c := NewCollector(nil, WithRunner(run), WithSysfs(fakeSysfs(t, "wlan0")))
	assert.True(t, c.IsWireless("wlan0")) // via phy80211 symlink
	assert.True(t, c.IsWireless("wlan1")) // via iw dev fallback
	assert.False(t, c.IsWireless("eth0"))
}

func TestPhy(t *testing.T) {
	c := NewCollector(nil, WithRunner(newFakeRunner()), WithSysfs(fakeSysfs(t, "wlan0")))
	phy, err := c.Phy("wlan0")
	require.NoError(t, err)
	assert.Equal(t, "phy0", phy)

	_, err = c.Phy("eth0")
	assert.Error(t, err)
}
