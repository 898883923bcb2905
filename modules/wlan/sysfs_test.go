package wlan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUevent(t *testing.T) {
	t.Run("pci", func(t *testing.T) {
		ue := ParseUevent("DRIVER=iwlwifi\nPCI_CLASS=28000\nPCI_ID=8086:2723\nPCI_SLOT_NAME=0000:03:00.0\n")
		assert.Equal(t, "iwlwifi", ue.Driver)
		assert.Equal(t, "pci", ue.Bus)
		assert.Equal(t, "8086:2723", ue.BusID)
	})

	t.Run("usb", func(t *testing.T) {
		ue := ParseUevent("DEVTYPE=usb_interface\nDRIVER=rtl8812au\nPRODUCT=bda/8812/0\nTYPE=0/0/0\nINTERFACE=255/255/255\n")
		assert.Equal(t, "rtl8812au", ue.Driver)
		assert.Equal(t, "usb", ue.Bus)
		assert.Equal(t, "0bda:8812", ue.BusID)
	})

	t.Run("sdio", func(t *testing.T) {
		ue := ParseUevent("DRIVER=brcmfmac\nSDIO_CLASS=00\nSDIO_ID=02D0:4354\n")
		assert.Equal(t, "brcmfmac", ue.Driver)
		assert.Equal(t, "sdio", ue.Bus)
		assert.Equal(t, "02d0:4354", ue.BusID)
	})

	t.Run("empty", func(t *testing.T) {
		ue := ParseUevent("")
		assert.Empty(t, ue.Driver)
		assert.Empty(t, ue.Bus)
	})
}

func TestCounters(t *testing.T) {
	c := NewCollector(nil, WithRunner(newFakeRunner()), WithSysfs(fakeSysfs(t, "wlan0")))
	s, err := c.Counters("wlan0")
	require.NoError(t, err)
	assert.Equal(t, uint64(123456789), s.RxBytes)
	assert.Equal(t, uint64(23456789), s.TxBytes)

	_, err = c.Counters("eth0")
	assert.Error(t, err)
}

func TestCollectSysfsMissingInterface(t *testing.T) {
	c := NewCollector(nil, WithRunner(newFakeRunner()), WithSysfs(t.TempDir()))
	r := NewReport("wlan9")
	c.collectSysfs(&r)
	assert.Equal(t, NA, r.MAC)
	assert.Equal(t, NA, r.Driver)
	assert.Equal(t, NA, r.State)
}
