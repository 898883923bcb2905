package wlan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateFromCounters(t *testing.T) {
	before := CounterSample{RxBytes: 1000, TxBytes: 500}
	after := CounterSample{RxBytes: 251000, TxBytes: 125500}

	rate := RateFromCounters(before, after, 2*time.Second)
	assert.Equal(t, 1_000_000.0, rate.RxBitsPerSec)
	assert.Equal(t, 500_000.0, rate.TxBitsPerSec)
}

func TestRateFromCountersZeroWindow(t *testing.T) {
	rate := RateFromCounters(CounterSample{}, CounterSample{RxBytes: 100}, 0)
	assert.Zero(t, rate.RxBitsPerSec)
}

func TestRateSampleFormat(t *testing.T) {
	s := RateSample{RxBitsPerSec: 1_500_000, TxBitsPerSec: 2_400}
	assert.Equal(t, "rx 1.50 Mbit/s / tx 2.40 kbit/s", s.Format())

	s = RateSample{RxBitsPerSec: 2.5e9, TxBitsPerSec: 12}
	assert.Equal(t, "rx 2.50 Gbit/s / tx 12 bit/s", s.Format())
}
