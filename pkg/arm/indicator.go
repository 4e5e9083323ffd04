package arm

import (
	"io/ioutil"
	"path/filepath"
)

// Indicator drives the liveness indicator, typically an on-board LED.
type Indicator interface {
	SetLive(on bool) error
}

// IndicatorFunc is func form of Indicator.
type IndicatorFunc func(on bool) error

// SetLive implements Indicator.
func (f IndicatorFunc) SetLive(on bool) error {
	return f(on)
}

// NullIndicator discards indicator updates.
type NullIndicator struct{}

// SetLive implements Indicator.
func (NullIndicator) SetLive(bool) error {
	return nil
}

// SysLED drives a Linux LED exposed under /sys/class/leds.
type SysLED struct {
	Name string
}

// SetLive implements Indicator.
func (l *SysLED) SetLive(on bool) error {
	val := []byte("0")
	if on {
		val = []byte("1")
	}
	fn := filepath.Join("/sys/class/leds", l.Name, "brightness")
	return ioutil.WriteFile(fn, val, 0644)
}
