package arm

import "time"

// Liveness indicator timing.
const (
	// BeaconTogglePeriod is the interval between indicator flips
	// while the link is live.
	BeaconTogglePeriod = 200 * time.Millisecond
	// BeaconTrafficWindow is how long after the last received byte
	// the link still counts as live.
	BeaconTrafficWindow = time.Second
)

// Beacon computes the on/off state of the liveness indicator:
// blinking while bytes keep arriving, dark once the link goes quiet.
type Beacon struct {
	phase      bool
	lastToggle time.Time
}

// Tick advances the blink phase to now and reports whether the
// indicator is lit.
func (b *Beacon) Tick(now, lastTraffic time.Time) bool {
	if b.lastToggle.IsZero() {
		b.lastToggle = now
	}
	for now.Sub(b.lastToggle) >= BeaconTogglePeriod {
		b.phase = !b.phase
		b.lastToggle = b.lastToggle.Add(BeaconTogglePeriod)
	}
	return b.phase && Recent(now, lastTraffic)
}

// Recent reports whether lastTraffic falls within BeaconTrafficWindow
// before now. A zero lastTraffic means nothing was ever received.
func Recent(now, lastTraffic time.Time) bool {
	if lastTraffic.IsZero() {
		return false
	}
	return now.Sub(lastTraffic) < BeaconTrafficWindow
}
