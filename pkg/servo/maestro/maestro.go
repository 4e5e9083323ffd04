// Package maestro drives Pololu Maestro servo controllers over a
// local serial port using the compact protocol.
package maestro

import (
	"fmt"
	"io"
	"sync"

	"github.com/golang/glog"
	"github.com/tarm/serial"

	"github.com/robotalks/arm.go/pkg/servo"
)

// Compact protocol command bytes.
const (
	cmdSetTarget = 0x84
	cmdGoHome    = 0xa2
)

// DefaultBaud matches the Maestro's default serial settings.
const DefaultBaud = 9600

// maxChannels is the largest Maestro variant.
const maxChannels = 24

// maxTarget is the wire limit: targets are 14-bit.
const maxTarget = 0x3fff

// Driver implements servo.Driver on a Maestro board.
type Driver struct {
	conn     io.ReadWriteCloser
	channels int
	lock     sync.Mutex
}

// Open connects to a Maestro on a local serial device.
func Open(device string, baud int) (*Driver, error) {
	if baud <= 0 {
		baud = DefaultBaud
	}
	port, err := serial.OpenPort(&serial.Config{Name: device, Baud: baud})
	if err != nil {
		return nil, err
	}
	glog.Infof("maestro on %q at %d baud", device, baud)
	return &Driver{conn: port}, nil
}

// Configure implements servo.Driver.
func (d *Driver) Configure(channels int) error {
	if channels <= 0 || channels > maxChannels {
		return fmt.Errorf("unsupported channel count %d", channels)
	}
	d.channels = channels
	return nil
}

// SetDuty implements servo.Driver. The duty count is converted to
// the board's quarter-microsecond target units.
func (d *Driver) SetDuty(channel, duty int) error {
	if channel < 0 || channel >= d.channels {
		return servo.ErrChannelRange
	}
	target := TargetForDuty(duty)
	d.lock.Lock()
	defer d.lock.Unlock()
	_, err := d.conn.Write([]byte{
		cmdSetTarget,
		byte(channel),
		byte(target & 0x7f),
		byte((target >> 7) & 0x7f),
	})
	return err
}

// GoHome sends all servos to their board-configured home position.
func (d *Driver) GoHome() error {
	d.lock.Lock()
	defer d.lock.Unlock()
	_, err := d.conn.Write([]byte{cmdGoHome})
	return err
}

// Close releases the serial port.
func (d *Driver) Close() error {
	return d.conn.Close()
}

// TargetForDuty converts a duty count on the 16-bit 50 Hz timer to
// quarter-microsecond pulse units, clamped to the 14-bit wire range.
func TargetForDuty(duty int) int {
	periodUS := 1000000 / servo.PWMFrequencyHz
	target := duty * periodUS * 4 >> servo.PWMResolutionBits
	if target < 0 {
		return 0
	}
	if target > maxTarget {
		return maxTarget
	}
	return target
}
