// Package link provides byte-stream transports carrying the wire
// protocol: local serial ports, plain stream sockets, and a
// reconnecting watcher that survives unplugged hardware.
package link

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// Link is a byte-stream connection carrying the wire protocol.
type Link interface {
	io.ReadWriteCloser
}

var (
	// ErrNoSerialPort indicates no usable serial port was found.
	ErrNoSerialPort = errors.New("no usable serial port")
	// ErrLinkClosed indicates use of a closed link.
	ErrLinkClosed = errors.New("link closed")
	// ErrLinkDown indicates the link is disconnected and a
	// reconnect is pending.
	ErrLinkDown = errors.New("link down")
)

// timeoutError satisfies os.IsTimeout so pollers keep polling.
type timeoutError struct {
	op      string
	timeout time.Duration
}

func (e *timeoutError) Error() string {
	return fmt.Sprintf("%s timeout (%s)", e.op, e.timeout)
}

func (e *timeoutError) Timeout() bool { return true }
