package link

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"
	serial "go.bug.st/serial.v1"
)

// DefaultSerialMode matches the usual wireless serial adapter setup.
var DefaultSerialMode = &serial.Mode{
	BaudRate: 57600,
	Parity:   serial.NoParity,
	DataBits: 8,
	StopBits: serial.OneStopBit,
}

// DefaultSerialTimeout bounds Read and Write on a SerialLink.
var DefaultSerialTimeout = 250 * time.Millisecond

// SerialLink is a Link over a local serial port. Port IO runs in
// two routines so Read and Write can be bounded by timeouts; Read
// reports expired waits as timeout errors, letting byte pollers
// distinguish silence from disconnection.
type SerialLink struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	port serial.Port
	path string

	rdChan    chan []byte
	wrChan    chan []byte
	errChan   chan error
	closeChan chan struct{}
	wg        sync.WaitGroup

	pending []byte
}

// OpenSerial opens a serial port by name. A nil mode selects
// DefaultSerialMode.
func OpenSerial(path string, mode *serial.Mode) (*SerialLink, error) {
	if mode == nil {
		mode = DefaultSerialMode
	}
	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, err
	}
	return newSerialLink(port, path), nil
}

// FindSerial opens the first local port that accepts the mode.
// The wire protocol has no replies, so there is nothing to probe
// with: a port that opens is taken as good.
func FindSerial(mode *serial.Mode) (*SerialLink, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, err
	}
	if mode == nil {
		mode = DefaultSerialMode
	}
	for _, name := range ports {
		port, err := serial.Open(name, mode)
		if err != nil {
			glog.V(2).Infof("skip serial port %q: %v", name, err)
			continue
		}
		glog.Infof("using serial port %q", name)
		return newSerialLink(port, name), nil
	}
	return nil, ErrNoSerialPort
}

// SerialOpener opens the serial device at path, auto detecting the
// port when path is empty. A nil mode selects DefaultSerialMode.
func SerialOpener(path string, mode *serial.Mode) Opener {
	return func(context.Context) (Link, error) {
		if path == "" {
			return FindSerial(mode)
		}
		return OpenSerial(path, mode)
	}
}

func newSerialLink(port serial.Port, path string) *SerialLink {
	l := &SerialLink{
		ReadTimeout:  DefaultSerialTimeout,
		WriteTimeout: DefaultSerialTimeout,
		port:         port,
		path:         path,
		rdChan:       make(chan []byte),
		wrChan:       make(chan []byte),
		errChan:      make(chan error),
		closeChan:    make(chan struct{}),
	}
	l.wg.Add(2)
	go func() {
		l.readRoutine()
		l.wg.Done()
	}()
	go func() {
		l.writeRoutine()
		l.wg.Done()
	}()
	return l
}

// Path returns the device name of the port.
func (l *SerialLink) Path() string {
	return l.path
}

// Read implements Link.
func (l *SerialLink) Read(p []byte) (int, error) {
	if len(l.pending) == 0 {
		select {
		case b := <-l.rdChan:
			l.pending = b
		case err := <-l.errChan:
			return 0, err
		case <-l.closeChan:
			return 0, ErrLinkClosed
		case <-time.After(l.ReadTimeout):
			return 0, &timeoutError{op: "read", timeout: l.ReadTimeout}
		}
	}
	n := copy(p, l.pending)
	l.pending = l.pending[n:]
	return n, nil
}

// Write implements Link.
func (l *SerialLink) Write(p []byte) (int, error) {
	select {
	case l.wrChan <- p:
		return len(p), nil
	case <-l.closeChan:
		return 0, ErrLinkClosed
	case <-time.After(l.WriteTimeout):
		return 0, &timeoutError{op: "write", timeout: l.WriteTimeout}
	}
}

// Close closes the port first: the protocol is one way, so a read
// may be parked on a silent line and only the port close wakes it.
func (l *SerialLink) Close() error {
	close(l.closeChan)
	err := l.port.Close()
	l.wg.Wait()
	return err
}

func (l *SerialLink) readRoutine() {
	for {
		time.Sleep(50 * time.Millisecond)
		b := make([]byte, 32)
		n, err := l.port.Read(b)
		if err != nil {
			select {
			case l.errChan <- err:
			case <-l.closeChan:
				return
			}
		} else if n > 0 {
			select {
			case l.rdChan <- b[:n]:
			case <-l.closeChan:
				return
			}
		}
	}
}

func (l *SerialLink) writeRoutine() {
	for {
		var b []byte
		select {
		case b = <-l.wrChan:
		case <-l.closeChan:
			return
		}
		if _, err := l.port.Write(b); err != nil {
			glog.Errorf("serial write %q: %v", l.path, err)
		}
	}
}
