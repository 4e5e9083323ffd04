package comm

import (
	"io"
	"sync"
)

// Sender is the host side of the protocol: it encodes commands and
// writes them to the transport. There are no replies to wait for,
// so every call returns as soon as the bytes are written.
// Safe for concurrent use.
type Sender struct {
	writer io.Writer
	lock   sync.Mutex
}

// NewSender creates a Sender over a transport writer.
func NewSender(w io.Writer) *Sender {
	return &Sender{writer: w}
}

// Move encodes and sends one positioning frame.
func (s *Sender) Move(channel, degrees int) error {
	frame, err := MakeFrame(channel, degrees)
	if err != nil {
		return err
	}
	return s.SendFrame(frame)
}

// SendFrame writes one frame to the transport.
func (s *Sender) SendFrame(f Frame) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	_, err := s.writer.Write(f[:])
	return err
}

// Reset aborts any partially received frame on the firmware side.
// Useful after (re)connecting a link that may have dropped
// mid-frame.
func (s *Sender) Reset() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	_, err := s.writer.Write([]byte{ResetByte})
	return err
}
