package comm

import (
	"context"
	"io"
	"os"
)

// ByteHandler is called for each byte read from the transport.
type ByteHandler interface {
	HandleByte(context.Context, byte)
}

// HandleByteFunc is func type of ByteHandler.
type HandleByteFunc func(context.Context, byte)

// HandleByte implements ByteHandler.
func (f HandleByteFunc) HandleByte(ctx context.Context, b byte) {
	f(ctx, b)
}

// Pump reads the transport one byte at a time and feeds a handler.
// It does no framing itself: bytes reach the handler in arrival
// order and the handler decides what they mean.
type Pump struct {
	Reader      io.Reader
	Handler     ByteHandler
	ReadTimeout bool // set to true if Reader returns timeout errors instead of blocking
}

// NewPump creates a Pump.
func NewPump(r io.Reader, h ByteHandler) *Pump {
	return &Pump{Reader: r, Handler: h}
}

// Run processes the transport in the background.
func (p *Pump) Run(ctx context.Context) error {
	if p.ReadTimeout {
		buf := make([]byte, 1)
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				n, err := p.Reader.Read(buf)
				if err != nil {
					if !os.IsTimeout(err) {
						return err
					}
				} else if n > 0 {
					p.Handler.HandleByte(ctx, buf[0])
				}
			}
		}
	}

	byteCh, errCh := make(chan byte), make(chan error, 1)
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go p.readLoop(subCtx, byteCh, errCh)
	for {
		select {
		case b := <-byteCh:
			p.Handler.HandleByte(ctx, b)
		case err := <-errCh:
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (p *Pump) readLoop(ctx context.Context, byteCh chan byte, errCh chan error) {
	buf := make([]byte, 1)
	for {
		select {
		case <-ctx.Done():
			return
		default:
			n, err := p.Reader.Read(buf)
			if err != nil {
				if os.IsTimeout(err) {
					continue
				}
				errCh <- err
				return
			}
			if n > 0 {
				select {
				case byteCh <- buf[0]:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}
