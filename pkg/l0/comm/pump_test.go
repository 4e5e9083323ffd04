package comm

import (
	"container/list"
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testStream struct {
	t          *testing.T
	byteCh     chan byte
	writeCh    chan byte
	injectCh   chan struct{}
	injectList list.List
	injectLock sync.Mutex
}

func newTestStream(t *testing.T) *testStream {
	return &testStream{
		t:        t,
		byteCh:   make(chan byte),
		writeCh:  make(chan byte, 16),
		injectCh: make(chan struct{}, 1),
	}
}

func (s *testStream) Read(p []byte) (int, error) {
	require.Len(s.t, p, 1)
	b, ok := <-s.byteCh
	if ok {
		p[0] = b
		return 1, nil
	}
	return 0, io.EOF
}

func (s *testStream) Write(p []byte) (int, error) {
	for _, b := range p {
		s.writeCh <- b
	}
	return len(p), nil
}

func (s *testStream) run() {
	for {
		var elm *list.Element
		s.injectLock.Lock()
		if s.injectList.Len() > 0 {
			elm = s.injectList.Front()
			s.injectList.Remove(elm)
		}
		s.injectLock.Unlock()
		if elm != nil {
			for _, b := range elm.Value.([]byte) {
				s.byteCh <- b
			}
			continue
		}
		if _, ok := <-s.injectCh; !ok {
			break
		}
	}
}

func (s *testStream) inject(p []byte) {
	if len(p) == 0 {
		return
	}
	s.injectLock.Lock()
	s.injectList.PushBack(p)
	s.injectLock.Unlock()
	select {
	case s.injectCh <- struct{}{}:
	default:
	}
}

func TestPump(t *testing.T) {
	stream := newTestStream(t)
	recvCh := make(chan byte, 16)
	pump := NewPump(stream, HandleByteFunc(func(ctx context.Context, b byte) {
		recvCh <- b
	}))

	go stream.run()
	defer close(stream.injectCh)

	ctx, cancel := context.WithCancel(context.TODO())
	errCh := make(chan error, 1)
	go func() { errCh <- pump.Run(ctx) }()

	payload := []byte("!0090#2359")
	stream.inject(payload)
	for i, expect := range payload {
		select {
		case b := <-recvCh:
			require.Equalf(t, expect, b, "byte[%d] mismatch", i)
		case <-time.After(500 * time.Millisecond):
			t.Fatalf("byte[%d] timeout", i)
		}
	}

	cancel()
	select {
	case err := <-errCh:
		require.Equal(t, context.Canceled, err)
	case <-time.After(500 * time.Millisecond):
		t.Fatal("pump stop timeout")
	}
}

func TestPumpReadError(t *testing.T) {
	stream := newTestStream(t)
	pump := NewPump(stream, HandleByteFunc(func(context.Context, byte) {}))

	go stream.run()
	defer close(stream.injectCh)

	errCh := make(chan error, 1)
	go func() { errCh <- pump.Run(context.TODO()) }()

	close(stream.byteCh)
	select {
	case err := <-errCh:
		require.Equal(t, io.EOF, err)
	case <-time.After(500 * time.Millisecond):
		t.Fatal("pump stop timeout")
	}
}

type timeoutReader struct {
	data []byte
	pos  int
}

func (r *timeoutReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, &timeoutError{}
	}
	p[0] = r.data[r.pos]
	r.pos++
	return 1, nil
}

type timeoutError struct{}

func (*timeoutError) Error() string { return "i/o timeout" }
func (*timeoutError) Timeout() bool { return true }

func TestPumpReadTimeout(t *testing.T) {
	reader := &timeoutReader{data: []byte("0090")}
	recvCh := make(chan byte, 8)
	pump := &Pump{
		Reader:      reader,
		Handler:     HandleByteFunc(func(ctx context.Context, b byte) { recvCh <- b }),
		ReadTimeout: true,
	}

	ctx, cancel := context.WithCancel(context.TODO())
	errCh := make(chan error, 1)
	go func() { errCh <- pump.Run(ctx) }()

	for i, expect := range []byte("0090") {
		select {
		case b := <-recvCh:
			require.Equalf(t, expect, b, "byte[%d] mismatch", i)
		case <-time.After(500 * time.Millisecond):
			t.Fatalf("byte[%d] timeout", i)
		}
	}

	cancel()
	select {
	case err := <-errCh:
		require.Equal(t, context.Canceled, err)
	case <-time.After(500 * time.Millisecond):
		t.Fatal("pump stop timeout")
	}
}
