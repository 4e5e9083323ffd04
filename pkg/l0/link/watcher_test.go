package link

import (
	"context"
	"errors"
	"net"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherReconnect(t *testing.T) {
	served, client := net.Pipe()
	attempts := 0
	w := NewWatcher(func(context.Context) (Link, error) {
		attempts++
		if attempts != 3 {
			return nil, errors.New("no port")
		}
		return served, nil
	})
	w.PollRate = 10 * time.Millisecond

	// down links fail writes fast
	_, err := w.Write([]byte("!"))
	require.Equal(t, ErrLinkDown, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	go client.Write([]byte("0090"))

	buf := make([]byte, 4)
	deadline := time.Now().Add(2 * time.Second)
	got := 0
	for got < 4 {
		require.True(t, time.Now().Before(deadline), "reconnect timeout")
		n, err := w.Read(buf[got:])
		if err != nil {
			// reads report timeouts while the link is down
			require.True(t, os.IsTimeout(err))
			continue
		}
		got += n
	}
	require.Equal(t, "0090", string(buf))
	require.True(t, attempts >= 3)

	// a broken link is dropped and reads poll again
	client.Close()
	_, err = w.Read(buf)
	require.Error(t, err)
	require.True(t, os.IsTimeout(err))
	_, err = w.Write([]byte("!"))
	require.Equal(t, ErrLinkDown, err)

	cancel()
	select {
	case err := <-errCh:
		require.Equal(t, context.Canceled, err)
	case <-time.After(500 * time.Millisecond):
		t.Fatal("watcher stop timeout")
	}
	w.Close()
}
