package link

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/golang/glog"
)

// Opener opens a Link, used by Watcher to connect and reconnect.
// Implementations blocking on external input honor ctx.
type Opener func(ctx context.Context) (Link, error)

// DefaultPollRate is how often Watcher retries a down link.
var DefaultPollRate = time.Second

// Watcher keeps a Link usable across disconnects. IO errors mark
// the link down and surface as timeouts to readers, so a polling
// consumer keeps running while the background Run routine reopens
// the link. The protocol carries no replies, so a dead-but-open
// port cannot be probed; only IO failures count as disconnects.
type Watcher struct {
	PollRate time.Duration

	open    Opener
	link    Link
	lock    sync.Mutex
	closeCh chan struct{}
}

// NewWatcher creates a Watcher over an Opener.
func NewWatcher(open Opener) *Watcher {
	return &Watcher{
		PollRate: DefaultPollRate,
		open:     open,
		closeCh:  make(chan struct{}),
	}
}

// Run reopens the link whenever it is down.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.closeCh:
			return nil
		case <-time.After(w.PollRate):
		}
		if w.current() != nil {
			continue
		}
		l, err := w.open(ctx)
		if err != nil {
			glog.V(2).Infof("link open failed: %v", err)
			continue
		}
		w.lock.Lock()
		w.link = l
		w.lock.Unlock()
		glog.Info("link connected")
	}
}

// Read implements Link. While disconnected it reports timeouts so
// pollers keep going.
func (w *Watcher) Read(p []byte) (int, error) {
	l := w.current()
	if l == nil {
		select {
		case <-w.closeCh:
			return 0, ErrLinkClosed
		case <-time.After(w.PollRate):
			return 0, &timeoutError{op: "read", timeout: w.PollRate}
		}
	}
	n, err := l.Read(p)
	return w.filterErr(l, n, err)
}

// Write implements Link. Writes on a down link fail fast.
func (w *Watcher) Write(p []byte) (int, error) {
	l := w.current()
	if l == nil {
		return 0, ErrLinkDown
	}
	n, err := l.Write(p)
	return w.filterErr(l, n, err)
}

// Close stops reconnecting and closes the current link.
func (w *Watcher) Close() error {
	close(w.closeCh)
	w.lock.Lock()
	l := w.link
	w.link = nil
	w.lock.Unlock()
	if l != nil {
		return l.Close()
	}
	return nil
}

func (w *Watcher) current() Link {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.link
}

// filterErr drops the link on real IO errors and converts them to
// timeouts, keeping byte pollers alive across a reconnect. Only the
// caller detaching the link closes it, a link must not close twice.
func (w *Watcher) filterErr(l Link, n int, err error) (int, error) {
	if err == nil || os.IsTimeout(err) {
		return n, err
	}
	w.lock.Lock()
	detached := w.link == l
	if detached {
		w.link = nil
	}
	w.lock.Unlock()
	if detached {
		l.Close()
		glog.Warningf("link lost: %v", err)
	}
	return n, &timeoutError{op: "reconnect", timeout: w.PollRate}
}
