package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch streams change events for durable keys until ctx is cancelled. The
// channel is closed once ctx is done or the watcher hits an unrecoverable
// error. Callers should drain the channel; events are dropped rather than
// blocking the watcher when the consumer falls behind, and a later change
// will re-signal.
func (s *disk) Watch(ctx context.Context) (<-chan Event, error) {
	if s.basePath == "" {
		return nil, fmt.Errorf("kv: base path unknown")
	}
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("kv: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("kv: create watcher: %w", err)
	}
	if err := watcher.Add(s.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("kv: watch %s: %w", s.basePath, err)
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer func() { _ = watcher.Close() }()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
			}
		}

		throttle := newKeyThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				key := filepath.Base(evt.Name)
				// diskv writes through dot-prefixed temp files; only the
				// final key names matter to subscribers.
				if key == "" || key == "." || strings.HasPrefix(key, ".") {
					continue
				}
				throttle.Enqueue(key, send)
			}
		}
	}()

	return events, nil
}

// keyThrottle coalesces rapid writes so a subscriber refreshes once per
// burst instead of once per filesystem event.
type keyThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
}

func newKeyThrottle(delay time.Duration) *keyThrottle {
	return &keyThrottle{delay: delay, pending: make(map[string]struct{})}
}

func (t *keyThrottle) Enqueue(key string, send func(Event)) {
	t.mu.Lock()
	t.pending[key] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *keyThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	for key := range pending {
		send(Event{Key: key})
	}
}

func (t *keyThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
