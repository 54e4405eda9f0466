package store

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"tableflip.dev/taskbook/pkg/kv"
)

// writer serializes persistence for a single durable key. Mutations enqueue
// whole snapshots and never wait; one goroutine applies them in order,
// collapsing bursts to the latest snapshot, so the durable copy is always
// some complete snapshot and never an interleaving of two. Write failures
// are logged and dropped: in-memory state stays authoritative for the rest
// of the session.
type writer struct {
	key string
	kv  kv.Store
	log *log.Logger

	mu      sync.Mutex
	cond    *sync.Cond
	latest  string
	pending bool
	busy    bool
}

func newWriter(key string, s kv.Store, logger *log.Logger) *writer {
	w := &writer{key: key, kv: s, log: logger}
	w.cond = sync.NewCond(&w.mu)
	go w.run()
	return w
}

func (w *writer) enqueue(snapshot string) {
	w.mu.Lock()
	w.latest = snapshot
	w.pending = true
	w.mu.Unlock()
	w.cond.Broadcast()
}

func (w *writer) run() {
	for {
		w.mu.Lock()
		for !w.pending {
			w.cond.Wait()
		}
		snapshot := w.latest
		w.pending = false
		w.busy = true
		w.mu.Unlock()

		if err := w.kv.Set(context.Background(), w.key, snapshot); err != nil {
			w.log.Warn("persist failed, state will not survive a restart", "key", w.key, "err", err)
		}

		w.mu.Lock()
		w.busy = false
		w.mu.Unlock()
		w.cond.Broadcast()
	}
}

// flush blocks until everything enqueued so far has been written. It exists
// so tests (and short-lived CLI invocations) can await the otherwise
// fire-and-forget writes deterministically.
func (w *writer) flush() {
	w.mu.Lock()
	for w.pending || w.busy {
		w.cond.Wait()
	}
	w.mu.Unlock()
}
