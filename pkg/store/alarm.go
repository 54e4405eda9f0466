package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/charmbracelet/log"

	"tableflip.dev/taskbook/pkg/kv"
)

// AlarmStore owns the mapping from task id to a formatted time-of-day string
// (no date component). The map is sparse: absence of a key is the canonical
// "no alarm" state, never an empty-string sentinel. Its lifecycle is
// independent of the category store; tasks removed over there can leave
// entries behind here.
type AlarmStore struct {
	mu    sync.Mutex
	times map[string]string

	kv  kv.Store
	w   *writer
	log *log.Logger
}

func NewAlarmStore(s kv.Store, logger *log.Logger) *AlarmStore {
	if logger == nil {
		logger = log.Default()
	}
	return &AlarmStore{
		times: map[string]string{},
		kv:    s,
		w:     newWriter(kv.KeyAlarms, s, logger),
		log:   logger,
	}
}

// Initialize loads the persisted mapping or seeds an empty one.
func (as *AlarmStore) Initialize(ctx context.Context) {
	var times map[string]string
	raw, ok, err := as.kv.Get(ctx, kv.KeyAlarms)
	switch {
	case err != nil:
		as.log.Warn("load alarms, seeding empty", "err", err)
	case ok:
		if err := json.Unmarshal([]byte(raw), &times); err != nil {
			as.log.Warn("malformed alarms blob, seeding empty", "err", err)
			times = nil
		}
	}
	if times == nil {
		times = map[string]string{}
	}

	as.mu.Lock()
	as.times = times
	as.mu.Unlock()
}

// Set upserts the alarm time for a task id.
func (as *AlarmStore) Set(taskID, formatted string) {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.times[taskID] = formatted
	as.persist()
}

// Delete removes the entry if present; otherwise a no-op.
func (as *AlarmStore) Delete(taskID string) {
	as.mu.Lock()
	defer as.mu.Unlock()
	delete(as.times, taskID)
	as.persist()
}

func (as *AlarmStore) Get(taskID string) (string, bool) {
	as.mu.Lock()
	defer as.mu.Unlock()
	t, ok := as.times[taskID]
	return t, ok
}

// Times returns a snapshot copy of the mapping.
func (as *AlarmStore) Times() map[string]string {
	as.mu.Lock()
	defer as.mu.Unlock()
	out := make(map[string]string, len(as.times))
	for id, t := range as.times {
		out[id] = t
	}
	return out
}

// Flush drains pending persistence writes.
func (as *AlarmStore) Flush() {
	as.w.flush()
}

func (as *AlarmStore) persist() {
	data, err := json.Marshal(as.times)
	if err != nil {
		as.log.Error("marshal alarms", "err", err)
		return
	}
	as.w.enqueue(string(data))
}
