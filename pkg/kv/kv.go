// Package kv is the durable key-value substrate the state stores persist
// through. The namespace is partitioned by fixed keys, one per store, so no
// two stores ever contend for the same key.
package kv

import "context"

const (
	// KeyCategories holds the JSON array of categories and their task lists.
	KeyCategories = "category"
	// KeyAlarms holds the JSON object mapping task id to alarm time string.
	KeyAlarms = "alarm_times"
	// KeyDayTasks holds the JSON array of [date, tasks] pairs.
	KeyDayTasks = "tasks"
	// KeyProfile is reserved for the user profile surface outside this core.
	KeyProfile = "user"
)

// Store is the persistence contract. Absence of a key is reported through
// ok, not through an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Event is emitted by a Watcher when a durable key changes.
type Event struct {
	Key string
}

// Watcher is implemented by stores that can stream change events for their
// keys, so long-lived views can refresh when another process writes.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}
