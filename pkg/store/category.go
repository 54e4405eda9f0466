// Package store holds the state containers that own the organizer's data:
// categories with their ordered task lists, the task-id-keyed alarm map, and
// the calendar-keyed day tasks. Each store exclusively owns one durable key
// and persists its entire collection on every mutation, fire-and-forget,
// through a per-store serialized write queue.
package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/charmbracelet/log"

	"tableflip.dev/taskbook/pkg/kv"
	"tableflip.dev/taskbook/pkg/task"
)

// CategoryStore owns the ordered category collection. Mutations update
// in-memory state synchronously; the durable copy catches up in the
// background. Missing-entity mutations are silent no-ops: the collection is
// already in the desired end state.
type CategoryStore struct {
	mu         sync.Mutex
	categories []task.Category

	kv  kv.Store
	w   *writer
	log *log.Logger
}

func NewCategoryStore(s kv.Store, logger *log.Logger) *CategoryStore {
	if logger == nil {
		logger = log.Default()
	}
	return &CategoryStore{
		categories: []task.Category{},
		kv:         s,
		w:          newWriter(kv.KeyCategories, s, logger),
		log:        logger,
	}
}

// Initialize loads the persisted collection, seeding an empty one when the
// key is absent or the blob does not parse. Safe to call again: it replaces
// the in-memory state with the freshly loaded copy.
func (cs *CategoryStore) Initialize(ctx context.Context) {
	var categories []task.Category
	raw, ok, err := cs.kv.Get(ctx, kv.KeyCategories)
	switch {
	case err != nil:
		cs.log.Warn("load categories, seeding empty", "err", err)
	case ok:
		if err := json.Unmarshal([]byte(raw), &categories); err != nil {
			cs.log.Warn("malformed categories blob, seeding empty", "err", err)
			categories = nil
		}
	}
	if categories == nil {
		categories = []task.Category{}
	}

	cs.mu.Lock()
	cs.categories = categories
	cs.mu.Unlock()
}

// AddCategory prepends a fresh category: most recently added sorts first.
func (cs *CategoryStore) AddCategory(name string) task.Category {
	c := task.NewCategory(name)
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.categories = append([]task.Category{c}, cs.categories...)
	cs.persist()
	return c
}

// RemoveCategory drops the category and its tasks. Alarm entries for those
// task ids are left behind on purpose; the alarm store has an independent
// lifecycle and this store never writes its key.
func (cs *CategoryStore) RemoveCategory(id string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	kept := make([]task.Category, 0, len(cs.categories))
	for _, c := range cs.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	cs.categories = kept
	cs.persist()
}

// AddTask prepends the task to the category's list.
func (cs *CategoryStore) AddTask(categoryID string, t task.Task) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for i := range cs.categories {
		if cs.categories[i].ID == categoryID {
			cs.categories[i].Tasks = append([]task.Task{t}, cs.categories[i].Tasks...)
			break
		}
	}
	cs.persist()
}

func (cs *CategoryStore) RemoveTask(categoryID, taskID string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for i := range cs.categories {
		if cs.categories[i].ID != categoryID {
			continue
		}
		kept := make([]task.Task, 0, len(cs.categories[i].Tasks))
		for _, t := range cs.categories[i].Tasks {
			if t.ID != taskID {
				kept = append(kept, t)
			}
		}
		cs.categories[i].Tasks = kept
		break
	}
	cs.persist()
}

// ToggleTask replaces the task with the matching id. The caller computes the
// toggled Done value; the store is a pure replacement and touches no sibling.
func (cs *CategoryStore) ToggleTask(categoryID string, t task.Task) {
	cs.replaceTask(categoryID, t)
}

// UpdateTask replaces the task with the matching id; used for subject,
// description, and priority edits.
func (cs *CategoryStore) UpdateTask(categoryID string, t task.Task) {
	cs.replaceTask(categoryID, t)
}

func (cs *CategoryStore) replaceTask(categoryID string, t task.Task) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for i := range cs.categories {
		if cs.categories[i].ID != categoryID {
			continue
		}
		for j := range cs.categories[i].Tasks {
			if cs.categories[i].Tasks[j].ID == t.ID {
				cs.categories[i].Tasks[j] = t
				break
			}
		}
		break
	}
	cs.persist()
}

// SetOrder overwrites the top-level category order. The caller supplies the
// complete new sequence; there are no partial move semantics.
func (cs *CategoryStore) SetOrder(categories []task.Category) {
	next := make([]task.Category, len(categories))
	for i, c := range categories {
		next[i] = c.Clone()
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.categories = next
	cs.persist()
}

// SetTaskOrder overwrites one category's task order with the supplied
// permutation (drag-and-drop: the new order is authoritative).
func (cs *CategoryStore) SetTaskOrder(categoryID string, tasks []task.Task) {
	next := make([]task.Task, len(tasks))
	copy(next, tasks)
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for i := range cs.categories {
		if cs.categories[i].ID == categoryID {
			cs.categories[i].Tasks = next
			break
		}
	}
	cs.persist()
}

// Categories returns a deep-copied snapshot in display order.
func (cs *CategoryStore) Categories() []task.Category {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	out := make([]task.Category, len(cs.categories))
	for i, c := range cs.categories {
		out[i] = c.Clone()
	}
	return out
}

// Find returns a snapshot of the category with the given id.
func (cs *CategoryStore) Find(id string) (task.Category, bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for _, c := range cs.categories {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return task.Category{}, false
}

// Flush drains pending persistence writes.
func (cs *CategoryStore) Flush() {
	cs.w.flush()
}

// persist serializes the whole collection and hands it to the write queue.
// Callers hold the mutex.
func (cs *CategoryStore) persist() {
	data, err := json.Marshal(cs.categories)
	if err != nil {
		cs.log.Error("marshal categories", "err", err)
		return
	}
	cs.w.enqueue(string(data))
}
