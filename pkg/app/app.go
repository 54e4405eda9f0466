// Package app is the composition root for the organizer engine. A Service
// owns the three state stores, the notification scheduler, and the durable
// substrate they persist through, so CLIs and UIs share one wiring.
package app

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"tableflip.dev/taskbook/pkg/kv"
	"tableflip.dev/taskbook/pkg/notify"
	"tableflip.dev/taskbook/pkg/store"
	"tableflip.dev/taskbook/pkg/task"
	"tableflip.dev/taskbook/pkg/timeline"
)

// Service holds the long-lived state containers. It has an explicit
// Initialize lifecycle and no teardown; the containers live for the
// process's duration.
type Service struct {
	KV         kv.Store
	Categories *store.CategoryStore
	Alarms     *store.AlarmStore
	Days       *store.DayTaskStore
	Scheduler  *notify.Scheduler
	Log        *log.Logger
}

// New wires a Service over the given substrate and notification capability.
func New(s kv.Store, r notify.Registrar, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	sched := notify.NewScheduler(r, logger)
	return &Service{
		KV:         s,
		Categories: store.NewCategoryStore(s, logger),
		Alarms:     store.NewAlarmStore(s, logger),
		Days:       store.NewDayTaskStore(s, sched, logger),
		Scheduler:  sched,
		Log:        logger,
	}
}

// Load opens the configured disk substrate and wires a Service over it.
func Load(cfg kv.Config, r notify.Registrar, logger *log.Logger) (*Service, error) {
	s, err := kv.Open(cfg)
	if err != nil {
		return nil, err
	}
	return New(s, r, logger), nil
}

// Initialize seeds every store from durable state. Until it runs, snapshots
// are valid empty collections, not errors. Idempotent: running it again just
// reloads.
func (s *Service) Initialize(ctx context.Context) {
	s.Categories.Initialize(ctx)
	s.Alarms.Initialize(ctx)
	s.Days.Initialize(ctx)
}

// Timeline joins the category and alarm snapshots through the projector.
// The stores never read each other; the join happens here, in the consuming
// layer.
func (s *Service) Timeline() timeline.Timeline {
	return timeline.Project(s.Categories.Categories(), s.Alarms.Times())
}

// Flush drains every store's pending persistence writes. Mutations are
// fire-and-forget; short-lived processes and tests call this before exiting.
func (s *Service) Flush() {
	s.Categories.Flush()
	s.Alarms.Flush()
	s.Days.Flush()
}

// ResolveCategory finds a category by id or, failing that, by exact name.
// CLI surfaces let users say "Work" instead of a uuid.
func (s *Service) ResolveCategory(ref string) (task.Category, bool) {
	if c, ok := s.Categories.Find(ref); ok {
		return c, true
	}
	for _, c := range s.Categories.Categories() {
		if c.Name == ref {
			return c, true
		}
	}
	return task.Category{}, false
}

// Watch streams durable-key change events when the substrate supports it.
func (s *Service) Watch(ctx context.Context) (<-chan kv.Event, error) {
	w, ok := s.KV.(kv.Watcher)
	if !ok {
		return nil, errors.New("app: substrate does not support watching")
	}
	return w.Watch(ctx)
}
