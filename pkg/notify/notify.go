// Package notify wraps the host's one-shot notification capability. The
// engine only ever registers notifications; it never queries or cancels
// them, so a registered notification outlives the task that created it.
package notify

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"tableflip.dev/taskbook/pkg/task"
)

// Request describes a one-shot notification registration.
type Request struct {
	Title     string
	Body      string
	TriggerAt time.Time
}

// Registrar is the external notification capability.
type Registrar interface {
	ScheduleOneShot(ctx context.Context, req Request) error
}

// Scheduler applies the product's timing rules on top of a Registrar.
// Registration failures are logged and swallowed: a mutation or render is
// never blocked by a failed registration.
type Scheduler struct {
	Registrar Registrar
	Log       *log.Logger

	// Now is the clock; overridable in tests.
	Now func() time.Time
}

func NewScheduler(r Registrar, logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{Registrar: r, Log: logger, Now: time.Now}
}

// ScheduleAbsolute registers a notification firing at a wall-clock time.
// Category-task alarms carry a time of day only, so their trigger is always
// same-day; that limitation is the product's, not this wrapper's.
func (s *Scheduler) ScheduleAbsolute(ctx context.Context, at time.Time, title, body string) {
	s.register(ctx, Request{Title: title, Body: body, TriggerAt: at})
}

// ScheduleLeadTime registers a notification a fixed offset ahead of target.
// A trigger that is not in the future is dropped silently: past-due lead
// times are neither fired immediately nor reported as errors.
func (s *Scheduler) ScheduleLeadTime(ctx context.Context, target time.Time, lead task.LeadTime, title, body string) {
	trigger := target.Add(-lead.Offset())
	if !trigger.After(s.now()) {
		s.Log.Debug("lead-time trigger already past, dropping", "target", target, "lead", lead)
		return
	}
	s.register(ctx, Request{Title: title, Body: body, TriggerAt: trigger})
}

func (s *Scheduler) register(ctx context.Context, req Request) {
	if s.Registrar == nil {
		return
	}
	if err := s.Registrar.ScheduleOneShot(ctx, req); err != nil {
		s.Log.Warn("notification registration failed", "title", req.Title, "err", err)
	}
}

func (s *Scheduler) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// LogRegistrar records registrations to the logger. It stands in for the
// host notification subsystem when the engine runs as a plain CLI.
type LogRegistrar struct {
	Log *log.Logger
}

func (r LogRegistrar) ScheduleOneShot(_ context.Context, req Request) error {
	l := r.Log
	if l == nil {
		l = log.Default()
	}
	l.Info("notification scheduled",
		"title", req.Title,
		"body", req.Body,
		"at", req.TriggerAt.Format(time.RFC3339))
	return nil
}
