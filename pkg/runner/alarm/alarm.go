// Package alarm provides the runner logic for task alarms: a time-of-day
// string in the alarm store plus a same-day one-shot notification.
package alarm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/taskbook/pkg/app"
	"tableflip.dev/taskbook/pkg/printers"
)

// clockLayouts are the accepted alarm spellings. Whatever the user typed is
// stored verbatim as the formatted alarm string.
var clockLayouts = []string{"15:04", "03:04 PM", "3:04 PM"}

func parseClock(s string) (time.Time, error) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q, want e.g. 09:30 or 09:30 AM", s)
}

// Set attaches an alarm time to a category task and registers the same-day
// notification. The alarm carries no date component.
type Set struct {
	Category string
	Ref      string
	Time     string
	Service  *app.Service
}

func (n *Set) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set alarm, no service")
	}

	c, ok := n.Service.ResolveCategory(n.Category)
	if !ok {
		return fmt.Errorf("no category %q", n.Category)
	}
	var taskID, subject string
	for _, t := range c.Tasks {
		if t.ID == n.Ref || t.Subject == n.Ref {
			taskID, subject = t.ID, t.Subject
			break
		}
	}
	if taskID == "" {
		return fmt.Errorf("no task %q in %q", n.Ref, c.Name)
	}

	formatted := strings.TrimSpace(n.Time)
	clock, err := parseClock(formatted)
	if err != nil {
		return err
	}

	n.Service.Alarms.Set(taskID, formatted)
	n.Service.Flush()

	now := time.Now()
	at := time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local)
	n.Service.Scheduler.ScheduleAbsolute(ctx, at, "Alarm", fmt.Sprintf("It's time for your task: %s", subject))

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(c.Name)
	fmt.Printf("%s @ %s\n\n", subject, formatted)
	return nil
}

// Remove deletes a task's alarm entry, restoring the sparse "no alarm"
// state. Removing an alarm that never existed is a no-op.
type Remove struct {
	Category string
	Ref      string
	Service  *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove alarm, no service")
	}

	c, ok := n.Service.ResolveCategory(n.Category)
	if !ok {
		return fmt.Errorf("no category %q", n.Category)
	}
	for _, t := range c.Tasks {
		if t.ID == n.Ref || t.Subject == n.Ref {
			n.Service.Alarms.Delete(t.ID)
			n.Service.Flush()
			fmt.Printf("\nalarm removed from %q\n\n", t.Subject)
			return nil
		}
	}
	return fmt.Errorf("no task %q in %q", n.Ref, c.Name)
}
