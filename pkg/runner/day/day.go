// Package day provides the runner logic for calendar-scoped day tasks.
package day

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"tableflip.dev/taskbook/pkg/app"
	"tableflip.dev/taskbook/pkg/printers"
	"tableflip.dev/taskbook/pkg/task"
)

func validDate(date string) error {
	if _, err := time.Parse(task.LayoutISO, date); err != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
	}
	return nil
}

// Add appends a day task to a date bucket, optionally with a lead-time
// notification that is scheduled on the spot.
type Add struct {
	Date         string
	Label        string
	Description  string
	Notification *task.Notification
	Service      *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add day task, no service")
	}
	if err := validDate(n.Date); err != nil {
		return err
	}
	for _, dt := range n.Service.Days.Tasks(n.Date) {
		if dt.Label == n.Label {
			// The label is the identity inside a date bucket.
			return fmt.Errorf("task %q already exists on %s", n.Label, n.Date)
		}
	}

	n.Service.Days.Add(n.Date, task.DayTask{
		Label:        n.Label,
		Description:  n.Description,
		Notification: n.Notification,
	})
	n.Service.Flush()

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Day(n.Date, n.Service.Days.Tasks(n.Date))
	return nil
}

// Remove drops a day task by label. Any already-registered notification for
// it stays registered.
type Remove struct {
	Date    string
	Label   string
	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove day task, no service")
	}
	if err := validDate(n.Date); err != nil {
		return err
	}

	n.Service.Days.Remove(n.Date, n.Label)
	n.Service.Flush()

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Day(n.Date, n.Service.Days.Tasks(n.Date))
	return nil
}

// Edit rewrites a day task's label and description in place. The task keeps
// its position and its notification.
type Edit struct {
	Date        string
	OldLabel    string
	NewLabel    string
	Description string
	Service     *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit day task, no service")
	}
	if err := validDate(n.Date); err != nil {
		return err
	}

	n.Service.Days.Update(n.Date, n.OldLabel, n.NewLabel, n.Description)
	n.Service.Flush()

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Day(n.Date, n.Service.Days.Tasks(n.Date))
	return nil
}

// Notify attaches a lead-time notification to a day task and schedules it.
type Notify struct {
	Date         string
	Label        string
	Notification task.Notification
	Service      *app.Service
}

func (n *Notify) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set notification, no service")
	}
	if err := validDate(n.Date); err != nil {
		return err
	}
	if !n.Notification.Lead.Valid() {
		return fmt.Errorf("invalid lead time %q", n.Notification.Lead)
	}

	n.Service.Days.SetNotification(n.Date, n.Label, n.Notification)
	n.Service.Flush()

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Day(n.Date, n.Service.Days.Tasks(n.Date))
	return nil
}

// Get prints one date's tasks, or every non-empty date in order.
type Get struct {
	Date    string
	All     bool
	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get day tasks, no service")
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")

	if !n.All {
		if err := validDate(n.Date); err != nil {
			return err
		}
		pp.Day(n.Date, n.Service.Days.Tasks(n.Date))
		return nil
	}

	all := n.Service.Days.All()
	dates := make([]string, 0, len(all))
	for date, bucket := range all {
		if len(bucket) > 0 {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	for _, date := range dates {
		pp.Day(date, all[date])
	}
	return nil
}
