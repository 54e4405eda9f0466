package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/taskbook/pkg/task"
	"tableflip.dev/taskbook/pkg/timeline"
)

// Timeline renders the hour-bucketed view. Buckets without tasks are hidden;
// they still exist in the projection.
func (pp *PrettyPrint) Timeline(tl timeline.Timeline) {
	hours := tl.Nonempty()
	if len(hours) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" nothing scheduled\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("HOUR", "ALARM", "TASK", "CATEGORY", "STATE")
	for _, hour := range hours {
		for i, e := range tl.Bucket(hour) {
			label := hour
			if i > 0 {
				label = ""
			}
			state := "open"
			if e.Done {
				state = "done"
			}
			table.AddRow(label, e.AlarmTime, e.Subject, e.CategoryName, state)
		}
	}
	_, _ = fmt.Fprintln(color.Output, table)
}

// Day renders one calendar date's day tasks in order.
func (pp *PrettyPrint) Day(date string, tasks []task.DayTask) {
	pp.TitleWithCount(date, len(tasks))
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	for _, dt := range tasks {
		notif := ""
		if dt.Notification != nil {
			notif = fmt.Sprintf("%s before %s", dt.Notification.Lead, dt.Notification.Time.String())
		}
		table.AddRow(dt.Label, dt.Description, notif)
	}
	_, _ = fmt.Fprintln(color.Output, table)
	fmt.Println("")
}
