package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/taskbook/pkg/task"
)

// DayOptions captures calendar flags for day-task commands.
type DayOptions struct {
	Date       string
	LeadString string
	AtString   string
}

func AddDateArgs(cmd *cobra.Command, o *DayOptions) {
	cmd.Flags().StringVar(&o.Date, "date", time.Now().Format(task.LayoutISO),
		`Specify the calendar date, example: --date="2026-09-01".`)
}

func AddNotifyArgs(cmd *cobra.Command, o *DayOptions) {
	cmd.Flags().StringVar(&o.LeadString, "lead", "",
		`Lead time ahead of the target, one of '12 Hours' or '1 Day'.`)
	cmd.Flags().StringVar(&o.AtString, "at", "",
		`Target time, example: --at="2026-09-01T09:00:00Z".`)
}

// GetNotification builds the lead-time notification from the flags; both or
// neither must be set.
func (o *DayOptions) GetNotification() (*task.Notification, error) {
	if o.LeadString == "" && o.AtString == "" {
		return nil, nil
	}
	lead, err := task.ParseLeadTime(o.LeadString)
	if err != nil {
		return nil, err
	}
	at, err := task.ParseTime(o.AtString)
	if err != nil {
		return nil, err
	}
	return &task.Notification{Lead: lead, Time: task.Timestamp{Time: at}}, nil
}
