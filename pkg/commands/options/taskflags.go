package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/taskbook/pkg/task"
)

// TaskOptions captures task edit flags.
type TaskOptions struct {
	Description    string
	PriorityString string
}

func AddDescriptionArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Specify a description for the task.")
}

func AddPriorityArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.PriorityString, "priority", "p", "",
		"Specify an Eisenhower priority, I..IV.")
}

// GetPriority parses the priority flag; empty means unset.
func (o *TaskOptions) GetPriority() (task.Priority, error) {
	return task.ParsePriority(o.PriorityString)
}
