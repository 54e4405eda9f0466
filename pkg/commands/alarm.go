package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/taskbook/pkg/commands/options"
	"tableflip.dev/taskbook/pkg/runner/alarm"
)

func addAlarm(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}

	cmd := &cobra.Command{
		Use:   "alarm",
		Short: "Manage task alarms",
		Long: base.Wrap80("Attach a time-of-day alarm to a task. The alarm is a " +
			"formatted time with no date; its notification fires same-day."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	set := &cobra.Command{
		Use:   "set",
		Short: "Set or change a task's alarm time",
		Example: `
taskbook alarm set -c Work "write the report" 09:00
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 2 {
				return errors.New("requires a task and a time")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, err := loadService(ctx)
			if err != nil {
				return err
			}
			s := alarm.Set{
				Category: co.Category,
				Ref:      args[0],
				Time:     args[1],
				Service:  svc,
			}
			return oo.HandleError(s.Do(ctx))
		},
	}
	options.AddCategoryArgs(set, co)
	base.AddOutputArg(set, oo)
	cmd.AddCommand(set)

	rm := &cobra.Command{
		Use:   "rm",
		Short: "Remove a task's alarm",
		Example: `
taskbook alarm rm -c Work "write the report"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a task subject or id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, err := loadService(ctx)
			if err != nil {
				return err
			}
			s := alarm.Remove{
				Category: co.Category,
				Ref:      args[0],
				Service:  svc,
			}
			return oo.HandleError(s.Do(ctx))
		},
	}
	options.AddCategoryArgs(rm, co)
	base.AddOutputArg(rm, oo)
	cmd.AddCommand(rm)

	topLevel.AddCommand(cmd)
}
