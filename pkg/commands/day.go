package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/taskbook/pkg/commands/options"
	"tableflip.dev/taskbook/pkg/runner/day"
)

func addDay(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	to := &options.TaskOptions{}

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Manage calendar day tasks",
		Long: base.Wrap80("Day tasks live under a calendar date and are identified " +
			"by their label text, not an id. Two day tasks on the same date cannot " +
			"share a label."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a day task",
		Example: `
taskbook day add --date 2026-09-01 dentist appointment
taskbook day add --date 2026-09-01 --lead "1 Day" --at 2026-09-01T09:00:00Z dentist
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task label")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			notification, err := do.GetNotification()
			if err != nil {
				return err
			}
			svc, err := loadService(ctx)
			if err != nil {
				return err
			}
			s := day.Add{
				Date:         do.Date,
				Label:        strings.Join(args, " "),
				Description:  to.Description,
				Notification: notification,
				Service:      svc,
			}
			return oo.HandleError(s.Do(ctx))
		},
	}
	options.AddDateArgs(add, do)
	options.AddNotifyArgs(add, do)
	options.AddDescriptionArgs(add, to)
	base.AddOutputArg(add, oo)
	cmd.AddCommand(add)

	rm := &cobra.Command{
		Use:   "rm",
		Short: "Remove a day task by label",
		Example: `
taskbook day rm --date 2026-09-01 "dentist appointment"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a task label")
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
			s := day.Remove{
				Date:    do.Date,
				Label:   args[0],
				Service: svc,
			}
			return oo.HandleError(s.Do(ctx))
		},
	}
	options.AddDateArgs(rm, do)
	base.AddOutputArg(rm, oo)
	cmd.AddCommand(rm)

	edit := &cobra.Command{
		Use:   "edit",
		Short: "Rewrite a day task's label and description",
		Long: base.Wrap80("Rewrite a day task in place. The task keeps its position " +
			"in the day's list and keeps its notification; only 'day notify' " +
			"replaces that."),
		Example: `
taskbook day edit --date 2026-09-01 "dentist" "dentist appointment" -d "bring referral"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 2 {
				return errors.New("requires the old and the new label")
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
			s := day.Edit{
				Date:        do.Date,
				OldLabel:    args[0],
				NewLabel:    args[1],
				Description: to.Description,
				Service:     svc,
			}
			return oo.HandleError(s.Do(ctx))
		},
	}
	options.AddDateArgs(edit, do)
	options.AddDescriptionArgs(edit, to)
	base.AddOutputArg(edit, oo)
	cmd.AddCommand(edit)

	notifyCmd := &cobra.Command{
		Use:   "notify",
		Short: "Attach a lead-time notification to a day task",
		Example: `
taskbook day notify --date 2026-09-01 --lead 12h --at 2026-09-01T14:00:00Z dentist
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a task label")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			notification, err := do.GetNotification()
			if err != nil {
				return err
			}
			if notification == nil {
				return errors.New("requires --lead and --at")
			}
			svc, err := loadService(ctx)
			if err != nil {
				return err
			}
			s := day.Notify{
				Date:         do.Date,
				Label:        args[0],
				Notification: *notification,
				Service:      svc,
			}
			return oo.HandleError(s.Do(ctx))
		},
	}
	options.AddDateArgs(notifyCmd, do)
	options.AddNotifyArgs(notifyCmd, do)
	base.AddOutputArg(notifyCmd, oo)
	cmd.AddCommand(notifyCmd)

	get := &cobra.Command{
		Use:   "get",
		Short: "Show day tasks for a date, or every date",
		Example: `
taskbook day get --date 2026-09-01
taskbook day get --all
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			all, _ := cmd.Flags().GetBool("all")
			svc, err := loadService(ctx)
			if err != nil {
				return err
			}
			s := day.Get{
				Date:    do.Date,
				All:     all,
				Service: svc,
			}
			return oo.HandleError(s.Do(ctx))
		},
	}
	get.Flags().Bool("all", false, "Show every date with day tasks.")
	options.AddDateArgs(get, do)
	base.AddOutputArg(get, oo)
	cmd.AddCommand(get)

	topLevel.AddCommand(cmd)
}
