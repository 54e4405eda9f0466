package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/taskbook/pkg/commands/options"
	"tableflip.dev/taskbook/pkg/runner/tasks"
)

func addTask(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	to := &options.TaskOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks inside a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a category",
		Example: `
taskbook task add -c Work write the report
taskbook task add -c Work -p II file expenses
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task subject")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			priority, err := to.GetPriority()
			if err != nil {
				return err
			}
			svc, err := loadService(ctx)
			if err != nil {
				return err
			}
			s := tasks.Add{
				Category:    co.Category,
				Subject:     strings.Join(args, " "),
				Description: to.Description,
				Priority:    priority,
				ShowID:      io.ShowID,
				Service:     svc,
			}
			return oo.HandleError(s.Do(ctx))
		},
	}
	options.AddCategoryArgs(add, co)
	options.AddDescriptionArgs(add, to)
	options.AddPriorityArgs(add, to)
	options.AddShowIDArgs(add, io)
	base.AddOutputArg(add, oo)
	cmd.AddCommand(add)

	rm := &cobra.Command{
		Use:   "rm",
		Short: "Remove a task from a category",
		Example: `
taskbook task rm -c Work "write the report"
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
			s := tasks.Remove{
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

	done := &cobra.Command{
		Use:   "done",
		Short: "Mark a task done",
		Example: `
taskbook task done -c Work "write the report"
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
			s := tasks.Done{
				Category: co.Category,
				Ref:      args[0],
				Service:  svc,
			}
			return oo.HandleError(s.Do(ctx))
		},
	}
	options.AddCategoryArgs(done, co)
	base.AddOutputArg(done, oo)
	cmd.AddCommand(done)

	undo := &cobra.Command{
		Use:   "undo",
		Short: "Mark a task not done",
		Example: `
taskbook task undo -c Work "write the report"
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
			s := tasks.Done{
				Category: co.Category,
				Ref:      args[0],
				Undo:     true,
				Service:  svc,
			}
			return oo.HandleError(s.Do(ctx))
		},
	}
	options.AddCategoryArgs(undo, co)
	base.AddOutputArg(undo, oo)
	cmd.AddCommand(undo)

	edit := &cobra.Command{
		Use:   "edit",
		Short: "Edit a task's subject, description, or priority",
		Example: `
taskbook task edit -c Work "write the report" --subject "write the Q3 report"
taskbook task edit -c Work "write the report" -p I
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
			subject, _ := cmd.Flags().GetString("subject")
			priority, err := to.GetPriority()
			if err != nil {
				return err
			}
			svc, err := loadService(ctx)
			if err != nil {
				return err
			}
			s := tasks.Edit{
				Category:    co.Category,
				Ref:         args[0],
				Subject:     subject,
				Description: to.Description,
				Priority:    priority,
				HasPriority: cmd.Flags().Changed("priority"),
				Service:     svc,
			}
			return oo.HandleError(s.Do(ctx))
		},
	}
	edit.Flags().String("subject", "", "New subject for the task.")
	options.AddCategoryArgs(edit, co)
	options.AddDescriptionArgs(edit, to)
	options.AddPriorityArgs(edit, to)
	base.AddOutputArg(edit, oo)
	cmd.AddCommand(edit)

	order := &cobra.Command{
		Use:   "order",
		Short: "Overwrite a category's task order",
		Long: base.Wrap80("Overwrite one category's task order with the complete new " +
			"sequence, drag-and-drop style: the permutation replaces the old order " +
			"entirely."),
		Example: `
taskbook task order -c Work "file expenses" "write the report"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires the complete new task order")
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
			s := tasks.Order{
				Category: co.Category,
				Refs:     args,
				Service:  svc,
			}
			return oo.HandleError(s.Do(ctx))
		},
	}
	options.AddCategoryArgs(order, co)
	base.AddOutputArg(order, oo)
	cmd.AddCommand(order)

	topLevel.AddCommand(cmd)
}
