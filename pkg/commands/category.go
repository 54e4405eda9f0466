package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/taskbook/pkg/commands/options"
	"tableflip.dev/taskbook/pkg/runner/category"
)

func addCategory(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage task categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a category",
		Example: `
taskbook category add Work
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a category name")
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
			s := category.Add{
				Name:    strings.Join(args, " "),
				ShowID:  io.ShowID,
				Service: svc,
			}
			return oo.HandleError(s.Do(ctx))
		},
	}
	options.AddShowIDArgs(add, io)
	base.AddOutputArg(add, oo)
	cmd.AddCommand(add)

	rm := &cobra.Command{
		Use:   "rm",
		Short: "Remove a category and its tasks",
		Long: base.Wrap80("Remove a category and its tasks. Alarm entries for those " +
			"tasks are kept; the alarm store has an independent lifecycle."),
		Example: `
taskbook category rm Work
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a category name or id")
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
			s := category.Remove{
				Ref:     args[0],
				Service: svc,
			}
			return oo.HandleError(s.Do(ctx))
		},
	}
	base.AddOutputArg(rm, oo)
	cmd.AddCommand(rm)

	ls := &cobra.Command{
		Use:   "ls",
		Short: "List categories with their tasks",
		Example: `
taskbook category ls
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, err := loadService(ctx)
			if err != nil {
				return err
			}
			s := category.List{
				ShowID:  io.ShowID,
				Service: svc,
			}
			return oo.HandleError(s.Do(ctx))
		},
	}
	options.AddShowIDArgs(ls, io)
	base.AddOutputArg(ls, oo)
	cmd.AddCommand(ls)

	order := &cobra.Command{
		Use:   "order",
		Short: "Overwrite the category order",
		Long: base.Wrap80("Overwrite the top-level category order. The full new " +
			"sequence is required; there are no partial moves."),
		Example: `
taskbook category order Home Work Errands
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires the complete new category order")
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
			s := category.Order{
				Refs:    args,
				Service: svc,
			}
			return oo.HandleError(s.Do(ctx))
		},
	}
	base.AddOutputArg(order, oo)
	cmd.AddCommand(order)

	topLevel.AddCommand(cmd)
}
