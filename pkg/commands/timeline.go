package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/taskbook/pkg/runner/view"
)

func addTimeline(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show the hour-bucketed view of alarmed tasks",
		Long: base.Wrap80("Project every task that has an alarm into its hour " +
			"bucket, across all categories. The view is derived from the category " +
			"and alarm state on every render and is never stored."),
		Example: `
taskbook timeline
taskbook timeline --watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			watch, _ := cmd.Flags().GetBool("watch")
			svc, err := loadService(ctx)
			if err != nil {
				return err
			}
			s := view.Timeline{
				Watch:   watch,
				Service: svc,
			}
			return oo.HandleError(s.Do(ctx))
		},
	}
	cmd.Flags().Bool("watch", false, "Stay up and re-render on changes.")

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
