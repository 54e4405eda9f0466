package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/taskbook/pkg/app"
	"tableflip.dev/taskbook/pkg/logger"
	"tableflip.dev/taskbook/pkg/notify"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "taskbook",
		Short: base.Wrap80("Personal task organizer on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addCategory(topLevel)
	addTask(topLevel)
	addAlarm(topLevel)
	addDay(topLevel)
	addTimeline(topLevel)
	addVersion(topLevel)
}

// loadService opens the configured substrate and seeds every store from
// durable state. Each command invocation wires its own service, the same way
// each invocation opens its own persistence.
func loadService(ctx context.Context) (*app.Service, error) {
	svc, err := app.Load(nil, notify.LogRegistrar{Log: logger.Logger}, logger.Logger)
	if err != nil {
		return nil, err
	}
	svc.Initialize(ctx)
	return svc, nil
}
