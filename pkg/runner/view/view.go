// Package view provides the runner logic for the derived timeline view.
package view

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/taskbook/pkg/app"
	"tableflip.dev/taskbook/pkg/kv"
	"tableflip.dev/taskbook/pkg/printers"
)

// Timeline prints the 24-bucket projection of all alarmed tasks. With Watch
// set it stays up, reloading and re-rendering whenever another process
// writes the category or alarm key.
type Timeline struct {
	Watch   bool
	Service *app.Service
}

func (n *Timeline) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not project timeline, no service")
	}

	pp := printers.PrettyPrint{}
	render := func() {
		fmt.Println("")
		pp.Title("Timeline")
		pp.Timeline(n.Service.Timeline())
	}
	render()

	if !n.Watch {
		return nil
	}

	events, err := n.Service.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Key != kv.KeyCategories && ev.Key != kv.KeyAlarms {
				continue
			}
			n.Service.Initialize(ctx)
			render()
		}
	}
}
