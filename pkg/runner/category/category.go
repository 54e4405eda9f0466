// Package category provides the runner logic for category operations.
package category

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/taskbook/pkg/app"
	"tableflip.dev/taskbook/pkg/printers"
	"tableflip.dev/taskbook/pkg/task"
)

// Add creates a new category. New categories sort first.
type Add struct {
	Name    string
	ShowID  bool
	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add category, no service")
	}

	c := n.Service.Categories.AddCategory(n.Name)
	n.Service.Flush()

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Category(c)
	return nil
}

// Remove deletes a category and its tasks. Alarm entries for those tasks are
// not cascaded; the alarm store's lifecycle is independent.
type Remove struct {
	Ref     string
	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove category, no service")
	}

	c, ok := n.Service.ResolveCategory(n.Ref)
	if !ok {
		return fmt.Errorf("no category %q", n.Ref)
	}
	n.Service.Categories.RemoveCategory(c.ID)
	n.Service.Flush()

	pp := printers.PrettyPrint{}
	fmt.Println("")
	for _, c := range n.Service.Categories.Categories() {
		pp.Category(c)
	}
	return nil
}

// List prints every category with its tasks, in display order.
type List struct {
	ShowID  bool
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list categories, no service")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	for _, c := range n.Service.Categories.Categories() {
		pp.Category(c)
	}
	return nil
}

// Order overwrites the top-level category order with the complete new
// sequence of references.
type Order struct {
	Refs    []string
	Service *app.Service
}

func (n *Order) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not reorder categories, no service")
	}

	current := n.Service.Categories.Categories()
	if len(n.Refs) != len(current) {
		return fmt.Errorf("reorder needs all %d categories, got %d", len(current), len(n.Refs))
	}

	next := make([]task.Category, 0, len(n.Refs))
	seen := make(map[string]bool, len(n.Refs))
	for _, ref := range n.Refs {
		c, ok := n.Service.ResolveCategory(ref)
		if !ok {
			return fmt.Errorf("no category %q", ref)
		}
		if seen[c.ID] {
			return fmt.Errorf("category %q listed twice", ref)
		}
		seen[c.ID] = true
		next = append(next, c)
	}

	n.Service.Categories.SetOrder(next)
	n.Service.Flush()

	pp := printers.PrettyPrint{}
	fmt.Println("")
	for _, c := range n.Service.Categories.Categories() {
		pp.Category(c)
	}
	return nil
}
