// Package tasks provides the runner logic for category-task operations.
package tasks

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/taskbook/pkg/app"
	"tableflip.dev/taskbook/pkg/printers"
	"tableflip.dev/taskbook/pkg/task"
)

// findTask resolves a task inside a category by id or, failing that, by
// exact subject.
func findTask(c task.Category, ref string) (task.Task, bool) {
	for _, t := range c.Tasks {
		if t.ID == ref {
			return t, true
		}
	}
	for _, t := range c.Tasks {
		if t.Subject == ref {
			return t, true
		}
	}
	return task.Task{}, false
}

// Add creates a task at the head of a category's list.
type Add struct {
	Category    string
	Subject     string
	Description string
	Priority    task.Priority
	ShowID      bool
	Service     *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add task, no service")
	}

	c, ok := n.Service.ResolveCategory(n.Category)
	if !ok {
		return fmt.Errorf("no category %q", n.Category)
	}

	t := task.New(n.Subject)
	t.Description = n.Description
	t.Priority = n.Priority
	n.Service.Categories.AddTask(c.ID, t)
	n.Service.Flush()

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	if c, ok := n.Service.Categories.Find(c.ID); ok {
		pp.Category(c)
	}
	return nil
}

// Remove deletes a task from its category. A scheduled notification for the
// task is not retracted.
type Remove struct {
	Category string
	Ref      string
	Service  *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove task, no service")
	}

	c, ok := n.Service.ResolveCategory(n.Category)
	if !ok {
		return fmt.Errorf("no category %q", n.Category)
	}
	t, ok := findTask(c, n.Ref)
	if !ok {
		return fmt.Errorf("no task %q in %q", n.Ref, c.Name)
	}

	n.Service.Categories.RemoveTask(c.ID, t.ID)
	n.Service.Flush()

	pp := printers.PrettyPrint{}
	fmt.Println("")
	if c, ok := n.Service.Categories.Find(c.ID); ok {
		pp.Category(c)
	}
	return nil
}

// Done toggles completion. The runner computes the new done value and hands
// the store a pure replacement; sibling tasks and order stay untouched.
type Done struct {
	Category string
	Ref      string
	Undo     bool
	Service  *app.Service
}

func (n *Done) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not toggle task, no service")
	}

	c, ok := n.Service.ResolveCategory(n.Category)
	if !ok {
		return fmt.Errorf("no category %q", n.Category)
	}
	t, ok := findTask(c, n.Ref)
	if !ok {
		return fmt.Errorf("no task %q in %q", n.Ref, c.Name)
	}

	t.Done = !n.Undo
	n.Service.Categories.ToggleTask(c.ID, t)
	n.Service.Flush()

	pp := printers.PrettyPrint{}
	fmt.Println("")
	if c, ok := n.Service.Categories.Find(c.ID); ok {
		pp.Category(c)
	}
	return nil
}

// Edit rewrites a task's subject, description, or priority by replacement.
type Edit struct {
	Category    string
	Ref         string
	Subject     string
	Description string
	Priority    task.Priority
	HasPriority bool
	Service     *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit task, no service")
	}

	c, ok := n.Service.ResolveCategory(n.Category)
	if !ok {
		return fmt.Errorf("no category %q", n.Category)
	}
	t, ok := findTask(c, n.Ref)
	if !ok {
		return fmt.Errorf("no task %q in %q", n.Ref, c.Name)
	}

	if n.Subject != "" {
		t.Subject = n.Subject
	}
	if n.Description != "" {
		t.Description = n.Description
	}
	if n.HasPriority {
		t.Priority = n.Priority
	}
	n.Service.Categories.UpdateTask(c.ID, t)
	n.Service.Flush()

	pp := printers.PrettyPrint{}
	fmt.Println("")
	if c, ok := n.Service.Categories.Find(c.ID); ok {
		pp.Category(c)
	}
	return nil
}

// Order overwrites one category's task order with the complete new sequence
// of references, drag-and-drop style: the permutation is authoritative.
type Order struct {
	Category string
	Refs     []string
	Service  *app.Service
}

func (n *Order) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not reorder tasks, no service")
	}

	c, ok := n.Service.ResolveCategory(n.Category)
	if !ok {
		return fmt.Errorf("no category %q", n.Category)
	}
	if len(n.Refs) != len(c.Tasks) {
		return fmt.Errorf("reorder needs all %d tasks, got %d", len(c.Tasks), len(n.Refs))
	}

	next := make([]task.Task, 0, len(n.Refs))
	seen := make(map[string]bool, len(n.Refs))
	for _, ref := range n.Refs {
		t, ok := findTask(c, ref)
		if !ok {
			return fmt.Errorf("no task %q in %q", ref, c.Name)
		}
		if seen[t.ID] {
			return fmt.Errorf("task %q listed twice", ref)
		}
		seen[t.ID] = true
		next = append(next, t)
	}

	n.Service.Categories.SetTaskOrder(c.ID, next)
	n.Service.Flush()

	pp := printers.PrettyPrint{}
	fmt.Println("")
	if c, ok := n.Service.Categories.Find(c.ID); ok {
		pp.Category(c)
	}
	return nil
}
