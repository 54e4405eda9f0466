package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/taskbook/pkg/task"
)

// PrettyPrint renders categories and their tasks for the terminal.
type PrettyPrint struct {
	ShowID bool
}

var (
	// a uuid plus two trailing spaces
	spacing = strings.Repeat(" ", len("9f2c6a1e-95b0-4a7e-9d1c-0f6a31d24c7e  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" task")
	default:
		_, _ = c.Println(" tasks")
	}
}

// Category prints a category heading followed by its tasks in order.
func (pp *PrettyPrint) Category(c task.Category) {
	pp.TitleWithCount(c.Name, len(c.Tasks))
	pp.Tasks(c.Tasks...)
}

// Tasks prints task rows, striking through completed subjects.
func (pp *PrettyPrint) Tasks(tasks ...task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	p := color.New(color.FgHiYellow)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, item := range tasks {
		if pp.ShowID {
			_, _ = y.Print(item.ID)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(item.ID)))
		}

		mark := "·"
		line := t
		if item.Done {
			mark = "✔"
			line = done
		}
		_, _ = line.Printf("%s %s", mark, item.Subject)
		if item.Priority != task.PriorityNone {
			_, _ = p.Printf("  [%s]", item.Priority)
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}
