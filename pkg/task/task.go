package task

import "github.com/google/uuid"

// Task is a category-scoped unit of work. Tasks are id-keyed: every task
// carries an opaque id minted at creation and all store operations locate
// tasks by that id. Day tasks are deliberately different, see daytask.go.
type Task struct {
	ID          string   `json:"id"`
	Subject     string   `json:"subject"`
	Description string   `json:"description,omitempty"`
	Done        bool     `json:"done"`
	Priority    Priority `json:"priorityLevel,omitempty"`
}

// Category is a named grouping that owns an ordered list of tasks. The order
// is significant and user-controlled: a drag-and-drop reorder replaces the
// whole list with a new permutation.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Tasks []Task `json:"taskList"`
}

// New creates a task with a fresh id. The subject may still be empty while
// the user is typing; committing it is an update like any other.
func New(subject string) Task {
	return Task{ID: uuid.NewString(), Subject: subject}
}

// NewCategory creates an empty category with a fresh id.
func NewCategory(name string) Category {
	return Category{ID: uuid.NewString(), Name: name, Tasks: []Task{}}
}

// Clone returns a copy whose task list does not share backing storage.
func (c Category) Clone() Category {
	out := c
	out.Tasks = make([]Task, len(c.Tasks))
	copy(out.Tasks, c.Tasks)
	return out
}
