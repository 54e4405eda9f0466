package store

import (
	"context"
	"testing"

	"tableflip.dev/taskbook/pkg/kv"
	"tableflip.dev/taskbook/pkg/task"
)

func TestAddCategoryPrepends(t *testing.T) {
	cs := NewCategoryStore(kv.NewMemory(), nil)
	cs.AddCategory("Work")
	cs.AddCategory("Home")

	got := cs.Categories()
	if len(got) != 2 {
		t.Fatalf("got %d categories, want 2", len(got))
	}
	if got[0].Name != "Home" || got[1].Name != "Work" {
		t.Errorf("order = [%s %s], want newest first", got[0].Name, got[1].Name)
	}
}

func TestAddTaskPrepends(t *testing.T) {
	cs := NewCategoryStore(kv.NewMemory(), nil)
	c := cs.AddCategory("Work")
	cs.AddTask(c.ID, task.New("first"))
	cs.AddTask(c.ID, task.New("second"))

	got, ok := cs.Find(c.ID)
	if !ok {
		t.Fatal("category disappeared")
	}
	if len(got.Tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(got.Tasks))
	}
	if got.Tasks[0].Subject != "second" || got.Tasks[1].Subject != "first" {
		t.Errorf("order = [%s %s], want newest first", got.Tasks[0].Subject, got.Tasks[1].Subject)
	}
}

func TestRemoveCategory(t *testing.T) {
	cs := NewCategoryStore(kv.NewMemory(), nil)
	keep := cs.AddCategory("Keep")
	drop := cs.AddCategory("Drop")

	cs.RemoveCategory(drop.ID)

	got := cs.Categories()
	if len(got) != 1 || got[0].ID != keep.ID {
		t.Fatalf("after remove got %v, want only %q", got, keep.Name)
	}

	// Unknown ids are a no-op, not an error.
	cs.RemoveCategory("no-such-id")
	if len(cs.Categories()) != 1 {
		t.Error("removing an unknown id should change nothing")
	}
}

func TestToggleTaskIsPureReplacement(t *testing.T) {
	cs := NewCategoryStore(kv.NewMemory(), nil)
	c := cs.AddCategory("Work")
	a := task.New("a")
	b := task.New("b")
	cs.AddTask(c.ID, a)
	cs.AddTask(c.ID, b)

	a.Done = true
	cs.ToggleTask(c.ID, a)

	got, _ := cs.Find(c.ID)
	for _, tk := range got.Tasks {
		switch tk.ID {
		case a.ID:
			if !tk.Done {
				t.Error("toggled task should be done")
			}
		case b.ID:
			if tk.Done {
				t.Error("sibling task should be untouched")
			}
		}
	}
	if got.Tasks[0].ID != b.ID {
		t.Error("toggle should not move the task")
	}
}

func TestUpdateTaskUnknownIDIsNoop(t *testing.T) {
	cs := NewCategoryStore(kv.NewMemory(), nil)
	c := cs.AddCategory("Work")
	orig := task.New("keep me")
	cs.AddTask(c.ID, orig)

	ghost := task.New("ghost")
	cs.UpdateTask(c.ID, ghost)

	got, _ := cs.Find(c.ID)
	if len(got.Tasks) != 1 || got.Tasks[0].Subject != "keep me" {
		t.Errorf("updating an unknown id should change nothing, got %v", got.Tasks)
	}
}

func TestSetOrderOverwrites(t *testing.T) {
	cs := NewCategoryStore(kv.NewMemory(), nil)
	a := cs.AddCategory("A")
	b := cs.AddCategory("B")
	c := cs.AddCategory("C")

	cs.SetOrder([]task.Category{a, c, b})

	got := cs.Categories()
	want := []string{"A", "C", "B"}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("order[%d] = %s, want %s", i, got[i].Name, name)
		}
	}
}

func TestSetTaskOrderOverwrites(t *testing.T) {
	cs := NewCategoryStore(kv.NewMemory(), nil)
	c := cs.AddCategory("Work")
	a := task.New("a")
	b := task.New("b")
	cs.AddTask(c.ID, a)
	cs.AddTask(c.ID, b)

	cs.SetTaskOrder(c.ID, []task.Task{a, b})

	got, _ := cs.Find(c.ID)
	if got.Tasks[0].ID != a.ID || got.Tasks[1].ID != b.ID {
		t.Errorf("order = [%s %s], want the supplied permutation", got.Tasks[0].Subject, got.Tasks[1].Subject)
	}
}

func TestCategoriesSnapshotIsDetached(t *testing.T) {
	cs := NewCategoryStore(kv.NewMemory(), nil)
	c := cs.AddCategory("Work")
	cs.AddTask(c.ID, task.New("original"))

	snap := cs.Categories()
	snap[0].Tasks[0].Subject = "mutated"

	got, _ := cs.Find(c.ID)
	if got.Tasks[0].Subject != "original" {
		t.Error("mutating a snapshot leaked into the store")
	}
}

func TestInitializeRoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()

	cs := NewCategoryStore(mem, nil)
	cs.Initialize(ctx)
	c := cs.AddCategory("Work")
	tk := task.New("write the report")
	cs.AddTask(c.ID, tk)
	cs.Flush()

	// A fresh store over the same substrate sees the same state.
	reloaded := NewCategoryStore(mem, nil)
	reloaded.Initialize(ctx)
	got, ok := reloaded.Find(c.ID)
	if !ok {
		t.Fatal("category did not survive the reload")
	}
	if len(got.Tasks) != 1 || got.Tasks[0].ID != tk.ID {
		t.Errorf("tasks did not survive the reload: %v", got.Tasks)
	}
}

func TestInitializeMalformedBlobSeedsEmpty(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	if err := mem.Set(ctx, kv.KeyCategories, `{not json`); err != nil {
		t.Fatal(err)
	}

	cs := NewCategoryStore(mem, nil)
	cs.Initialize(ctx)

	if got := cs.Categories(); len(got) != 0 {
		t.Errorf("malformed blob should seed empty, got %v", got)
	}
}

func TestInitializeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()

	cs := NewCategoryStore(mem, nil)
	cs.Initialize(ctx)
	cs.AddCategory("Work")
	cs.Flush()

	cs.Initialize(ctx)
	if got := cs.Categories(); len(got) != 1 {
		t.Errorf("reinitialize should reload the persisted state, got %d categories", len(got))
	}
}
