package store

import (
	"context"
	"testing"

	"tableflip.dev/taskbook/pkg/kv"
)

func TestAlarmSetGetDelete(t *testing.T) {
	as := NewAlarmStore(kv.NewMemory(), nil)

	if _, ok := as.Get("t1"); ok {
		t.Fatal("fresh store should hold no alarms")
	}

	as.Set("t1", "09:00")
	if got, ok := as.Get("t1"); !ok || got != "09:00" {
		t.Errorf("Get = %q %t, want 09:00", got, ok)
	}

	// Upsert replaces.
	as.Set("t1", "14:30")
	if got, _ := as.Get("t1"); got != "14:30" {
		t.Errorf("Get after upsert = %q, want 14:30", got)
	}

	as.Delete("t1")
	if _, ok := as.Get("t1"); ok {
		t.Error("Delete should remove the entry, not blank it")
	}

	// Deleting an absent key is a no-op.
	as.Delete("t1")
}

func TestAlarmMapIsSparse(t *testing.T) {
	as := NewAlarmStore(kv.NewMemory(), nil)
	as.Set("t1", "09:00")
	as.Set("t2", "10:00")
	as.Delete("t1")

	times := as.Times()
	if len(times) != 1 {
		t.Fatalf("got %d entries, want only the live one", len(times))
	}
	if _, ok := times["t1"]; ok {
		t.Error("deleted id should be absent, not an empty string")
	}
}

func TestAlarmTimesSnapshotIsDetached(t *testing.T) {
	as := NewAlarmStore(kv.NewMemory(), nil)
	as.Set("t1", "09:00")

	snap := as.Times()
	snap["t1"] = "mutated"
	snap["t2"] = "injected"

	if got, _ := as.Get("t1"); got != "09:00" {
		t.Error("mutating a snapshot leaked into the store")
	}
	if _, ok := as.Get("t2"); ok {
		t.Error("mutating a snapshot leaked into the store")
	}
}

func TestAlarmInitializeRoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()

	as := NewAlarmStore(mem, nil)
	as.Initialize(ctx)
	as.Set("t1", "09:00")
	as.Flush()

	reloaded := NewAlarmStore(mem, nil)
	reloaded.Initialize(ctx)
	if got, ok := reloaded.Get("t1"); !ok || got != "09:00" {
		t.Errorf("alarm did not survive the reload: %q %t", got, ok)
	}
}

// Removing a category never touches the alarm key; entries for its task ids
// stay behind and simply never match anything again.
func TestRemoveCategoryLeavesAlarms(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()

	cs := NewCategoryStore(mem, nil)
	as := NewAlarmStore(mem, nil)
	cs.Initialize(ctx)
	as.Initialize(ctx)

	c := cs.AddCategory("Work")
	as.Set("task-in-work", "09:00")

	cs.RemoveCategory(c.ID)
	cs.Flush()
	as.Flush()

	if _, ok := as.Get("task-in-work"); !ok {
		t.Error("category removal must not cascade into the alarm store")
	}
}
