package timeline

import (
	"testing"

	"tableflip.dev/taskbook/pkg/task"
)

func TestHours(t *testing.T) {
	hours := Hours()
	if len(hours) != 24 {
		t.Fatalf("got %d hours, want 24", len(hours))
	}
	if hours[0] != "00:00" || hours[9] != "09:00" || hours[23] != "23:00" {
		t.Errorf("hours = %v", hours)
	}
}

func TestProjectEmptyStillHas24Buckets(t *testing.T) {
	tl := Project(nil, nil)
	if tl.Len() != 0 {
		t.Errorf("empty projection should place nothing, got %d", tl.Len())
	}
	for _, hour := range Hours() {
		if tl.Bucket(hour) == nil {
			t.Errorf("bucket %s should exist even when empty", hour)
		}
	}
	if got := tl.Nonempty(); len(got) != 0 {
		t.Errorf("Nonempty = %v, want none", got)
	}
}

func TestProjectBucketsByHourComponent(t *testing.T) {
	tests := []struct {
		name  string
		alarm string
		want  string
	}{
		{name: "exact hour", alarm: "09:00", want: "09:00"},
		{name: "minutes ignored", alarm: "14:07", want: "14:00"},
		{name: "single digit padded", alarm: "9:30", want: "09:00"},
		{name: "midnight", alarm: "00:15", want: "00:00"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk := task.New("x")
			categories := []task.Category{{ID: "c1", Name: "Work", Tasks: []task.Task{tk}}}
			alarms := map[string]string{tk.ID: tc.alarm}

			tl := Project(categories, alarms)
			if got := tl.Bucket(tc.want); len(got) != 1 {
				t.Fatalf("bucket %s holds %d entries, want 1", tc.want, len(got))
			}
			if tl.Len() != 1 {
				t.Errorf("Len = %d, want exactly one placement", tl.Len())
			}
		})
	}
}

func TestProjectSkipsUnbucketableAlarms(t *testing.T) {
	tk := task.New("x")
	categories := []task.Category{{ID: "c1", Name: "Work", Tasks: []task.Task{tk}}}

	for _, alarm := range []string{"25:00", "noon", ""} {
		tl := Project(categories, map[string]string{tk.ID: alarm})
		if tl.Len() != 0 {
			t.Errorf("alarm %q should stay off the timeline, got %d entries", alarm, tl.Len())
		}
	}
}

func TestProjectSkipsTasksWithoutAlarms(t *testing.T) {
	alarmed := task.New("alarmed")
	silent := task.New("silent")
	categories := []task.Category{{ID: "c1", Name: "Work", Tasks: []task.Task{alarmed, silent}}}
	alarms := map[string]string{alarmed.ID: "09:00"}

	tl := Project(categories, alarms)
	if tl.Len() != 1 {
		t.Fatalf("Len = %d, want 1", tl.Len())
	}
	got := tl.Bucket("09:00")
	if got[0].ID != alarmed.ID {
		t.Errorf("placed %q, want the alarmed task", got[0].Subject)
	}
}

func TestProjectEnrichesWithCategoryNameAndAlarm(t *testing.T) {
	tk := task.New("write the report")
	tk.Done = true
	categories := []task.Category{{ID: "c1", Name: "Work", Tasks: []task.Task{tk}}}
	alarms := map[string]string{tk.ID: "09:00"}

	got := Project(categories, alarms).Bucket("09:00")
	if len(got) != 1 {
		t.Fatal("expected one entry")
	}
	e := got[0]
	if e.CategoryName != "Work" || e.AlarmTime != "09:00" || !e.Done {
		t.Errorf("entry = %+v", e)
	}
}

func TestProjectPreservesFlattenOrderWithinBucket(t *testing.T) {
	a1 := task.New("a1")
	a2 := task.New("a2")
	b1 := task.New("b1")
	categories := []task.Category{
		{ID: "a", Name: "A", Tasks: []task.Task{a1, a2}},
		{ID: "b", Name: "B", Tasks: []task.Task{b1}},
	}
	alarms := map[string]string{
		a1.ID: "09:00",
		a2.ID: "09:30",
		b1.ID: "09:45",
	}

	got := Project(categories, alarms).Bucket("09:00")
	if len(got) != 3 {
		t.Fatalf("bucket holds %d entries, want 3", len(got))
	}
	want := []string{"a1", "a2", "b1"}
	for i, subject := range want {
		if got[i].Subject != subject {
			t.Errorf("bucket[%d] = %s, want %s", i, got[i].Subject, subject)
		}
	}
}

func TestNonemptyInHourOrder(t *testing.T) {
	early := task.New("early")
	late := task.New("late")
	categories := []task.Category{{ID: "c", Name: "C", Tasks: []task.Task{late, early}}}
	alarms := map[string]string{early.ID: "08:00", late.ID: "21:00"}

	got := Project(categories, alarms).Nonempty()
	if len(got) != 2 || got[0] != "08:00" || got[1] != "21:00" {
		t.Errorf("Nonempty = %v, want [08:00 21:00]", got)
	}
}
