package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/taskbook/pkg/task"
)

type fakeRegistrar struct {
	requests []Request
	err      error
}

func (f *fakeRegistrar) ScheduleOneShot(_ context.Context, req Request) error {
	f.requests = append(f.requests, req)
	return f.err
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
}

func TestScheduleAbsolute(t *testing.T) {
	reg := &fakeRegistrar{}
	s := NewScheduler(reg, nil)
	s.Now = fixedNow

	at := fixedNow().Add(2 * time.Hour)
	s.ScheduleAbsolute(context.Background(), at, "Alarm", "It's time for your task: write the report")

	if len(reg.requests) != 1 {
		t.Fatalf("got %d registrations, want 1", len(reg.requests))
	}
	got := reg.requests[0]
	if got.Title != "Alarm" || !got.TriggerAt.Equal(at) {
		t.Errorf("registered %+v", got)
	}
}

func TestScheduleLeadTime(t *testing.T) {
	tests := []struct {
		name   string
		target time.Time
		lead   task.LeadTime
		want   int
	}{
		{
			name:   "future trigger registers",
			target: fixedNow().Add(48 * time.Hour),
			lead:   task.Lead1Day,
			want:   1,
		},
		{
			// Target is an hour out but the lead reaches a day back,
			// putting the trigger in the past. Dropped, not fired late.
			name:   "past trigger drops",
			target: fixedNow().Add(time.Hour),
			lead:   task.Lead1Day,
			want:   0,
		},
		{
			name:   "trigger exactly now drops",
			target: fixedNow().Add(12 * time.Hour),
			lead:   task.Lead12Hours,
			want:   0,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reg := &fakeRegistrar{}
			s := NewScheduler(reg, nil)
			s.Now = fixedNow

			s.ScheduleLeadTime(context.Background(), tc.target, tc.lead, "Reminder", "body")

			if len(reg.requests) != tc.want {
				t.Fatalf("got %d registrations, want %d", len(reg.requests), tc.want)
			}
			if tc.want == 1 {
				wantAt := tc.target.Add(-tc.lead.Offset())
				if !reg.requests[0].TriggerAt.Equal(wantAt) {
					t.Errorf("trigger = %v, want %v", reg.requests[0].TriggerAt, wantAt)
				}
			}
		})
	}
}

func TestRegistrarErrorIsSwallowed(t *testing.T) {
	reg := &fakeRegistrar{err: errors.New("host said no")}
	s := NewScheduler(reg, nil)
	s.Now = fixedNow

	// Must not panic or propagate; the failure only reaches the log.
	s.ScheduleAbsolute(context.Background(), fixedNow().Add(time.Hour), "Alarm", "body")

	if len(reg.requests) != 1 {
		t.Fatal("the attempt should still have been made")
	}
}

func TestNilRegistrarIsNoop(t *testing.T) {
	s := NewScheduler(nil, nil)
	s.Now = fixedNow
	s.ScheduleAbsolute(context.Background(), fixedNow().Add(time.Hour), "Alarm", "body")
}
