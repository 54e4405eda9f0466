package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"tableflip.dev/taskbook/pkg/kv"
	"tableflip.dev/taskbook/pkg/notify"
	"tableflip.dev/taskbook/pkg/task"
)

// DayTaskStore owns the calendar-indexed map from ISO date to an ordered
// list of ad-hoc day tasks. Day tasks are label-keyed within their bucket;
// the persisted form is an array of [date, tasks] pairs because the keyed
// map is not natively serializable in the original layout.
type DayTaskStore struct {
	mu   sync.Mutex
	days map[string][]task.DayTask

	kv    kv.Store
	w     *writer
	sched *notify.Scheduler
	log   *log.Logger
}

func NewDayTaskStore(s kv.Store, sched *notify.Scheduler, logger *log.Logger) *DayTaskStore {
	if logger == nil {
		logger = log.Default()
	}
	return &DayTaskStore{
		days:  map[string][]task.DayTask{},
		kv:    s,
		w:     newWriter(kv.KeyDayTasks, s, logger),
		sched: sched,
		log:   logger,
	}
}

// Initialize reconstructs the date-keyed map from the persisted pair
// sequence, seeding empty on absence or parse failure.
func (ds *DayTaskStore) Initialize(ctx context.Context) {
	var days map[string][]task.DayTask
	raw, ok, err := ds.kv.Get(ctx, kv.KeyDayTasks)
	switch {
	case err != nil:
		ds.log.Warn("load day tasks, seeding empty", "err", err)
	case ok:
		days, err = decodeDays([]byte(raw))
		if err != nil {
			ds.log.Warn("malformed day-task blob, seeding empty", "err", err)
			days = nil
		}
	}
	if days == nil {
		days = map[string][]task.DayTask{}
	}

	ds.mu.Lock()
	ds.days = days
	ds.mu.Unlock()
}

// Add appends the day task to its date bucket. Day tasks accumulate in
// creation order, unlike the prepend-ordered category lists. A supplied
// notification is scheduled immediately.
func (ds *DayTaskStore) Add(date string, dt task.DayTask) {
	ds.mu.Lock()
	ds.days[date] = append(ds.days[date], dt.Clone())
	ds.persist()
	ds.mu.Unlock()

	if dt.Notification != nil {
		ds.schedule(date, dt.Label, *dt.Notification)
	}
}

// Remove filters the bucket by label match; unknown labels are a no-op. An
// already-scheduled notification for the task is not retracted.
func (ds *DayTaskStore) Remove(date, label string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	bucket := ds.days[date]
	kept := make([]task.DayTask, 0, len(bucket))
	for _, dt := range bucket {
		if dt.Label != label {
			kept = append(kept, dt)
		}
	}
	ds.days[date] = kept
	ds.persist()
}

// Update locates by oldLabel and rewrites label and description in place,
// preserving the task's position. An attached notification stays attached
// through text edits; SetNotification is the only way to replace it.
func (ds *DayTaskStore) Update(date, oldLabel, newLabel, newDescription string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	bucket := ds.days[date]
	for i := range bucket {
		if bucket[i].Label == oldLabel {
			bucket[i].Label = newLabel
			bucket[i].Description = newDescription
			break
		}
	}
	ds.persist()
}

// SetNotification attaches or overwrites the lead-time notification on the
// labeled task and schedules it. Unknown labels are a no-op.
func (ds *DayTaskStore) SetNotification(date, label string, n task.Notification) {
	found := false
	ds.mu.Lock()
	bucket := ds.days[date]
	for i := range bucket {
		if bucket[i].Label == label {
			cp := n
			bucket[i].Notification = &cp
			found = true
			break
		}
	}
	ds.persist()
	ds.mu.Unlock()

	if found {
		ds.schedule(date, label, n)
	}
}

// Tasks returns a snapshot of the date's bucket.
func (ds *DayTaskStore) Tasks(date string) []task.DayTask {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return cloneBucket(ds.days[date])
}

// All returns a snapshot of the whole calendar map.
func (ds *DayTaskStore) All() map[string][]task.DayTask {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	out := make(map[string][]task.DayTask, len(ds.days))
	for date, bucket := range ds.days {
		out[date] = cloneBucket(bucket)
	}
	return out
}

// Flush drains pending persistence writes.
func (ds *DayTaskStore) Flush() {
	ds.w.flush()
}

func (ds *DayTaskStore) schedule(date, label string, n task.Notification) {
	if ds.sched == nil {
		return
	}
	body := fmt.Sprintf("%s is coming up on %s", label, date)
	ds.sched.ScheduleLeadTime(context.Background(), n.Time.Time, n.Lead, "Reminder", body)
}

// persist flattens the map back to sorted [date, tasks] pairs. Callers hold
// the mutex.
func (ds *DayTaskStore) persist() {
	data, err := encodeDays(ds.days)
	if err != nil {
		ds.log.Error("marshal day tasks", "err", err)
		return
	}
	ds.w.enqueue(string(data))
}

func cloneBucket(bucket []task.DayTask) []task.DayTask {
	out := make([]task.DayTask, len(bucket))
	for i, dt := range bucket {
		out[i] = dt.Clone()
	}
	return out
}

// dayPair is the wire form of one calendar bucket: a two-element JSON array
// of date string and task list.
type dayPair struct {
	Date  string
	Tasks []task.DayTask
}

func (p dayPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.Date, p.Tasks})
}

func (p *dayPair) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("day pair: want 2 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &p.Date); err != nil {
		return err
	}
	return json.Unmarshal(raw[1], &p.Tasks)
}

func encodeDays(days map[string][]task.DayTask) ([]byte, error) {
	pairs := make([]dayPair, 0, len(days))
	for date, tasks := range days {
		pairs = append(pairs, dayPair{Date: date, Tasks: tasks})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Date < pairs[j].Date })
	return json.Marshal(pairs)
}

func decodeDays(data []byte) (map[string][]task.DayTask, error) {
	var pairs []dayPair
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, err
	}
	days := make(map[string][]task.DayTask, len(pairs))
	for _, p := range pairs {
		days[p.Date] = p.Tasks
	}
	return days, nil
}
