// Package timeline derives the hour-bucketed view of alarmed tasks. The
// projection is pure: it takes snapshots of the category collection and the
// alarm mapping as plain arguments and is recomputed on every change, never
// persisted.
package timeline

import (
	"fmt"
	"strings"

	"tableflip.dev/taskbook/pkg/task"
)

// Entry is a task placed on the timeline, enriched with its owning
// category's name and the raw alarm string that put it there.
type Entry struct {
	task.Task
	CategoryName string
	AlarmTime    string
}

// Timeline is the derived 24-bucket view. Buckets with no tasks still exist;
// hiding them is a rendering concern.
type Timeline struct {
	buckets map[string][]Entry
}

// Hours lists the 24 fixed bucket keys, "00:00" through "23:00".
func Hours() []string {
	hours := make([]string, 24)
	for h := range hours {
		hours[h] = fmt.Sprintf("%02d:00", h)
	}
	return hours
}

// Project flattens all tasks across categories in order, tagging each with
// its category name, and buckets every task that has an alarm entry by the
// alarm's hour component. Flatten order (category order, then task order
// within a category) is preserved within each bucket.
func Project(categories []task.Category, alarms map[string]string) Timeline {
	buckets := make(map[string][]Entry, 24)
	for _, hour := range Hours() {
		buckets[hour] = []Entry{}
	}

	for _, c := range categories {
		for _, t := range c.Tasks {
			at, ok := alarms[t.ID]
			if !ok {
				continue
			}
			hour := bucketFor(at)
			if _, ok := buckets[hour]; !ok {
				// The hour text names none of the 24 fixed buckets; the
				// task stays off the timeline rather than growing a 25th.
				continue
			}
			buckets[hour] = append(buckets[hour], Entry{
				Task:         t,
				CategoryName: c.Name,
				AlarmTime:    at,
			})
		}
	}

	return Timeline{buckets: buckets}
}

// bucketFor reduces an alarm string to its bucket key: the text before the
// first ':', zero-padded. The alarm carries no date and, in 12-hour locales,
// no meridiem correction either; "02:30 PM" lands in "02:00". That is the
// stored format's limitation, reproduced faithfully.
func bucketFor(alarm string) string {
	hour, _, _ := strings.Cut(alarm, ":")
	if len(hour) == 1 {
		hour = "0" + hour
	}
	return hour + ":00"
}

// Bucket returns the entries for an hour key such as "09:00".
func (tl Timeline) Bucket(hour string) []Entry {
	return tl.buckets[hour]
}

// Nonempty returns, in hour order, the bucket keys that hold at least one
// entry.
func (tl Timeline) Nonempty() []string {
	out := make([]string, 0, 24)
	for _, hour := range Hours() {
		if len(tl.buckets[hour]) > 0 {
			out = append(out, hour)
		}
	}
	return out
}

// Len is the total number of placed entries.
func (tl Timeline) Len() int {
	n := 0
	for _, entries := range tl.buckets {
		n += len(entries)
	}
	return n
}
