package task

import (
	"fmt"
	"strings"
	"time"
)

// LayoutISO is the calendar date form used to key day-task buckets.
const LayoutISO = "2006-01-02"

// DayTask is an ad-hoc, calendar-date-scoped task. Unlike a category task it
// has no generated id: the label is the identity within its date bucket, so
// two day tasks on the same date cannot share a label. This asymmetry with
// the id-keyed category tasks is part of the product design.
type DayTask struct {
	Label        string        `json:"task"`
	Description  string        `json:"description,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
}

// Notification is a lead-time reminder attached to a day task: an absolute
// target time and how far ahead of it the reminder should fire. At most one
// per day task.
type Notification struct {
	Lead LeadTime  `json:"type"`
	Time Timestamp `json:"time"`
}

// Clone returns a copy whose notification does not share storage.
func (d DayTask) Clone() DayTask {
	out := d
	if d.Notification != nil {
		n := *d.Notification
		out.Notification = &n
	}
	return out
}

// LeadTime is the fixed offset a notification fires ahead of its target.
type LeadTime string

const (
	Lead12Hours LeadTime = "12 Hours"
	Lead1Day    LeadTime = "1 Day"
)

func (l LeadTime) Valid() bool {
	return l == Lead12Hours || l == Lead1Day
}

// Offset is the duration subtracted from the target time to get the trigger.
func (l LeadTime) Offset() time.Duration {
	switch l {
	case Lead12Hours:
		return 12 * time.Hour
	case Lead1Day:
		return 24 * time.Hour
	}
	return 0
}

var leadAliases = map[string]LeadTime{
	"12 hours": Lead12Hours,
	"12h":      Lead12Hours,
	"12hr":     Lead12Hours,
	"1 day":    Lead1Day,
	"1d":       Lead1Day,
	"24h":      Lead1Day,
	"day":      Lead1Day,
}

// ParseLeadTime maps user input to a lead kind.
func ParseLeadTime(alias string) (LeadTime, error) {
	l, ok := leadAliases[strings.ToLower(strings.TrimSpace(alias))]
	if !ok {
		return "", fmt.Errorf("unknown lead time %q, want '12 Hours' or '1 Day'", alias)
	}
	return l, nil
}
