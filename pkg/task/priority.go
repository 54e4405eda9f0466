package task

import (
	"fmt"
	"strings"
)

// Priority is an Eisenhower-matrix quadrant, I through IV. The zero value
// means no priority has been assigned, which is also how it persists: the
// field is simply absent from the JSON.
type Priority string

const (
	PriorityNone Priority = ""
	PriorityI    Priority = "I"
	PriorityII   Priority = "II"
	PriorityIII  Priority = "III"
	PriorityIV   Priority = "IV"
)

// Priorities lists the assignable quadrants in order.
func Priorities() []Priority {
	return []Priority{PriorityI, PriorityII, PriorityIII, PriorityIV}
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityNone, PriorityI, PriorityII, PriorityIII, PriorityIV:
		return true
	}
	return false
}

func (p Priority) String() string {
	if p == PriorityNone {
		return "none"
	}
	return string(p)
}

var priorityAliases = map[string]Priority{
	"":     PriorityNone,
	"none": PriorityNone,
	"1":    PriorityI,
	"i":    PriorityI,
	"2":    PriorityII,
	"ii":   PriorityII,
	"3":    PriorityIII,
	"iii":  PriorityIII,
	"4":    PriorityIV,
	"iv":   PriorityIV,
}

// ParsePriority maps user input to a quadrant. Roman numerals and digits are
// both accepted, case-insensitively.
func ParsePriority(alias string) (Priority, error) {
	p, ok := priorityAliases[strings.ToLower(strings.TrimSpace(alias))]
	if !ok {
		return PriorityNone, fmt.Errorf("unknown priority %q, want I..IV", alias)
	}
	return p, nil
}
