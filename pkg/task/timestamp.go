package task

import (
	"encoding/json"
	"fmt"
	"time"
)

// ParseTime parses the RFC3339 wire form used for notification times.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp persists as an RFC3339 string, with the zero value encoding as "".
type Timestamp struct {
	time.Time
}

func (t *Timestamp) MarshalJSON() ([]byte, error) {
	if t == nil || t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t)), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}
