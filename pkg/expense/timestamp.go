package expense

import (
	"encoding/json"
	"fmt"
	"time"
)

func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp wraps time.Time so expense dates marshal as the ISO-8601
// strings the API produces.
type Timestamp struct {
	time.Time
}

func (t Timestamp) SameDay(then time.Time) bool {
	if t.Local().Day() == then.Local().Day() &&
		t.Local().Month() == then.Local().Month() &&
		t.Local().Year() == then.Local().Year() {
		return true
	}
	return false
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
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}

// Clock renders the local wall-clock time the way the views show it.
func (t Timestamp) Clock() string {
	return t.Local().Format("15:04")
}

// DayHeading renders the local day the way grouped views title it,
// e.g. "Monday, January 2".
func (t Timestamp) DayHeading() string {
	return t.Local().Format("Monday, January 2")
}

// DayKey is the local calendar day, used for grouping.
func (t Timestamp) DayKey() string {
	return t.Local().Format("2006-01-02")
}
