package expense

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampRoundTrip(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"2023-01-02T09:30:00Z"`), &ts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ts.UTC().Hour() != 9 || ts.UTC().Minute() != 30 {
		t.Fatalf("parsed wrong time: %v", ts.Time)
	}

	data, err := json.Marshal(&ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2023-01-02T09:30:00Z"` {
		t.Fatalf("marshalled %s", data)
	}
}

func TestTimestampRejectsNonTimeJSON(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`12345`), &ts); err == nil {
		t.Fatalf("expected error for numeric date")
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2023, time.January, 2, 8, 0, 0, 0, time.Local)
	evening := time.Date(2023, time.January, 2, 22, 0, 0, 0, time.Local)
	nextDay := time.Date(2023, time.January, 3, 8, 0, 0, 0, time.Local)

	ts := Timestamp{Time: morning}
	if !ts.SameDay(evening) {
		t.Fatalf("same calendar day should match")
	}
	if ts.SameDay(nextDay) {
		t.Fatalf("different day should not match")
	}
}

func TestDayFormatting(t *testing.T) {
	ts := Timestamp{Time: time.Date(2023, time.January, 2, 14, 5, 0, 0, time.Local)}
	if got := ts.Clock(); got != "14:05" {
		t.Fatalf("Clock() = %q", got)
	}
	if got := ts.DayHeading(); got != "Monday, January 2" {
		t.Fatalf("DayHeading() = %q", got)
	}
	if got := ts.DayKey(); got != "2023-01-02" {
		t.Fatalf("DayKey() = %q", got)
	}
}
