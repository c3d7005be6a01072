package expense

import (
	"encoding/json"
	"testing"
)

func TestReportDecodeKeepsMappingOrder(t *testing.T) {
	raw := `{"total": 1200, "categorySummary": {"Food": 400, "Travel": 800}}`
	var r Report
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Total != 1200 {
		t.Fatalf("expected total 1200, got %v", r.Total)
	}
	if len(r.Categories) != 2 {
		t.Fatalf("expected 2 category lines, got %d", len(r.Categories))
	}
	if r.Categories[0].Category != "Food" || r.Categories[0].Amount != 400 {
		t.Fatalf("first line wrong: %+v", r.Categories[0])
	}
	if r.Categories[1].Category != "Travel" || r.Categories[1].Amount != 800 {
		t.Fatalf("second line wrong: %+v", r.Categories[1])
	}
}

func TestReportDecodeReversedOrder(t *testing.T) {
	raw := `{"categorySummary": {"Travel": 800, "Food": 400}, "total": 1200}`
	var r Report
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Categories[0].Category != "Travel" {
		t.Fatalf("expected Travel first, got %+v", r.Categories[0])
	}
}

func TestReportDecodeEmptySummary(t *testing.T) {
	raw := `{"total": 0, "categorySummary": {}}`
	var r Report
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Categories) != 0 {
		t.Fatalf("expected no category lines, got %v", r.Categories)
	}
}

func TestReportDecodeIgnoresUnknownFields(t *testing.T) {
	raw := `{"total": 5, "period": "weekly", "categorySummary": {"Rent": 5}}`
	var r Report
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Total != 5 || len(r.Categories) != 1 {
		t.Fatalf("unexpected report: %+v", r)
	}
}
