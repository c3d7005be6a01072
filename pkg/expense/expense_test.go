package expense

import (
	"testing"
	"time"
)

func TestValidateMissingCategory(t *testing.T) {
	d := Draft{SubCategory: "Lunch", Amount: 100}
	if err := d.Validate(); err != ErrCategoryRequired {
		t.Fatalf("expected %v, got %v", ErrCategoryRequired, err)
	}
}

func TestValidateMissingSubCategory(t *testing.T) {
	d := Draft{Category: "Fuel", SubCategory: "", Amount: 150}
	if err := d.Validate(); err != ErrSubCategoryRequired {
		t.Fatalf("expected %v, got %v", ErrSubCategoryRequired, err)
	}
}

func TestValidateSubCategoryFromWrongCategory(t *testing.T) {
	d := Draft{Category: "Fuel", SubCategory: "Lunch", Amount: 150}
	if err := d.Validate(); err != ErrSubCategoryRequired {
		t.Fatalf("expected %v, got %v", ErrSubCategoryRequired, err)
	}
}

func TestValidateNonPositiveAmount(t *testing.T) {
	d := Draft{Category: "Food", SubCategory: "Lunch", Amount: -5}
	if err := d.Validate(); err != ErrInvalidAmount {
		t.Fatalf("expected %v, got %v", ErrInvalidAmount, err)
	}
}

func TestValidateOK(t *testing.T) {
	d := Draft{Category: "Food", SubCategory: "Lunch", Amount: 150}
	if err := d.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseAmount(t *testing.T) {
	if v, err := ParseAmount("150"); err != nil || v != 150 {
		t.Fatalf("expected 150, got %v, %v", v, err)
	}
	for _, bad := range []string{"-5", "0", "", "abc"} {
		if _, err := ParseAmount(bad); err != ErrInvalidAmount {
			t.Fatalf("%q: expected %v, got %v", bad, ErrInvalidAmount, err)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(1200); got != "₹1200" {
		t.Fatalf("expected ₹1200, got %s", got)
	}
	if got := FormatAmount(12.5); got != "₹12.5" {
		t.Fatalf("expected ₹12.5, got %s", got)
	}
}

func TestSubcategoriesDependOnCategory(t *testing.T) {
	subs, ok := Subcategories("EMI")
	if !ok || len(subs) != 4 {
		t.Fatalf("expected 4 EMI subcategories, got %v", subs)
	}
	if _, ok := Subcategories("Nope"); ok {
		t.Fatalf("expected unknown category to report !ok")
	}
}

func TestGroupByDayKeepsOrder(t *testing.T) {
	day := func(d int, h int) Timestamp {
		return Timestamp{Time: time.Date(2026, 8, d, h, 0, 0, 0, time.Local)}
	}
	all := []Expense{
		{ID: "a", Date: day(24, 9)},
		{ID: "b", Date: day(24, 12)},
		{ID: "c", Date: day(25, 8)},
		{ID: "d", Date: day(26, 20)},
	}
	groups := GroupByDay(all)
	if len(groups) != 3 {
		t.Fatalf("expected 3 day groups, got %d", len(groups))
	}
	if len(groups[0]) != 2 || groups[0][0].ID != "a" || groups[0][1].ID != "b" {
		t.Fatalf("first group out of order: %v", groups[0])
	}
	if groups[2][0].ID != "d" {
		t.Fatalf("expected d last, got %v", groups[2])
	}
}
