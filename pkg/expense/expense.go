package expense

import (
	"errors"
	"strconv"
	"strings"
)

// Expense is a single recorded expense as the API returns it.
type Expense struct {
	ID          string    `json:"_id"`
	Date        Timestamp `json:"date"`
	Category    string    `json:"category"`
	SubCategory string    `json:"subCategory"`
	Amount      float64   `json:"amount"`
}

// Draft is an expense as entered locally, before submission.
type Draft struct {
	Category    string  `json:"category"`
	SubCategory string  `json:"subCategory"`
	Amount      float64 `json:"amount"`
}

// Validation failures carry the messages the views show inline.
var (
	ErrCategoryRequired    = errors.New("Please select a category.")
	ErrSubCategoryRequired = errors.New("Please select a subcategory.")
	ErrInvalidAmount       = errors.New("Please enter a valid amount.")
)

// Validate runs the local pre-submission checks. It never touches the
// network; a draft that fails here must not be submitted.
func (d Draft) Validate() error {
	if d.Category == "" {
		return ErrCategoryRequired
	}
	subs, ok := Subcategories(d.Category)
	if !ok {
		return ErrCategoryRequired
	}
	if d.SubCategory == "" {
		return ErrSubCategoryRequired
	}
	if !contains(subs, d.SubCategory) {
		return ErrSubCategoryRequired
	}
	if d.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ParseAmount parses user-entered amount text. Anything that is not a
// positive number is rejected with the same message the form shows.
func ParseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// FormatAmount renders an amount the way the views do, e.g. "₹1200".
func FormatAmount(v float64) string {
	return "₹" + strconv.FormatFloat(v, 'f', -1, 64)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// GroupByDay splits an ordered sequence of expenses into per-day runs,
// preserving the server's ordering within and across days.
func GroupByDay(all []Expense) [][]Expense {
	groups := make([][]Expense, 0)
	index := make(map[string]int)
	for _, e := range all {
		key := e.Date.DayKey()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], e)
	}
	return groups
}
