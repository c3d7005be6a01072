package expense

import "fmt"

// Period selects the time window a view or report covers. The server owns
// the window boundaries; the client only names them.
type Period string

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
)

// Periods returns all periods in view order.
func Periods() []Period {
	return []Period{Daily, Weekly, Monthly}
}

func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case Daily, Weekly, Monthly:
		return Period(s), nil
	}
	return "", fmt.Errorf("unknown period %q, want daily, weekly or monthly", s)
}

// Title renders the period as the views caption it, e.g. "Daily".
func (p Period) Title() string {
	switch p {
	case Daily:
		return "Daily"
	case Weekly:
		return "Weekly"
	case Monthly:
		return "Monthly"
	}
	return string(p)
}
