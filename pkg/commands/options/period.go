package options

import (
	"github.com/spf13/cobra"

	"paisa.dev/kharcha/pkg/expense"
)

// PeriodOptions captures the time-window selection for views and reports.
type PeriodOptions struct {
	Period     expense.Period
	WithReport bool
}

// ParsePeriodArg resolves an optional positional period argument,
// defaulting to daily.
func (o *PeriodOptions) ParsePeriodArg(args []string) error {
	if len(args) == 0 {
		o.Period = expense.Daily
		return nil
	}
	p, err := expense.ParsePeriod(args[0])
	if err != nil {
		return err
	}
	o.Period = p
	return nil
}

// AddReportArg registers the flag that folds a report into a view.
func AddReportArg(cmd *cobra.Command, o *PeriodOptions) {
	cmd.Flags().BoolVar(&o.WithReport, "report", false,
		"Also generate the report for the same period.")
}

// PeriodArgs returns the valid positional period values for completion.
func PeriodArgs() []string {
	ps := expense.Periods()
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = string(p)
	}
	return out
}
