package commands

import (
	"context"

	"github.com/spf13/cobra"

	"paisa.dev/kharcha/pkg/app"
	"paisa.dev/kharcha/pkg/commands/options"
	"paisa.dev/kharcha/pkg/expense"
	"paisa.dev/kharcha/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	po := &options.PeriodOptions{}

	cmd := &cobra.Command{
		Use:   "get [period]",
		Short: "view expenses for a period",
		Long:  "View the daily, weekly or monthly expense list. Weekly and monthly views group rows by day.",
		Example: `
kharcha get daily
kharcha get weekly --report
kharcha get monthly
`,
		ValidArgs: options.PeriodArgs(),
		Args: func(cmd *cobra.Command, args []string) error {
			return po.ParsePeriodArg(args)
		},
		PreRunE: requireSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				Period:     po.Period,
				WithReport: po.WithReport,
				Service:    svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddReportArg(cmd, po)

	for _, p := range expense.Periods() {
		addGetPeriod(cmd, p)
	}

	topLevel.AddCommand(cmd)
}

func addGetPeriod(topLevel *cobra.Command, period expense.Period) {
	po := &options.PeriodOptions{Period: period}

	cmd := &cobra.Command{
		Use:     string(period),
		Short:   period.Title() + " expenses",
		PreRunE: requireSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				Period:     po.Period,
				WithReport: po.WithReport,
				Service:    svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddReportArg(cmd, po)

	topLevel.AddCommand(cmd)
}

func categoryCompletions() []string {
	return expense.Categories()
}
