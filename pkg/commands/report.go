package commands

import (
	"context"

	"github.com/spf13/cobra"

	"paisa.dev/kharcha/pkg/app"
	"paisa.dev/kharcha/pkg/commands/options"
	"paisa.dev/kharcha/pkg/runner/report"
)

func addReport(topLevel *cobra.Command) {
	po := &options.PeriodOptions{}

	cmd := &cobra.Command{
		Use:   "report [period]",
		Short: "generate a report for a period",
		Long:  "Generate the server-computed total and category summary for the daily, weekly or monthly window.",
		Example: `
kharcha report daily
kharcha report weekly
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
			s := report.Report{
				Period:  po.Period,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
