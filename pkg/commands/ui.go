package commands

import (
	"github.com/spf13/cobra"

	"paisa.dev/kharcha/pkg/app"
	teaui "paisa.dev/kharcha/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
kharcha ui
`,
		ValidArgs: []string{},
		// No guard here: the UI renders its own login screen when the
		// session is anonymous.
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			return teaui.Run(svc)
		},
	}

	topLevel.AddCommand(cmd)
}
