package commands

import (
	"context"

	"github.com/spf13/cobra"

	"paisa.dev/kharcha/pkg/app"
	"paisa.dev/kharcha/pkg/runner/whoami"
)

func addWhoami(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "show the signed-in user",
		Example: `
kharcha whoami
`,
		PreRunE: requireSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := whoami.Whoami{Service: svc}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
