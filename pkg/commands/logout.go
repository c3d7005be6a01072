package commands

import (
	"context"

	"github.com/spf13/cobra"

	"paisa.dev/kharcha/pkg/app"
	"paisa.dev/kharcha/pkg/runner/logout"
)

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "clear the saved session",
		Example: `
kharcha logout
`,
		// No guard: logging out while logged out is a safe no-op.
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := logout.Logout{Service: svc}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
