package commands

import (
	"context"

	"github.com/spf13/cobra"

	"paisa.dev/kharcha/pkg/app"
	"paisa.dev/kharcha/pkg/commands/options"
	"paisa.dev/kharcha/pkg/runner/login"
)

func addLogin(topLevel *cobra.Command) {
	ao := &options.AuthOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "log in and save the session",
		Example: `
kharcha login -m 9999999999 -p secret
kharcha login
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := promptCredentials(ao, false); err != nil {
				return err
			}
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := login.Login{
				Mobile:   ao.Mobile,
				Password: ao.Password,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddLoginArgs(cmd, ao)

	topLevel.AddCommand(cmd)
}
