package commands

import (
	"context"

	"github.com/spf13/cobra"

	"paisa.dev/kharcha/pkg/app"
	"paisa.dev/kharcha/pkg/commands/options"
	"paisa.dev/kharcha/pkg/runner/register"
)

func addRegister(topLevel *cobra.Command) {
	ao := &options.AuthOptions{}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "create an account",
		Example: `
kharcha register -n "Asha Rao" -m 9999999999 -p secret
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := promptCredentials(ao, true); err != nil {
				return err
			}
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := register.Register{
				Name:     ao.Name,
				Mobile:   ao.Mobile,
				Password: ao.Password,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddRegisterArgs(cmd, ao)

	topLevel.AddCommand(cmd)
}
