// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// AuthOptions captures credential flags for login and register.
type AuthOptions struct {
	Name     string
	Mobile   string
	Password string
}

// AddLoginArgs wires login credential flags on the provided command.
func AddLoginArgs(cmd *cobra.Command, o *AuthOptions) {
	cmd.Flags().StringVarP(&o.Mobile, "mobile", "m", "",
		"Registered mobile number.")
	cmd.Flags().StringVarP(&o.Password, "password", "p", "",
		"Account password.")
}

// AddRegisterArgs wires registration flags on the provided command.
func AddRegisterArgs(cmd *cobra.Command, o *AuthOptions) {
	cmd.Flags().StringVarP(&o.Name, "name", "n", "",
		"Full name.")
	AddLoginArgs(cmd, o)
}
