package commands

import (
	"github.com/spf13/cobra"

	"paisa.dev/kharcha/pkg/app"
	"paisa.dev/kharcha/pkg/session"
)

// requireSession gates protected commands. It re-reads the persisted
// session on every invocation, so a logout from anywhere is seen
// immediately, and it fails before any data fetch can fire.
func requireSession(cmd *cobra.Command, args []string) error {
	svc, err := app.Load(nil)
	if err != nil {
		return err
	}
	if _, ok := svc.Session.Current(); !ok {
		return session.ErrNotLoggedIn
	}
	return nil
}
