package logout

import (
	"context"
	"errors"

	"paisa.dev/kharcha/pkg/app"
	"paisa.dev/kharcha/pkg/printers"
)

type Logout struct {
	Service *app.Service
}

// Do clears the session. Running it while already logged out is fine.
func (n *Logout) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not log out, no service")
	}
	if err := n.Service.Logout(); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Success("Logged out.")
	return nil
}
