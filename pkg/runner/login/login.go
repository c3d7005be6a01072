package login

import (
	"context"
	"errors"
	"fmt"

	"paisa.dev/kharcha/pkg/app"
	"paisa.dev/kharcha/pkg/printers"
)

type Login struct {
	Mobile   string
	Password string

	Service *app.Service
}

func (n *Login) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not log in, no service")
	}
	if n.Mobile == "" || n.Password == "" {
		return errors.New("mobile and password are required")
	}

	id, err := n.Service.Login(ctx, n.Mobile, n.Password)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Success(fmt.Sprintf("Logged in as %s.", id.Name))
	return nil
}
