package register

import (
	"context"
	"errors"

	"paisa.dev/kharcha/pkg/app"
	"paisa.dev/kharcha/pkg/printers"
)

type Register struct {
	Name     string
	Mobile   string
	Password string

	Service *app.Service
}

func (n *Register) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not register, no service")
	}
	if n.Name == "" || n.Mobile == "" || n.Password == "" {
		return errors.New("name, mobile and password are required")
	}

	if err := n.Service.Register(ctx, n.Name, n.Mobile, n.Password); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Success("Registered. You can now run 'kharcha login'.")
	return nil
}
