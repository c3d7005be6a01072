package whoami

import (
	"context"
	"errors"
	"fmt"

	"paisa.dev/kharcha/pkg/app"
	"paisa.dev/kharcha/pkg/printers"
	"paisa.dev/kharcha/pkg/session"
)

type Whoami struct {
	Service *app.Service
}

// Do prints the signed-in identity from the persisted session; it never
// contacts the API.
func (n *Whoami) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not look up identity, no service")
	}
	id, ok := n.Service.Session.Current()
	if !ok {
		return session.ErrNotLoggedIn
	}

	pp := printers.PrettyPrint{}
	pp.Greeting(id.FirstName())
	fmt.Printf("%s (%s)\n", id.Name, id.Mobile)
	return nil
}
