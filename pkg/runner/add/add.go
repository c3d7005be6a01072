package add

import (
	"context"
	"errors"

	"paisa.dev/kharcha/pkg/app"
	"paisa.dev/kharcha/pkg/expense"
	"paisa.dev/kharcha/pkg/printers"
)

type Add struct {
	Draft expense.Draft

	Service *app.Service
}

// Do validates and submits the draft, then shows the refreshed daily
// view, which is where the app lands after a successful add.
func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	if err := n.Service.AddExpense(ctx, n.Draft); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Success("Expense added successfully!")
	pp.NewLine()

	all, err := n.Service.Expenses(ctx, expense.Daily)
	if err != nil {
		// The add itself succeeded; a failed refresh is not fatal.
		pp.Error(err.Error())
		return nil
	}
	pp.Title("Daily Expenses")
	pp.Expenses(all)
	return nil
}
