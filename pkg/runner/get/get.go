package get

import (
	"context"
	"errors"
	"fmt"

	"paisa.dev/kharcha/pkg/app"
	"paisa.dev/kharcha/pkg/expense"
	"paisa.dev/kharcha/pkg/printers"
)

type Get struct {
	Period     expense.Period
	WithReport bool

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}
	if n.Period == "" {
		n.Period = expense.Daily
	}

	pp := printers.PrettyPrint{}
	if id, ok := n.Service.Session.Current(); ok {
		pp.Greeting(id.FirstName())
	}
	fmt.Println("")

	if n.WithReport {
		all, r, err := n.Service.ExpensesWithReport(ctx, n.Period)
		if err != nil {
			return err
		}
		pp.Report(n.Period.Title()+" Report", r)
		n.print(pp, all)
		return nil
	}

	all, err := n.Service.Expenses(ctx, n.Period)
	if err != nil {
		return err
	}
	n.print(pp, all)
	return nil
}

func (n *Get) print(pp printers.PrettyPrint, all []expense.Expense) {
	pp.Title(n.Period.Title() + " Expenses")
	switch n.Period {
	case expense.Daily:
		pp.Expenses(all)
	default:
		pp.ExpensesByDay(all)
	}
}
