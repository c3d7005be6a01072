package report

import (
	"context"
	"errors"

	"paisa.dev/kharcha/pkg/app"
	"paisa.dev/kharcha/pkg/expense"
	"paisa.dev/kharcha/pkg/printers"
)

type Report struct {
	Period expense.Period

	Service *app.Service
}

func (n *Report) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no service")
	}
	if n.Period == "" {
		n.Period = expense.Daily
	}

	r, err := n.Service.Report(ctx, n.Period)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Report(n.Period.Title()+" Report", r)
	return nil
}
