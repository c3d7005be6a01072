package options

import (
	"github.com/spf13/cobra"

	"paisa.dev/kharcha/pkg/expense"
)

// ExpenseOptions captures the add-expense form fields.
type ExpenseOptions struct {
	Category    string
	SubCategory string
	Amount      string
}

// AddExpenseArgs wires expense flags on the provided command.
func AddExpenseArgs(cmd *cobra.Command, o *ExpenseOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Expense category.")
	cmd.Flags().StringVarP(&o.SubCategory, "subcategory", "s", "",
		"Expense subcategory (depends on category).")
	cmd.Flags().StringVarP(&o.Amount, "amount", "a", "",
		"Amount in ₹.")
}

// Draft converts the collected fields into a draft. Amount text that is
// not a positive number maps to the amount validation failure, the same
// one Draft.Validate reports.
func (o *ExpenseOptions) Draft() (expense.Draft, error) {
	d := expense.Draft{Category: o.Category, SubCategory: o.SubCategory}
	if err := checkDraftFields(d); err != nil {
		return d, err
	}
	amount, err := expense.ParseAmount(o.Amount)
	if err != nil {
		return d, err
	}
	d.Amount = amount
	return d, nil
}

// checkDraftFields surfaces category/subcategory failures before the
// amount is parsed, so the messages come out in form order.
func checkDraftFields(d expense.Draft) error {
	probe := d
	probe.Amount = 1
	return probe.Validate()
}

// InteractiveOptions
type InteractiveOptions struct {
	Interactive bool
}

func InteractiveArgs(cmd *cobra.Command, o *InteractiveOptions) {
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		`Interactive input of options.`)
}
