package commands

import (
	"github.com/charmbracelet/huh"

	"paisa.dev/kharcha/pkg/commands/options"
	"paisa.dev/kharcha/pkg/expense"
)

// promptCredentials fills whichever credential fields are still empty.
func promptCredentials(o *options.AuthOptions, withName bool) error {
	fields := make([]huh.Field, 0, 3)
	if withName && o.Name == "" {
		fields = append(fields, huh.NewInput().Title("Full name").Value(&o.Name))
	}
	if o.Mobile == "" {
		fields = append(fields, huh.NewInput().Title("Mobile").Value(&o.Mobile))
	}
	if o.Password == "" {
		fields = append(fields, huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&o.Password))
	}
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

// promptExpense walks the add form: category select, then the
// subcategory set that category allows, then the amount. Mirrors the
// form's behavior of resetting the subcategory when the category
// changes, since the subcategory is only asked once the category is
// fixed.
func promptExpense(o *options.ExpenseOptions) error {
	categoryOpts := huh.NewOptions(expense.Categories()...)

	if o.Category == "" {
		sel := huh.NewSelect[string]().Title("Category").Options(categoryOpts...).Value(&o.Category)
		if err := huh.NewForm(huh.NewGroup(sel)).Run(); err != nil {
			return err
		}
	}

	subs, ok := expense.Subcategories(o.Category)
	if ok && o.SubCategory == "" {
		sel := huh.NewSelect[string]().Title("Sub Category").Options(huh.NewOptions(subs...)...).Value(&o.SubCategory)
		if err := huh.NewForm(huh.NewGroup(sel)).Run(); err != nil {
			return err
		}
	}

	if o.Amount == "" {
		in := huh.NewInput().Title("Amount (₹)").Placeholder("Enter amount").Value(&o.Amount)
		if err := huh.NewForm(huh.NewGroup(in)).Run(); err != nil {
			return err
		}
	}
	return nil
}
