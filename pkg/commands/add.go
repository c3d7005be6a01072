package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"paisa.dev/kharcha/pkg/app"
	"paisa.dev/kharcha/pkg/commands/options"
	"paisa.dev/kharcha/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.ExpenseOptions{}
	io := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "add [category] [subcategory] [amount]",
		Short: "record an expense",
		Example: `
kharcha add Food Lunch 150
kharcha add -c Travel -s Cab -a 320
kharcha add -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
				return nil
			case 3:
				eo.Category = args[0]
				eo.SubCategory = args[1]
				eo.Amount = args[2]
				return nil
			}
			return errors.New("expected either no arguments or category, subcategory and amount")
		},
		PreRunE: requireSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			if io.Interactive {
				if err := promptExpense(eo); err != nil {
					return err
				}
			}
			draft, err := eo.Draft()
			if err != nil {
				return oo.HandleError(err)
			}
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Draft:   draft,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddExpenseArgs(cmd, eo)
	options.InteractiveArgs(cmd, io)

	flagName := "category"
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return categoryCompletions(), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
