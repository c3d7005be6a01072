package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"paisa.dev/kharcha/pkg/expense"
)

// PrettyPrint renders views to stdout the way the app shows them:
// greeting, tables of expenses, and report blocks.
type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Greeting prints the header line shown on every signed-in view.
func (pp *PrettyPrint) Greeting(firstName string) {
	b := color.New(color.FgBlue, color.Bold)
	_, _ = b.Printf("Hey %s, how are u doing today?\n", firstName)
}

// Error prints an inline failure message.
func (pp *PrettyPrint) Error(msg string) {
	r := color.New(color.FgRed)
	_, _ = r.Println(msg)
}

// Success prints an inline confirmation message.
func (pp *PrettyPrint) Success(msg string) {
	g := color.New(color.FgGreen)
	_, _ = g.Println(msg)
}

// Expenses prints a single table of expenses, one row per record in the
// order the server returned them.
func (pp *PrettyPrint) Expenses(all []expense.Expense) {
	if len(all) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	t := uitable.New()
	t.AddRow("TIME", "CATEGORY", "SUB CATEGORY", "AMOUNT")
	for _, e := range all {
		t.AddRow(e.Date.Clock(), e.Category, e.SubCategory, expense.FormatAmount(e.Amount))
	}
	fmt.Println(t)
	fmt.Println("")
}

// ExpensesByDay prints expenses grouped under day headings, preserving
// server order, the way the weekly and monthly views render.
func (pp *PrettyPrint) ExpensesByDay(all []expense.Expense) {
	if len(all) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	h := color.New(color.Bold)
	for _, day := range expense.GroupByDay(all) {
		_, _ = h.Println(day[0].Date.DayHeading())
		pp.Expenses(day)
	}
}

// Report prints the total and the category summary lines in mapping
// order.
func (pp *PrettyPrint) Report(title string, r *expense.Report) {
	pp.Title(title)
	fmt.Printf("Total: %s\n", expense.FormatAmount(r.Total))
	if len(r.Categories) == 0 {
		return
	}
	fmt.Println("Category Summary:")
	for _, c := range r.Categories {
		fmt.Printf("  %s: %s\n", c.Category, expense.FormatAmount(c.Amount))
	}
	fmt.Println("")
}
