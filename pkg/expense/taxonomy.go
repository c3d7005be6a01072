package expense

// The category taxonomy is fixed client-side; the server stores whatever
// it is sent, so the client is the only thing keeping entries consistent.

var categories = []string{
	"Food",
	"Entertainment",
	"Cigarette",
	"Fuel",
	"Travel",
	"EMI",
	"Savings",
	"Shopping",
	"Rent",
	"Others",
}

var subcategories = map[string][]string{
	"Food":          {"Breakfast", "Lunch", "Dinner", "Party", "Snacks"},
	"Entertainment": {"Movies", "Games", "Concerts", "Events"},
	"Cigarette":     {"Regular", "Premium", "Other"},
	"Fuel":          {"Petrol", "Diesel", "CNG"},
	"Travel":        {"Flight", "Train", "Bus", "Cab", "Hotel"},
	"EMI":           {"Home Loan", "Car Loan", "Education Loan", "Other"},
	"Savings":       {"Fixed Deposit", "Mutual Funds", "Stocks", "Other"},
	"Shopping":      {"Clothes", "Electronics", "Groceries", "Other"},
	"Rent":          {"Apartment", "Office", "Storage", "Other"},
	"Others":        {"Miscellaneous"},
}

// Categories returns the fixed category set in display order.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// Subcategories returns the subcategory set for a category, in display
// order, and whether the category exists.
func Subcategories(category string) ([]string, bool) {
	subs, ok := subcategories[category]
	if !ok {
		return nil, false
	}
	out := make([]string, len(subs))
	copy(out, subs)
	return out, true
}
