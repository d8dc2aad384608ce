package cashbook

// Category identifies a bucket for grouping transactions in reports.
type Category struct {
	Value string // stable identifier stored in the ledger
	Label string // human readable name
	Kind  Kind   // the transaction kind it applies to
}

var categories = []Category{
	{Value: "utilities", Label: "Utilities", Kind: KindExpense},
	{Value: "rent", Label: "Rent/Lease", Kind: KindExpense},
	{Value: "salaries", Label: "Salaries", Kind: KindExpense},
	{Value: "inventory", Label: "Inventory", Kind: KindExpense},
	{Value: "marketing", Label: "Marketing", Kind: KindExpense},
	{Value: "maintenance", Label: "Maintenance", Kind: KindExpense},
	{Value: "supplies", Label: "Supplies", Kind: KindExpense},
	{Value: "transport", Label: "Transport", Kind: KindExpense},
	{Value: "taxes", Label: "Taxes/Fees", Kind: KindExpense},
	{Value: "factory_remittance", Label: "Factory Remittance", Kind: KindExpense},
	{Value: "other_expense", Label: "Other", Kind: KindExpense},
	{Value: "sales", Label: "Sales", Kind: KindIncome},
	{Value: "services", Label: "Services", Kind: KindIncome},
	{Value: "refund", Label: "Refund", Kind: KindIncome},
	{Value: "other_income", Label: "Other", Kind: KindIncome},
	{Value: "currency_exchange", Label: "Currency Exchange", Kind: KindTransfer},
}

// Categories returns the full category catalog.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoriesFor returns the categories applicable to one transaction kind.
func CategoriesFor(kind Kind) []Category {
	var out []Category
	for _, c := range categories {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// CategoryLabel returns the display label of a category value. Unknown values
// are returned unchanged so free form categories still render.
func CategoryLabel(value string) string {
	for _, c := range categories {
		if c.Value == value {
			return c.Label
		}
	}
	if value == "" || value == "other" {
		return "Other"
	}
	return value
}
