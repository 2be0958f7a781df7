package models

// ExpenseFilters contains filtering options for expense listing.
// An empty Merchant matches every row; otherwise matching is exact and case-sensitive.
type ExpenseFilters struct {
	Merchant string
}

func (f ExpenseFilters) IsEmpty() bool {
	return f.Merchant == ""
}
