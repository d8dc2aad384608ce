// Package renderer turns cash book computations into markdown reports.
package renderer

import (
	"fmt"

	"github.com/giya/cashbook"
)

// Transaction renders a transaction to a one-line string.
func Transaction(tx cashbook.Transaction) string {
	switch v := tx.(type) {
	case cashbook.Income:
		return fmt.Sprintf("Received %s (%s)", v.Amount, cashbook.CategoryLabel(v.Meta().Category))
	case cashbook.Expense:
		return fmt.Sprintf("Paid %s (%s)", v.Amount, cashbook.CategoryLabel(v.Meta().Category))
	case cashbook.Transfer:
		return fmt.Sprintf("Exchanged %s for %s at %s", v.Amount, v.To, v.Rate)
	default:
		return string(tx.What())
	}
}

// particulars renders the description cell of a ledger row: the description
// when there is one, the category label otherwise.
func particulars(tx cashbook.Transaction) string {
	if d := tx.Meta().Description; d != "" {
		return d
	}
	return cashbook.CategoryLabel(tx.Meta().Category)
}
