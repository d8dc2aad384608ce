package cashbook

import "errors"

// Sentinel errors reported when malformed records are rejected at ingestion.
// The pure balance functions never return them: once a transaction made it
// into a Ledger it is applied as-is.
var (
	ErrInvalidDate        = errors.New("invalid date")
	ErrNegativeAmount     = errors.New("amount must be positive")
	ErrUnknownCurrency    = errors.New("unknown currency")
	ErrCurrencyMismatch   = errors.New("transfer currencies must differ")
	ErrMissingDestination = errors.New("transfer destination amount is missing")
)

// Validate checks a transaction for correctness and applies quick fixes where
// applicable (e.g., deriving a transfer's destination amount from its rate).
// It returns the validated (and potentially modified) transaction or an error.
func Validate(tx Transaction) (Transaction, error) {
	switch v := tx.(type) {
	case Income:
		return v.Validate()
	case Expense:
		return v.Validate()
	case Transfer:
		return v.Validate()
	default:
		return tx, errors.New("unsupported transaction type")
	}
}
