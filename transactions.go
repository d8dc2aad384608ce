package cashbook

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Kind is a typed string identifying a transaction variant.
type Kind string

const (
	KindIncome   Kind = "income"
	KindExpense  Kind = "expense"
	KindTransfer Kind = "transfer"
)

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindIncome, KindExpense, KindTransfer:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction defines the common interface for the three kinds of financial
// transactions a cash book records. The concrete types are Income, Expense and
// Transfer; fields that only make sense for one variant only exist on that
// variant.
type Transaction interface {
	What() Kind      // What returns the kind of the transaction ("income", "expense", "transfer").
	When() time.Time // When returns the timestamp of the transaction.
	Day() Date       // Day returns the calendar day used for bucketing.
	ID() string      // ID returns the opaque unique identifier.
	Meta() Details   // Meta returns the descriptive metadata (never used in balance math).
	Equal(Transaction) bool
}

// Details carries the descriptive metadata common to all transactions.
// None of it participates in balance computations.
type Details struct {
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	Vendor      string `json:"vendor,omitempty"`      // paid to / received from
	Method      string `json:"paymentMethod,omitempty"` // cash, card, transfer, mobile
	Notes       string `json:"notes,omitempty"`
}

type baseTx struct {
	Id      string    `json:"id,omitempty"`
	Kind    Kind      `json:"type"`
	Time    time.Time `json:"date"`
	Details
	Created time.Time `json:"createdAt,omitempty"`
}

func (t baseTx) What() Kind      { return t.Kind }
func (t baseTx) When() time.Time { return t.Time }
func (t baseTx) Day() Date       { return DateOf(t.Time) }
func (t baseTx) ID() string      { return t.Id }
func (t baseTx) Meta() Details   { return t.Details }

// MarshalJSON writes the common head fields in canonical order.
func (t baseTx) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("id", t.Id)
	w.Append("type", t.Kind)
	w.Append("date", t.Time.Format(time.RFC3339))
	return w.MarshalJSON()
}

// Validate checks the base fields. It sets the timestamp to now if it's zero.
// It's meant to be embedded in the variants' validation methods.
func (t *baseTx) Validate() {
	if t.Time.IsZero() {
		t.Time = time.Now()
	}
}

// --- Income ---

// Income represents cash received into one currency of the cash book.
type Income struct {
	baseTx
	Amount Money // Amount is the cash received; always positive.
}

// NewIncome creates a new Income transaction.
func NewIncome(id string, at time.Time, amount Money, d Details) Income {
	return Income{
		baseTx: baseTx{Id: id, Kind: KindIncome, Time: at, Details: d},
		Amount: amount,
	}
}

// MarshalJSON implements the json.Marshaler interface for Income.
func (t Income) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseTx)
	w.EmbedFrom(t.Amount)
	w.EmbedFrom(t.Details)
	if !t.Created.IsZero() {
		w.Append("createdAt", t.Created.Format(time.RFC3339))
	}
	return w.MarshalJSON()
}

func (t Income) Equal(other Transaction) bool {
	o, ok := other.(Income)
	return ok && t.baseTx.equal(o.baseTx) && t.Amount.Equal(o.Amount)
}

func (t Income) Currency() string { return t.Amount.Currency() }

// Validate checks the Income transaction's fields. The amount must be positive
// and carried in one of the two cash book currencies.
func (t Income) Validate() (Transaction, error) {
	t.baseTx.Validate()
	if err := ValidateCurrency(t.Amount.Currency()); err != nil {
		return t, fmt.Errorf("income: %w", err)
	}
	if !t.Amount.IsPositive() {
		return t, fmt.Errorf("income: %w, got %s", ErrNegativeAmount, t.Amount)
	}
	return t, nil
}

// --- Expense ---

// Expense represents cash paid out of one currency of the cash book.
type Expense struct {
	baseTx
	Amount Money // Amount is the cash paid out; always positive.
}

// NewExpense creates a new Expense transaction.
func NewExpense(id string, at time.Time, amount Money, d Details) Expense {
	return Expense{
		baseTx: baseTx{Id: id, Kind: KindExpense, Time: at, Details: d},
		Amount: amount,
	}
}

// MarshalJSON implements the json.Marshaler interface for Expense.
func (t Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseTx)
	w.EmbedFrom(t.Amount)
	w.EmbedFrom(t.Details)
	if !t.Created.IsZero() {
		w.Append("createdAt", t.Created.Format(time.RFC3339))
	}
	return w.MarshalJSON()
}

func (t Expense) Equal(other Transaction) bool {
	o, ok := other.(Expense)
	return ok && t.baseTx.equal(o.baseTx) && t.Amount.Equal(o.Amount)
}

func (t Expense) Currency() string { return t.Amount.Currency() }

// Validate checks the Expense transaction's fields.
func (t Expense) Validate() (Transaction, error) {
	t.baseTx.Validate()
	if err := ValidateCurrency(t.Amount.Currency()); err != nil {
		return t, fmt.Errorf("expense: %w", err)
	}
	if !t.Amount.IsPositive() {
		return t, fmt.Errorf("expense: %w, got %s", ErrNegativeAmount, t.Amount)
	}
	return t, nil
}

// --- Transfer ---

// Transfer represents an exchange from one cash book currency into the other
// at a user-entered rate. Amount leaves the source currency, To enters the
// destination currency. Rate is always quoted as "1 USD = Rate CDF" whichever
// the direction.
type Transfer struct {
	baseTx
	Amount Money           // Amount is the cash leaving the source currency.
	To     Money           // To is the cash entering the destination currency.
	Rate   decimal.Decimal // Rate is the exchange rate, quoted as 1 USD = Rate CDF.
}

// NewTransfer creates a new Transfer transaction.
func NewTransfer(id string, at time.Time, from, to Money, rate decimal.Decimal, d Details) Transfer {
	return Transfer{
		baseTx: baseTx{Id: id, Kind: KindTransfer, Time: at, Details: d},
		Amount: from,
		To:     to,
		Rate:   rate,
	}
}

// MarshalJSON implements the json.Marshaler interface for Transfer.
func (t Transfer) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseTx)
	w.EmbedFrom(t.Amount)
	w.Append("toAmount", t.To.Amount())
	w.Append("toCurrency", t.To.Currency())
	if !t.Rate.IsZero() {
		w.Append("exchangeRate", t.Rate)
	}
	w.EmbedFrom(t.Details)
	if !t.Created.IsZero() {
		w.Append("createdAt", t.Created.Format(time.RFC3339))
	}
	return w.MarshalJSON()
}

func (t Transfer) Equal(other Transaction) bool {
	o, ok := other.(Transfer)
	return ok && t.baseTx.equal(o.baseTx) && t.Amount.Equal(o.Amount) &&
		t.To.Equal(o.To) && t.Rate.Equal(o.Rate)
}

// Currency returns the source currency of the transfer.
func (t Transfer) Currency() string { return t.Amount.Currency() }

// ToCurrency returns the destination currency of the transfer.
func (t Transfer) ToCurrency() string { return t.To.Currency() }

// Validate checks the Transfer transaction's fields and applies quick fixes:
// a missing destination currency resolves to the other currency, a missing
// destination amount is derived from the rate, and a missing rate is derived
// from the two amounts.
func (t Transfer) Validate() (Transaction, error) {
	t.baseTx.Validate()
	if err := ValidateCurrency(t.Amount.Currency()); err != nil {
		return t, fmt.Errorf("transfer: %w", err)
	}
	if !t.Amount.IsPositive() {
		return t, fmt.Errorf("transfer: %w, got %s", ErrNegativeAmount, t.Amount)
	}

	// quick fix: in a two-currency system the destination is never ambiguous.
	if t.To.Currency() == "" {
		t.To = M(t.To.Amount(), Other(t.Amount.Currency()))
	}
	if err := ValidateCurrency(t.To.Currency()); err != nil {
		return t, fmt.Errorf("transfer: %w", err)
	}
	if t.To.Currency() == t.Amount.Currency() {
		return t, fmt.Errorf("transfer: %w, got %s on both sides", ErrCurrencyMismatch, t.Amount.Currency())
	}

	if t.To.IsZero() {
		if t.Rate.IsZero() {
			return t, fmt.Errorf("transfer: %w", ErrMissingDestination)
		}
		// Rate is 1 USD = Rate CDF regardless of direction.
		if t.Amount.Currency() == USD {
			t.To = M(t.Amount.Amount().Mul(t.Rate), CDF)
		} else {
			t.To = M(t.Amount.Amount().Div(t.Rate), USD)
		}
	}
	if !t.To.IsPositive() {
		return t, fmt.Errorf("transfer: destination %w, got %s", ErrNegativeAmount, t.To)
	}
	if t.Rate.IsZero() {
		usd, cdf := t.Amount.Amount(), t.To.Amount()
		if t.Amount.Currency() == CDF {
			usd, cdf = cdf, usd
		}
		t.Rate = cdf.Div(usd)
	}
	return t, nil
}

// equal compares the head fields; timestamps compare by instant.
func (t baseTx) equal(o baseTx) bool {
	return t.Id == o.Id && t.Kind == o.Kind && t.Time.Equal(o.Time) &&
		t.Details == o.Details && t.Created.Equal(o.Created)
}
