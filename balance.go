package cashbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// BalanceSettings is the ledger's starting point before any transaction
// exists: one opening amount per currency, set once at setup time.
type BalanceSettings struct {
	InitialUSD decimal.Decimal
	InitialCDF decimal.Decimal
}

// Balance is a snapshot of the two currency balances at a point in time.
// Derived, never stored.
type Balance struct {
	USD decimal.Decimal
	CDF decimal.Decimal
}

// Balance returns the settings as the balance holding before any transaction.
func (s BalanceSettings) Balance() Balance {
	return Balance{USD: s.InitialUSD, CDF: s.InitialCDF}
}

// Get returns the balance of one currency.
func (b Balance) Get(cur string) decimal.Decimal {
	if cur == USD {
		return b.USD
	}
	return b.CDF
}

// Add returns a copy of b with v added to the balance of cur.
func (b Balance) Add(cur string, v decimal.Decimal) Balance {
	if cur == USD {
		b.USD = b.USD.Add(v)
	} else {
		b.CDF = b.CDF.Add(v)
	}
	return b
}

// Plus returns the per-currency sum of two balances.
func (b Balance) Plus(o Balance) Balance {
	return Balance{USD: b.USD.Add(o.USD), CDF: b.CDF.Add(o.CDF)}
}

// Minus returns the per-currency difference of two balances.
func (b Balance) Minus(o Balance) Balance {
	return Balance{USD: b.USD.Sub(o.USD), CDF: b.CDF.Sub(o.CDF)}
}

// Equal reports per-currency equality.
func (b Balance) Equal(o Balance) bool {
	return b.USD.Equal(o.USD) && b.CDF.Equal(o.CDF)
}

// apply folds one transaction into a balance. This single delta rule backs
// both the point-in-time computations and the ledger's running balances, so
// the two can never disagree.
//
// A transfer whose destination is missing or unusable still debits its source:
// records like that are rejected at ingestion, but once materialized they are
// applied exactly as the original data intended.
func apply(b Balance, tx Transaction) Balance {
	switch v := tx.(type) {
	case Income:
		return b.Add(v.Amount.Currency(), v.Amount.Amount())
	case Expense:
		return b.Add(v.Amount.Currency(), v.Amount.Amount().Neg())
	case Transfer:
		b = b.Add(v.Amount.Currency(), v.Amount.Amount().Neg())
		if ValidateCurrency(v.To.Currency()) == nil && !v.To.IsZero() {
			b = b.Add(v.To.Currency(), v.To.Amount())
		}
		return b
	default:
		return b
	}
}

// CurrentBalance computes the balances after applying every transaction to the
// initial balances. Transaction order is irrelevant: the fold is a sum.
// It is total: an empty transaction list returns the initial balances.
func CurrentBalance(settings BalanceSettings, txs []Transaction) Balance {
	b := settings.Balance()
	for _, tx := range txs {
		b = apply(b, tx)
	}
	return b
}

// OpeningBalance computes the balances immediately before the start of the
// given calendar day: only transactions on strictly earlier days count.
func OpeningBalance(settings BalanceSettings, txs []Transaction, day Date) Balance {
	b := settings.Balance()
	for _, tx := range txs {
		if tx.Day().Before(day) {
			b = apply(b, tx)
		}
	}
	return b
}

// Summary aggregates a period of the cash book: the opening balances, the
// per-currency flows within the period, and the resulting closing balances.
type Summary struct {
	Label       string  // YYYY-MM-DD for a day, "from to to" for a range
	Range       Range   // the period, both ends inclusive
	Opening     Balance // balances immediately before the period
	Income      Balance // income sums within the period
	Expense     Balance // expense sums within the period
	TransferOut Balance // transfer sums leaving each currency
	TransferIn  Balance // transfer sums entering each currency
	Closing     Balance // opening + income - expense - transferOut + transferIn
}

// NewSummary computes the summary of a single calendar day.
func NewSummary(settings BalanceSettings, txs []Transaction, day Date) Summary {
	return newRangeSummary(settings, txs, Day(day))
}

// NewRangeSummary computes the summary of an inclusive date range; the opening
// balances are taken relative to the range's first day.
func NewRangeSummary(settings BalanceSettings, txs []Transaction, from, to Date) Summary {
	return newRangeSummary(settings, txs, NewRange(from, to))
}

func newRangeSummary(settings BalanceSettings, txs []Transaction, period Range) Summary {
	s := Summary{
		Label:   period.Label(),
		Range:   period,
		Opening: OpeningBalance(settings, txs, period.From),
	}

	for _, tx := range txs {
		if !period.Contains(tx.Day()) {
			continue
		}
		switch v := tx.(type) {
		case Income:
			s.Income = s.Income.Add(v.Amount.Currency(), v.Amount.Amount())
		case Expense:
			s.Expense = s.Expense.Add(v.Amount.Currency(), v.Amount.Amount())
		case Transfer:
			s.TransferOut = s.TransferOut.Add(v.Amount.Currency(), v.Amount.Amount())
			if ValidateCurrency(v.To.Currency()) == nil && !v.To.IsZero() {
				s.TransferIn = s.TransferIn.Add(v.To.Currency(), v.To.Amount())
			}
		}
	}

	s.Closing = s.Opening.Plus(s.Income).Minus(s.Expense).Minus(s.TransferOut).Plus(s.TransferIn)
	return s
}

// CategoryTotals groups transactions by category, summing the primary amount
// per currency per category. It does not distinguish income from expense:
// callers filter by kind first when they want a one-sided breakdown.
func CategoryTotals(txs []Transaction) map[string]Balance {
	totals := make(map[string]Balance)
	for _, tx := range txs {
		category := tx.Meta().Category
		if category == "" {
			category = "other"
		}
		var amount Money
		switch v := tx.(type) {
		case Income:
			amount = v.Amount
		case Expense:
			amount = v.Amount
		case Transfer:
			amount = v.Amount // source side
		}
		totals[category] = totals[category].Add(amount.Currency(), amount.Amount())
	}
	return totals
}

// DailyClose is the historical record of one day's opening and closing
// balances, kept so past days stay auditable even as the ledger grows.
type DailyClose struct {
	Date    Date
	Opening Balance
	Closing Balance
	Created time.Time
}

// NewDailyClose captures a day summary as a close record.
func NewDailyClose(s Summary) DailyClose {
	return DailyClose{
		Date:    s.Range.From,
		Opening: s.Opening,
		Closing: s.Closing,
		Created: time.Now(),
	}
}

func (c DailyClose) MarshalJSON() ([]byte, error) {
	var obj jsonObjectWriter
	obj.Append("date", c.Date.String())
	obj.Append("openingUSD", c.Opening.USD)
	obj.Append("openingCDF", c.Opening.CDF)
	obj.Append("closingUSD", c.Closing.USD)
	obj.Append("closingCDF", c.Closing.CDF)
	obj.Append("createdAt", c.Created.Format(time.RFC3339))
	return obj.MarshalJSON()
}

func (c *DailyClose) UnmarshalJSON(data []byte) error {
	var raw struct {
		Date       Date            `json:"date"`
		OpeningUSD decimal.Decimal `json:"openingUSD"`
		OpeningCDF decimal.Decimal `json:"openingCDF"`
		ClosingUSD decimal.Decimal `json:"closingUSD"`
		ClosingCDF decimal.Decimal `json:"closingCDF"`
		Created    time.Time       `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = DailyClose{
		Date:    raw.Date,
		Opening: Balance{USD: raw.OpeningUSD, CDF: raw.OpeningCDF},
		Closing: Balance{USD: raw.ClosingUSD, CDF: raw.ClosingCDF},
		Created: raw.Created,
	}
	return nil
}

// EncodeDailyClose appends one close record as a JSONL line.
func EncodeDailyClose(w io.Writer, c DailyClose) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// DecodeDailyCloses reads a JSONL history of close records.
func DecodeDailyCloses(r io.Reader) ([]DailyClose, error) {
	var closes []DailyClose
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if len(text) == 0 {
			continue
		}
		var c DailyClose
		if err := json.Unmarshal([]byte(text), &c); err != nil {
			return nil, fmt.Errorf("line %d: invalid close record: %w", line, err)
		}
		closes = append(closes, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return closes, nil
}
