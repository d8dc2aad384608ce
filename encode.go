package cashbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// headCmd is a specialized struct to read the fields common to every record.
type headCmd struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Date    string `json:"date"`
	Details
	Created string `json:"createdAt"`
}

func (h headCmd) base() (baseTx, error) {
	kind, err := ParseKind(h.Type)
	if err != nil {
		return baseTx{}, err
	}
	at, err := parseTimestamp(h.Date)
	if err != nil {
		return baseTx{}, err
	}
	base := baseTx{Id: h.ID, Kind: kind, Time: at, Details: h.Details}
	if h.Created != "" {
		created, err := parseTimestamp(h.Created)
		if err != nil {
			return baseTx{}, err
		}
		base.Created = created
	}
	return base, nil
}

// parseTimestamp accepts a full RFC3339 timestamp or a bare day, the two
// shapes the store has historically written.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(readDateFormat, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// amountCmd is a specialized struct to read a record amount in two fields.
type amountCmd struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a amountCmd) Money() Money {
	return M(a.Amount, a.Currency)
}

// transferCmd is a specialized struct for decoding transfer records.
type transferCmd struct {
	headCmd
	amountCmd
	ToAmount   decimal.Decimal `json:"toAmount"`
	ToCurrency string          `json:"toCurrency"`
	Rate       decimal.Decimal `json:"exchangeRate"`
}

func (a transferCmd) ToMoney() Money {
	return M(a.ToAmount, a.ToCurrency)
}

// DecodeCashBook reads transactions from a stream of JSONL data, decodes each
// line into the appropriate variant, validates it, and returns a sorted Ledger.
// Malformed records are rejected here, at ingestion, rather than silently
// half-applied by the balance functions later.
func DecodeCashBook(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		tx, err := decodeTransaction(lineBytes)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ledger.Append(tx)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return ledger, nil
}

// decodeTransaction decodes and validates a single JSONL record.
func decodeTransaction(lineBytes []byte) (Transaction, error) {
	var identifier struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(lineBytes, &identifier); err != nil {
		return nil, fmt.Errorf("could not identify record %q: %w", string(lineBytes), err)
	}
	kind, err := ParseKind(identifier.Type)
	if err != nil {
		return nil, err
	}

	var tx Transaction
	switch kind {
	case KindIncome, KindExpense:
		var temp struct {
			headCmd
			amountCmd
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, err
		}
		base, err := temp.base()
		if err != nil {
			return nil, err
		}
		if kind == KindIncome {
			tx = Income{baseTx: base, Amount: temp.Money()}
		} else {
			tx = Expense{baseTx: base, Amount: temp.Money()}
		}
	case KindTransfer:
		temp := transferCmd{}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, err
		}
		base, err := temp.base()
		if err != nil {
			return nil, err
		}
		tx = Transfer{
			baseTx: base,
			Amount: temp.Money(),
			To:     temp.ToMoney(),
			Rate:   temp.Rate,
		}
	}

	return Validate(tx)
}

// EncodeTransaction marshals a single transaction to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeCashBook persists a ledger to an io.Writer in JSONL format, one
// transaction per line, in chronological order, with canonical key order.
func EncodeCashBook(w io.Writer, ledger *Ledger) error {
	decimal.MarshalJSONWithoutQuotes = true
	for _, tx := range ledger.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
