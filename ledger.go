package cashbook

import (
	"iter"
	"slices"
	"sort"
)

// Ledger represents the cash book: the list of all recorded transactions.
//
// In a Ledger transactions are always in chronological order. Transactions
// recorded at the same instant keep their insertion order.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append appends transactions to this ledger and maintains the chronological
// order of transactions.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// stableSort sorts the ledger by transaction time. The sort is stable, meaning
// transactions at the same instant maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].When().Before(l.transactions[j].When())
	})
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns an iterator that yields each transaction in
// chronological order. A transaction is yielded only if it passes every
// filter; with no filter every transaction is yielded.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := true
			for _, filter := range filters {
				if !filter(tx) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Select collects the transactions passing every filter, in chronological order.
func (l *Ledger) Select(filters ...func(Transaction) bool) []Transaction {
	var txs []Transaction
	for _, tx := range l.Transactions(filters...) {
		txs = append(txs, tx)
	}
	return txs
}

// OldestDay returns the calendar day of the earliest transaction in the
// ledger, or the zero Date if the ledger is empty.
func (l *Ledger) OldestDay() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].Day()
}

// NewestDay returns the calendar day of the latest transaction in the ledger,
// or the zero Date if the ledger is empty.
func (l *Ledger) NewestDay() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[len(l.transactions)-1].Day()
}

// ByKind returns a predicate that filters transactions by kind.
func ByKind(kind Kind) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.What() == kind }
}

// ByCurrency returns a predicate that filters transactions by their primary
// currency. A transfer matches on either side.
func ByCurrency(currency string) func(Transaction) bool {
	return func(tx Transaction) bool {
		switch v := tx.(type) {
		case Income:
			return v.Currency() == currency
		case Expense:
			return v.Currency() == currency
		case Transfer:
			return v.Currency() == currency || v.ToCurrency() == currency
		default:
			return false
		}
	}
}

// ByCategory returns a predicate that filters transactions by category.
// Uncategorized transactions match "other".
func ByCategory(category string) func(Transaction) bool {
	return func(tx Transaction) bool {
		c := tx.Meta().Category
		if c == "" {
			c = "other"
		}
		return c == category
	}
}

// Within returns a predicate keeping transactions whose calendar day falls in
// the period, both ends inclusive.
func Within(period Range) func(Transaction) bool {
	return func(tx Transaction) bool { return period.Contains(tx.Day()) }
}

// Entry is one line of the reconstructed ledger view: a transaction together
// with the balances of both currencies after it was applied.
type Entry struct {
	Tx      Transaction
	Running Balance
}

// Entries replays the whole ledger from the initial balances and returns one
// entry per transaction, newest first. Running balances are computed in
// chronological order before the reversal, so the oldest entry's balances
// reflect exactly the first transaction applied to the initial balances, and
// the newest entry's balances equal the current balances.
func (l *Ledger) Entries(settings BalanceSettings) []Entry {
	entries := make([]Entry, 0, len(l.transactions))
	running := settings.Balance()
	for _, tx := range l.transactions {
		running = apply(running, tx)
		entries = append(entries, Entry{Tx: tx, Running: running})
	}
	slices.Reverse(entries)
	return entries
}
