// Package cashbook implements a dual-currency (USD/CDF) cash book: an
// append-only list of income, expense and transfer transactions, plus the pure
// computations derived from it (point-in-time balances, daily and date-range
// summaries, running-balance ledger views and per-category totals).
//
// The computations are side-effect free and operate on an already-materialized
// snapshot of transactions: callers fetch, mutate and persist; the cash book
// only derives. All amounts are exact decimals.
package cashbook
