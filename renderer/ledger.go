package renderer

import (
	"bytes"

	"github.com/giya/cashbook"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// LedgerMarkdown renders the running-balance ledger view, newest first. Each
// row carries a debit or credit cell per currency and the balances of both
// currencies after the transaction.
func LedgerMarkdown(entries []cashbook.Entry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Ledger")
	if len(entries) == 0 {
		doc.PlainText("No transactions yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight,
			md.AlignRight, md.AlignRight,
			md.AlignRight, md.AlignRight,
		},
		Header: []string{
			"Date", "Particulars",
			"USD In", "USD Out",
			"CDF In", "CDF Out",
			"Bal USD", "Bal CDF",
		},
	}
	for _, e := range entries {
		usdIn, usdOut, cdfIn, cdfOut := movements(e.Tx)
		table.Rows = append(table.Rows, []string{
			e.Tx.Day().String(),
			particulars(e.Tx),
			cell(usdIn, cashbook.USD),
			cell(usdOut, cashbook.USD),
			cell(cdfIn, cashbook.CDF),
			cell(cdfOut, cashbook.CDF),
			cashbook.FormatAmount(e.Running.USD, cashbook.USD),
			cashbook.FormatAmount(e.Running.CDF, cashbook.CDF),
		})
	}
	doc.Table(table)

	return doc.String()
}

// movements splits a transaction into the four debit/credit cells of a row.
func movements(tx cashbook.Transaction) (usdIn, usdOut, cdfIn, cdfOut decimal.Decimal) {
	in := func(m cashbook.Money) {
		if m.Currency() == cashbook.USD {
			usdIn = m.Amount()
		} else {
			cdfIn = m.Amount()
		}
	}
	out := func(m cashbook.Money) {
		if m.Currency() == cashbook.USD {
			usdOut = m.Amount()
		} else {
			cdfOut = m.Amount()
		}
	}
	switch v := tx.(type) {
	case cashbook.Income:
		in(v.Amount)
	case cashbook.Expense:
		out(v.Amount)
	case cashbook.Transfer:
		out(v.Amount)
		if !v.To.IsZero() {
			in(v.To)
		}
	}
	return
}

// cell renders an amount, or an empty cell for zero.
func cell(v decimal.Decimal, cur string) string {
	if v.IsZero() {
		return ""
	}
	return cashbook.FormatAmount(v, cur)
}
