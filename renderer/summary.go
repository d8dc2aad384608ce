package renderer

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/giya/cashbook"
	md "github.com/nao1215/markdown"
)

// BalanceMarkdown renders the current balances of both currencies.
func BalanceMarkdown(b cashbook.Balance) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Current Balance")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Currency", "Balance"},
		Rows: [][]string{
			{cashbook.CurrencyName(cashbook.USD), cashbook.FormatCurrency(b.USD, cashbook.USD)},
			{cashbook.CurrencyName(cashbook.CDF), cashbook.FormatCurrency(b.CDF, cashbook.CDF)},
		},
	})

	return doc.String()
}

// SummaryMarkdown renders a day or range summary as a cash book statement:
// opening balances, the period's flows, and closing balances.
func SummaryMarkdown(s *cashbook.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Cash Book %s", s.Label))

	row := func(label string, b cashbook.Balance) []string {
		return []string{
			label,
			cashbook.FormatCurrency(b.USD, cashbook.USD),
			cashbook.FormatCurrency(b.CDF, cashbook.CDF),
		}
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"", "USD", "CDF"},
		Rows: [][]string{
			row("Opening Balance", s.Opening),
			row("Income", s.Income),
			row("Expenses", s.Expense),
			row("Transfers Out", s.TransferOut),
			row("Transfers In", s.TransferIn),
			row(md.Bold("Closing Balance"), s.Closing),
		},
	})

	return doc.String()
}

// CategoryTotalsMarkdown renders per-category totals, largest first within
// the catalog order.
func CategoryTotalsMarkdown(title string, totals map[string]cashbook.Balance) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(totals) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Category", "USD", "CDF"},
	}
	for _, value := range orderedCategories(totals) {
		b := totals[value]
		table.Rows = append(table.Rows, []string{
			cashbook.CategoryLabel(value),
			cashbook.FormatCurrency(b.USD, cashbook.USD),
			cashbook.FormatCurrency(b.CDF, cashbook.CDF),
		})
	}
	doc.Table(table)

	return doc.String()
}

// orderedCategories lists the keys of totals in catalog order, then the
// unknown ones alphabetically.
func orderedCategories(totals map[string]cashbook.Balance) []string {
	var out []string
	seen := make(map[string]bool)
	for _, c := range cashbook.Categories() {
		if _, ok := totals[c.Value]; ok && !seen[c.Value] {
			out = append(out, c.Value)
			seen[c.Value] = true
		}
	}
	var rest []string
	for value := range totals {
		if !seen[value] {
			rest = append(rest, value)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}
