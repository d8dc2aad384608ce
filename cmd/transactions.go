package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/google/uuid"

	"github.com/giya/cashbook"
	"github.com/giya/cashbook/renderer"
)

// txTime resolves the -d flag to a timestamp: the current instant when empty,
// midday of the given day otherwise.
func txTime(dayFlag string) (time.Time, error) {
	if dayFlag == "" {
		return time.Now(), nil
	}
	d, err := cashbook.ParseDate(dayFlag)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), time.Month(d.Month()), d.Day(), 12, 0, 0, 0, time.Local), nil
}

// details collects the descriptive flags shared by the recording commands.
type detailFlags struct {
	category    string
	description string
	vendor      string
	method      string
	notes       string
}

func (d *detailFlags) register(f *flag.FlagSet) {
	f.StringVar(&d.category, "cat", "", "Category (see 'gcb categories')")
	f.StringVar(&d.description, "desc", "", "Short description")
	f.StringVar(&d.vendor, "vendor", "", "Paid to / received from")
	f.StringVar(&d.method, "via", "", "Payment method (cash, card, transfer, mobile)")
	f.StringVar(&d.notes, "n", "", "An optional note for the transaction")
}

func (d *detailFlags) details() cashbook.Details {
	return cashbook.Details{
		Category:    d.category,
		Description: d.description,
		Vendor:      d.vendor,
		Method:      d.method,
		Notes:       d.notes,
	}
}

// --- Income Command ---

type incomeCmd struct {
	date     string
	currency string
	amount   string
	detailFlags
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record cash received" }
func (*incomeCmd) Usage() string {
	return `gcb income -a <amount> [-c <currency>] [-d <date>] [-cat <category>]

  Records cash received into one currency of the cash book.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD), defaults to today")
	f.StringVar(&c.currency, "c", cashbook.USD, "Currency (USD or CDF)")
	f.StringVar(&c.amount, "a", "", "Amount received")
	c.detailFlags.register(f)
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	at, err := txTime(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount := cashbook.M(cashbook.ParseAmount(c.amount), strings.ToUpper(c.currency))
	tx := cashbook.NewIncome(uuid.NewString(), at, amount, c.details())
	return recordTransaction(tx, renderer.Transaction)
}

// --- Expense Command ---

type expenseCmd struct {
	date     string
	currency string
	amount   string
	detailFlags
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record cash paid out" }
func (*expenseCmd) Usage() string {
	return `gcb expense -a <amount> [-c <currency>] [-d <date>] [-cat <category>]

  Records cash paid out of one currency of the cash book.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD), defaults to today")
	f.StringVar(&c.currency, "c", cashbook.USD, "Currency (USD or CDF)")
	f.StringVar(&c.amount, "a", "", "Amount paid")
	c.detailFlags.register(f)
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	at, err := txTime(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount := cashbook.M(cashbook.ParseAmount(c.amount), strings.ToUpper(c.currency))
	tx := cashbook.NewExpense(uuid.NewString(), at, amount, c.details())
	return recordTransaction(tx, renderer.Transaction)
}

// --- Transfer Command ---

type transferCmd struct {
	date     string
	currency string
	amount   string
	toAmount string
	rate     string
	detailFlags
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "exchange cash between the two currencies" }
func (*transferCmd) Usage() string {
	return `gcb transfer -a <amount> -c <currency> [-to <amount> | -rate <rate>] [-d <date>]

  Exchanges cash from one currency of the cash book into the other. Give the
  received amount with -to, or an exchange rate (1 USD in CDF) with -rate and
  let the received amount be derived. The default rate from setup applies when
  both are omitted.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD), defaults to today")
	f.StringVar(&c.currency, "c", cashbook.USD, "Source currency (USD or CDF)")
	f.StringVar(&c.amount, "a", "", "Amount leaving the source currency")
	f.StringVar(&c.toAmount, "to", "", "Amount entering the destination currency")
	f.StringVar(&c.rate, "rate", "", "Exchange rate, as 1 USD in CDF")
	c.detailFlags.register(f)
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	at, err := txTime(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	rate := cashbook.ParseAmount(c.rate)
	if rate.IsZero() && c.toAmount == "" {
		// fall back to the default rate recorded at setup
		settings, err := Store().LoadSettings()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		rate = settings.ExchangeRate()
	}

	source := strings.ToUpper(c.currency)
	from := cashbook.M(cashbook.ParseAmount(c.amount), source)
	var to cashbook.Money
	if c.toAmount != "" {
		to = cashbook.M(cashbook.ParseAmount(c.toAmount), cashbook.Other(source))
	}

	category := c.category
	if category == "" {
		category = "currency_exchange"
	}
	d := c.details()
	d.Category = category

	tx := cashbook.NewTransfer(uuid.NewString(), at, from, to, rate, d)
	return recordTransaction(tx, renderer.Transaction)
}
