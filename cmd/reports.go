package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/giya/cashbook"
	"github.com/giya/cashbook/renderer"
)

// --- Balance Command ---

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the current balance of both currencies" }
func (*balanceCmd) Usage() string {
	return `gcb balance

  Displays the current USD and CDF balances: the initial balances plus every
  recorded transaction.
`
}
func (*balanceCmd) SetFlags(*flag.FlagSet) {}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, settings, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	b := cashbook.CurrentBalance(settings, ledger.Select())
	printMarkdown(renderer.BalanceMarkdown(b))
	return subcommands.ExitSuccess
}

// --- Daily Command ---

type dailyCmd struct {
	date string
}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display the cash book summary of one day" }
func (*dailyCmd) Usage() string {
	return `gcb daily [-d <date>]

  Displays the opening balances, the day's flows and the closing balances.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date for the report (defaults to today)")
}

func (c *dailyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDayFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger, settings, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	s := cashbook.NewSummary(settings, ledger.Select(), day)
	printMarkdown(renderer.SummaryMarkdown(&s))
	return subcommands.ExitSuccess
}

// --- Summary Command ---

type summaryCmd struct {
	start string
	date  string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the cash book summary of a date range" }
func (*summaryCmd) Usage() string {
	return `gcb summary -s <start_date> [-d <end_date>]

  Displays the opening balances, the range's flows and the closing balances.
  The end date defaults to today.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "The start date of the range (YYYY-MM-DD)")
	f.StringVar(&c.date, "d", "", "The end date of the range, defaults to today")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.start == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	from, err := cashbook.ParseDate(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	to, err := parseDayFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger, settings, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	s := cashbook.NewRangeSummary(settings, ledger.Select(), from, to)
	printMarkdown(renderer.SummaryMarkdown(&s))
	return subcommands.ExitSuccess
}

// --- Ledger Command ---

type ledgerCmd struct {
	head int
}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "display the ledger with running balances" }
func (*ledgerCmd) Usage() string {
	return `gcb ledger [-head <n>]

  Displays every transaction with the balances of both currencies after it,
  newest first.
`
}

func (c *ledgerCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the N most recent entries")
}

func (c *ledgerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, settings, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	entries := ledger.Entries(settings)
	if c.head > 0 && len(entries) > c.head {
		entries = entries[:c.head]
	}
	printMarkdown(renderer.LedgerMarkdown(entries))
	return subcommands.ExitSuccess
}

// --- Categories Command ---

type categoriesCmd struct {
	kind string
	list bool
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "display totals grouped by category" }
func (*categoriesCmd) Usage() string {
	return `gcb categories [-t <type>] [-list]

  Displays the per-category totals of both currencies. With -list, shows the
  category catalog instead.
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "t", "", "Restrict to one transaction type (income, expense, transfer)")
	f.BoolVar(&c.list, "list", false, "List the available categories instead of totals")
}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		for _, cat := range cashbook.Categories() {
			if c.kind != "" && string(cat.Kind) != c.kind {
				continue
			}
			fmt.Printf("%-20s %s (%s)\n", cat.Value, cat.Label, cat.Kind)
		}
		return subcommands.ExitSuccess
	}

	ledger, _, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var filters []func(cashbook.Transaction) bool
	title := "Totals by Category"
	if c.kind != "" {
		kind, err := cashbook.ParseKind(c.kind)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, cashbook.ByKind(kind))
		title = fmt.Sprintf("%s by Category", kindTitle(kind))
	}

	totals := cashbook.CategoryTotals(ledger.Select(filters...))
	printMarkdown(renderer.CategoryTotalsMarkdown(title, totals))
	return subcommands.ExitSuccess
}

func kindTitle(kind cashbook.Kind) string {
	switch kind {
	case cashbook.KindIncome:
		return "Income"
	case cashbook.KindExpense:
		return "Expenses"
	default:
		return "Transfers"
	}
}

// --- Close Command ---

type closeCmd struct {
	date string
}

func (*closeCmd) Name() string     { return "close" }
func (*closeCmd) Synopsis() string { return "record a day's closing balances in the history" }
func (*closeCmd) Usage() string {
	return `gcb close [-d <date>]

  Computes the day's opening and closing balances and appends them to the
  close history file.
`
}

func (c *closeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Day to close (defaults to today)")
}

func (c *closeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDayFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger, settings, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	s := cashbook.NewSummary(settings, ledger.Select(), day)
	if err := Store().AppendDailyClose(cashbook.NewDailyClose(s)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Closed %s: %s / %s\n", day,
		cashbook.FormatCurrency(s.Closing.USD, cashbook.USD),
		cashbook.FormatCurrency(s.Closing.CDF, cashbook.CDF))
	return subcommands.ExitSuccess
}
