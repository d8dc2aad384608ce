package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/giya/cashbook"
)

type setupCmd struct {
	usd  string
	cdf  string
	rate string
}

func (*setupCmd) Name() string     { return "setup" }
func (*setupCmd) Synopsis() string { return "initialize the cash book" }
func (*setupCmd) Usage() string {
	return `gcb setup -usd <amount> -cdf <amount> [-rate <cdf_per_usd>]

  Records the initial balances of both currencies and the default exchange
  rate, and marks the book as ready.
`
}

func (c *setupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.usd, "usd", "0", "Initial USD balance")
	f.StringVar(&c.cdf, "cdf", "0", "Initial CDF balance")
	f.StringVar(&c.rate, "rate", "", "Default exchange rate in CDF per USD")
}

func (c *setupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	usd := cashbook.ParseAmount(c.usd)
	cdf := cashbook.ParseAmount(c.cdf)
	if usd.IsNegative() || cdf.IsNegative() {
		fmt.Fprintln(os.Stderr, "Error: initial balances cannot be negative")
		return subcommands.ExitUsageError
	}

	store := Store()
	settings, err := store.LoadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	settings.SetBalances(cashbook.BalanceSettings{InitialUSD: usd, InitialCDF: cdf})
	if c.rate != "" {
		rate := cashbook.ParseAmount(c.rate)
		if rate.LessThanOrEqual(decimal.Zero) {
			fmt.Fprintln(os.Stderr, "Error: -rate must be a positive number")
			return subcommands.ExitUsageError
		}
		settings.SetExchangeRate(rate)
	}
	settings.MarkSetupComplete()

	if err := store.SaveSettings(settings); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Cash book ready. Initial balances %s / %s\n",
		cashbook.FormatCurrency(usd, cashbook.USD),
		cashbook.FormatCurrency(cdf, cashbook.CDF))
	return subcommands.ExitSuccess
}
