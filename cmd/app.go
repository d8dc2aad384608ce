// Package cmd implements the CLI application to keep a dual-currency cash book.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/giya/cashbook"
)

// Commands lists every subcommand. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&setupCmd{},
	&incomeCmd{},
	&expenseCmd{},
	&transferCmd{},
	&balanceCmd{},
	&dailyCmd{},
	&summaryCmd{},
	&ledgerCmd{},
	&categoriesCmd{},
	&closeCmd{},
	&fmtCmd{},
	&serveCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var cashbookFile = flag.String("cashbook-file", envOr(EnvCashBookFile, "cashbook.jsonl"), "Path to the cash book transactions file (JSONL format)")
var settingsFile = flag.String("settings-file", envOr(EnvSettingsFile, "settings.json"), "Path to the cash book settings file")
var closesFile = flag.String("closes-file", envOr(EnvClosesFile, "closes.jsonl"), "Path to the daily close history file (JSONL format)")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Store builds the file store from the global flags.
func Store() cashbook.Store {
	return cashbook.Store{
		CashBookFile: *cashbookFile,
		SettingsFile: *settingsFile,
		ClosesFile:   *closesFile,
	}
}

// loadBook reads the ledger and the initial balances together, the common
// prelude of every reporting command.
func loadBook() (*cashbook.Ledger, cashbook.BalanceSettings, error) {
	s := Store()
	ledger, err := s.LoadLedger()
	if err != nil {
		return nil, cashbook.BalanceSettings{}, err
	}
	settings, err := s.LoadSettings()
	if err != nil {
		return nil, cashbook.BalanceSettings{}, err
	}
	return ledger, settings.Balances(), nil
}

// recordTransaction validates and appends a transaction, printing the
// one-line confirmation shared by the recording commands.
func recordTransaction(tx cashbook.Transaction, confirm func(cashbook.Transaction) string) subcommands.ExitStatus {
	tx, err := Store().AppendTransaction(tx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println(confirm(tx))
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer is unavailable.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// parseDayFlag parses a -d value, defaulting to today when empty.
func parseDayFlag(s string) (cashbook.Date, error) {
	if s == "" {
		return cashbook.Today(), nil
	}
	return cashbook.ParseDate(s)
}
