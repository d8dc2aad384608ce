package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the cash book file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `gcb fmt

  Validates and formats the cash book file. This command reads all
  transactions, validates them, sorts them by date, and writes them back in a
  canonical JSONL format.
`
}

func (*fmtCmd) SetFlags(*flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := Store()
	ledger, err := store.LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load cash book: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.SaveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving cash book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %d transactions.\n", ledger.Len())
	return subcommands.ExitSuccess
}
