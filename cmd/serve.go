package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/giya/cashbook/access"
	"github.com/giya/cashbook/logger"
	"github.com/giya/cashbook/server"
)

type serveCmd struct {
	addr  string
	allow string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the cash book HTTP API" }
func (*serveCmd) Usage() string {
	return `gcb serve [-addr <host:port>] [-allow <emails>]

  Serves the cash book over HTTP: balances, summaries, the ledger, category
  totals, and transaction recording. Reads are open; writes require an
  X-Principal header matching the -allow list. Without -allow every principal
  may write.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", ":8321", "Address to listen on")
	f.StringVar(&c.allow, "allow", "", "Comma-separated emails allowed to record transactions")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logger.New()
	policy := access.ParseAllowList(c.allow)

	srv := &http.Server{
		Addr:              c.addr,
		Handler:           server.New(Store(), policy, log).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info().Str("addr", c.addr).Msg("serving cash book")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
