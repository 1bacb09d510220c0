package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vilelam/tradebook"
	"github.com/vilelam/tradebook/renderer"
)

type summaryCmd struct {
	online bool
	token  string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the journal at a glance" }
func (*summaryCmd) Usage() string {
	return `tbk summary [-online] [-token <token>]

  Shows the cash balance, the invested and sold totals, the open positions
  and the tax figures on a single report.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.online, "online", false, "Fetch current quotes to value the positions")
	f.StringVar(&c.token, "token", os.Getenv("BRAPI_TOKEN"), "brapi.dev API token")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var quotes tradebook.QuoteProvider
	if c.online {
		quotes = tradebook.NewBrapi(c.token)
	}

	printMarkdown(renderer.SummaryMarkdown(ledger.NewSummary(quotes)))
	return subcommands.ExitSuccess
}
