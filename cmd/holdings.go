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

type holdingsCmd struct {
	online bool
	token  string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "show the open positions" }
func (*holdingsCmd) Usage() string {
	return `tbk holdings [-online] [-token <token>]

  Shows the open positions with their weighted average cost. With -online,
  positions are valued at the current quote; without it, at their average
  cost.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.online, "online", false, "Fetch current quotes to value the positions")
	f.StringVar(&c.token, "token", os.Getenv("BRAPI_TOKEN"), "brapi.dev API token")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var quotes tradebook.QuoteProvider
	if c.online {
		quotes = tradebook.NewBrapi(c.token)
	}

	summary := ledger.NewSummary(quotes)
	printMarkdown(renderer.HoldingsMarkdown(summary.Holdings))
	return subcommands.ExitSuccess
}
