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

type logCmd struct {
	period string
	start  string
	date   string
	asset  string
	kind   string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list transactions recorded in the journal" }
func (*logCmd) Usage() string {
	return `tbk log [-p <period> | -s <start_date>] [-d <end_date>] [-a <asset>] [-k <kind>]

  Lists transactions from the journal, with options for filtering by period,
  asset, or transaction kind.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Predefined period (day, week, month, quarter, year).")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&c.date, "d", "", "The end date for the range.")
	f.StringVar(&c.asset, "a", "", "Only transactions on this asset.")
	f.StringVar(&c.kind, "k", "", "Only transactions of this kind (buy, sell, daytrade, deposit, withdraw, fee, adjust).")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var filters []func(tradebook.Transaction) bool

	// If no date range flags are provided, use the full range of the journal.
	if c.start != "" || c.date != "" || c.period != "" {
		endDateStr := c.date
		if endDateStr == "" {
			endDateStr = tradebook.Today().String()
		}
		endDate, err := tradebook.ParseDate(endDateStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitFailure
		}

		var periodRange tradebook.Range
		if c.start != "" {
			startDate, err := tradebook.ParseDate(c.start)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
				return subcommands.ExitFailure
			}
			periodRange = tradebook.NewRange(startDate, endDate)
		} else {
			period, err := tradebook.ParsePeriod(c.period)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
				return subcommands.ExitFailure
			}
			periodRange = period.Range(endDate)
		}
		filters = append(filters, tradebook.ByRange(periodRange))
	}

	if c.asset != "" {
		filters = append(filters, tradebook.ByAsset(c.asset))
	}
	if c.kind != "" {
		filters = append(filters, tradebook.ByKind(tradebook.CommandType(c.kind)))
	}

	var transactions []tradebook.Transaction
	for _, tx := range ledger.Transactions(filters...) {
		transactions = append(transactions, tx)
	}

	printMarkdown(renderer.LogMarkdown("Journal", transactions))
	return subcommands.ExitSuccess
}
