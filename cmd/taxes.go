package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vilelam/tradebook/renderer"
)

type taxesCmd struct{}

func (*taxesCmd) Name() string     { return "taxes" }
func (*taxesCmd) Synopsis() string { return "show the withholding and tax due per regime" }
func (*taxesCmd) Usage() string {
	return `tbk taxes

  Shows the tax report: the withholding (IRRF) and the tax due (DARF) for
  the swing-trade and day-trade regimes, derived from the full journal.
`
}

func (c *taxesCmd) SetFlags(f *flag.FlagSet) {}

func (c *taxesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TaxesMarkdown(ledger.ComputeTaxes()))
	return subcommands.ExitSuccess
}
