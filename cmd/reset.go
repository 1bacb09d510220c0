package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vilelam/tradebook"
)

type resetCmd struct {
	scope string
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "clear a domain of the journal" }
func (*resetCmd) Usage() string {
	return `tbk reset -scope <all|swing|daytrade|capital> [-f]

  Clears the selected domain of the journal and recomputes the cash balance
  from the remaining transactions. The tax configuration is preserved; after
  a full reset the balance is back to the configured initial deposit.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scope, "scope", "", "Domain to clear: all, swing, daytrade or capital")
	f.BoolVar(&c.force, "f", false, "Do not ask for confirmation")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	scope, err := tradebook.ParseResetScope(c.scope)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if !c.force {
		fmt.Printf("About to clear the %q domain of %s. Proceed? [y/N] ", scope, *ledgerFile)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	ledger.Reset(scope)

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Cleared %q. New balance: %s\n", scope, ledger.Balance())
	return subcommands.ExitSuccess
}
