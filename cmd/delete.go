package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	id int64
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction from the journal" }
func (*deleteCmd) Usage() string {
	return `tbk delete -id <id>

  Deletes the transaction with the given sequence number, reverting its
  effect on the positions and the cash balance, and rewrites the journal.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Sequence number of the transaction to delete (see the log report)")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if !ledger.Remove(c.id) {
		fmt.Fprintf(os.Stderr, "Error: no transaction with id %d\n", c.id)
		return subcommands.ExitFailure
	}

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted transaction %d. New balance: %s\n", c.id, ledger.Balance())
	return subcommands.ExitSuccess
}
