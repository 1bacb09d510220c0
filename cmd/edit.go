package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/vilelam/tradebook"
)

type editCmd struct {
	id        int64
	date      string
	memo      string
	quantity  string
	price     string
	fees      string
	gross     string
	brokerage string
	amount    string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a recorded transaction in place" }
func (*editCmd) Usage() string {
	return `tbk edit -id <id> [-d <date>] [-q <quantity>] [-p <price>] [-f <fees>] [-g <gross>] [-b <brokerage>] [-a <amount>] [-m <memo>]

  Edits the transaction with the given sequence number: the old effect is
  reverted, the new one applied, and the journal rewritten. Flags left unset
  keep the recorded value; only flags matching the transaction kind apply
  (e.g. -a for capital movements, -q/-p/-f for swing orders). The asset of a
  trade cannot change: delete and re-enter instead.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Sequence number of the transaction to edit (see the log report)")
	f.StringVar(&c.date, "d", "", "New transaction date (YYYY-MM-DD)")
	f.StringVar(&c.memo, "m", "", "New rationale or note")
	f.StringVar(&c.quantity, "q", "", "New number of shares or contracts")
	f.StringVar(&c.price, "p", "", "New price per share")
	f.StringVar(&c.fees, "f", "", "New brokerage fees for a swing order")
	f.StringVar(&c.gross, "g", "", "New gross result of a day trade, signed")
	f.StringVar(&c.brokerage, "b", "", "New broker cost of a day trade")
	f.StringVar(&c.amount, "a", "", "New amount of a capital movement")
}

// overrideMoney parses a new amount, keeping the current one on an unset flag.
func overrideMoney(current tradebook.Money, s string) (tradebook.Money, error) {
	if s == "" {
		return current, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return current, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return tradebook.M(v), nil
}

// overrideQuantity parses a new quantity, keeping the current one on an unset
// flag.
func overrideQuantity(current tradebook.Quantity, s string) (tradebook.Quantity, error) {
	if s == "" {
		return current, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return current, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	return tradebook.Q(v), nil
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	old := ledger.Get(c.id)
	if old == nil {
		fmt.Fprintf(os.Stderr, "Error: no transaction with id %d\n", c.id)
		return subcommands.ExitFailure
	}

	day := old.When()
	if c.date != "" {
		day, err = tradebook.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	memo := func(current string) string {
		if c.memo != "" {
			return c.memo
		}
		return current
	}

	var tx tradebook.Transaction
	switch v := old.(type) {
	case tradebook.Buy:
		quantity, qErr := overrideQuantity(v.Quantity, c.quantity)
		price, pErr := overrideMoney(v.Price, c.price)
		fees, fErr := overrideMoney(v.Fees, c.fees)
		if err := firstError(qErr, pErr, fErr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		tx = tradebook.NewBuy(day, memo(v.Memo), v.Asset, quantity, price, fees, v.Result)

	case tradebook.Sell:
		quantity, qErr := overrideQuantity(v.Quantity, c.quantity)
		price, pErr := overrideMoney(v.Price, c.price)
		fees, fErr := overrideMoney(v.Fees, c.fees)
		if err := firstError(qErr, pErr, fErr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		tx = tradebook.NewSell(day, memo(v.Memo), v.Asset, quantity, price, fees, v.Result)

	case tradebook.DayTrade:
		quantity, qErr := overrideQuantity(v.Quantity, c.quantity)
		gross, gErr := overrideMoney(v.Gross, c.gross)
		brokerage, bErr := overrideMoney(v.Brokerage, c.brokerage)
		if err := firstError(qErr, gErr, bErr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		// The exchange fees follow the edited figures, like a fresh entry.
		fees := ledger.Config().DayTradeFees(v.Asset, gross, quantity)
		tx = tradebook.NewDayTrade(day, memo(v.Memo), v.Asset, quantity, gross, fees, brokerage)

	case tradebook.Deposit:
		amount, err := overrideMoney(v.Amount, c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		tx = tradebook.NewDeposit(day, memo(v.Memo), amount)

	case tradebook.Withdraw:
		amount, err := overrideMoney(v.Amount, c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		tx = tradebook.NewWithdraw(day, memo(v.Memo), amount)

	case tradebook.Fee:
		amount, err := overrideMoney(v.Amount, c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		tx = tradebook.NewFee(day, memo(v.Memo), amount)

	case tradebook.Adjust:
		amount, err := overrideMoney(v.Amount, c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		tx = tradebook.NewAdjust(day, memo(v.Memo), amount)

	default:
		fmt.Fprintf(os.Stderr, "Error: cannot edit a %s transaction\n", old.What())
		return subcommands.ExitFailure
	}

	if err := ledger.Replace(c.id, tx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Replaced transaction %d. New balance: %s\n", c.id, ledger.Balance())
	return subcommands.ExitSuccess
}

// firstError returns the first non-nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
