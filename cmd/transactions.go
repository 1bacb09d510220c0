package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vilelam/tradebook"
)

// --- Buy Command ---

type buyCmd struct {
	date     string
	asset    string
	quantity float64
	price    float64
	fees     float64
	online   bool
	token    string
	memo     string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a swing-trade purchase" }
func (*buyCmd) Usage() string {
	return `buy -s <asset> -q <quantity> -p <price> [-f <fees>] [-d <date>] [-online] [-m <memo>]

  Records a swing-trade purchase. The total cost (quantity*price + fees) is
  debited from the cash balance and the position average cost is updated.
  With -online, the entry result is recorded against the current quote.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", tradebook.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.asset, "s", "", "Asset ticker")
	f.Float64Var(&c.quantity, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "p", 0, "Price per share")
	f.Float64Var(&c.fees, "f", 0, "Brokerage fees for the order")
	f.BoolVar(&c.online, "online", false, "Fetch the current quote to record the entry result")
	f.StringVar(&c.token, "token", os.Getenv("BRAPI_TOKEN"), "brapi.dev API token")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.asset == "" || c.quantity <= 0 || c.price <= 0 || c.fees < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if err := tradebook.ValidateSymbol(c.asset); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	day, err := tradebook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	cost := tradebook.M(c.price).Mul(tradebook.Q(c.quantity)).Add(tradebook.M(c.fees))
	if cost.GreaterThan(ledger.Balance()) {
		fmt.Fprintf(os.Stderr, "Error: order costs %s but the balance is %s\n", cost, ledger.Balance())
		return subcommands.ExitFailure
	}

	// The entry result is recorded against the current quote, falling back to
	// the entry price itself when no quote is available.
	current := tradebook.M(c.price)
	if c.online {
		quote, err := tradebook.NewBrapi(c.token).Quote(c.asset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: no quote for %q, using the entry price: %v\n", c.asset, err)
		} else {
			current = quote
		}
	}
	result := tradebook.SwingResult(tradebook.CmdBuy, tradebook.M(c.price), current,
		tradebook.Q(c.quantity), tradebook.M(c.fees))

	tx := tradebook.NewBuy(day, c.memo, c.asset,
		tradebook.Q(c.quantity), tradebook.M(c.price), tradebook.M(c.fees), result)
	return appendTransaction(tx)
}

// --- Sell Command ---

type sellCmd struct {
	date     string
	asset    string
	quantity float64
	price    float64
	fees     float64
	memo     string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a swing-trade sale" }
func (*sellCmd) Usage() string {
	return `sell -s <asset> -q <quantity> -p <price> [-f <fees>] [-d <date>] [-m <memo>]

  Records a swing-trade sale. The proceeds (quantity*price - fees) are
  credited to the cash balance; the realized result is recorded against the
  position average cost. Selling more than the position holds disposes of
  the whole position.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", tradebook.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.asset, "s", "", "Asset ticker")
	f.Float64Var(&c.quantity, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "p", 0, "Price per share")
	f.Float64Var(&c.fees, "f", 0, "Brokerage fees for the order")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.asset == "" || c.quantity <= 0 || c.price <= 0 || c.fees < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if err := tradebook.ValidateSymbol(c.asset); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	day, err := tradebook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	// The realized result is recorded at entry against the position average
	// cost, so the journal is needed even for an append.
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	reference := tradebook.M(c.price)
	key := tradebook.NormalizeSymbol(c.asset)
	if pos, ok := ledger.Holdings()[key]; ok {
		reference = pos.AverageCost
	} else {
		fmt.Fprintf(os.Stderr, "Warning: no open position on %q, result computed against the sale price\n", key)
	}
	result := tradebook.SwingResult(tradebook.CmdSell, tradebook.M(c.price), reference,
		tradebook.Q(c.quantity), tradebook.M(c.fees))

	tx := tradebook.NewSell(day, c.memo, c.asset,
		tradebook.Q(c.quantity), tradebook.M(c.price), tradebook.M(c.fees), result)
	return appendTransaction(tx)
}

// --- DayTrade Command ---

type daytradeCmd struct {
	date      string
	asset     string
	quantity  float64
	gross     float64
	brokerage float64
	memo      string
}

func (*daytradeCmd) Name() string     { return "daytrade" }
func (*daytradeCmd) Synopsis() string { return "record an intraday round trip by its result" }
func (*daytradeCmd) Usage() string {
	return `daytrade -s <asset> -q <quantity> -g <gross> [-b <brokerage>] [-d <date>] [-m <memo>]

  Records a day trade by its aggregate gross result. The exchange fees are
  computed from the configuration fee table (per contract for futures, a
  percentage of the gross for equities) and the net result moves the cash
  balance.
`
}

func (c *daytradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", tradebook.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.asset, "s", "", "Asset ticker (e.g. WINZ25, PETR4)")
	f.Float64Var(&c.quantity, "q", 0, "Number of contracts or shares")
	f.Float64Var(&c.gross, "g", 0, "Gross result of the round trip, signed")
	f.Float64Var(&c.brokerage, "b", 0, "Broker cost of the round trip")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *daytradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.asset == "" || c.quantity <= 0 || c.brokerage < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if err := tradebook.ValidateSymbol(c.asset); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	day, err := tradebook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	gross := tradebook.M(c.gross)
	quantity := tradebook.Q(c.quantity)
	fees := cfg.DayTradeFees(c.asset, gross, quantity)

	tx := tradebook.NewDayTrade(day, c.memo, c.asset, quantity, gross, fees, tradebook.M(c.brokerage))
	return appendTransaction(tx)
}

// --- Deposit Command ---

type depositCmd struct {
	date   string
	amount float64
	memo   string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "record a cash deposit into the account" }
func (*depositCmd) Usage() string {
	return `deposit -a <amount> [-d <date>] [-m <memo>]

  Records a cash deposit into the trading account.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", tradebook.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.Float64Var(&c.amount, "a", 0, "Amount of cash to deposit")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := tradebook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return appendTransaction(tradebook.NewDeposit(day, c.memo, tradebook.M(c.amount)))
}

// --- Withdraw Command ---

type withdrawCmd struct {
	date   string
	amount float64
	memo   string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "record a cash withdrawal from the account" }
func (*withdrawCmd) Usage() string {
	return `withdraw -a <amount> [-d <date>] [-m <memo>]

  Records a cash withdrawal from the trading account.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", tradebook.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.Float64Var(&c.amount, "a", 0, "Amount of cash to withdraw")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := tradebook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return appendTransaction(tradebook.NewWithdraw(day, c.memo, tradebook.M(c.amount)))
}

// --- Fee Command ---

type feeCmd struct {
	date   string
	amount float64
	memo   string
}

func (*feeCmd) Name() string     { return "fee" }
func (*feeCmd) Synopsis() string { return "record a platform or custody charge" }
func (*feeCmd) Usage() string {
	return `fee -a <amount> [-d <date>] [-m <memo>]

  Records a platform or custody charge debited from the account.
`
}

func (c *feeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", tradebook.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.Float64Var(&c.amount, "a", 0, "Amount charged")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note")
}

func (c *feeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := tradebook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return appendTransaction(tradebook.NewFee(day, c.memo, tradebook.M(c.amount)))
}

// --- Adjust Command ---

type adjustCmd struct {
	date   string
	amount float64
	memo   string
}

func (*adjustCmd) Name() string     { return "adjust" }
func (*adjustCmd) Synopsis() string { return "record a manual balance correction" }
func (*adjustCmd) Usage() string {
	return `adjust -a <amount> [-d <date>] [-m <memo>]

  Records a signed manual correction of the cash balance, e.g. to absorb a
  rounding difference against the broker statement.
`
}

func (c *adjustCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", tradebook.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.Float64Var(&c.amount, "a", 0, "Signed amount of the correction")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note")
}

func (c *adjustCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := tradebook.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return appendTransaction(tradebook.NewAdjust(day, c.memo, tradebook.M(c.amount)))
}
