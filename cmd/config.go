package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/vilelam/tradebook"
)

type configCmd struct {
	initialDeposit  float64
	stocksFee       float64
	percentPerTrade float64
	futuresFees     map[string]*float64
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "show or change the tax configuration" }
func (*configCmd) Usage() string {
	return `tbk config [-initial-deposit <amount>] [-stocks-fee <pct>] [-percent-per-trade <pct>] [-win <fee>] [-wdo <fee>] [-ind <fee>] [-dol <fee>] [-bit <fee>]

  Without flags, prints the current tax configuration. Each flag changes one
  parameter and saves the configuration file.
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	// Negative sentinel means the parameter is left unchanged.
	f.Float64Var(&c.initialDeposit, "initial-deposit", -1, "Initial deposit of the account")
	f.Float64Var(&c.stocksFee, "stocks-fee", -1, "Percent of |gross| charged on equity day trades")
	f.Float64Var(&c.percentPerTrade, "percent-per-trade", -1, "Percent of the balance allowed per day trade")

	c.futuresFees = make(map[string]*float64, len(tradebook.FuturesPrefixes))
	for _, prefix := range tradebook.FuturesPrefixes {
		fee := new(float64)
		*fee = -1
		c.futuresFees[prefix] = fee
		f.Float64Var(fee, strings.ToLower(prefix), -1, "Per-contract day-trade fee for "+prefix+" futures")
	}
}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	changed := false
	if c.initialDeposit >= 0 {
		cfg.InitialDeposit = tradebook.M(c.initialDeposit)
		changed = true
	}
	if c.stocksFee >= 0 {
		cfg.StocksPercentFee = decimal.NewFromFloat(c.stocksFee)
		changed = true
	}
	if c.percentPerTrade >= 0 {
		cfg.PercentPerTrade = decimal.NewFromFloat(c.percentPerTrade)
		changed = true
	}
	for prefix, fee := range c.futuresFees {
		if *fee >= 0 {
			cfg.FuturesFees[prefix] = tradebook.M(*fee)
			changed = true
		}
	}

	if changed {
		if err := SaveConfig(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Saved configuration to %s\n", *configFile)
	}

	if err := tradebook.EncodeConfig(os.Stdout, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
