package cmd

import (
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"
	"github.com/vilelam/tradebook"
)

// setupEditJournal appends a deposit and a buy, so ids 1 and 2 exist.
func setupEditJournal(t *testing.T) {
	t.Helper()
	setupAppFiles(t)
	appendTransaction(tradebook.NewDeposit(tradebook.MustParseDate("2025-01-10"), "", tradebook.M(1000)))
	appendTransaction(tradebook.NewBuy(tradebook.MustParseDate("2025-01-15"), "", "PETR4",
		tradebook.Q(100), tradebook.M(10), tradebook.M(5), tradebook.Money{}))
}

func runEdit(t *testing.T, c *editCmd) subcommands.ExitStatus {
	t.Helper()
	return c.Execute(context.Background(), flag.NewFlagSet("edit", flag.ContinueOnError))
}

func TestEdit_ChangesPriceInPlace(t *testing.T) {
	setupEditJournal(t)

	if status := runEdit(t, &editCmd{id: 2, price: "11"}); status != subcommands.ExitSuccess {
		t.Fatalf("edit returned %v", status)
	}

	ledger, err := DecodeLedger()
	if err != nil {
		t.Fatalf("DecodeLedger() failed: %v", err)
	}
	if ledger.Len() != 2 {
		t.Fatalf("got %d transactions, want 2", ledger.Len())
	}
	// The old order is reverted and the new one applied: 1000 - (100*11 + 5).
	if want := tradebook.M(-105); !ledger.Balance().Equal(want) {
		t.Errorf("balance = %s, want %s", ledger.Balance(), want)
	}
	pos, ok := ledger.Holdings()["PETR4"]
	if !ok {
		t.Fatal("PETR4 position is gone after the edit")
	}
	if want := tradebook.M(11.05); !pos.AverageCost.Equal(want) {
		t.Errorf("average cost = %s, want %s", pos.AverageCost, want)
	}

	// The edit survives a reload with the same id.
	if got := ledger.Get(2); got == nil {
		t.Error("transaction 2 lost its id")
	} else if buy, ok := got.(tradebook.Buy); !ok {
		t.Errorf("transaction 2 is a %T, want a buy", got)
	} else if !buy.Price.Equal(tradebook.M(11)) {
		t.Errorf("reloaded price = %s, want %s", buy.Price, tradebook.M(11))
	}
}

func TestEdit_ChangesDepositAmount(t *testing.T) {
	setupEditJournal(t)

	if status := runEdit(t, &editCmd{id: 1, amount: "800"}); status != subcommands.ExitSuccess {
		t.Fatalf("edit returned %v", status)
	}

	ledger, err := DecodeLedger()
	if err != nil {
		t.Fatalf("DecodeLedger() failed: %v", err)
	}
	// 800 - (100*10 + 5).
	if want := tradebook.M(-205); !ledger.Balance().Equal(want) {
		t.Errorf("balance = %s, want %s", ledger.Balance(), want)
	}
}

func TestEdit_UnsetFlagsKeepRecordedValues(t *testing.T) {
	setupEditJournal(t)

	if status := runEdit(t, &editCmd{id: 2, memo: "rebalancing"}); status != subcommands.ExitSuccess {
		t.Fatalf("edit returned %v", status)
	}

	ledger, err := DecodeLedger()
	if err != nil {
		t.Fatalf("DecodeLedger() failed: %v", err)
	}
	// Only the memo changed, so the balance is untouched: 1000 - 1005.
	if want := tradebook.M(-5); !ledger.Balance().Equal(want) {
		t.Errorf("balance = %s, want %s", ledger.Balance(), want)
	}
	buy, ok := ledger.Get(2).(tradebook.Buy)
	if !ok {
		t.Fatalf("transaction 2 is a %T, want a buy", ledger.Get(2))
	}
	if buy.Memo != "rebalancing" {
		t.Errorf("memo = %q, want %q", buy.Memo, "rebalancing")
	}
	if !buy.Quantity.Equal(tradebook.Q(100)) || !buy.Price.Equal(tradebook.M(10)) {
		t.Errorf("quantity/price drifted: %s @ %s", buy.Quantity, buy.Price)
	}
}

func TestEdit_UnknownIdFails(t *testing.T) {
	setupEditJournal(t)

	if status := runEdit(t, &editCmd{id: 99, price: "11"}); status != subcommands.ExitFailure {
		t.Errorf("edit of unknown id returned %v, want %v", status, subcommands.ExitFailure)
	}
}

func TestEdit_BadAmountFails(t *testing.T) {
	setupEditJournal(t)

	if status := runEdit(t, &editCmd{id: 1, amount: "eight hundred"}); status != subcommands.ExitUsageError {
		t.Errorf("edit with a bad amount returned %v, want %v", status, subcommands.ExitUsageError)
	}
}
