package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/vilelam/tradebook"
)

func day(d int) tradebook.Date { return tradebook.NewDate(2025, time.March, d) }

func TestTransaction(t *testing.T) {
	testCases := []struct {
		tx   tradebook.Transaction
		want string
	}{
		{tradebook.NewBuy(day(1), "", "PETR4", tradebook.Q(100), tradebook.M(10), tradebook.M(5), tradebook.Money{}), "Bought"},
		{tradebook.NewSell(day(2), "", "PETR4", tradebook.Q(50), tradebook.M(12), tradebook.M(2), tradebook.Money{}), "Sold"},
		{tradebook.NewDayTrade(day(3), "", "WINZ25", tradebook.Q(2), tradebook.M(150), tradebook.M(3), tradebook.M(1.5)), "Day traded"},
		{tradebook.NewDeposit(day(4), "", tradebook.M(500)), "Deposited"},
		{tradebook.NewWithdraw(day(5), "", tradebook.M(200)), "Withdrew"},
		{tradebook.NewFee(day(6), "", tradebook.M(19.9)), "Charged fee"},
		{tradebook.NewAdjust(day(7), "", tradebook.M(-0.1)), "Adjusted balance"},
	}
	for _, tc := range testCases {
		got := Transaction(tc.tx)
		if !strings.HasPrefix(got, tc.want) {
			t.Errorf("Transaction(%s) = %q, want prefix %q", tc.tx.What(), got, tc.want)
		}
	}
}

func TestLogMarkdown(t *testing.T) {
	txs := []tradebook.Transaction{
		tradebook.NewDeposit(day(1), "", tradebook.M(500)),
		tradebook.NewBuy(day(2), "", "PETR4", tradebook.Q(100), tradebook.M(10), tradebook.M(5), tradebook.Money{}),
	}
	md := LogMarkdown("Journal", txs)

	for _, want := range []string{"# Journal", "| Id | Date |", "PETR4", "Deposited", "**Total**"} {
		if !strings.Contains(md, want) {
			t.Errorf("log markdown misses %q:\n%s", want, md)
		}
	}
}

func TestLogMarkdown_Empty(t *testing.T) {
	md := LogMarkdown("Journal", nil)
	if !strings.Contains(md, "No transactions") {
		t.Errorf("empty log should say so:\n%s", md)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	ledger := tradebook.NewLedger()
	ledger.Append(
		tradebook.NewDeposit(day(1), "", tradebook.M(2000)),
		tradebook.NewBuy(day(2), "", "PETR4", tradebook.Q(100), tradebook.M(10), tradebook.M(5), tradebook.Money{}),
		tradebook.NewDayTrade(day(3), "", "WINZ25", tradebook.Q(2), tradebook.M(150), tradebook.M(3), tradebook.M(1.5)),
	)

	md := SummaryMarkdown(ledger.NewSummary(nil))

	for _, want := range []string{
		"# Journal Summary",
		"Cash Balance",
		"Total Invested",
		"## Open Positions",
		"PETR4",
		"## Swing Trade",
		"## Day Trade",
		"Tax Due (DARF)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("summary markdown misses %q:\n%s", want, md)
		}
	}
	// No quote provider: the price column flags the average cost fallback.
	if !strings.Contains(md, "*") {
		t.Errorf("offline summary should flag prices as fallbacks:\n%s", md)
	}
}

func TestHoldingsMarkdown_Empty(t *testing.T) {
	md := HoldingsMarkdown(nil)
	if !strings.Contains(md, "No open positions") {
		t.Errorf("empty holdings should say so:\n%s", md)
	}
}

func TestTaxesMarkdown(t *testing.T) {
	ledger := tradebook.NewLedger()
	ledger.Append(
		tradebook.NewSell(day(3), "", "PETR4", tradebook.Q(100), tradebook.M(50), tradebook.Money{}, tradebook.M(1000)),
	)

	md := TaxesMarkdown(ledger.ComputeTaxes())

	for _, want := range []string{"# Tax Report", "## Swing Trade", "## Day Trade", "## Totals", "Withholding (IRRF)"} {
		if !strings.Contains(md, want) {
			t.Errorf("tax markdown misses %q:\n%s", want, md)
		}
	}
}
