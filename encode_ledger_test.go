package tradebook

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestEncodeTransaction(t *testing.T) {
	testCases := []struct {
		name string
		tx   Transaction
		want string
	}{
		{
			name: "buy",
			tx:   NewBuy(NewDate(2025, time.January, 15), "", "PETR4", Q(100), M(10), M(5), Money{}),
			want: `{"command":"buy","date":"2025-01-15","asset":"PETR4","quantity":100,"price":10,"fees":5}`,
		},
		{
			name: "sell with memo and result",
			tx:   NewSell(NewDate(2025, time.February, 3), "trim", "PETR4", Q(50), M(12), M(2), M(95.5)),
			want: `{"command":"sell","date":"2025-02-03","memo":"trim","asset":"PETR4","quantity":50,"price":12,"fees":2,"result":95.5}`,
		},
		{
			name: "daytrade",
			tx:   NewDayTrade(NewDate(2025, time.February, 10), "", "WINZ25", Q(2), M(150), M(3), M(1.5)),
			want: `{"command":"daytrade","date":"2025-02-10","asset":"WINZ25","quantity":2,"gross":150,"fees":3,"brokerage":1.5,"net":145.5}`,
		},
		{
			name: "deposit",
			tx:   NewDeposit(NewDate(2025, time.January, 10), "", M(500)),
			want: `{"command":"deposit","date":"2025-01-10","amount":500}`,
		},
		{
			name: "withdraw stores a negative amount",
			tx:   NewWithdraw(NewDate(2025, time.March, 1), "", M(200)),
			want: `{"command":"withdraw","date":"2025-03-01","amount":-200}`,
		},
		{
			name: "adjust keeps its sign",
			tx:   NewAdjust(NewDate(2025, time.March, 8), "rounding", M(-0.1)),
			want: `{"command":"adjust","date":"2025-03-08","memo":"rounding","amount":-0.1}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := EncodeTransaction(&buf, tc.tx); err != nil {
				t.Fatalf("EncodeTransaction() failed: %v", err)
			}
			got := strings.TrimSpace(buf.String())
			if got != tc.want {
				t.Errorf("got  %s\nwant %s", got, tc.want)
			}
		})
	}
}

func TestLedgerRoundTrip(t *testing.T) {
	original := NewLedger()
	original.Append(
		NewDeposit(NewDate(2025, time.January, 10), "", M(2000)),
		NewBuy(NewDate(2025, time.January, 15), "", "PETR4", Q(100), M(10), M(5), Money{}),
		NewSell(NewDate(2025, time.February, 3), "trim", "PETR4", Q(50), M(12), M(2), M(95.5)),
		NewDayTrade(NewDate(2025, time.February, 10), "", "WINZ25", Q(2), M(150), M(3), M(1.5)),
		NewWithdraw(NewDate(2025, time.March, 1), "", M(200)),
	)

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, original); err != nil {
		t.Fatalf("EncodeLedger() failed: %v", err)
	}

	decoded, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger() failed: %v", err)
	}

	if decoded.Len() != original.Len() {
		t.Fatalf("decoded %d transactions, want %d", decoded.Len(), original.Len())
	}
	assertMoney(t, "balance", decoded.CashBalance(), original.CashBalance())

	p := position(t, decoded.Holdings(), "PETR4")
	q := position(t, original.Holdings(), "PETR4")
	assertQuantity(t, "quantity", p.Quantity, q.Quantity)
	assertMoney(t, "average cost", p.AverageCost, q.AverageCost)

	// Sequence numbers survive the round trip.
	for i := int64(1); i <= 5; i++ {
		if decoded.Get(i) == nil {
			t.Errorf("transaction %d lost in the round trip", i)
		}
	}
}

func TestEncodeLedger_CanonicalForm(t *testing.T) {
	// Encoding, decoding and encoding again yields the same bytes.
	ledger := NewLedger()
	ledger.Append(
		NewDeposit(NewDate(2025, time.March, 1), "", M(100)),
		NewDeposit(NewDate(2025, time.January, 1), "", M(200)),
		NewBuy(NewDate(2025, time.February, 1), "", "VALE3", Q(10), M(60), M(1), Money{}),
	)

	var first bytes.Buffer
	if err := EncodeLedger(&first, ledger); err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodeLedger(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	var second bytes.Buffer
	if err := EncodeLedger(&second, decoded); err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Errorf("canonical form is not stable:\nfirst:\n%s\nsecond:\n%s", first.String(), second.String())
	}
}

func TestDecodeLedger_MalformedAmountContributesNothing(t *testing.T) {
	journal := `{"command":"deposit","date":"2025-01-10","amount":500}
{"command":"deposit","date":"2025-01-11"}
{"command":"daytrade","date":"2025-01-12","asset":"WINZ25","quantity":1}
`
	ledger, err := DecodeLedger(strings.NewReader(journal))
	if err != nil {
		t.Fatalf("DecodeLedger() failed: %v", err)
	}

	if ledger.Len() != 3 {
		t.Fatalf("decoded %d transactions, want 3", ledger.Len())
	}
	// The damaged records decode with zero amounts and leave the balance to
	// the healthy deposit alone.
	assertMoney(t, "balance", ledger.CashBalance(), M(500))
}

func TestDecodeLedger_SkipsBlankLines(t *testing.T) {
	journal := "\n{\"command\":\"deposit\",\"date\":\"2025-01-10\",\"amount\":500}\n\n"
	ledger, err := DecodeLedger(strings.NewReader(journal))
	if err != nil {
		t.Fatalf("DecodeLedger() failed: %v", err)
	}
	if ledger.Len() != 1 {
		t.Errorf("decoded %d transactions, want 1", ledger.Len())
	}
}

func TestDecodeLedger_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		journal string
	}{
		{"unknown command", `{"command":"split","date":"2025-01-10"}`},
		{"broken json", `{"command":"deposit",`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeLedger(strings.NewReader(tc.journal)); err == nil {
				t.Errorf("DecodeLedger() should fail on %s", tc.name)
			}
		})
	}
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FuturesFees["WIN"] = M(1.5)
	cfg.FuturesFees["WDO"] = M(2.5)
	cfg.StocksPercentFee = decimal.NewFromFloat(0.5)
	cfg.PercentPerTrade = decimal.NewFromInt(2)
	cfg.InitialDeposit = M(10000)

	var buf bytes.Buffer
	if err := EncodeConfig(&buf, cfg); err != nil {
		t.Fatalf("EncodeConfig() failed: %v", err)
	}

	decoded, err := DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("DecodeConfig() failed: %v", err)
	}

	assertMoney(t, "WIN fee", decoded.FuturesFees["WIN"], M(1.5))
	assertMoney(t, "WDO fee", decoded.FuturesFees["WDO"], M(2.5))
	assertMoney(t, "initial deposit", decoded.InitialDeposit, M(10000))
	if !decoded.StocksPercentFee.Equal(cfg.StocksPercentFee) {
		t.Errorf("stocks fee = %s, want %s", decoded.StocksPercentFee, cfg.StocksPercentFee)
	}
	if !decoded.PercentPerTrade.Equal(cfg.PercentPerTrade) {
		t.Errorf("percent per trade = %s, want %s", decoded.PercentPerTrade, cfg.PercentPerTrade)
	}
}

func TestDecodeConfig_IgnoresUnknownPrefixes(t *testing.T) {
	input := `{"futuresFees":{"WIN":1.5,"XPTO":9.9},"stocksPercentFee":0.5,"percentPerTrade":2,"initialDeposit":1000}`
	cfg, err := DecodeConfig(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeConfig() failed: %v", err)
	}
	assertMoney(t, "WIN fee", cfg.FuturesFees["WIN"], M(1.5))
	if _, ok := cfg.FuturesFees["XPTO"]; ok {
		t.Errorf("unknown prefix should not enter the fee table")
	}
	// Every known prefix is present even when the file omits it.
	for _, prefix := range FuturesPrefixes {
		if _, ok := cfg.FuturesFees[prefix]; !ok {
			t.Errorf("prefix %q missing from the decoded fee table", prefix)
		}
	}
}
