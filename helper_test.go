package tradebook

import "testing"

// assertMoney fails the test when got is not the wanted amount.
func assertMoney(t *testing.T, label string, got, want Money) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %s, want %s", label, got, want)
	}
}

// assertQuantity fails the test when got is not the wanted quantity.
func assertQuantity(t *testing.T, label string, got, want Quantity) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %s, want %s", label, got, want)
	}
}

// position returns the position for the raw symbol, failing the test when it
// is not open.
func position(t *testing.T, h Holdings, symbol string) Position {
	t.Helper()
	p, ok := h[NormalizeSymbol(symbol)]
	if !ok {
		t.Fatalf("no open position on %q", symbol)
	}
	return p
}
