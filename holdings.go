package tradebook

import (
	"slices"
	"strings"
)

// Position is an open weighted-average-cost position in one asset.
//
// Invariant: TotalCost == AverageCost * Quantity (within rounding), and
// Quantity is strictly positive; a position that reaches zero is deleted
// from the holdings map rather than kept around.
type Position struct {
	Quantity    Quantity
	AverageCost Money // cost per unit
	TotalCost   Money // Quantity * AverageCost, kept redundantly for incremental updates
}

// Holdings maps a normalized asset symbol to its open position. It is owned
// and mutated exclusively by the ledger; every other component reads it only.
type Holdings map[string]Position

// NormalizeSymbol returns the holdings key for a raw ticker: uppercased,
// without the ".SA" market suffix and without a single trailing "F"
// fractional-lot marker, so that "petr4.sa", "PETR4F" and "PETR4" all merge
// into the same position.
func NormalizeSymbol(raw string) string {
	up := strings.ToUpper(strings.TrimSpace(raw))
	up = strings.TrimSuffix(up, ".SA")
	up = strings.TrimSuffix(up, "F")
	return up
}

// Buy applies a purchase to the holdings and returns the (negative) cash
// effect. A non-positive quantity or price makes the call a no-op with a zero
// effect: invalid input is ignored, never fatal.
func (h Holdings) Buy(symbol string, quantity Quantity, price, fees Money) Money {
	if !quantity.IsPositive() || !price.IsPositive() {
		return Money{}
	}
	key := NormalizeSymbol(symbol)
	cost := price.Mul(quantity).Add(fees)

	current := h[key]
	newQty := current.Quantity.Add(quantity)
	newTotalCost := current.TotalCost.Add(cost)
	h[key] = Position{
		Quantity:    newQty,
		AverageCost: newTotalCost.Div(newQty),
		TotalCost:   newTotalCost,
	}
	return cost.Neg()
}

// Sell applies a sale to the holdings and returns the (positive) cash effect.
// Selling more than the open quantity is clamped to what is available rather
// than rejected; the caller is responsible for warning the user. The total
// cost is reduced proportionally at the current average cost: realized P&L is
// not computed here.
func (h Holdings) Sell(symbol string, quantity Quantity, price, fees Money) Money {
	if !quantity.IsPositive() || !price.IsPositive() {
		return Money{}
	}
	key := NormalizeSymbol(symbol)
	current, ok := h[key]
	if !ok || !current.Quantity.IsPositive() {
		return Money{}
	}
	sellQty := quantity.Min(current.Quantity)
	cashIn := price.Mul(sellQty).Sub(fees)

	newQty := current.Quantity.Sub(sellQty)
	if newQty.IsPositive() {
		newTotalCost := current.AverageCost.Mul(newQty)
		h[key] = Position{
			Quantity:    newQty,
			AverageCost: newTotalCost.Div(newQty),
			TotalCost:   newTotalCost,
		}
	} else {
		delete(h, key)
	}
	return cashIn
}

// RevertBuy undoes a previously applied Buy so the holdings look as if the
// order never happened. It returns the (positive) cash effect of the
// reversal. Reverting against a missing position is a no-op.
func (h Holdings) RevertBuy(symbol string, quantity Quantity, price, fees Money) Money {
	if !quantity.IsPositive() || !price.IsPositive() {
		return Money{}
	}
	key := NormalizeSymbol(symbol)
	current, ok := h[key]
	if !ok {
		return Money{}
	}
	cost := price.Mul(quantity).Add(fees)

	newQty := current.Quantity.Sub(quantity)
	newTotalCost := current.TotalCost.Sub(cost)
	if newQty.IsPositive() {
		h[key] = Position{
			Quantity:    newQty,
			AverageCost: newTotalCost.Div(newQty),
			TotalCost:   newTotalCost,
		}
	} else {
		delete(h, key)
	}
	return cost
}

// RevertSell undoes a previously applied Sell and returns the (negative) cash
// effect of the reversal. When the sale had fully closed the position, the
// original average cost is gone: the position is restored with an
// approximate average cost equal to the sale price.
func (h Holdings) RevertSell(symbol string, quantity Quantity, price, fees Money) Money {
	if !quantity.IsPositive() || !price.IsPositive() {
		return Money{}
	}
	key := NormalizeSymbol(symbol)
	cashOut := price.Mul(quantity).Sub(fees).Neg()

	if current, ok := h[key]; ok {
		// Position still open: keep the average cost and add back the
		// proportional cost of the reverted quantity.
		newQty := current.Quantity.Add(quantity)
		newTotalCost := current.TotalCost.Add(current.AverageCost.Mul(quantity))
		h[key] = Position{
			Quantity:    newQty,
			AverageCost: current.AverageCost,
			TotalCost:   newTotalCost,
		}
	} else {
		h[key] = Position{
			Quantity:    quantity,
			AverageCost: price,
			TotalCost:   price.Mul(quantity),
		}
	}
	return cashOut
}

// Sanitize returns a cleaned copy of the holdings: lots recorded under
// aliased tickers are merged under their normalized key, entries with a
// non-positive quantity are dropped, a missing total cost is reconstructed
// from the average cost, and the average cost is recomputed. Sanitize is
// idempotent: applying it to its own output changes nothing.
func (h Holdings) Sanitize() Holdings {
	merged := make(Holdings, len(h))
	for key, p := range h {
		if !p.Quantity.IsPositive() {
			continue
		}
		base := NormalizeSymbol(key)
		totalCost := p.TotalCost
		if totalCost.IsZero() && !p.AverageCost.IsZero() {
			totalCost = p.AverageCost.Mul(p.Quantity)
		}
		m := merged[base]
		merged[base] = Position{
			Quantity:  m.Quantity.Add(p.Quantity),
			TotalCost: m.TotalCost.Add(totalCost),
		}
	}
	for base, m := range merged {
		if !m.Quantity.IsPositive() {
			delete(merged, base)
			continue
		}
		m.AverageCost = m.TotalCost.Div(m.Quantity)
		merged[base] = m
	}
	return merged
}

// Symbols returns the normalized symbols with an open position, sorted.
func (h Holdings) Symbols() []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
