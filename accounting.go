package tradebook

import (
	"fmt"
	"strings"
)

// This file is the balance reconciler: the authoritative cash balance is a
// pure fold over the journal, and every reset path recomputes it from that
// fold instead of trusting the incremental cache.

// CashBalance recomputes the cash balance from scratch: the configured
// initial deposit, plus the signed cash effect of every recorded transaction
// (capital movements as entered, swing buys as -(qty*price+fees), swing
// sells as +(qty*price-fees), day trades as their net result).
//
// The fold is pure and deterministic: calling it twice with no intervening
// mutation returns the same value. Malformed records decode to zero amounts
// upstream and therefore contribute nothing here; the fold itself never
// fails.
func (l *Ledger) CashBalance() Money {
	total := l.config.InitialDeposit
	for _, tx := range l.transactions {
		total = total.Add(tx.CashEffect())
	}
	return total
}

// TotalInvested sums the cash spent on swing purchases: quantity*price+fees
// over every buy order.
func (l *Ledger) TotalInvested() Money {
	var total Money
	for _, tx := range l.Transactions(ByKind(CmdBuy)) {
		buy := tx.(Buy)
		total = total.Add(buy.Price.Mul(buy.Quantity).Add(buy.Fees))
	}
	return total
}

// TotalSales sums the cash received from swing sales: quantity*price-fees
// over every sell order.
func (l *Ledger) TotalSales() Money {
	var total Money
	for _, tx := range l.Transactions(ByKind(CmdSell)) {
		sell := tx.(Sell)
		total = total.Add(sell.Price.Mul(sell.Quantity).Sub(sell.Fees))
	}
	return total
}

// ResetScope selects which domain of the journal a Reset clears.
type ResetScope int

const (
	// ResetAll clears every transaction log and the holdings.
	ResetAll ResetScope = iota
	// ResetSwing clears swing orders and the holdings derived from them.
	ResetSwing
	// ResetDayTrade clears day-trade entries.
	ResetDayTrade
	// ResetCapital clears capital movements.
	ResetCapital
)

func (s ResetScope) String() string {
	switch s {
	case ResetAll:
		return "all"
	case ResetSwing:
		return "swing"
	case ResetDayTrade:
		return "daytrade"
	case ResetCapital:
		return "capital"
	default:
		return "unknown"
	}
}

// ParseResetScope parses a string into a ResetScope.
func ParseResetScope(s string) (ResetScope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return ResetAll, nil
	case "swing":
		return ResetSwing, nil
	case "daytrade", "day-trade":
		return ResetDayTrade, nil
	case "capital", "financial":
		return ResetCapital, nil
	default:
		return 0, fmt.Errorf("unknown reset scope: %q", s)
	}
}

// Reset clears the selected domain and recomputes the balance from the fold,
// leaving the remaining logs and the balance mutually consistent. The tax
// configuration survives every scope; after ResetAll the balance is
// therefore back to the configured initial deposit.
func (l *Ledger) Reset(scope ResetScope) {
	keep := l.transactions[:0]
	switch scope {
	case ResetAll:
		l.transactions = l.transactions[:0]
		l.holdings = make(Holdings)
	case ResetSwing:
		for _, tx := range l.transactions {
			if !IsSwing(tx) {
				keep = append(keep, tx)
			}
		}
		l.transactions = keep
		l.holdings = make(Holdings)
	case ResetDayTrade:
		for _, tx := range l.transactions {
			if tx.What() != CmdDayTrade {
				keep = append(keep, tx)
			}
		}
		l.transactions = keep
	case ResetCapital:
		for _, tx := range l.transactions {
			if !IsCapital(tx) {
				keep = append(keep, tx)
			}
		}
		l.transactions = keep
	}
	l.balance = l.CashBalance()
}
