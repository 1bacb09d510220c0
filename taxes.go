package tradebook

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Tax rates, reproduced as practiced on B3 operations. They are applied as
// given, not validated against the law.
var (
	swingWithholdingRate = decimal.NewFromFloat(0.00005) // 0.005% of swing sales value
	swingTaxRate         = decimal.NewFromFloat(0.15)    // 15% of positive swing net result
	dayWithholdingRate   = decimal.NewFromFloat(0.01)    // 1% of each day's positive net result
	dayTaxRate           = decimal.NewFromFloat(0.20)    // 20% of positive day-trade net result
)

// FuturesPrefixes lists the futures symbol classes with a per-contract fee
// in the configuration table (mini index, mini dollar, index, dollar,
// bitcoin futures).
var FuturesPrefixes = []string{"WIN", "WDO", "IND", "DOL", "BIT"}

// Config holds the externally supplied trading parameters: the futures fee
// table, the equities percentage fee, the per-trade risk percentage, and the
// initial deposit. It is read-only to the engine.
type Config struct {
	FuturesFees      map[string]Money // per-contract day-trade fee, keyed by futures prefix
	StocksPercentFee decimal.Decimal  // percent of |gross| charged on equity day trades
	PercentPerTrade  decimal.Decimal  // percent of the balance allowed per day trade
	InitialDeposit   Money
}

// DefaultConfig returns a configuration with every fee zeroed and the
// futures table keys in place.
func DefaultConfig() Config {
	fees := make(map[string]Money, len(FuturesPrefixes))
	for _, p := range FuturesPrefixes {
		fees[p] = Money{}
	}
	return Config{FuturesFees: fees}
}

// FuturesPrefix returns the futures class of a symbol (e.g. "WIN" for
// "WINZ25"), or false for equities.
func FuturesPrefix(symbol string) (string, bool) {
	up := strings.ToUpper(strings.TrimSpace(symbol))
	for _, p := range FuturesPrefixes {
		if strings.HasPrefix(up, p) {
			return p, true
		}
	}
	return "", false
}

// DayTradeFees computes the exchange cost of a day trade: futures pay the
// per-contract fee of their class times the quantity, equities pay the
// configured percentage of the absolute gross result.
func (c Config) DayTradeFees(symbol string, gross Money, quantity Quantity) Money {
	if prefix, ok := FuturesPrefix(symbol); ok {
		return c.FuturesFees[prefix].Mul(quantity)
	}
	return gross.Abs().Scale(c.StocksPercentFee.Div(decimal.NewFromInt(100)))
}

// AllowedPerTrade returns the cash amount the configuration allows to risk
// on a single day trade: the current balance times the per-trade percentage.
func (l *Ledger) AllowedPerTrade() Money {
	return l.Balance().Scale(l.config.PercentPerTrade.Div(decimal.NewFromInt(100)))
}

// RegimeTaxes holds the two figures computed per tax regime.
type RegimeTaxes struct {
	Withholding Money // tax withheld at source (IRRF), credited against the tax due
	TaxDue      Money // net liability remaining after the credit (DARF)
}

// TaxReport aggregates the withholding and tax-due figures for the swing and
// day-trade regimes, plus the intermediate aggregates shown on the dashboard.
// Every tax figure is floored at zero: negative tax is never reported.
type TaxReport struct {
	SwingProfit Money // sum of positive swing results
	SwingLoss   Money // sum of negative swing results, as a positive number
	SwingNet    Money // profit - loss, signed
	SwingSales  Money // sum of price*quantity over sell orders
	Swing       RegimeTaxes

	DayNet Money // sum of day-trade nets across all days, signed
	Day    RegimeTaxes

	TotalWithholding Money
	TotalTaxDue      Money
}

// ComputeTaxes derives the tax report from the full transaction history,
// independently of the position ledger state.
//
// Swing trades are aggregated over the whole history: the withholding is a
// flat fraction of the total sales value, and the tax due applies the swing
// rate to a positive net result, net of the withholding credit.
//
// Day trades are aggregated per calendar day first: a day only withholds tax
// when its own net result is positive, mirroring how intraday withholding is
// assessed per session. The tax due then applies the day-trade rate to the
// overall net result, net of the accumulated withholding.
//
// A malformed record contributes zero rather than aborting the report.
func (l *Ledger) ComputeTaxes() *TaxReport {
	r := &TaxReport{}

	for _, tx := range l.Transactions(ByKind(CmdBuy, CmdSell)) {
		var result Money
		switch v := tx.(type) {
		case Buy:
			result = v.Result
		case Sell:
			result = v.Result
			r.SwingSales = r.SwingSales.Add(v.Price.Mul(v.Quantity))
		}
		if result.IsPositive() {
			r.SwingProfit = r.SwingProfit.Add(result)
		} else {
			r.SwingLoss = r.SwingLoss.Add(result.Neg())
		}
	}
	r.SwingNet = r.SwingProfit.Sub(r.SwingLoss)
	r.Swing.Withholding = r.SwingSales.Scale(swingWithholdingRate)
	if r.SwingNet.IsPositive() {
		r.Swing.TaxDue = clampPositive(r.SwingNet.Scale(swingTaxRate).Sub(r.Swing.Withholding))
	}

	dayNets := make(map[Date]Money)
	for _, tx := range l.Transactions(ByKind(CmdDayTrade)) {
		dt := tx.(DayTrade)
		dayNets[dt.When()] = dayNets[dt.When()].Add(dt.Net)
	}
	for _, net := range dayNets {
		r.DayNet = r.DayNet.Add(net)
		if net.IsPositive() {
			r.Day.Withholding = r.Day.Withholding.Add(net.Scale(dayWithholdingRate))
		}
	}
	if r.DayNet.IsPositive() {
		r.Day.TaxDue = clampPositive(r.DayNet.Scale(dayTaxRate).Sub(r.Day.Withholding))
	}

	r.Swing.Withholding = clampPositive(r.Swing.Withholding)
	r.Day.Withholding = clampPositive(r.Day.Withholding)
	r.TotalWithholding = r.Swing.Withholding.Add(r.Day.Withholding)
	r.TotalTaxDue = r.Swing.TaxDue.Add(r.Day.TaxDue)
	return r
}

// clampPositive floors a money amount at zero.
func clampPositive(m Money) Money {
	if m.IsNegative() {
		return Money{}
	}
	return m
}
