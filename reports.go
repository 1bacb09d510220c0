package tradebook

// QuoteProvider supplies the current unit price of an asset. The engine does
// not need live prices to stay consistent; quotes only refine the unrealized
// P&L shown on reports, and callers fall back to the average cost when the
// provider fails.
type QuoteProvider interface {
	Quote(symbol string) (Money, error)
}

// HoldingLine is one open position as displayed on the summary: the ledger
// figures plus an optional market valuation.
type HoldingLine struct {
	Symbol      string
	Quantity    Quantity
	AverageCost Money
	TotalCost   Money
	Price       Money // quoted price, or the average cost when no quote is available
	MarketValue Money // Price * Quantity
	Unrealized  Money // (Price - AverageCost) * Quantity
	Quoted      bool  // false when Price fell back to the average cost
}

// Summary is the at-a-glance state of the journal on a given date.
type Summary struct {
	Date            Date
	Balance         Money
	Invested        Money
	Sales           Money
	AllowedPerTrade Money
	Holdings        []HoldingLine
	Taxes           *TaxReport
}

// NewSummary builds the summary report from the journal. quotes may be nil;
// positions then carry their average cost as price and a zero unrealized
// P&L.
func (l *Ledger) NewSummary(quotes QuoteProvider) *Summary {
	s := &Summary{
		Date:            Today(),
		Balance:         l.CashBalance(),
		Invested:        l.TotalInvested(),
		Sales:           l.TotalSales(),
		AllowedPerTrade: l.AllowedPerTrade(),
		Taxes:           l.ComputeTaxes(),
	}
	for _, symbol := range l.holdings.Symbols() {
		p := l.holdings[symbol]
		line := HoldingLine{
			Symbol:      symbol,
			Quantity:    p.Quantity,
			AverageCost: p.AverageCost,
			TotalCost:   p.TotalCost,
			Price:       p.AverageCost,
		}
		if quotes != nil {
			if price, err := quotes.Quote(symbol); err == nil && price.IsPositive() {
				line.Price = price
				line.Quoted = true
			}
		}
		line.MarketValue = line.Price.Mul(p.Quantity)
		line.Unrealized = line.Price.Sub(p.AverageCost).Mul(p.Quantity)
		s.Holdings = append(s.Holdings, line)
	}
	return s
}
