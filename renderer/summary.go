package renderer

import (
	"fmt"
	"strings"

	"github.com/vilelam/tradebook"
)

// SummaryMarkdown renders the journal summary to a markdown string.
func SummaryMarkdown(s *tradebook.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Journal Summary on %s\n\n", s.Date)
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Cash Balance | %s |\n", s.Balance)
	fmt.Fprintf(&b, "| Total Invested | %s |\n", s.Invested)
	fmt.Fprintf(&b, "| Total Sales | %s |\n", s.Sales)
	if !s.AllowedPerTrade.IsZero() {
		fmt.Fprintf(&b, "| Allowed per Day Trade | %s |\n", s.AllowedPerTrade)
	}
	b.WriteString("\n")

	if len(s.Holdings) > 0 {
		b.WriteString(holdingsSection(s.Holdings))
	}

	b.WriteString(taxesSection(s.Taxes))
	return b.String()
}

// holdingsSection renders the open positions table shared by the summary and
// the holdings report.
func holdingsSection(lines []tradebook.HoldingLine) string {
	var b strings.Builder

	fmt.Fprint(&b, "## Open Positions\n\n")
	fmt.Fprintln(&b, "| Asset | Quantity | Avg Cost | Total Cost | Price | Market Value | Unrealized |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")

	var totalCost, totalMarket, totalUnrealized tradebook.Money
	for _, h := range lines {
		price := h.Price.String()
		if !h.Quoted {
			price += " *"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			h.Symbol, h.Quantity, h.AverageCost, h.TotalCost,
			price, h.MarketValue, h.Unrealized.SignedString())
		totalCost = totalCost.Add(h.TotalCost)
		totalMarket = totalMarket.Add(h.MarketValue)
		totalUnrealized = totalUnrealized.Add(h.Unrealized)
	}
	fmt.Fprintf(&b, "| **Total** | | | **%s** | | **%s** | **%s** |\n\n",
		totalCost, totalMarket, totalUnrealized.SignedString())
	fmt.Fprint(&b, "(*) no quote available, price fell back to the average cost\n\n")
	return b.String()
}
