package renderer

import (
	"fmt"
	"strings"

	"github.com/vilelam/tradebook"
)

// TaxesMarkdown renders the tax report to a markdown string.
func TaxesMarkdown(r *tradebook.TaxReport) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Tax Report\n\n")
	b.WriteString(taxesSection(r))
	return b.String()
}

// taxesSection renders the regime tables of a tax report.
func taxesSection(r *tradebook.TaxReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "## Swing Trade\n\n")
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Profit | %s |\n", r.SwingProfit)
	fmt.Fprintf(&b, "| Loss | %s |\n", r.SwingLoss)
	fmt.Fprintf(&b, "| Net Result | %s |\n", r.SwingNet.SignedString())
	fmt.Fprintf(&b, "| Sales Value | %s |\n", r.SwingSales)
	fmt.Fprintf(&b, "| Withholding (IRRF) | %s |\n", r.Swing.Withholding)
	fmt.Fprintf(&b, "| Tax Due (DARF) | %s |\n\n", r.Swing.TaxDue)

	fmt.Fprint(&b, "## Day Trade\n\n")
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Net Result | %s |\n", r.DayNet.SignedString())
	fmt.Fprintf(&b, "| Withholding (IRRF) | %s |\n", r.Day.Withholding)
	fmt.Fprintf(&b, "| Tax Due (DARF) | %s |\n\n", r.Day.TaxDue)

	fmt.Fprint(&b, "## Totals\n\n")
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Total Withholding | %s |\n", r.TotalWithholding)
	fmt.Fprintf(&b, "| Total Tax Due | %s |\n", r.TotalTaxDue)

	return b.String()
}
