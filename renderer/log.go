package renderer

import (
	"fmt"
	"strings"

	"github.com/vilelam/tradebook"
)

// LogMarkdown renders a chronological table of transactions.
func LogMarkdown(title string, txs []tradebook.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)

	if len(txs) == 0 {
		fmt.Fprint(&b, "No transactions recorded in this period.\n")
		return b.String()
	}

	fmt.Fprintln(&b, "| Id | Date | Type | Description | Cash Effect |")
	fmt.Fprintln(&b, "|---:|:---|:---|:---|---:|")

	var total tradebook.Money
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
			tx.ID(), tx.When(), tx.What(), Transaction(tx), tx.CashEffect().SignedString())
		total = total.Add(tx.CashEffect())
	}
	fmt.Fprintf(&b, "| | | | **Total** | **%s** |\n", total.SignedString())
	return b.String()
}
