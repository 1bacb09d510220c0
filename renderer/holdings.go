package renderer

import (
	"fmt"
	"strings"

	"github.com/vilelam/tradebook"
)

// HoldingsMarkdown renders the open positions report to a markdown string.
func HoldingsMarkdown(lines []tradebook.HoldingLine) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Holdings\n\n")
	if len(lines) == 0 {
		fmt.Fprint(&b, "No open positions.\n")
		return b.String()
	}
	b.WriteString(holdingsSection(lines))
	return b.String()
}
