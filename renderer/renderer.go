// Package renderer renders journal reports to markdown for terminal display.
package renderer

import (
	"fmt"

	"github.com/vilelam/tradebook"
)

// Transaction renders a one-line description of a transaction.
func Transaction(tx tradebook.Transaction) string {
	switch v := tx.(type) {
	case tradebook.Buy:
		return fmt.Sprintf("Bought %s %s at %s (fees %s)", v.Quantity, v.Asset, v.Price, v.Fees)
	case tradebook.Sell:
		return fmt.Sprintf("Sold %s %s at %s (fees %s)", v.Quantity, v.Asset, v.Price, v.Fees)
	case tradebook.DayTrade:
		return fmt.Sprintf("Day traded %s %s net %s", v.Quantity, v.Asset, v.Net)
	case tradebook.Deposit:
		return fmt.Sprintf("Deposited %s", v.Amount)
	case tradebook.Withdraw:
		return fmt.Sprintf("Withdrew %s", v.Amount.Abs())
	case tradebook.Fee:
		return fmt.Sprintf("Charged fee of %s", v.Amount.Abs())
	case tradebook.Adjust:
		return fmt.Sprintf("Adjusted balance by %s", v.Amount.SignedString())
	default:
		return string(tx.What())
	}
}
