package tradebook

import (
	"fmt"
	"regexp"
)

var symbolRE = regexp.MustCompile(`^[A-Z0-9]+(\.[A-Z]+)?$`)

// ValidateSymbol checks that a raw ticker has a plausible shape before it is
// recorded: 3 to 10 characters, letters and digits, with an optional market
// suffix ("PETR4", "PETR4F", "PETR4.SA").
func ValidateSymbol(symbol string) error {
	key := NormalizeSymbol(symbol)
	if len(key) < 3 || len(key) > 10 {
		return fmt.Errorf("symbol %q must have between 3 and 10 characters", symbol)
	}
	if !symbolRE.MatchString(key) {
		return fmt.Errorf("symbol %q has an invalid format", symbol)
	}
	return nil
}
