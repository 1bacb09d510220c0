package tradebook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// EncodeConfig writes the tax configuration as a single ordered JSON object.
func EncodeConfig(w io.Writer, c Config) error {
	var jw jsonObjectWriter
	jw.Append("futuresFees", c.FuturesFees)
	jw.Append("stocksPercentFee", c.StocksPercentFee)
	jw.Append("percentPerTrade", c.PercentPerTrade)
	jw.Append("initialDeposit", c.InitialDeposit)
	data, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not marshal configuration: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return fmt.Errorf("could not write configuration: %w", err)
	}
	return nil
}

// DecodeConfig reads a tax configuration, filling missing fields with
// defaults so the futures fee table always carries every known prefix.
func DecodeConfig(r io.Reader) (Config, error) {
	var temp struct {
		FuturesFees      map[string]Money `json:"futuresFees"`
		StocksPercentFee decimal.Decimal  `json:"stocksPercentFee"`
		PercentPerTrade  decimal.Decimal  `json:"percentPerTrade"`
		InitialDeposit   Money            `json:"initialDeposit"`
	}
	if err := json.NewDecoder(r).Decode(&temp); err != nil {
		return DefaultConfig(), fmt.Errorf("could not decode configuration: %w", err)
	}
	c := DefaultConfig()
	for prefix, fee := range temp.FuturesFees {
		if _, ok := c.FuturesFees[prefix]; ok {
			c.FuturesFees[prefix] = fee
		}
	}
	c.StocksPercentFee = temp.StocksPercentFee
	c.PercentPerTrade = temp.PercentPerTrade
	c.InitialDeposit = temp.InitialDeposit
	return c, nil
}
