package tradebook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The journal is persisted as JSONL: one ordered JSON object per line, with
// a "command" discriminator. Durability itself (where the stream lives) is
// the caller's concern; this file only speaks io.Reader and io.Writer.

// EncodeTransaction writes a single transaction as one JSONL line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("could not marshal %s transaction: %w", tx.What(), err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return fmt.Errorf("could not write transaction: %w", err)
	}
	return nil
}

// EncodeLedger writes the whole journal in canonical form: chronological
// order, one transaction per line.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, tx := range l.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a JSONL journal, rebuilding the holdings and the
// balance by replaying every transaction in order. Amount fields missing
// from a line decode as zero: a damaged record loses its contribution but
// never poisons the journal.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}

		var identifier struct {
			Command CommandType `json:"command"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify command in line %q: %w", string(lineBytes), err)
		}

		tx, err := decodeTransaction(identifier.Command, lineBytes)
		if err != nil {
			return nil, err
		}
		ledger.Append(tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read journal: %w", err)
	}
	ledger.Sanitize()
	return ledger, nil
}

// swingFields carries the value fields shared by buy and sell lines.
type swingFields struct {
	Quantity Quantity `json:"quantity"`
	Price    Money    `json:"price"`
	Fees     Money    `json:"fees"`
	Result   Money    `json:"result"`
}

func decodeTransaction(command CommandType, lineBytes []byte) (Transaction, error) {
	switch command {
	case CmdBuy:
		var temp struct {
			assetCmd
			swingFields
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, err
		}
		return Buy{assetCmd: temp.assetCmd, Quantity: temp.Quantity, Price: temp.Price, Fees: temp.Fees, Result: temp.Result}, nil

	case CmdSell:
		var temp struct {
			assetCmd
			swingFields
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, err
		}
		return Sell{assetCmd: temp.assetCmd, Quantity: temp.Quantity, Price: temp.Price, Fees: temp.Fees, Result: temp.Result}, nil

	case CmdDayTrade:
		var temp struct {
			assetCmd
			Quantity  Quantity `json:"quantity"`
			Gross     Money    `json:"gross"`
			Fees      Money    `json:"fees"`
			Brokerage Money    `json:"brokerage"`
			Net       Money    `json:"net"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, err
		}
		return DayTrade{assetCmd: temp.assetCmd, Quantity: temp.Quantity, Gross: temp.Gross, Fees: temp.Fees, Brokerage: temp.Brokerage, Net: temp.Net}, nil

	case CmdDeposit:
		var temp cashCmd
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, err
		}
		return Deposit{temp}, nil

	case CmdWithdraw:
		var temp cashCmd
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, err
		}
		return Withdraw{temp}, nil

	case CmdFee:
		var temp cashCmd
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, err
		}
		return Fee{temp}, nil

	case CmdAdjust:
		var temp cashCmd
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, err
		}
		return Adjust{temp}, nil

	default:
		return nil, fmt.Errorf("unknown command %q in journal", command)
	}
}
