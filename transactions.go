package tradebook

// CommandType is a typed string for identifying transaction commands.
type CommandType string

// Command types used for identifying transactions.
const (
	CmdBuy      CommandType = "buy"
	CmdSell     CommandType = "sell"
	CmdDayTrade CommandType = "daytrade"
	CmdDeposit  CommandType = "deposit"
	CmdWithdraw CommandType = "withdraw"
	CmdFee      CommandType = "fee"
	CmdAdjust   CommandType = "adjust"
)

// Transaction defines the common interface for all entries recorded in the
// journal: swing orders (buy/sell), day trades, and capital movements.
type Transaction interface {
	What() CommandType // What returns the command type of the transaction (e.g., "buy", "sell").
	When() Date        // When returns the date on which the transaction occurred.
	ID() int64         // ID returns the journal sequence number (0 before first append).
	// CashEffect returns the signed change this transaction causes on the
	// cash balance. The cash balance of the whole journal is the fold of
	// this method over every transaction.
	CashEffect() Money
}

type baseCmd struct {
	Command CommandType `json:"command"`        // Command specifies the type of transaction.
	Date    Date        `json:"date"`           // Date is the calendar day of the transaction.
	Id      int64       `json:"id,omitempty"`   // Id is the journal sequence number, assigned on append.
	Memo    string      `json:"memo,omitempty"` // Memo is an optional free-form note.
}

func (t baseCmd) What() CommandType { return t.Command }
func (t baseCmd) When() Date        { return t.Date }
func (t baseCmd) ID() int64         { return t.Id }

// MarshalJSON implements the json.Marshaler interface for baseCmd.
func (t baseCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", t.Command)
	w.Append("date", t.Date)
	w.Optional("id", t.Id)
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}

// assetCmd is a component for asset-based transactions (buy, sell, daytrade).
type assetCmd struct {
	baseCmd
	Asset string `json:"asset"` // Asset is the ticker symbol of the traded asset.
}

// MarshalJSON implements the json.Marshaler interface for assetCmd.
func (t assetCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("asset", t.Asset)
	return w.MarshalJSON()
}

// Buy represents a swing-trade purchase: a quantity of an asset bought at a
// unit price, plus brokerage fees.
type Buy struct {
	assetCmd
	Quantity Quantity // Quantity is the number of units bought.
	Price    Money    // Price is the unit price paid.
	Fees     Money    // Fees is the brokerage cost of the order.
	Result   Money    // Result is the P&L recorded at entry time against the quoted price.
}

// NewBuy creates a new Buy transaction.
func NewBuy(day Date, memo, asset string, quantity Quantity, price, fees, result Money) Buy {
	return Buy{
		assetCmd: assetCmd{baseCmd: baseCmd{Command: CmdBuy, Date: day, Memo: memo}, Asset: asset},
		Quantity: quantity,
		Price:    price,
		Fees:     fees,
		Result:   result,
	}
}

// CashEffect of a buy is -(quantity*price + fees). An order with a
// non-positive quantity or price is inert and contributes nothing.
func (t Buy) CashEffect() Money {
	if !t.Quantity.IsPositive() || !t.Price.IsPositive() {
		return Money{}
	}
	return t.Price.Mul(t.Quantity).Add(t.Fees).Neg()
}

// MarshalJSON implements the json.Marshaler interface for Buy.
func (t Buy) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.assetCmd)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price)
	w.Append("fees", t.Fees)
	w.Optional("result", t.Result)
	return w.MarshalJSON()
}

// Sell represents a swing-trade sale of a quantity of an asset at a unit
// price, minus brokerage fees.
type Sell struct {
	assetCmd
	Quantity Quantity
	Price    Money
	Fees     Money
	Result   Money
}

// NewSell creates a new Sell transaction.
func NewSell(day Date, memo, asset string, quantity Quantity, price, fees, result Money) Sell {
	return Sell{
		assetCmd: assetCmd{baseCmd: baseCmd{Command: CmdSell, Date: day, Memo: memo}, Asset: asset},
		Quantity: quantity,
		Price:    price,
		Fees:     fees,
		Result:   result,
	}
}

// CashEffect of a sell is +(quantity*price - fees), using the recorded
// quantity even when the position ledger clamped the actual disposal.
func (t Sell) CashEffect() Money {
	if !t.Quantity.IsPositive() || !t.Price.IsPositive() {
		return Money{}
	}
	return t.Price.Mul(t.Quantity).Sub(t.Fees)
}

// MarshalJSON implements the json.Marshaler interface for Sell.
func (t Sell) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.assetCmd)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price)
	w.Append("fees", t.Fees)
	w.Optional("result", t.Result)
	return w.MarshalJSON()
}

// DayTrade represents an intraday round trip closed within the session: only
// its aggregate result is recorded, not the individual legs.
type DayTrade struct {
	assetCmd
	Quantity  Quantity // Quantity is the number of contracts or shares traded.
	Gross     Money    // Gross is the signed result before costs.
	Fees      Money    // Fees is the exchange cost computed from the fee table.
	Brokerage Money    // Brokerage is the broker cost entered by the user.
	Net       Money    // Net is gross - fees - brokerage.
}

// NewDayTrade creates a new DayTrade transaction. Fees and net are computed
// by the caller from the tax configuration (see Config.DayTradeFees).
func NewDayTrade(day Date, memo, asset string, quantity Quantity, gross, fees, brokerage Money) DayTrade {
	return DayTrade{
		assetCmd:  assetCmd{baseCmd: baseCmd{Command: CmdDayTrade, Date: day, Memo: memo}, Asset: asset},
		Quantity:  quantity,
		Gross:     gross,
		Fees:      fees,
		Brokerage: brokerage,
		Net:       gross.Sub(fees).Sub(brokerage),
	}
}

// CashEffect of a day trade is its net result.
func (t DayTrade) CashEffect() Money { return t.Net }

// MarshalJSON implements the json.Marshaler interface for DayTrade.
func (t DayTrade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.assetCmd)
	w.Append("quantity", t.Quantity)
	w.Append("gross", t.Gross)
	w.Append("fees", t.Fees)
	w.Append("brokerage", t.Brokerage)
	w.Append("net", t.Net)
	return w.MarshalJSON()
}

// cashCmd is a component for capital movements (deposit, withdraw, fee,
// adjust). The amount is stored signed: deposits positive, withdrawals and
// fees negative, adjustments as entered.
type cashCmd struct {
	baseCmd
	Amount Money `json:"amount"`
}

// CashEffect of a capital movement is its signed amount.
func (t cashCmd) CashEffect() Money { return t.Amount }

// MarshalJSON implements the json.Marshaler interface for cashCmd.
func (t cashCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("amount", t.Amount)
	return w.MarshalJSON()
}

// Deposit is money added to the trading account.
type Deposit struct{ cashCmd }

// NewDeposit creates a new Deposit transaction. The amount is stored positive.
func NewDeposit(day Date, memo string, amount Money) Deposit {
	return Deposit{cashCmd{baseCmd: baseCmd{Command: CmdDeposit, Date: day, Memo: memo}, Amount: amount.Abs()}}
}

// Withdraw is money taken out of the trading account.
type Withdraw struct{ cashCmd }

// NewWithdraw creates a new Withdraw transaction. The amount is stored negative.
func NewWithdraw(day Date, memo string, amount Money) Withdraw {
	return Withdraw{cashCmd{baseCmd: baseCmd{Command: CmdWithdraw, Date: day, Memo: memo}, Amount: amount.Abs().Neg()}}
}

// Fee is a platform or custody charge debited from the account.
type Fee struct{ cashCmd }

// NewFee creates a new Fee transaction. The amount is stored negative.
func NewFee(day Date, memo string, amount Money) Fee {
	return Fee{cashCmd{baseCmd: baseCmd{Command: CmdFee, Date: day, Memo: memo}, Amount: amount.Abs().Neg()}}
}

// Adjust is a manual balance correction, signed as entered.
type Adjust struct{ cashCmd }

// NewAdjust creates a new Adjust transaction.
func NewAdjust(day Date, memo string, amount Money) Adjust {
	return Adjust{cashCmd{baseCmd: baseCmd{Command: CmdAdjust, Date: day, Memo: memo}, Amount: amount}}
}

// SwingResult computes the P&L recorded on a swing order at entry time:
// the spread between the quoted current price and the entry price, signed by
// the order direction, times the quantity, minus fees. It is computed once
// and never revised when the market moves.
func SwingResult(what CommandType, entry, current Money, quantity Quantity, fees Money) Money {
	perUnit := current.Sub(entry)
	if what == CmdSell {
		perUnit = perUnit.Neg()
	}
	return perUnit.Mul(quantity).Sub(fees)
}

// IsSwing reports whether the transaction is a swing-trade order.
func IsSwing(tx Transaction) bool {
	return tx.What() == CmdBuy || tx.What() == CmdSell
}

// IsCapital reports whether the transaction is a capital movement.
func IsCapital(tx Transaction) bool {
	switch tx.What() {
	case CmdDeposit, CmdWithdraw, CmdFee, CmdAdjust:
		return true
	}
	return false
}
