package tradebook

import (
	"fmt"
	"iter"
	"sort"
)

// Ledger is the in-memory journal: the chronological list of all recorded
// transactions, the open positions derived from them, the tax configuration,
// and an incrementally maintained cash balance.
//
// Transactions are always kept in chronological order, ties broken by
// sequence number.
type Ledger struct {
	transactions []Transaction
	holdings     Holdings
	config       Config
	balance      Money // incremental cache, reconciled by CashBalance
	lastID       int64
}

// NewLedger creates an empty ledger with a default configuration.
func NewLedger() *Ledger {
	return &Ledger{
		transactions: make([]Transaction, 0),
		holdings:     make(Holdings),
		config:       DefaultConfig(),
		balance:      DefaultConfig().InitialDeposit,
	}
}

// Config returns the current tax configuration.
func (l *Ledger) Config() Config { return l.config }

// SetConfig replaces the tax configuration and reconciles the cached balance,
// since the initial deposit is part of the balance definition.
func (l *Ledger) SetConfig(c Config) {
	l.config = c
	l.balance = l.CashBalance()
}

// Holdings returns the open positions. The map is owned by the ledger and
// must be treated as read-only by callers.
func (l *Ledger) Holdings() Holdings { return l.holdings }

// Balance returns the incrementally maintained cash balance. It is an
// optimization over CashBalance, kept equal to it after every mutation.
func (l *Ledger) Balance() Money { return l.balance }

// Append records transactions in the journal: each one gets a sequence
// number if it has none yet, its effect is applied to the holdings, and the
// cached balance is advanced by its cash effect.
func (l *Ledger) Append(txs ...Transaction) {
	for _, tx := range txs {
		tx = l.numbered(tx)
		l.transactions = append(l.transactions, tx)
		l.apply(tx)
	}
	l.stableSort()
}

// numbered returns tx with a sequence number assigned, preserving numbers
// already present (e.g. when decoding a persisted journal).
func (l *Ledger) numbered(tx Transaction) Transaction {
	if id := tx.ID(); id != 0 {
		if id > l.lastID {
			l.lastID = id
		}
		return tx
	}
	l.lastID++
	return withID(tx, l.lastID)
}

// withID returns a copy of tx carrying the given sequence number.
func withID(tx Transaction, id int64) Transaction {
	switch v := tx.(type) {
	case Buy:
		v.Id = id
		return v
	case Sell:
		v.Id = id
		return v
	case DayTrade:
		v.Id = id
		return v
	case Deposit:
		v.Id = id
		return v
	case Withdraw:
		v.Id = id
		return v
	case Fee:
		v.Id = id
		return v
	case Adjust:
		v.Id = id
		return v
	default:
		return tx
	}
}

// apply plays the transaction effect on the holdings and the cached balance.
// The cache follows the same formula as the CashBalance fold, so the two
// never drift apart; the position ledger may clamp an over-sell without
// affecting the balance formula.
func (l *Ledger) apply(tx Transaction) {
	switch v := tx.(type) {
	case Buy:
		l.holdings.Buy(v.Asset, v.Quantity, v.Price, v.Fees)
	case Sell:
		l.holdings.Sell(v.Asset, v.Quantity, v.Price, v.Fees)
	}
	l.balance = l.balance.Add(tx.CashEffect())
}

// revert undoes the transaction effect, leaving the ledger as if the
// transaction had never been recorded.
func (l *Ledger) revert(tx Transaction) {
	switch v := tx.(type) {
	case Buy:
		l.holdings.RevertBuy(v.Asset, v.Quantity, v.Price, v.Fees)
	case Sell:
		l.holdings.RevertSell(v.Asset, v.Quantity, v.Price, v.Fees)
	}
	l.balance = l.balance.Sub(tx.CashEffect())
}

// Get returns the transaction with the given sequence number, or nil.
func (l *Ledger) Get(id int64) Transaction {
	for _, tx := range l.transactions {
		if tx.ID() == id {
			return tx
		}
	}
	return nil
}

// Remove deletes the transaction with the given sequence number, reverting
// its effect on holdings and balance. It reports whether it was found.
func (l *Ledger) Remove(id int64) bool {
	for i, tx := range l.transactions {
		if tx.ID() == id {
			l.revert(tx)
			l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
			return true
		}
	}
	return false
}

// Replace swaps the transaction with the given sequence number for a new one
// keeping the same number: the old effect is reverted, then the new one
// applied, exactly like an edit-in-place in the journal.
func (l *Ledger) Replace(id int64, tx Transaction) error {
	for i, old := range l.transactions {
		if old.ID() == id {
			l.revert(old)
			tx = withID(tx, id)
			l.transactions[i] = tx
			l.apply(tx)
			l.stableSort()
			return nil
		}
	}
	return fmt.Errorf("no transaction with id %d", id)
}

// Transactions returns an iterator over transactions matching all the given
// filters, in chronological order.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
	loop:
		for i, tx := range l.transactions {
			for _, filter := range filters {
				if !filter(tx) {
					continue loop
				}
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Len returns the number of recorded transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// OldestTransactionDate returns the date of the first transaction in the ledger.
func (l *Ledger) OldestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].When()
}

// NewestTransactionDate returns the date of the last transaction in the ledger.
func (l *Ledger) NewestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[len(l.transactions)-1].When()
}

// stableSort sorts transactions by date, ties broken by sequence number.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		if l.transactions[i].When() != l.transactions[j].When() {
			return l.transactions[i].When().Before(l.transactions[j].When())
		}
		return l.transactions[i].ID() < l.transactions[j].ID()
	})
}

// Sanitize merges aliased positions and drops degenerate ones. It never
// changes the balance.
func (l *Ledger) Sanitize() {
	l.holdings = l.holdings.Sanitize()
}

// ByAsset returns a filter keeping transactions on the given asset symbol
// (compared on normalized symbols).
func ByAsset(symbol string) func(Transaction) bool {
	key := NormalizeSymbol(symbol)
	return func(tx Transaction) bool {
		switch v := tx.(type) {
		case Buy:
			return NormalizeSymbol(v.Asset) == key
		case Sell:
			return NormalizeSymbol(v.Asset) == key
		case DayTrade:
			return NormalizeSymbol(v.Asset) == key
		}
		return false
	}
}

// ByRange returns a filter keeping transactions dated within r.
func ByRange(r Range) func(Transaction) bool {
	return func(tx Transaction) bool { return r.Contains(tx.When()) }
}

// ByKind returns a filter keeping transactions of the given command types.
func ByKind(kinds ...CommandType) func(Transaction) bool {
	return func(tx Transaction) bool {
		for _, k := range kinds {
			if tx.What() == k {
				return true
			}
		}
		return false
	}
}
