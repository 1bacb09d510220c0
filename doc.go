// Package tradebook implements a personal trading journal for B3 operations:
// it records swing orders, day trades and capital movements, and derives the
// cash balance, the open weighted-average-cost positions, and the tax figures
// (withholding and tax due) for the swing and day-trade regimes.
//
// The engine is pure: it owns no network or storage I/O and operates on the
// in-memory Ledger. Persistence (JSONL codecs), quotes (brapi) and the CLI
// live at the edges and consume the engine through plain data types.
package tradebook
