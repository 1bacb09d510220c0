package cmd

import (
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/vilelam/tradebook"
)

// setupAppFiles points the global file flags at a temporary directory.
func setupAppFiles(t *testing.T) {
	t.Helper()
	dir := t.TempDir()

	oldLedger, oldConfig := *ledgerFile, *configFile
	*ledgerFile = filepath.Join(dir, "tradebook.jsonl")
	*configFile = filepath.Join(dir, "config.json")
	t.Cleanup(func() {
		*ledgerFile = oldLedger
		*configFile = oldConfig
	})
}

func TestDecodeLedger_MissingFilesYieldEmptyJournal(t *testing.T) {
	setupAppFiles(t)

	ledger, err := DecodeLedger()
	if err != nil {
		t.Fatalf("DecodeLedger() failed: %v", err)
	}
	if ledger.Len() != 0 {
		t.Errorf("got %d transactions, want 0", ledger.Len())
	}
	if !ledger.Balance().IsZero() {
		t.Errorf("balance = %s, want zero", ledger.Balance())
	}
}

func TestAppendThenDecode(t *testing.T) {
	setupAppFiles(t)

	tx := tradebook.NewDeposit(tradebook.MustParseDate("2025-01-10"), "", tradebook.M(500))
	if status := appendTransaction(tx); status != subcommands.ExitSuccess {
		t.Fatalf("appendTransaction() = %v", status)
	}

	ledger, err := DecodeLedger()
	if err != nil {
		t.Fatalf("DecodeLedger() failed: %v", err)
	}
	if ledger.Len() != 1 {
		t.Fatalf("got %d transactions, want 1", ledger.Len())
	}
	if !ledger.Balance().Equal(tradebook.M(500)) {
		t.Errorf("balance = %s, want %s", ledger.Balance(), tradebook.M(500))
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	setupAppFiles(t)

	cfg := tradebook.DefaultConfig()
	cfg.InitialDeposit = tradebook.M(1000)
	cfg.FuturesFees["WIN"] = tradebook.M(1.5)
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() failed: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if !loaded.InitialDeposit.Equal(tradebook.M(1000)) {
		t.Errorf("initial deposit = %s, want %s", loaded.InitialDeposit, tradebook.M(1000))
	}
	if !loaded.FuturesFees["WIN"].Equal(tradebook.M(1.5)) {
		t.Errorf("WIN fee = %s, want %s", loaded.FuturesFees["WIN"], tradebook.M(1.5))
	}

	// The ledger picks up the configured initial deposit.
	ledger, err := DecodeLedger()
	if err != nil {
		t.Fatalf("DecodeLedger() failed: %v", err)
	}
	if !ledger.Balance().Equal(tradebook.M(1000)) {
		t.Errorf("balance = %s, want %s", ledger.Balance(), tradebook.M(1000))
	}
}

func TestSaveLedgerRewritesCanonically(t *testing.T) {
	setupAppFiles(t)

	appendTransaction(tradebook.NewDeposit(tradebook.MustParseDate("2025-03-01"), "", tradebook.M(100)))
	appendTransaction(tradebook.NewDeposit(tradebook.MustParseDate("2025-01-01"), "", tradebook.M(200)))

	ledger, err := DecodeLedger()
	if err != nil {
		t.Fatalf("DecodeLedger() failed: %v", err)
	}
	if err := SaveLedger(ledger); err != nil {
		t.Fatalf("SaveLedger() failed: %v", err)
	}

	reread, err := DecodeLedger()
	if err != nil {
		t.Fatalf("DecodeLedger() after save failed: %v", err)
	}
	if reread.Len() != 2 {
		t.Fatalf("got %d transactions, want 2", reread.Len())
	}
	if reread.OldestTransactionDate() != tradebook.MustParseDate("2025-01-01") {
		t.Errorf("journal not sorted: oldest = %s", reread.OldestTransactionDate())
	}
}
