// Package cmd implements the CLI application to manage a trading journal.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/vilelam/tradebook"
)

// Register the subcommands.
// A main package calls Register() to declare the subcommands, then Execute()
// on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&daytradeCmd{}, "transactions")
	c.Register(&depositCmd{}, "transactions")
	c.Register(&withdrawCmd{}, "transactions")
	c.Register(&feeCmd{}, "transactions")
	c.Register(&adjustCmd{}, "transactions")

	c.Register(&logCmd{}, "reports")
	c.Register(&holdingsCmd{}, "reports")
	c.Register(&taxesCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&editCmd{}, "journal")
	c.Register(&deleteCmd{}, "journal")
	c.Register(&resetCmd{}, "journal")
	c.Register(&fmtCmd{}, "journal")
	c.Register(&configCmd{}, "journal")
	c.Register(&topicCmd{}, "journal")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var ledgerFile = flag.String("ledger-file", "tradebook.jsonl", "Path to the journal file (JSONL format)")
var configFile = flag.String("config-file", "config.json", "Path to the tax configuration file (JSON format)")

// LoadConfig reads the app tax configuration file. A missing file yields the
// default configuration.
func LoadConfig() (tradebook.Config, error) {
	f, err := os.Open(*configFile)
	if errors.Is(err, fs.ErrNotExist) {
		return tradebook.DefaultConfig(), nil
	}
	if err != nil {
		return tradebook.DefaultConfig(), fmt.Errorf("could not open configuration file %q: %w", *configFile, err)
	}
	defer f.Close()
	return tradebook.DecodeConfig(f)
}

// SaveConfig writes the tax configuration into the app configuration file.
func SaveConfig(c tradebook.Config) error {
	f, err := os.Create(*configFile)
	if err != nil {
		return fmt.Errorf("could not create configuration file %q: %w", *configFile, err)
	}
	defer f.Close()
	return tradebook.EncodeConfig(f, c)
}

// DecodeLedger reads the app journal file and applies the configuration on
// it. A missing journal yields an empty ledger.
func DecodeLedger() (*tradebook.Ledger, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		ledger := tradebook.NewLedger()
		ledger.SetConfig(cfg)
		return ledger, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open journal file %q: %w", *ledgerFile, err)
	}
	defer f.Close()

	ledger, err := tradebook.DecodeLedger(f)
	if err != nil {
		return nil, err
	}
	ledger.SetConfig(cfg)
	return ledger, nil
}

// SaveLedger rewrites the app journal file in canonical form.
func SaveLedger(ledger *tradebook.Ledger) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return fmt.Errorf("could not create journal file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return tradebook.EncodeLedger(f, ledger)
}

// appendTransaction appends a transaction to the app journal file.
func appendTransaction(tx tradebook.Transaction) subcommands.ExitStatus {
	filename := *ledgerFile
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := tradebook.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to journal file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended transaction to %s\n", filename)
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Println(out)
}
