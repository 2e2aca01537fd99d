package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/infrastructure/config"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/infrastructure/logging"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/interfaces/cli/commands"
)

// multiFlag collects a repeatable string flag
type multiFlag []string

func (m *multiFlag) String() string { return fmt.Sprint([]string(*m)) }

func (m *multiFlag) Set(value string) error {
	*m = append(*m, value)
	return nil
}

func main() {
	// Environment first: flags override it.
	if err := config.LoadEnvFile(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	envCfg := config.FromEnv()

	var stockEdits multiFlag

	// Command line flags
	var (
		usageFile = flag.String("usage", "", "Path to usage (FORMULA) CSV file")
		stockFile = flag.String("stock", "", "Path to stock (INVENTORY) CSV file")
		sheetID   = flag.String("sheet", envCfg.SheetID, "Google Sheet ID or full URL")
		credsFile = flag.String(
			"credentials",
			envCfg.CredentialsFile,
			"Path to service account credentials JSON",
		)
		usageSheet = flag.String("usage-ws", envCfg.UsageSheet, "Usage worksheet title")
		stockSheet = flag.String("stock-ws", envCfg.StockSheet, "Stock worksheet title")
		dbFile     = flag.String("db", "", "Path to local SQLite snapshot database")
		cases      = flag.String("cases", "0", "Order size in cases")
		sync       = flag.Bool("sync", false, "Write edited stock table back to the store")
		format     = flag.String("format", "text", "Output format: text, json, csv")
		outputDir  = flag.String("output", "", "Output directory for results (optional)")
		snapshot   = flag.String("snapshot", "", "Path for a two-sheet Excel snapshot (optional)")
		serve      = flag.Bool("serve", false, "Run the HTTP session API")
		port       = flag.String("port", config.GetEnv("PORT", "8080"), "HTTP listen port")
		verbose    = flag.Bool("verbose", false, "Enable verbose output")
		help       = flag.Bool("help", false, "Show help message")
	)
	flag.Var(&stockEdits, "set", "Edit an on-hand value, Component=Quantity (repeatable)")

	flag.Parse()

	logger := logging.New(logging.Config{
		Level:  config.GetEnv("LOG_LEVEL", "info"),
		Format: config.GetEnv("LOG_FORMAT", "json"),
		Output: config.GetEnv("LOG_OUTPUT", "stdout"),
	})

	// Create command configuration
	cfg := commands.Config{
		UsageFile:       *usageFile,
		StockFile:       *stockFile,
		SheetID:         *sheetID,
		CredentialsFile: *credsFile,
		UsageSheet:      *usageSheet,
		StockSheet:      *stockSheet,
		DBFile:          *dbFile,
		Cases:           *cases,
		StockEdits:      stockEdits,
		Sync:            *sync,
		Format:          *format,
		OutputDir:       *outputDir,
		SnapshotFile:    *snapshot,
		Serve:           *serve,
		Port:            *port,
		Verbose:         *verbose,
		Help:            *help,
	}

	// Create and execute command
	cmd := commands.NewFeasibilityCommand(cfg, logger)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
