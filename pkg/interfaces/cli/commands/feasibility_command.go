package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/application/dto"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/application/services"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/domain/entities"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/domain/repositories"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/infrastructure/config"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/infrastructure/logging"
	csvstore "github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/infrastructure/repositories/csv"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/infrastructure/repositories/sheets"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/infrastructure/repositories/sqlite"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/interfaces/cli/output"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/interfaces/rest"
)

// Config holds configuration for the feasibility command
type Config struct {
	UsageFile       string
	StockFile       string
	SheetID         string
	CredentialsFile string
	UsageSheet      string
	StockSheet      string
	DBFile          string
	Cases           string
	StockEdits      []string
	Sync            bool
	Format          string
	OutputDir       string
	SnapshotFile    string
	Serve           bool
	Port            string
	Verbose         bool
	Help            bool
}

// FeasibilityCommand handles the main command execution logic
type FeasibilityCommand struct {
	config Config
	logger *logging.Logger
}

// NewFeasibilityCommand creates a new feasibility command with the given configuration
func NewFeasibilityCommand(cfg Config, logger *logging.Logger) *FeasibilityCommand {
	return &FeasibilityCommand{config: cfg, logger: logger}
}

// Execute runs the feasibility command
func (c *FeasibilityCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	store, err := c.openStore(ctx)
	if err != nil {
		return fmt.Errorf("failed to open inventory store: %w", err)
	}
	if closer, ok := store.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	if c.config.Serve {
		return c.serve(store)
	}

	session, err := services.NewPlanningSession(ctx, store)
	if err != nil {
		return err
	}

	if err := c.applyEdits(session); err != nil {
		return err
	}

	cases := decimal.Zero
	if c.config.Cases != "" {
		cases, err = decimal.NewFromString(c.config.Cases)
		if err != nil {
			return fmt.Errorf("invalid -cases value %q", c.config.Cases)
		}
	}

	start := time.Now()
	result := session.Compute(cases)
	if c.config.Verbose {
		fmt.Printf("Computed %d rows in %v\n\n", len(result.DisplayRows), time.Since(start))
	}

	if err := output.Generate(result, output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	}); err != nil {
		return fmt.Errorf("failed to generate output: %w", err)
	}

	if c.config.SnapshotFile != "" {
		if err := c.writeSnapshot(result); err != nil {
			return err
		}
	}

	if c.config.Sync {
		if err := session.Sync(ctx); err != nil {
			return err
		}
		if c.config.Verbose {
			fmt.Printf("💾 Synced stock table at %s\n", time.Now().Format("2006-01-02 15:04:05"))
		}
	}

	return nil
}

// openStore picks the backing store from the configuration: CSV files, a
// local SQLite snapshot, or the live Google Sheet.
func (c *FeasibilityCommand) openStore(ctx context.Context) (repositories.InventoryStore, error) {
	switch {
	case c.config.UsageFile != "":
		return csvstore.NewStore(c.config.UsageFile, c.config.StockFile), nil
	case c.config.DBFile != "":
		return sqlite.Open(c.config.DBFile)
	case c.config.SheetID != "":
		if c.config.CredentialsFile == "" {
			return nil, fmt.Errorf("-credentials is required with -sheet")
		}
		creds, err := config.LoadServiceAccount(c.config.CredentialsFile)
		if err != nil {
			return nil, err
		}
		return sheets.NewStore(ctx, creds,
			config.ResolveSheetID(c.config.SheetID),
			c.config.UsageSheet, c.config.StockSheet)
	default:
		return nil, fmt.Errorf("no data source: pass -usage (CSV), -db (SQLite) or -sheet (Google Sheet)")
	}
}

// applyEdits applies repeated -set Component=Qty flags to the session's
// editable stock table.
func (c *FeasibilityCommand) applyEdits(session *services.PlanningSession) error {
	for _, edit := range c.config.StockEdits {
		name, value, found := strings.Cut(edit, "=")
		if !found {
			return fmt.Errorf("invalid -set value %q (expected Component=Quantity)", edit)
		}
		onHand, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid quantity in -set value %q", edit)
		}
		if err := session.SetOnHand(entities.ComponentName(strings.TrimSpace(name)), onHand); err != nil {
			return err
		}
	}
	return nil
}

func (c *FeasibilityCommand) writeSnapshot(result *dto.FeasibilityResult) error {
	file, err := os.Create(c.config.SnapshotFile)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file %s: %w", c.config.SnapshotFile, err)
	}
	defer file.Close()

	if err := output.WriteSnapshotXLSX(file, result, c.config.UsageSheet, c.config.StockSheet); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if c.config.Verbose {
		fmt.Printf("💾 Snapshot saved to: %s\n", c.config.SnapshotFile)
	}
	return file.Close()
}

func (c *FeasibilityCommand) serve(store repositories.InventoryStore) error {
	server := rest.NewServer(store, c.logger, c.config.UsageSheet, c.config.StockSheet)

	addr := ":" + c.config.Port
	c.logger.Info("Starting HTTP server", "addr", addr)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      server.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return httpServer.ListenAndServe()
}

func (c *FeasibilityCommand) showHelp() {
	fmt.Println("shotcraft - inventory / order-feasibility calculator")
	fmt.Println()
	fmt.Println("Data sources (pick one):")
	fmt.Println("  -usage FILE -stock FILE     CSV tables")
	fmt.Println("  -db FILE                    local SQLite snapshot")
	fmt.Println("  -sheet ID_OR_URL -credentials FILE")
	fmt.Println("                              live Google Sheet (service account JSON)")
	fmt.Println()
	fmt.Println("Actions:")
	fmt.Println("  -cases N                    order size to check (default 0)")
	fmt.Println("  -set Component=Qty          edit an on-hand value (repeatable)")
	fmt.Println("  -sync                       write the edited stock table back")
	fmt.Println("  -snapshot FILE.xlsx         write a two-sheet Excel snapshot")
	fmt.Println("  -serve -port N              run the HTTP session API instead")
	fmt.Println()
	fmt.Println("Output:")
	fmt.Println("  -format text|json|csv       result format (default text)")
	fmt.Println("  -output DIR                 write results into DIR")
	fmt.Println("  -verbose                    chatty progress output")
}
