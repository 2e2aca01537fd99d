// Package csv implements a file-backed inventory store for local scenarios:
// one CSV file per worksheet, with the same headers the spreadsheet uses.
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/domain/entities"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/domain/repositories"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/infrastructure/tabular"
)

// Store loads usage and stock tables from CSV files and writes stock edits
// back to the stock file.
type Store struct {
	usagePath string
	stockPath string
}

// NewStore creates a CSV store over the given file paths. stockPath may name a
// file that does not exist yet; the stock table is then synthesized from the
// usage component list until the first sync creates it.
func NewStore(usagePath, stockPath string) *Store {
	return &Store{usagePath: usagePath, stockPath: stockPath}
}

// Verify interface compliance
var _ repositories.InventoryStore = (*Store)(nil)

// LoadUsage loads the usage table from the usage CSV file
func (s *Store) LoadUsage(ctx context.Context) ([]*entities.ComponentUsage, error) {
	table, err := readTable(s.usagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read usage file %s: %w", s.usagePath, err)
	}

	usage, err := tabular.ParseUsage(table)
	if err != nil {
		return nil, fmt.Errorf("usage file %s: %w", s.usagePath, err)
	}
	return usage, nil
}

// LoadStock loads the stock table from the stock CSV file. A missing file or a
// file without the Component/On_Hand columns yields an all-zero stock table
// synthesized from the usage component list.
func (s *Store) LoadStock(ctx context.Context) ([]*entities.ComponentStock, error) {
	table, err := readTable(s.stockPath)
	if err != nil {
		if os.IsNotExist(err) {
			return s.synthesize(ctx)
		}
		return nil, fmt.Errorf("failed to read stock file %s: %w", s.stockPath, err)
	}

	if !tabular.HasStockColumns(table) {
		return s.synthesize(ctx)
	}
	return tabular.ParseStock(table), nil
}

func (s *Store) synthesize(ctx context.Context) ([]*entities.ComponentStock, error) {
	usage, err := s.LoadUsage(ctx)
	if err != nil {
		return nil, err
	}
	return tabular.SynthesizeStock(usage), nil
}

// ReplaceStock rewrites the stock CSV file with exactly the Component and
// On_Hand columns.
func (s *Store) ReplaceStock(ctx context.Context, rows []*entities.ComponentStock) error {
	table := tabular.StockTable(rows)

	file, err := os.Create(s.stockPath)
	if err != nil {
		return fmt.Errorf("failed to create stock file %s: %w", s.stockPath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(table.Header); err != nil {
		return fmt.Errorf("failed to write stock header: %w", err)
	}
	for _, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write stock row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush stock file %s: %w", s.stockPath, err)
	}
	return file.Close()
}

func readTable(filename string) (tabular.Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return tabular.Table{}, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return tabular.Table{}, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(records) == 0 {
		return tabular.Table{}, nil
	}
	return tabular.Table{Header: records[0], Rows: records[1:]}, nil
}
