// Package sheets implements the inventory store over a Google Sheets
// spreadsheet: the live system of record the application was built around.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/domain/entities"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/domain/repositories"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/infrastructure/tabular"
)

// Store reads the usage and stock worksheets of one spreadsheet and writes
// stock edits back with clear-then-write semantics.
type Store struct {
	svc           *sheets.Service
	spreadsheetID string
	usageSheet    string
	stockSheet    string
}

// NewStore creates a sheets store authorized by service-account credentials
// JSON. usageSheet and stockSheet are worksheet titles (FORMULA and INVENTORY
// in the default deployment).
func NewStore(ctx context.Context, credentialsJSON []byte, spreadsheetID, usageSheet, stockSheet string) (*Store, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID cannot be empty")
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	return &Store{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		usageSheet:    usageSheet,
		stockSheet:    stockSheet,
	}, nil
}

// Verify interface compliance
var _ repositories.InventoryStore = (*Store)(nil)

// LoadUsage reads the usage worksheet
func (s *Store) LoadUsage(ctx context.Context) ([]*entities.ComponentUsage, error) {
	table, err := s.readTable(ctx, s.usageSheet)
	if err != nil {
		return nil, err
	}

	usage, err := tabular.ParseUsage(table)
	if err != nil {
		return nil, fmt.Errorf("worksheet %s: %w", s.usageSheet, err)
	}
	return usage, nil
}

// LoadStock reads the stock worksheet. A worksheet without the
// Component/On_Hand columns yields an all-zero stock table synthesized from
// the usage component list.
func (s *Store) LoadStock(ctx context.Context) ([]*entities.ComponentStock, error) {
	table, err := s.readTable(ctx, s.stockSheet)
	if err != nil {
		return nil, err
	}

	if !tabular.HasStockColumns(table) {
		usage, err := s.LoadUsage(ctx)
		if err != nil {
			return nil, err
		}
		return tabular.SynthesizeStock(usage), nil
	}
	return tabular.ParseStock(table), nil
}

// ReplaceStock clears the stock worksheet and writes the full table back
func (s *Store) ReplaceStock(ctx context.Context, rows []*entities.ComponentStock) error {
	table := tabular.StockTable(rows)

	if _, err := s.svc.Spreadsheets.Values.
		Clear(s.spreadsheetID, s.stockSheet, &sheets.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to clear worksheet %s: %w", s.stockSheet, err)
	}

	values := make([][]interface{}, 0, len(table.Rows)+1)
	header := make([]interface{}, len(table.Header))
	for i, h := range table.Header {
		header[i] = h
	}
	values = append(values, header)
	for _, row := range table.Rows {
		cells := make([]interface{}, len(row))
		for i, c := range row {
			cells[i] = c
		}
		values = append(values, cells)
	}

	if _, err := s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, s.stockSheet, &sheets.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to update worksheet %s: %w", s.stockSheet, err)
	}
	return nil
}

// readTable fetches a whole worksheet as strings: first row is the header,
// the rest are data rows.
func (s *Store) readTable(ctx context.Context, worksheet string) (tabular.Table, error) {
	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, worksheet).
		Context(ctx).Do()
	if err != nil {
		return tabular.Table{}, fmt.Errorf("failed to read worksheet %s: %w", worksheet, err)
	}

	if len(resp.Values) == 0 {
		return tabular.Table{}, nil
	}

	header := stringCells(resp.Values[0])
	rows := make([][]string, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		rows = append(rows, stringCells(raw))
	}
	return tabular.Table{Header: header, Rows: rows}, nil
}

func stringCells(raw []interface{}) []string {
	cells := make([]string, len(raw))
	for i, v := range raw {
		cells[i] = fmt.Sprint(v)
	}
	return cells
}
