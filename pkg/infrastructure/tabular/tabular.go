// Package tabular converts raw worksheet-shaped data (a header row plus string
// cells) into typed usage and stock rows, and back. Both the CSV and the
// Google Sheets stores read through it, so the column checks and the numeric
// leniency live in exactly one place.
package tabular

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/domain/entities"
)

// Column names as they appear in the spreadsheet headers.
const (
	ColComponent = "Component"
	ColPerCase   = "Per_Case"
	ColUOM       = "UOM"
	ColOnHand    = "On_Hand"
)

// Table is tabular data as read from a worksheet or CSV file: one header row
// and zero or more data rows. Rows may be ragged; missing cells read as empty.
type Table struct {
	Header []string
	Rows   [][]string
}

// Cell returns the value of the named column in the given row, or "" when the
// column is absent or the row is too short.
func (t Table) Cell(row []string, column string) string {
	idx := t.columnIndex(column)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// HasColumn reports whether the table header contains the named column.
func (t Table) HasColumn(column string) bool {
	return t.columnIndex(column) >= 0
}

func (t Table) columnIndex(column string) int {
	for i, h := range t.Header {
		if strings.TrimSpace(h) == column {
			return i
		}
	}
	return -1
}

// NumericOrZero is the parse-or-default coercion policy: any cell that fails
// numeric parsing (empty, text, "N/A") becomes zero. Spreadsheet data is
// assumed to be messy, so a malformed cell is repaired silently rather than
// aborting the computation.
func NumericOrZero(cell string) decimal.Decimal {
	s := strings.TrimSpace(cell)
	if s == "" {
		return decimal.Zero
	}
	// Tolerate thousands separators the way sheet exports produce them.
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseUsage converts a raw table into usage rows. The Component and Per_Case
// columns are mandatory; their absence is a *entities.ConfigError and no rows
// are returned. UOM is optional and defaults to "". Rows with an empty
// component name are kept as-is, and duplicate component names are not
// deduplicated: each row is processed independently downstream.
func ParseUsage(t Table) ([]*entities.ComponentUsage, error) {
	var missing []string
	for _, col := range []string{ColComponent, ColPerCase} {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &entities.ConfigError{Missing: missing, Found: t.Header}
	}

	usage := make([]*entities.ComponentUsage, 0, len(t.Rows))
	for _, row := range t.Rows {
		usage = append(usage, &entities.ComponentUsage{
			Component: entities.ComponentName(strings.TrimSpace(t.Cell(row, ColComponent))),
			PerCase:   NumericOrZero(t.Cell(row, ColPerCase)),
			UOM:       strings.TrimSpace(t.Cell(row, ColUOM)),
		})
	}
	return usage, nil
}

// ParseStock converts a raw table into stock rows. Unlike usage, a stock table
// with missing columns is not an error: callers fall back to SynthesizeStock.
// HasStockColumns tells them whether to.
func ParseStock(t Table) []*entities.ComponentStock {
	stock := make([]*entities.ComponentStock, 0, len(t.Rows))
	for _, row := range t.Rows {
		stock = append(stock, &entities.ComponentStock{
			Component: entities.ComponentName(strings.TrimSpace(t.Cell(row, ColComponent))),
			OnHand:    NumericOrZero(t.Cell(row, ColOnHand)),
		})
	}
	return stock
}

// HasStockColumns reports whether the table carries both Component and On_Hand.
func HasStockColumns(t Table) bool {
	return t.HasColumn(ColComponent) && t.HasColumn(ColOnHand)
}

// SynthesizeStock builds an all-zero stock table from a usage component list.
// Used when the backing store has no stock table at all.
func SynthesizeStock(usage []*entities.ComponentUsage) []*entities.ComponentStock {
	stock := make([]*entities.ComponentStock, 0, len(usage))
	for _, u := range usage {
		stock = append(stock, &entities.ComponentStock{
			Component: u.Component,
			OnHand:    decimal.Zero,
		})
	}
	return stock
}

// StockTable renders stock rows in the persisted write-back shape: exactly the
// Component and On_Hand columns, every quantity already numeric.
func StockTable(rows []*entities.ComponentStock) Table {
	t := Table{Header: []string{ColComponent, ColOnHand}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{string(r.Component), r.OnHand.String()})
	}
	return t
}
