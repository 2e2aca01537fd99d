package tabular

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/domain/entities"
)

func TestNumericOrZero(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want string
	}{
		{"plain_integer", "12", "12"},
		{"plain_decimal", "4.75", "4.75"},
		{"negative", "-3.5", "-3.5"},
		{"whitespace_padded", "  8 ", "8"},
		{"thousands_separator", "1,250", "1250"},
		{"empty", "", "0"},
		{"text", "N/A", "0"},
		{"mixed", "12 bottles", "0"},
		{"lone_minus", "-", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := decimal.NewFromString(tt.want)
			if err != nil {
				t.Fatalf("bad want literal: %v", err)
			}
			if got := NumericOrZero(tt.cell); !got.Equal(want) {
				t.Errorf("NumericOrZero(%q) = %s, want %s", tt.cell, got, want)
			}
		})
	}
}

func TestParseUsage(t *testing.T) {
	table := Table{
		Header: []string{"Component", "Per_Case", "UOM"},
		Rows: [][]string{
			{"Bottle", "12", "ea"},
			{"Cap", "garbage", "ea"},
			{"Syrup", "1.5"}, // ragged row, UOM missing
		},
	}

	usage, err := ParseUsage(table)
	if err != nil {
		t.Fatalf("ParseUsage failed: %v", err)
	}
	if len(usage) != 3 {
		t.Fatalf("expected 3 usage rows, got %d", len(usage))
	}

	if usage[0].Component != "Bottle" || usage[0].UOM != "ea" {
		t.Errorf("unexpected first row: %+v", usage[0])
	}
	// Malformed Per_Case is repaired to zero, never an error.
	if !usage[1].PerCase.IsZero() {
		t.Errorf("expected coerced zero Per_Case, got %s", usage[1].PerCase)
	}
	if usage[2].UOM != "" {
		t.Errorf("expected empty UOM for ragged row, got %q", usage[2].UOM)
	}
}

func TestParseUsage_MissingColumns(t *testing.T) {
	tests := []struct {
		name   string
		header []string
	}{
		{"no_per_case", []string{"Component", "UOM"}},
		{"no_component", []string{"Per_Case", "UOM"}},
		{"empty_header", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseUsage(Table{Header: tt.header, Rows: [][]string{{"x", "y", "z"}}})
			if err == nil {
				t.Fatal("expected error for missing mandatory columns")
			}
			var confErr *entities.ConfigError
			if !errors.As(err, &confErr) {
				t.Fatalf("expected *entities.ConfigError, got %T", err)
			}
		})
	}
}

func TestParseStock(t *testing.T) {
	table := Table{
		Header: []string{"Component", "On_Hand"},
		Rows: [][]string{
			{"Bottle", "100"},
			{"Cap", "N/A"},
		},
	}

	stock := ParseStock(table)
	if len(stock) != 2 {
		t.Fatalf("expected 2 stock rows, got %d", len(stock))
	}
	if !stock[1].OnHand.IsZero() {
		t.Errorf("non-numeric On_Hand must coerce to zero, got %s", stock[1].OnHand)
	}
}

func TestHasStockColumns(t *testing.T) {
	if HasStockColumns(Table{Header: []string{"Component", "Count"}}) {
		t.Error("table without On_Hand should not qualify")
	}
	if !HasStockColumns(Table{Header: []string{"On_Hand", "Component"}}) {
		t.Error("column order must not matter")
	}
}

func TestSynthesizeStock(t *testing.T) {
	usage := []*entities.ComponentUsage{
		{Component: "Bottle", PerCase: decimal.NewFromInt(12)},
		{Component: "Cap", PerCase: decimal.NewFromInt(12)},
	}

	stock := SynthesizeStock(usage)
	if len(stock) != len(usage) {
		t.Fatalf("expected one stock row per usage row, got %d", len(stock))
	}
	for _, row := range stock {
		if !row.OnHand.IsZero() {
			t.Errorf("%s: synthesized stock must be zero, got %s", row.Component, row.OnHand)
		}
	}
}

func TestStockTable(t *testing.T) {
	rows := []*entities.ComponentStock{
		{Component: "Bottle", OnHand: decimal.NewFromFloat(2.5)},
	}

	table := StockTable(rows)
	if len(table.Header) != 2 || table.Header[0] != ColComponent || table.Header[1] != ColOnHand {
		t.Fatalf("write-back table must carry exactly Component and On_Hand, got %v", table.Header)
	}
	if table.Rows[0][1] != "2.5" {
		t.Errorf("expected numeric string cell, got %q", table.Rows[0][1])
	}
}

func TestCell_AbsentColumn(t *testing.T) {
	table := Table{Header: []string{"Component"}}
	if got := table.Cell([]string{"Bottle"}, "UOM"); got != "" {
		t.Errorf("absent column should read empty, got %q", got)
	}
}
