package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/application/dto"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/domain/entities"
)

func sampleResult() *dto.FeasibilityResult {
	rows := []entities.FeasibilityRow{
		{
			Component: "Bottle",
			UOM:       "ea",
			OnHand:    decimal.NewFromInt(100),
			PerCase:   decimal.NewFromInt(12),
			Required:  decimal.NewFromInt(60),
			Remaining: decimal.NewFromInt(40),
		},
		{
			Component: "Cap",
			UOM:       "ea",
			OnHand:    decimal.NewFromInt(50),
			PerCase:   decimal.NewFromInt(12),
			Required:  decimal.NewFromInt(60),
			Remaining: decimal.NewFromInt(-10),
		},
	}
	return &dto.FeasibilityResult{
		DisplayRows:      rows,
		ShortageRows:     rows[1:],
		MaxSellableCases: 4,
		Cases:            decimal.NewFromInt(5),
	}
}

func TestGenerate_UnsupportedFormat(t *testing.T) {
	err := Generate(sampleResult(), Config{Format: "yaml"})
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestGenerateCSVOutput(t *testing.T) {
	dir := t.TempDir()
	if err := Generate(sampleResult(), Config{Format: "csv", OutputDir: dir}); err != nil {
		t.Fatalf("generating CSV output: %v", err)
	}

	display, err := os.ReadFile(filepath.Join(dir, "display.csv"))
	if err != nil {
		t.Fatalf("reading display CSV: %v", err)
	}
	wantDisplay := "Component,UOM,On_Hand,Per_Case,Required,Remaining\n" +
		"Bottle,ea,100,12,60,40\n" +
		"Cap,ea,50,12,60,-10\n"
	if string(display) != wantDisplay {
		t.Errorf("display CSV mismatch:\ngot:\n%s\nwant:\n%s", display, wantDisplay)
	}

	shortages, err := os.ReadFile(filepath.Join(dir, "shortages.csv"))
	if err != nil {
		t.Fatalf("reading shortages CSV: %v", err)
	}
	wantShortages := "Component,UOM,On_Hand,Per_Case,Required,Remaining\n" +
		"Cap,ea,50,12,60,-10\n"
	if string(shortages) != wantShortages {
		t.Errorf("shortages CSV mismatch:\ngot:\n%s\nwant:\n%s", shortages, wantShortages)
	}
}

func TestGenerateCSVOutput_RequiresDir(t *testing.T) {
	if err := Generate(sampleResult(), Config{Format: "csv"}); err == nil {
		t.Fatal("expected error when output directory is missing")
	}
}

func TestWriteSnapshotXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSnapshotXLSX(&buf, sampleResult(), "FORMULA", "INVENTORY"); err != nil {
		t.Fatalf("writing snapshot: %v", err)
	}

	wb, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "FORMULA" || sheets[1] != "INVENTORY" {
		t.Fatalf("unexpected sheets: %v", sheets)
	}

	usageRows, err := wb.GetRows("FORMULA")
	if err != nil {
		t.Fatalf("reading usage sheet: %v", err)
	}
	if len(usageRows) != 3 {
		t.Fatalf("expected header plus 2 usage rows, got %d", len(usageRows))
	}
	if usageRows[0][0] != "Component" || usageRows[0][2] != "Per_Case" {
		t.Errorf("unexpected usage header: %v", usageRows[0])
	}
	if usageRows[1][0] != "Bottle" || usageRows[1][2] != "12" {
		t.Errorf("unexpected first usage row: %v", usageRows[1])
	}

	stockRows, err := wb.GetRows("INVENTORY")
	if err != nil {
		t.Fatalf("reading stock sheet: %v", err)
	}
	if len(stockRows) != 3 {
		t.Fatalf("expected header plus 2 stock rows, got %d", len(stockRows))
	}
	wantHeader := []string{"Component", "UOM", "On_Hand", "Per_Case", "Required", "Remaining"}
	for i, col := range wantHeader {
		if stockRows[0][i] != col {
			t.Errorf("stock header column %d = %q, want %q", i, stockRows[0][i], col)
		}
	}
	if stockRows[2][0] != "Cap" || stockRows[2][5] != "-10" {
		t.Errorf("unexpected Cap row: %v", stockRows[2])
	}
}
