package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/application/dto"
)

// WriteSnapshotXLSX writes the display table as a two-sheet Excel workbook:
// one sheet named after the usage worksheet holding Component/UOM/Per_Case,
// and an INVENTORY sheet holding the full display table. A convenience
// artifact, not a system of record.
func WriteSnapshotXLSX(w io.Writer, result *dto.FeasibilityResult, usageSheetName, stockSheetName string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", usageSheetName); err != nil {
		return fmt.Errorf("failed to name usage sheet: %w", err)
	}
	if _, err := f.NewSheet(stockSheetName); err != nil {
		return fmt.Errorf("failed to create %s sheet: %w", stockSheetName, err)
	}

	if err := setRow(f, usageSheetName, 1, []interface{}{"Component", "UOM", "Per_Case"}); err != nil {
		return err
	}
	if err := setRow(f, stockSheetName, 1, []interface{}{"Component", "UOM", "On_Hand", "Per_Case", "Required", "Remaining"}); err != nil {
		return err
	}

	for i, row := range result.DisplayRows {
		if err := setRow(f, usageSheetName, i+2, []interface{}{
			string(row.Component),
			row.UOM,
			row.PerCase.InexactFloat64(),
		}); err != nil {
			return err
		}
		if err := setRow(f, stockSheetName, i+2, []interface{}{
			string(row.Component),
			row.UOM,
			row.OnHand.InexactFloat64(),
			row.PerCase.InexactFloat64(),
			row.Required.InexactFloat64(),
			row.Remaining.InexactFloat64(),
		}); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of sheet %s: %w", row, sheet, err)
	}
	return nil
}
