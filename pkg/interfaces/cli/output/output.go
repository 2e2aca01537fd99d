package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/application/dto"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// Generate creates output in the specified format
func Generate(result *dto.FeasibilityResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	case "csv":
		return generateCSVOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(result *dto.FeasibilityResult, config Config) error {
	fmt.Printf("📊 Feasibility Results\n")
	fmt.Printf("======================\n\n")

	fmt.Printf("Order size (cases): %s\n", result.Cases)
	fmt.Printf("Max sellable cases from current stock: %d\n\n", result.MaxSellableCases)

	if len(result.DisplayRows) > 0 {
		fmt.Printf("📋 Components:\n")
		printRowTable(result.DisplayRows)
	}

	if len(result.ShortageRows) > 0 {
		fmt.Printf("⚠️  Shortages for this order:\n")
		printRowTable(result.ShortageRows)
	} else {
		fmt.Printf("No shortages detected for this order.\n")
	}

	return nil
}

func printRowTable(rows []entities.FeasibilityRow) {
	fmt.Printf("%-20s %-8s %-12s %-12s %-12s %-12s\n",
		"Component", "UOM", "On Hand", "Per Case", "Required", "Remaining")
	fmt.Printf("%-20s %-8s %-12s %-12s %-12s %-12s\n",
		"--------------------", "--------", "------------", "------------", "------------", "------------")

	for _, row := range rows {
		fmt.Printf("%-20s %-8s %-12s %-12s %-12s %-12s\n",
			row.Component,
			row.UOM,
			row.OnHand,
			row.PerCase,
			row.Required,
			row.Remaining)
	}
	fmt.Println()
}

// generateJSONOutput creates JSON output
func generateJSONOutput(result *dto.FeasibilityResult, config Config) error {
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(jsonData))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "feasibility_results.json")
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 JSON results saved to: %s\n", filename)
	}
	return nil
}

// generateCSVOutput creates CSV output
func generateCSVOutput(result *dto.FeasibilityResult, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	displayFile := filepath.Join(config.OutputDir, "display.csv")
	if err := writeRowsCSV(result.DisplayRows, displayFile); err != nil {
		return fmt.Errorf("failed to write display CSV: %w", err)
	}

	shortageFile := filepath.Join(config.OutputDir, "shortages.csv")
	if err := writeRowsCSV(result.ShortageRows, shortageFile); err != nil {
		return fmt.Errorf("failed to write shortages CSV: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 CSV results saved to:\n")
		fmt.Printf("  Display: %s\n", displayFile)
		fmt.Printf("  Shortages: %s\n", shortageFile)
	}
	return nil
}

func writeRowsCSV(rows []entities.FeasibilityRow, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"Component", "UOM", "On_Hand", "Per_Case", "Required", "Remaining"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			string(row.Component),
			row.UOM,
			row.OnHand.String(),
			row.PerCase.String(),
			row.Required.String(),
			row.Remaining.String(),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
