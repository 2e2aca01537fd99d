package entities

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewComponentUsage(t *testing.T) {
	usage, err := NewComponentUsage("Bottle", decimal.NewFromInt(12), "ea")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usage.Component != "Bottle" || usage.UOM != "ea" {
		t.Errorf("unexpected fields: %+v", usage)
	}
	if !usage.PerCase.Equal(decimal.NewFromInt(12)) {
		t.Errorf("expected per-case 12, got %s", usage.PerCase)
	}
}

func TestNewComponentUsage_EmptyName(t *testing.T) {
	_, err := NewComponentUsage("", decimal.NewFromInt(1), "ea")
	if err == nil {
		t.Fatal("expected error for empty component name")
	}
}

func TestNewComponentUsage_NegativePerCase(t *testing.T) {
	_, err := NewComponentUsage("Bottle", decimal.NewFromInt(-1), "ea")
	if err == nil {
		t.Fatal("expected error for negative per-case quantity")
	}
	if !strings.Contains(err.Error(), "negative") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestNewComponentUsage_ZeroPerCase(t *testing.T) {
	// Informational rows (zero consumption) are valid usage entries.
	usage, err := NewComponentUsage("Sticker", decimal.Zero, "ea")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !usage.PerCase.IsZero() {
		t.Errorf("expected zero per-case, got %s", usage.PerCase)
	}
}

func TestNewComponentStock(t *testing.T) {
	stock, err := NewComponentStock("Cap", decimal.NewFromFloat(87.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stock.Component != "Cap" || !stock.OnHand.Equal(decimal.NewFromFloat(87.5)) {
		t.Errorf("unexpected fields: %+v", stock)
	}
}

func TestNewComponentStock_EmptyName(t *testing.T) {
	_, err := NewComponentStock("", decimal.Zero)
	if err == nil {
		t.Fatal("expected error for empty component name")
	}
}

func TestNewComponentStock_NegativeOnHand(t *testing.T) {
	// Negative on-hand is tolerated: it reflects real spreadsheet data.
	stock, err := NewComponentStock("Bottle", decimal.NewFromInt(-3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stock.OnHand.Equal(decimal.NewFromInt(-3)) {
		t.Errorf("expected on-hand -3, got %s", stock.OnHand)
	}
}
