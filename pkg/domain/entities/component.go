package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ComponentName represents a unique component identifier within a load
type ComponentName string

// ComponentUsage represents one recipe row: how much of a component one case consumes
type ComponentUsage struct {
	Component ComponentName
	PerCase   decimal.Decimal
	UOM       string
}

// NewComponentUsage creates a validated ComponentUsage
func NewComponentUsage(component ComponentName, perCase decimal.Decimal, uom string) (*ComponentUsage, error) {
	if string(component) == "" {
		return nil, fmt.Errorf("component name cannot be empty")
	}
	if perCase.IsNegative() {
		return nil, fmt.Errorf("per-case quantity cannot be negative, got %s", perCase)
	}

	return &ComponentUsage{
		Component: component,
		PerCase:   perCase,
		UOM:       uom,
	}, nil
}

// ComponentStock represents one stock row: the on-hand quantity of a component.
// OnHand may be negative; that is a data anomaly the system tolerates rather
// than rejects.
type ComponentStock struct {
	Component ComponentName
	OnHand    decimal.Decimal
}

// NewComponentStock creates a validated ComponentStock
func NewComponentStock(component ComponentName, onHand decimal.Decimal) (*ComponentStock, error) {
	if string(component) == "" {
		return nil, fmt.Errorf("component name cannot be empty")
	}

	return &ComponentStock{
		Component: component,
		OnHand:    onHand,
	}, nil
}

// FeasibilityRow is one derived row of the display table. It is computed per
// request and never persisted.
type FeasibilityRow struct {
	Component ComponentName
	UOM       string
	OnHand    decimal.Decimal
	PerCase   decimal.Decimal
	Required  decimal.Decimal
	Remaining decimal.Decimal
}
