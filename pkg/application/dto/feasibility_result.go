package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/domain/entities"
)

// FeasibilityResult contains the complete output of a feasibility computation
type FeasibilityResult struct {
	// DisplayRows has exactly one row per usage entry, sorted by component name.
	DisplayRows []entities.FeasibilityRow
	// MaxSellableCases is floor(min(OnHand/PerCase)) over rows with PerCase > 0,
	// or 0 when no row constrains production.
	MaxSellableCases int64
	// ShortageRows is the subset of DisplayRows with strictly negative Remaining.
	ShortageRows []entities.FeasibilityRow
	// Cases echoes the requested order size the result was computed for.
	Cases decimal.Decimal
}
