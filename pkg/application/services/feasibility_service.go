package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/application/dto"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/domain/entities"
)

// FeasibilityService computes production feasibility and shortages from the
// usage and stock tables. It is a stateless pure transform: no I/O, no hidden
// state, identical inputs always produce identical outputs.
type FeasibilityService struct{}

// NewFeasibilityService creates a new feasibility service
func NewFeasibilityService() *FeasibilityService {
	return &FeasibilityService{}
}

// Compute derives the display table, the maximum sellable case count, and the
// shortage subset for a requested order size.
//
// Stock rows are left-joined onto usage rows by component name; a usage
// component with no stock entry gets OnHand 0. Duplicate usage names are
// processed independently and produce duplicate derived rows sharing the same
// joined stock value. Negative cases are not rejected; the output is
// mathematically consistent (negative Required) and callers clamp upstream.
func (s *FeasibilityService) Compute(
	usage []*entities.ComponentUsage,
	stock []*entities.ComponentStock,
	cases decimal.Decimal,
) *dto.FeasibilityResult {
	onHand := make(map[entities.ComponentName]decimal.Decimal, len(stock))
	for _, row := range stock {
		onHand[row.Component] = row.OnHand
	}

	result := &dto.FeasibilityResult{
		DisplayRows: make([]entities.FeasibilityRow, 0, len(usage)),
		Cases:       cases,
	}

	var minRatio decimal.Decimal
	constrained := false

	for _, u := range usage {
		held, ok := onHand[u.Component]
		if !ok {
			held = decimal.Zero
		}

		required := u.PerCase.Mul(cases)
		row := entities.FeasibilityRow{
			Component: u.Component,
			UOM:       u.UOM,
			OnHand:    held,
			PerCase:   u.PerCase,
			Required:  required,
			Remaining: held.Sub(required),
		}
		result.DisplayRows = append(result.DisplayRows, row)

		// Zero-consumption components cannot constrain production.
		if u.PerCase.IsPositive() {
			ratio := held.Div(u.PerCase)
			if !constrained || ratio.LessThan(minRatio) {
				minRatio = ratio
				constrained = true
			}
		}
	}

	// Floor, not round: partial cases cannot be produced. With no constraining
	// row there is nothing to size production against, so zero.
	if constrained {
		result.MaxSellableCases = minRatio.Floor().IntPart()
	}

	sort.SliceStable(result.DisplayRows, func(i, j int) bool {
		return result.DisplayRows[i].Component < result.DisplayRows[j].Component
	})

	for _, row := range result.DisplayRows {
		if row.Remaining.IsNegative() {
			result.ShortageRows = append(result.ShortageRows, row)
		}
	}

	return result
}
