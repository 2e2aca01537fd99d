package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/application/dto"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/domain/entities"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/domain/repositories"
)

// PlanningSession holds one user's working copy of the inventory tables: the
// usage table read once at session start (immutable within the session) and an
// editable stock table. Edits live only in the session until Sync writes them
// back as a full-table replacement; no two sessions observe each other's
// unsynced edits.
type PlanningSession struct {
	store       repositories.InventoryStore
	feasibility *FeasibilityService

	mu    sync.Mutex
	usage []*entities.ComponentUsage
	stock []*entities.ComponentStock
}

// NewPlanningSession loads fresh usage and stock tables from the store and
// returns a session over its own copies of them.
func NewPlanningSession(ctx context.Context, store repositories.InventoryStore) (*PlanningSession, error) {
	s := &PlanningSession{
		store:       store,
		feasibility: NewFeasibilityService(),
	}
	if err := s.reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PlanningSession) reload(ctx context.Context) error {
	usage, err := s.store.LoadUsage(ctx)
	if err != nil {
		return fmt.Errorf("failed to load usage table: %w", err)
	}
	stock, err := s.store.LoadStock(ctx)
	if err != nil {
		return fmt.Errorf("failed to load stock table: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.usage = usage
	s.stock = joinStock(usage, stock)
	return nil
}

// joinStock builds the editable stock table: one row per usage component, in
// usage order, with OnHand defaulted to zero for components the loaded stock
// table does not cover. Duplicate usage names each get their own row.
func joinStock(usage []*entities.ComponentUsage, stock []*entities.ComponentStock) []*entities.ComponentStock {
	onHand := make(map[entities.ComponentName]decimal.Decimal, len(stock))
	for _, row := range stock {
		onHand[row.Component] = row.OnHand
	}

	joined := make([]*entities.ComponentStock, 0, len(usage))
	for _, u := range usage {
		held, ok := onHand[u.Component]
		if !ok {
			held = decimal.Zero
		}
		joined = append(joined, &entities.ComponentStock{Component: u.Component, OnHand: held})
	}
	return joined
}

// Usage returns the session's usage table.
func (s *PlanningSession) Usage() []*entities.ComponentUsage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyUsage(s.usage)
}

// Stock returns the session's editable stock table, including unsynced edits.
func (s *PlanningSession) Stock() []*entities.ComponentStock {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyStock(s.stock)
}

// SetOnHand updates the on-hand quantity of every stock row for the named
// component. The edit is transient until Sync.
func (s *PlanningSession) SetOnHand(component entities.ComponentName, onHand decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, row := range s.stock {
		if row.Component == component {
			row.OnHand = onHand
			found = true
		}
	}
	if !found {
		return fmt.Errorf("unknown component: %s", component)
	}
	return nil
}

// Compute runs the feasibility engine over the session's current tables.
func (s *PlanningSession) Compute(cases decimal.Decimal) *dto.FeasibilityResult {
	s.mu.Lock()
	usage := copyUsage(s.usage)
	stock := copyStock(s.stock)
	s.mu.Unlock()

	return s.feasibility.Compute(usage, stock, cases)
}

// Sync persists the session's stock table to the store as a full-table
// replacement, making it the new authoritative stock snapshot.
func (s *PlanningSession) Sync(ctx context.Context) error {
	stock := s.Stock()
	if err := s.store.ReplaceStock(ctx, stock); err != nil {
		return fmt.Errorf("failed to sync stock table: %w", err)
	}
	return nil
}

// Revert discards unsynced edits and reloads both tables from the store.
func (s *PlanningSession) Revert(ctx context.Context) error {
	return s.reload(ctx)
}

func copyUsage(usage []*entities.ComponentUsage) []*entities.ComponentUsage {
	out := make([]*entities.ComponentUsage, len(usage))
	for i, u := range usage {
		row := *u
		out[i] = &row
	}
	return out
}

func copyStock(stock []*entities.ComponentStock) []*entities.ComponentStock {
	out := make([]*entities.ComponentStock, len(stock))
	for i, r := range stock {
		row := *r
		out[i] = &row
	}
	return out
}
