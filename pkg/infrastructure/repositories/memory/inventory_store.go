package memory

import (
	"context"
	"sync"

	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/domain/entities"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/domain/repositories"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/infrastructure/tabular"
)

// InventoryStore provides in-memory usage and stock storage
type InventoryStore struct {
	mu    sync.RWMutex
	usage []*entities.ComponentUsage
	stock []*entities.ComponentStock
}

// NewInventoryStore creates a new in-memory inventory store
func NewInventoryStore() *InventoryStore {
	return &InventoryStore{}
}

// Verify interface compliance
var _ repositories.InventoryStore = (*InventoryStore)(nil)

// LoadUsageRows seeds the usage table
func (s *InventoryStore) LoadUsageRows(usage []*entities.ComponentUsage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usage = append(s.usage[:0:0], usage...)
	return nil
}

// LoadStockRows seeds the stock table
func (s *InventoryStore) LoadStockRows(stock []*entities.ComponentStock) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stock = append(s.stock[:0:0], stock...)
	return nil
}

// LoadUsage returns the usage table
func (s *InventoryStore) LoadUsage(ctx context.Context) ([]*entities.ComponentUsage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entities.ComponentUsage, len(s.usage))
	for i, u := range s.usage {
		row := *u
		out[i] = &row
	}
	return out, nil
}

// LoadStock returns the stock table, synthesized from the usage component list
// when no stock has been seeded.
func (s *InventoryStore) LoadStock(ctx context.Context) ([]*entities.ComponentStock, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.stock == nil {
		return tabular.SynthesizeStock(s.usage), nil
	}

	out := make([]*entities.ComponentStock, len(s.stock))
	for i, r := range s.stock {
		row := *r
		out[i] = &row
	}
	return out, nil
}

// ReplaceStock replaces the whole stock table
func (s *InventoryStore) ReplaceStock(ctx context.Context, rows []*entities.ComponentStock) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	replacement := make([]*entities.ComponentStock, len(rows))
	for i, r := range rows {
		row := *r
		replacement[i] = &row
	}
	s.stock = replacement
	return nil
}
