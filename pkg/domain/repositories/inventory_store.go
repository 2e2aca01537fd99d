package repositories

import (
	"context"

	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/domain/entities"
)

// InventoryStore provides access to the usage (recipe) and stock tables.
//
// LoadStock must synthesize an all-zero stock table from the usage component
// list when the backing store has no stock table at all. ReplaceStock is a
// full-table replacement (clear-then-write), never a row-level merge: callers
// must treat sync as last-writer-wins at whole-table granularity.
type InventoryStore interface {
	LoadUsage(ctx context.Context) ([]*entities.ComponentUsage, error)
	LoadStock(ctx context.Context) ([]*entities.ComponentStock, error)
	ReplaceStock(ctx context.Context, rows []*entities.ComponentStock) error
}
