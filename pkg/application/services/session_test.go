package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/domain/entities"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/infrastructure/repositories/memory"
)

func seededStore(t *testing.T) *memory.InventoryStore {
	t.Helper()
	store := memory.NewInventoryStore()
	if err := store.LoadUsageRows([]*entities.ComponentUsage{
		usageRow(t, "Bottle", "12", "ea"),
		usageRow(t, "Cap", "12", "ea"),
	}); err != nil {
		t.Fatalf("seeding usage: %v", err)
	}
	if err := store.LoadStockRows([]*entities.ComponentStock{
		stockRow(t, "Bottle", "100"),
		stockRow(t, "Cap", "50"),
	}); err != nil {
		t.Fatalf("seeding stock: %v", err)
	}
	return store
}

func TestPlanningSession_EditAndCompute(t *testing.T) {
	ctx := context.Background()
	session, err := NewPlanningSession(ctx, seededStore(t))
	if err != nil {
		t.Fatalf("NewPlanningSession failed: %v", err)
	}

	if err := session.SetOnHand("Cap", d(t, "120")); err != nil {
		t.Fatalf("SetOnHand failed: %v", err)
	}

	result := session.Compute(decimal.Zero)
	// min(100/12, 120/12) = 8.33 -> 8
	if result.MaxSellableCases != 8 {
		t.Errorf("expected max sellable 8 after edit, got %d", result.MaxSellableCases)
	}
}

func TestPlanningSession_SetOnHandUnknownComponent(t *testing.T) {
	ctx := context.Background()
	session, err := NewPlanningSession(ctx, seededStore(t))
	if err != nil {
		t.Fatalf("NewPlanningSession failed: %v", err)
	}

	if err := session.SetOnHand("Glitter", decimal.Zero); err == nil {
		t.Error("expected error for unknown component")
	}
}

func TestPlanningSession_EditsAreIsolatedUntilSync(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)

	first, err := NewPlanningSession(ctx, store)
	if err != nil {
		t.Fatalf("NewPlanningSession failed: %v", err)
	}
	second, err := NewPlanningSession(ctx, store)
	if err != nil {
		t.Fatalf("NewPlanningSession failed: %v", err)
	}

	if err := first.SetOnHand("Cap", d(t, "0")); err != nil {
		t.Fatalf("SetOnHand failed: %v", err)
	}

	// The other session must not observe the unsynced edit.
	for _, row := range second.Stock() {
		if row.Component == "Cap" && !row.OnHand.Equal(d(t, "50")) {
			t.Fatalf("unsynced edit leaked between sessions: Cap OnHand %s", row.OnHand)
		}
	}

	if err := first.Sync(ctx); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	if err := second.Revert(ctx); err != nil {
		t.Fatalf("Revert failed: %v", err)
	}

	// After sync plus reload the edit is the authoritative snapshot.
	for _, row := range second.Stock() {
		if row.Component == "Cap" && !row.OnHand.IsZero() {
			t.Fatalf("expected synced Cap OnHand 0, got %s", row.OnHand)
		}
	}
}

func TestPlanningSession_RevertDiscardsEdits(t *testing.T) {
	ctx := context.Background()
	session, err := NewPlanningSession(ctx, seededStore(t))
	if err != nil {
		t.Fatalf("NewPlanningSession failed: %v", err)
	}

	if err := session.SetOnHand("Bottle", d(t, "7")); err != nil {
		t.Fatalf("SetOnHand failed: %v", err)
	}
	if err := session.Revert(ctx); err != nil {
		t.Fatalf("Revert failed: %v", err)
	}

	for _, row := range session.Stock() {
		if row.Component == "Bottle" && !row.OnHand.Equal(d(t, "100")) {
			t.Fatalf("expected reverted Bottle OnHand 100, got %s", row.OnHand)
		}
	}
}

func TestPlanningSession_StockCoversEveryUsageComponent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewInventoryStore()
	if err := store.LoadUsageRows([]*entities.ComponentUsage{
		usageRow(t, "Bottle", "12", "ea"),
		usageRow(t, "Label", "12", "ea"),
	}); err != nil {
		t.Fatalf("seeding usage: %v", err)
	}
	// Stock covers only Bottle.
	if err := store.LoadStockRows([]*entities.ComponentStock{
		stockRow(t, "Bottle", "100"),
	}); err != nil {
		t.Fatalf("seeding stock: %v", err)
	}

	session, err := NewPlanningSession(ctx, store)
	if err != nil {
		t.Fatalf("NewPlanningSession failed: %v", err)
	}

	stock := session.Stock()
	if len(stock) != 2 {
		t.Fatalf("expected editable stock row per usage component, got %d rows", len(stock))
	}
	if stock[1].Component != "Label" || !stock[1].OnHand.IsZero() {
		t.Errorf("expected Label defaulted to 0, got %+v", stock[1])
	}

	// Editing the defaulted row must work before any sync.
	if err := session.SetOnHand("Label", d(t, "3")); err != nil {
		t.Fatalf("SetOnHand on defaulted row failed: %v", err)
	}
}
