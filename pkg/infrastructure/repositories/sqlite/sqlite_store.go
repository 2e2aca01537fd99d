// Package sqlite implements a local snapshot inventory store so the
// calculator can run offline against the last synced tables.
package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/domain/entities"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/domain/repositories"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/infrastructure/tabular"
)

const schema = `
CREATE TABLE IF NOT EXISTS component_usage (
	position  INTEGER PRIMARY KEY,
	component TEXT NOT NULL,
	per_case  TEXT NOT NULL,
	uom       TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS component_stock (
	position  INTEGER PRIMARY KEY,
	component TEXT NOT NULL,
	on_hand   TEXT NOT NULL
);`

type usageRow struct {
	Component string `db:"component"`
	PerCase   string `db:"per_case"`
	UOM       string `db:"uom"`
}

type stockRow struct {
	Component string `db:"component"`
	OnHand    string `db:"on_hand"`
}

// Store persists usage and stock tables in a local SQLite database.
// Quantities are stored as decimal strings so nothing is lost to binary
// floating point on the way through.
type Store struct {
	db *sqlx.DB
}

// Open opens (and if needed initializes) a store at the given database path.
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// Verify interface compliance
var _ repositories.InventoryStore = (*Store)(nil)

// ReplaceUsage replaces the whole usage table, preserving row order.
func (s *Store) ReplaceUsage(ctx context.Context, rows []*entities.ComponentUsage) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM component_usage`); err != nil {
		return fmt.Errorf("failed to clear usage table: %w", err)
	}
	for i, row := range rows {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO component_usage (position, component, per_case, uom) VALUES (?, ?, ?, ?)`,
			i, string(row.Component), row.PerCase.String(), row.UOM); err != nil {
			return fmt.Errorf("failed to insert usage row %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// LoadUsage returns the usage table in its stored order
func (s *Store) LoadUsage(ctx context.Context) ([]*entities.ComponentUsage, error) {
	var rows []usageRow
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT component, per_case, uom FROM component_usage ORDER BY position`); err != nil {
		return nil, fmt.Errorf("failed to load usage table: %w", err)
	}

	usage := make([]*entities.ComponentUsage, 0, len(rows))
	for _, r := range rows {
		usage = append(usage, &entities.ComponentUsage{
			Component: entities.ComponentName(r.Component),
			PerCase:   tabular.NumericOrZero(r.PerCase),
			UOM:       r.UOM,
		})
	}
	return usage, nil
}

// LoadStock returns the stock table, synthesized from the usage component list
// when no stock snapshot has been written yet.
func (s *Store) LoadStock(ctx context.Context) ([]*entities.ComponentStock, error) {
	var rows []stockRow
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT component, on_hand FROM component_stock ORDER BY position`); err != nil {
		return nil, fmt.Errorf("failed to load stock table: %w", err)
	}

	if len(rows) == 0 {
		usage, err := s.LoadUsage(ctx)
		if err != nil {
			return nil, err
		}
		return tabular.SynthesizeStock(usage), nil
	}

	stock := make([]*entities.ComponentStock, 0, len(rows))
	for _, r := range rows {
		stock = append(stock, &entities.ComponentStock{
			Component: entities.ComponentName(r.Component),
			OnHand:    tabular.NumericOrZero(r.OnHand),
		})
	}
	return stock, nil
}

// ReplaceStock replaces the whole stock table in one transaction
func (s *Store) ReplaceStock(ctx context.Context, rows []*entities.ComponentStock) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM component_stock`); err != nil {
		return fmt.Errorf("failed to clear stock table: %w", err)
	}
	for i, row := range rows {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO component_stock (position, component, on_hand) VALUES (?, ?, ?)`,
			i, string(row.Component), row.OnHand.String()); err != nil {
			return fmt.Errorf("failed to insert stock row %d: %w", i, err)
		}
	}
	return tx.Commit()
}
