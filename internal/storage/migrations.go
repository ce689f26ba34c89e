package storage

import (
	"context"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version the ledger expects.
const ExpectedSchemaVersion = 2

// Migration is one forward-only schema step. The schema version is kept in
// PRAGMA user_version.
type Migration struct {
	Description string
	SQL         string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Calculation records",
		// Amounts are TEXT so decimal precision survives the round trip.
		SQL: `CREATE TABLE IF NOT EXISTS calculations (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL,
			created_at TEXT NOT NULL,
			rate INTEGER NOT NULL CHECK (rate IN (5, 12, 18, 28)),
			inclusive INTEGER NOT NULL DEFAULT 0,
			note TEXT NOT NULL DEFAULT '',
			base_amount TEXT NOT NULL,
			gst_amount TEXT NOT NULL,
			total TEXT NOT NULL
		)`,
	},
	{
		Version:     2,
		Description: "Index calculation IDs",
		SQL:         `CREATE INDEX IF NOT EXISTS idx_calculations_id ON calculations(id)`,
	},
}

// Migrate brings the schema up to ExpectedSchemaVersion.
func (s *SQLiteLedger) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	current, err := s.schemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		if err := s.apply(ctx, m); err != nil {
			return err
		}
		slog.Debug("Applied migration", "version", m.Version, "description", m.Description)
	}

	final, err := s.schemaVersion(ctx)
	if err != nil {
		return err
	}
	if final != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, final)
	}
	return nil
}

func (s *SQLiteLedger) schemaVersion(ctx context.Context) (int, error) {
	var v int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return v, nil
}

// apply runs m and records its version in one transaction.
func (s *SQLiteLedger) apply(ctx context.Context, m Migration) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, m.SQL); err != nil {
		return fmt.Errorf("migration %d failed: %w", m.Version, err)
	}
	// PRAGMA does not accept bound parameters.
	if _, err = tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", m.Version)); err != nil {
		return fmt.Errorf("failed to update schema version: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
	}
	return nil
}
