// Package storage provides a SQLite-backed session ledger.
//
// The database is always opened in memory: it lives exactly as long as the
// SQLiteLedger and nothing is written to disk.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/Veraticus/gstcalc/internal/ledger"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// memoryDSN keeps the database private to the single pooled connection.
const memoryDSN = ":memory:?_foreign_keys=on"

// SQLiteLedger implements ledger.Ledger on an in-memory SQLite database.
type SQLiteLedger struct {
	ledger.Notifier
	db     *sql.DB
	mu     sync.Mutex
	closed bool
}

var _ ledger.Ledger = (*SQLiteLedger)(nil)

// NewSQLiteLedger opens a fresh in-memory database and migrates it.
func NewSQLiteLedger(ctx context.Context) (*SQLiteLedger, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to :memory: is a separate database, so the pool
	// must hold exactly one connection for the lifetime of the ledger.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteLedger{db: db}
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close discards the database and every record in it.
func (s *SQLiteLedger) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
