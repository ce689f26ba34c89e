package ledger

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/Veraticus/gstcalc/internal/model"
)

// ErrNilContext is returned when an operation is called with a nil context.
var ErrNilContext = errors.New("context cannot be nil")

// Memory is a slice-backed Ledger. The zero value is an empty ledger.
type Memory struct {
	Notifier
	records []model.CalculationRecord // oldest first
	mu      sync.RWMutex
}

var _ Ledger = (*Memory)(nil)

// NewMemory creates an empty in-memory ledger.
func NewMemory() *Memory {
	return &Memory{}
}

// Append inserts record at the head of the history.
func (m *Memory) Append(ctx context.Context, record model.CalculationRecord) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	m.records = append(m.records, record)
	n := len(m.records)
	m.mu.Unlock()

	slog.Debug("ledger record appended", "id", record.ID, "records", n)
	m.Publish(Event{Kind: EventAppended, Record: record, Len: n})
	return nil
}

// Clear removes every record.
func (m *Memory) Clear(ctx context.Context) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	removed := len(m.records)
	m.records = nil
	m.mu.Unlock()

	slog.Debug("ledger cleared", "removed", removed)
	m.Publish(Event{Kind: EventCleared})
	return nil
}

// List returns the records, most recent first.
func (m *Memory) List(ctx context.Context) ([]model.CalculationRecord, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.CalculationRecord, len(m.records))
	for i, r := range m.records {
		out[len(m.records)-1-i] = r
	}
	return out, nil
}

// Len returns the number of records.
func (m *Memory) Len(ctx context.Context) (int, error) {
	if err := checkContext(ctx); err != nil {
		return 0, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records), nil
}

func checkContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return ctx.Err()
}
