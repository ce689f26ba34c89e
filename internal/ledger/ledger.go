// Package ledger keeps the session's calculation history, newest first.
package ledger

import (
	"context"

	"github.com/Veraticus/gstcalc/internal/model"
)

// Ledger is the ordered history of calculations for one session.
type Ledger interface {
	// Append inserts record at the head of the history.
	Append(ctx context.Context, record model.CalculationRecord) error
	// Clear removes every record.
	Clear(ctx context.Context) error
	// List returns the records, most recent first. The slice is a copy.
	List(ctx context.Context) ([]model.CalculationRecord, error)
	// Len returns the number of records.
	Len(ctx context.Context) (int, error)
	// Subscribe registers fn for change events and returns a function
	// that removes it.
	Subscribe(fn func(Event)) (unsubscribe func())
}
