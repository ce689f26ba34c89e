package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/gstcalc/internal/ledger"
	"github.com/Veraticus/gstcalc/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = ledger.ErrNilContext
	ErrInvalidRecord = errors.New("invalid calculation record")
	ErrClosed        = errors.New("ledger is closed")
)

// validateContext ensures the context is usable.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return ctx.Err()
}

// validateRecord checks the fields the schema cannot represent as empty.
func validateRecord(r *model.CalculationRecord) error {
	if r == nil {
		return fmt.Errorf("%w: nil record", ErrInvalidRecord)
	}
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidRecord)
	}
	if r.CreatedAt.IsZero() {
		return fmt.Errorf("%w: missing creation time", ErrInvalidRecord)
	}
	if !r.Rate.Valid() {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, model.ErrInvalidRate)
	}
	return nil
}
