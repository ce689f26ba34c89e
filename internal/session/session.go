// Package session owns the state of one interactive calculator session:
// the form fields and the calculation history they feed.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/gstcalc/internal/engine"
	"github.com/Veraticus/gstcalc/internal/ledger"
	"github.com/Veraticus/gstcalc/internal/model"
)

// Session holds the calculator form and its ledger.
type Session struct {
	ledger    ledger.Ledger
	ids       IDGenerator
	now       func() time.Time
	amount    string
	note      string
	rate      model.Rate
	inclusive bool
}

// Option configures a Session.
type Option func(*Session)

// WithLedger sets the ledger backend. Defaults to ledger.NewMemory().
func WithLedger(l ledger.Ledger) Option {
	return func(s *Session) {
		s.ledger = l
	}
}

// WithClock sets the time source used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithIDGenerator sets the record ID source.
func WithIDGenerator(ids IDGenerator) Option {
	return func(s *Session) {
		s.ids = ids
	}
}

// WithRate sets the initially selected rate.
func WithRate(r model.Rate) Option {
	return func(s *Session) {
		s.rate = r
	}
}

// WithInclusive sets the initial GST type.
func WithInclusive(inclusive bool) Option {
	return func(s *Session) {
		s.inclusive = inclusive
	}
}

// New creates a session with an empty form and the default rate.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		rate: model.DefaultRate,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if !s.rate.Valid() {
		return nil, fmt.Errorf("%w: %d", model.ErrInvalidRate, int(s.rate))
	}
	if s.ledger == nil {
		s.ledger = ledger.NewMemory()
	}
	if s.ids == nil {
		s.ids = NewULIDGenerator()
	}
	if s.now == nil {
		s.now = time.Now
	}

	return s, nil
}

// Amount returns the raw amount text.
func (s *Session) Amount() string { return s.amount }

// SetAmount replaces the amount text. It is parsed only when used.
func (s *Session) SetAmount(v string) { s.amount = v }

// Note returns the note text.
func (s *Session) Note() string { return s.note }

// SetNote replaces the note text.
func (s *Session) SetNote(v string) { s.note = v }

// Rate returns the selected rate.
func (s *Session) Rate() model.Rate { return s.rate }

// SetRate selects r, which must be one of model.Rates.
func (s *Session) SetRate(r model.Rate) error {
	if !r.Valid() {
		return fmt.Errorf("%w: %d", model.ErrInvalidRate, int(r))
	}
	s.rate = r
	return nil
}

// NextRate selects the next higher rate, wrapping around.
func (s *Session) NextRate() model.Rate {
	i := s.rate.Index()
	s.rate = model.Rates[(i+1)%len(model.Rates)]
	return s.rate
}

// PrevRate selects the next lower rate, wrapping around.
func (s *Session) PrevRate() model.Rate {
	i := s.rate.Index()
	s.rate = model.Rates[(i-1+len(model.Rates))%len(model.Rates)]
	return s.rate
}

// Inclusive reports whether the amount is treated as GST inclusive.
func (s *Session) Inclusive() bool { return s.inclusive }

// SetInclusive sets the GST type.
func (s *Session) SetInclusive(v bool) { s.inclusive = v }

// ToggleInclusive flips the GST type and returns the new value.
func (s *Session) ToggleInclusive() bool {
	s.inclusive = !s.inclusive
	return s.inclusive
}

// Preview computes the breakdown for the current form without recording it.
// It reports false when the amount is empty or not a valid number.
func (s *Session) Preview() (model.Breakdown, bool) {
	amount, err := engine.ParseAmount(s.amount)
	if err != nil {
		return model.Breakdown{}, false
	}
	return engine.Compute(amount, s.rate, s.inclusive), true
}

// Calculate records the current form in the ledger and clears the note.
//
// An empty or invalid amount is ignored: nothing is recorded, the form is
// left as is and Calculate reports false with a nil error.
func (s *Session) Calculate(ctx context.Context) (model.CalculationRecord, bool, error) {
	amount, err := engine.ParseAmount(s.amount)
	if err != nil {
		slog.Debug("calculate ignored", "reason", err.Error())
		return model.CalculationRecord{}, false, nil
	}

	created := s.now()
	record := model.NewCalculationRecord(
		s.ids.NewID(created),
		created,
		s.rate,
		s.inclusive,
		strings.TrimSpace(s.note),
		engine.Compute(amount, s.rate, s.inclusive),
	)

	if err := s.ledger.Append(ctx, record); err != nil {
		return model.CalculationRecord{}, false, fmt.Errorf("failed to record calculation: %w", err)
	}
	s.note = ""

	slog.Debug("calculation recorded",
		"id", record.ID,
		"rate", int(record.Rate),
		"inclusive", record.Inclusive)
	return record, true, nil
}

// History returns the recorded calculations, most recent first.
func (s *Session) History(ctx context.Context) ([]model.CalculationRecord, error) {
	records, err := s.ledger.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return records, nil
}

// ClearHistory removes every recorded calculation.
func (s *Session) ClearHistory(ctx context.Context) error {
	if err := s.ledger.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// Subscribe registers fn for ledger change events.
func (s *Session) Subscribe(fn func(ledger.Event)) func() {
	return s.ledger.Subscribe(fn)
}

// Close releases the ledger if it holds resources.
func (s *Session) Close() error {
	if c, ok := s.ledger.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
