package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/gstcalc/internal/ledger"
	"github.com/Veraticus/gstcalc/internal/model"
	"github.com/shopspring/decimal"
)

// Append inserts record at the head of the history.
func (s *SQLiteLedger) Append(ctx context.Context, record model.CalculationRecord) error {
	if err := s.check(ctx); err != nil {
		return err
	}
	if err := validateRecord(&record); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO calculations (id, created_at, rate, inclusive, note, base_amount, gst_amount, total)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.CreatedAt.Format(time.RFC3339Nano),
		int(record.Rate),
		record.Inclusive,
		record.Note,
		record.BaseAmount.String(),
		record.GSTAmount.String(),
		record.Total.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to save calculation: %w", err)
	}

	n, err := s.Len(ctx)
	if err != nil {
		return err
	}

	slog.Debug("ledger record appended", "id", record.ID, "records", n, "backend", "sqlite")
	s.Publish(ledger.Event{Kind: ledger.EventAppended, Record: record, Len: n})
	return nil
}

// Clear removes every record.
func (s *SQLiteLedger) Clear(ctx context.Context) error {
	if err := s.check(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM calculations`)
	if err != nil {
		return fmt.Errorf("failed to clear calculations: %w", err)
	}
	removed, _ := result.RowsAffected()

	slog.Debug("ledger cleared", "removed", removed, "backend", "sqlite")
	s.Publish(ledger.Event{Kind: ledger.EventCleared})
	return nil
}

// List returns the records, most recent first.
func (s *SQLiteLedger) List(ctx context.Context) ([]model.CalculationRecord, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, rate, inclusive, note, base_amount, gst_amount, total
		FROM calculations
		ORDER BY seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query calculations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := []model.CalculationRecord{}
	for rows.Next() {
		record, scanErr := scanRecord(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate calculations: %w", err)
	}

	return records, nil
}

// Len returns the number of records.
func (s *SQLiteLedger) Len(ctx context.Context) (int, error) {
	if err := s.check(ctx); err != nil {
		return 0, err
	}

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM calculations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count calculations: %w", err)
	}
	return n, nil
}

func (s *SQLiteLedger) check(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (model.CalculationRecord, error) {
	var (
		record           model.CalculationRecord
		createdAt        string
		rate             int
		base, gst, total string
	)

	if err := row.Scan(&record.ID, &createdAt, &rate, &record.Inclusive, &record.Note, &base, &gst, &total); err != nil {
		return model.CalculationRecord{}, fmt.Errorf("failed to scan calculation: %w", err)
	}

	var err error
	if record.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return model.CalculationRecord{}, fmt.Errorf("failed to parse created_at for %s: %w", record.ID, err)
	}
	record.Rate = model.Rate(rate)

	amounts := []struct {
		dst *decimal.Decimal
		src string
	}{
		{&record.BaseAmount, base},
		{&record.GSTAmount, gst},
		{&record.Total, total},
	}
	for _, a := range amounts {
		if *a.dst, err = decimal.NewFromString(a.src); err != nil {
			return model.CalculationRecord{}, fmt.Errorf("failed to parse amount for %s: %w", record.ID, err)
		}
	}

	return record, nil
}
