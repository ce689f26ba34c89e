package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/Veraticus/gstcalc/internal/common"
	"github.com/Veraticus/gstcalc/internal/config"
	"github.com/Veraticus/gstcalc/internal/model"
	"github.com/Veraticus/gstcalc/internal/session"
	"github.com/Veraticus/gstcalc/internal/storage"
	"github.com/mattn/go-isatty"
	"github.com/shopspring/decimal"
)

// isTerminal reports whether fd is an interactive terminal.
var isTerminal = func(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// isTerminalWriter reports whether w writes to a terminal.
func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f.Fd())
}

// newSession creates a session on the configured ledger backend with the
// configured defaults. opts are applied last.
func (a *app) newSession(ctx context.Context, opts ...session.Option) (*session.Session, error) {
	base := []session.Option{
		session.WithRate(a.cfg.DefaultRate),
		session.WithInclusive(a.cfg.Inclusive),
	}

	var store *storage.SQLiteLedger
	if a.cfg.LedgerBackend == config.BackendSQLite {
		var err error
		store, err = storage.NewSQLiteLedger(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to open session store: %w", err)
		}
		base = append(base, session.WithLedger(store))
	}

	sess, err := session.New(append(base, opts...)...)
	if err != nil {
		if store != nil {
			_ = store.Close()
		}
		return nil, err
	}

	slog.Debug("session started", "backend", a.cfg.LedgerBackend)
	return sess, nil
}

// closeSession releases the session ledger, logging any failure.
func closeSession(sess *session.Session) {
	if err := sess.Close(); err != nil {
		common.LogError(err, "Failed to close session ledger", nil)
	}
}

// recordJSON is the machine-readable form of a calculation record.
type recordJSON struct {
	CreatedAt  time.Time       `json:"created_at"`
	ID         string          `json:"id"`
	Mode       string          `json:"mode"`
	Note       string          `json:"note,omitempty"`
	BaseAmount decimal.Decimal `json:"base_amount"`
	GSTAmount  decimal.Decimal `json:"gst_amount"`
	Total      decimal.Decimal `json:"total"`
	Rate       int             `json:"rate"`
	Inclusive  bool            `json:"inclusive"`
}

func toRecordJSON(r model.CalculationRecord) recordJSON {
	return recordJSON{
		ID:         r.ID,
		CreatedAt:  r.CreatedAt,
		Rate:       int(r.Rate),
		Inclusive:  r.Inclusive,
		Mode:       r.Mode(),
		Note:       r.Note,
		BaseAmount: r.BaseAmount,
		GSTAmount:  r.GSTAmount,
		Total:      r.Total,
	}
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
