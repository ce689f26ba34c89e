// Package ledgertest provides a behavioural test suite shared by every
// ledger.Ledger implementation.
package ledgertest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Veraticus/gstcalc/internal/engine"
	"github.com/Veraticus/gstcalc/internal/ledger"
	"github.com/Veraticus/gstcalc/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns a fresh, empty ledger for one subtest.
type Factory func(t *testing.T) ledger.Ledger

// Record builds a record for amount at 18% exclusive with a deterministic
// ID and timestamp derived from seq.
func Record(seq int, amount int64, note string) model.CalculationRecord {
	created := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC).Add(time.Duration(seq) * time.Minute)
	b := engine.Compute(decimal.NewFromInt(amount), model.Rate18, false)
	return model.NewCalculationRecord(fmt.Sprintf("rec-%03d", seq), created, model.Rate18, false, note, b)
}

// Run exercises the Ledger contract against implementations built by newLedger.
func Run(t *testing.T, newLedger Factory) {
	t.Helper()

	t.Run("starts empty", func(t *testing.T) {
		l := newLedger(t)
		ctx := context.Background()

		got, err := l.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)

		n, err := l.Len(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("append orders newest first", func(t *testing.T) {
		l := newLedger(t)
		ctx := context.Background()
		a := Record(1, 1000, "first")
		b := Record(2, 2000, "second")

		require.NoError(t, l.Append(ctx, a))
		require.NoError(t, l.Append(ctx, b))

		got, err := l.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assertSameRecord(t, b, got[0])
		assertSameRecord(t, a, got[1])
	})

	t.Run("list is idempotent", func(t *testing.T) {
		l := newLedger(t)
		ctx := context.Background()
		for i := 1; i <= 3; i++ {
			require.NoError(t, l.Append(ctx, Record(i, int64(i*100), "")))
		}

		first, err := l.List(ctx)
		require.NoError(t, err)
		second, err := l.List(ctx)
		require.NoError(t, err)

		require.Len(t, second, len(first))
		for i := range first {
			assertSameRecord(t, first[i], second[i])
		}
	})

	t.Run("list returns a copy", func(t *testing.T) {
		l := newLedger(t)
		ctx := context.Background()
		require.NoError(t, l.Append(ctx, Record(1, 500, "keep")))

		got, err := l.List(ctx)
		require.NoError(t, err)
		got[0].Note = "changed"
		got[0].Total = decimal.Zero

		again, err := l.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, "keep", again[0].Note)
		assert.True(t, again[0].Total.Equal(decimal.NewFromInt(590)))
	})

	t.Run("clear empties regardless of contents", func(t *testing.T) {
		for _, count := range []int{0, 1, 5} {
			l := newLedger(t)
			ctx := context.Background()
			for i := 1; i <= count; i++ {
				require.NoError(t, l.Append(ctx, Record(i, 100, "")))
			}

			require.NoError(t, l.Clear(ctx))

			got, err := l.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, got, "after %d records", count)
		}
	})

	t.Run("append after clear", func(t *testing.T) {
		l := newLedger(t)
		ctx := context.Background()
		require.NoError(t, l.Append(ctx, Record(1, 100, "")))
		require.NoError(t, l.Clear(ctx))
		require.NoError(t, l.Append(ctx, Record(2, 200, "fresh")))

		got, err := l.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "fresh", got[0].Note)
	})

	t.Run("no deduplication", func(t *testing.T) {
		l := newLedger(t)
		ctx := context.Background()
		r := Record(1, 100, "same")

		require.NoError(t, l.Append(ctx, r))
		r.ID = "rec-dup"
		require.NoError(t, l.Append(ctx, r))

		n, err := l.Len(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("subscribers see every mutation", func(t *testing.T) {
		l := newLedger(t)
		ctx := context.Background()
		var events []ledger.Event
		unsubscribe := l.Subscribe(func(ev ledger.Event) {
			events = append(events, ev)
		})

		require.NoError(t, l.Append(ctx, Record(1, 100, "")))
		require.NoError(t, l.Append(ctx, Record(2, 200, "")))
		require.NoError(t, l.Clear(ctx))

		require.Len(t, events, 3)
		assert.Equal(t, ledger.EventAppended, events[0].Kind)
		assert.Equal(t, "rec-001", events[0].Record.ID)
		assert.Equal(t, 1, events[0].Len)
		assert.Equal(t, 2, events[1].Len)
		assert.Equal(t, ledger.EventCleared, events[2].Kind)
		assert.Equal(t, 0, events[2].Len)

		unsubscribe()
		require.NoError(t, l.Append(ctx, Record(3, 300, "")))
		assert.Len(t, events, 3)
	})

	t.Run("cancelled context", func(t *testing.T) {
		l := newLedger(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := l.Append(ctx, Record(1, 100, ""))
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)

		n, err := l.Len(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})
}

func assertSameRecord(t *testing.T, want, got model.CalculationRecord) {
	t.Helper()
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Note, got.Note)
	assert.Equal(t, want.Rate, got.Rate)
	assert.Equal(t, want.Inclusive, got.Inclusive)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "created_at %v != %v", want.CreatedAt, got.CreatedAt)
	assert.True(t, want.BaseAmount.Equal(got.BaseAmount), "base %s != %s", want.BaseAmount, got.BaseAmount)
	assert.True(t, want.GSTAmount.Equal(got.GSTAmount), "gst %s != %s", want.GSTAmount, got.GSTAmount)
	assert.True(t, want.Total.Equal(got.Total), "total %s != %s", want.Total, got.Total)
}
