package ledger_test

import (
	"context"
	"testing"

	"github.com/Veraticus/gstcalc/internal/ledger"
	"github.com/Veraticus/gstcalc/internal/ledger/ledgertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_Contract(t *testing.T) {
	ledgertest.Run(t, func(_ *testing.T) ledger.Ledger {
		return ledger.NewMemory()
	})
}

func TestMemory_ZeroValue(t *testing.T) {
	var m ledger.Memory
	ctx := context.Background()

	require.NoError(t, m.Append(ctx, ledgertest.Record(1, 100, "")))

	got, err := m.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMemory_NilContext(t *testing.T) {
	m := ledger.NewMemory()
	var nilCtx context.Context

	assert.ErrorIs(t, m.Append(nilCtx, ledgertest.Record(1, 100, "")), ledger.ErrNilContext)
	assert.ErrorIs(t, m.Clear(nilCtx), ledger.ErrNilContext)

	_, err := m.List(nilCtx)
	assert.ErrorIs(t, err, ledger.ErrNilContext)
}
