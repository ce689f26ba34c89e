package storage

import (
	"context"
	"testing"
	"time"

	"github.com/Veraticus/gstcalc/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestValidateContext(t *testing.T) {
	tests := []struct {
		ctx     context.Context
		wantErr error
		name    string
	}{
		{
			name: "valid context",
			ctx:  context.Background(),
		},
		{
			name:    "nil context",
			ctx:     nil,
			wantErr: ErrNilContext,
		},
		{
			name: "canceled context",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			}(),
			wantErr: context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateContext(tt.ctx)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateRecord(t *testing.T) {
	valid := func() *model.CalculationRecord {
		return &model.CalculationRecord{
			ID:        "01J0000000000000000000000",
			CreatedAt: time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC),
			Rate:      model.Rate18,
		}
	}

	tests := []struct {
		record  *model.CalculationRecord
		name    string
		wantErr bool
	}{
		{
			name:   "valid record",
			record: valid(),
		},
		{
			name:    "nil record",
			record:  nil,
			wantErr: true,
		},
		{
			name: "blank id",
			record: func() *model.CalculationRecord {
				r := valid()
				r.ID = "   "
				return r
			}(),
			wantErr: true,
		},
		{
			name: "zero time",
			record: func() *model.CalculationRecord {
				r := valid()
				r.CreatedAt = time.Time{}
				return r
			}(),
			wantErr: true,
		},
		{
			name: "unsupported rate",
			record: func() *model.CalculationRecord {
				r := valid()
				r.Rate = 15
				return r
			}(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRecord(tt.record)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidRecord)
		})
	}

	assert.ErrorIs(t, validateRecord(&model.CalculationRecord{
		ID: "x", CreatedAt: time.Now(), Rate: 7,
	}), model.ErrInvalidRate)
}
