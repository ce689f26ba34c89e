package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		input   string
		want    string
	}{
		{name: "integer", input: "1000", want: "1000"},
		{name: "decimal", input: "99.99", want: "99.99"},
		{name: "whitespace", input: "  42  ", want: "42"},
		{name: "zero", input: "0", want: "0"},
		{name: "rupee sign and grouping", input: "₹1,18,000.50", want: "118000.5"},
		{name: "empty", input: "", wantErr: ErrEmptyAmount},
		{name: "blank", input: "   ", wantErr: ErrEmptyAmount},
		{name: "rupee sign only", input: "₹", wantErr: ErrEmptyAmount},
		{name: "letters", input: "abc", wantErr: ErrInvalidAmount},
		{name: "trailing garbage", input: "12abc", wantErr: ErrInvalidAmount},
		{name: "negative", input: "-5", wantErr: ErrNegativeAmount},
		{name: "leading dot", input: ".5", want: "0.5"},
		{name: "lone dot", input: ".", wantErr: ErrInvalidAmount},
		{name: "two dots", input: "1.2.3", wantErr: ErrInvalidAmount},
		{name: "exponent", input: "1e5", wantErr: ErrInvalidAmount},
		{name: "negative exponent", input: "1E-3", wantErr: ErrInvalidAmount},
		{name: "huge exponent", input: "1e200000", wantErr: ErrInvalidAmount},
		{name: "plus sign", input: "+5", wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assertDecimal(t, tt.want, got)
		})
	}
}
