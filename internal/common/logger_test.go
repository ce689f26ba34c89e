package common

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "info", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	require.NoError(t, SetupLogger(&buf, slog.LevelDebug, "json"))

	LogDebug("calculation recorded", Fields{"rate": 18})
	LogError(errors.New("boom"), "failed", Fields{"id": "x"})

	out := buf.String()
	assert.Contains(t, out, `"msg":"calculation recorded"`)
	assert.Contains(t, out, `"rate":18`)
	assert.Contains(t, out, `"error":"boom"`)

	buf.Reset()
	require.NoError(t, SetupLogger(&buf, slog.LevelWarn, "console"))
	LogInfo("hidden", nil)
	assert.Empty(t, buf.String())

	assert.ErrorIs(t, SetupLogger(&buf, slog.LevelInfo, "xml"), ErrInvalidConfig)
}

func TestUserError(t *testing.T) {
	inner := errors.New("amount is empty")
	err := NewUserError("nothing to calculate", inner)

	assert.Equal(t, "nothing to calculate: amount is empty", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.True(t, IsUserError(err))
	assert.False(t, IsUserError(inner))
	assert.Equal(t, "plain", NewUserError("plain", nil).Error())
}
