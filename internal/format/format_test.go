package format

import (
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/gstcalc/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "zero", input: "0", want: "₹0.00"},
		{name: "small", input: "5", want: "₹5.00"},
		{name: "three digits", input: "999.5", want: "₹999.50"},
		{name: "thousand", input: "1180", want: "₹1,180.00"},
		{name: "ten thousand", input: "12345.67", want: "₹12,345.67"},
		{name: "lakh", input: "118000", want: "₹1,18,000.00"},
		{name: "crore", input: "10000000", want: "₹1,00,00,000.00"},
		{name: "rounds half up", input: "0.125", want: "₹0.13"},
		{name: "rounds down", input: "84.7457627118644068", want: "₹84.75"},
		{name: "carries into grouping", input: "99999.999", want: "₹1,00,000.00"},
		{name: "negative", input: "-1180", want: "-₹1,180.00"},
		{name: "negative rounding to zero", input: "-0.001", want: "₹0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.want, Currency(d))
		})
	}
}

func TestCurrency_DoesNotMutate(t *testing.T) {
	d, err := decimal.NewFromString("84.7457627118644068")
	require.NoError(t, err)
	before := d.String()

	_ = Currency(d)

	assert.Equal(t, before, d.String())
}

func TestGroupIndian(t *testing.T) {
	cases := map[string]string{
		"1":             "1",
		"123":           "123",
		"1234":          "1,234",
		"12345":         "12,345",
		"123456":        "1,23,456",
		"1234567":       "12,34,567",
		"123456789":     "12,34,56,789",
		"1234567890123": "12,34,56,78,90,123",
	}
	for in, want := range cases {
		assert.Equal(t, want, groupIndian(in), in)
	}
}

func TestGroupIndian_LongInput(t *testing.T) {
	digits := "1" + strings.Repeat("0", 200_000)

	got := groupIndian(digits)

	assert.Len(t, got, len(digits)+(len(digits)-3)/2)
	assert.True(t, strings.HasPrefix(got, "10,00,00"))
	assert.True(t, strings.HasSuffix(got, "00,000"))
	assert.Equal(t, len(digits), len(strings.ReplaceAll(got, ",", "")))
}

func TestDate(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)

	assert.Equal(t, "15 Oct 2026, 02:30 pm", Date(time.Date(2026, 10, 15, 14, 30, 0, 0, ist)))
	assert.Equal(t, "01 Jan 2026, 09:05 am", Date(time.Date(2026, 1, 1, 9, 5, 59, 0, ist)))
	assert.Equal(t, "31 Dec 2025, 12:00 am", Date(time.Date(2025, 12, 31, 0, 0, 0, 0, ist)))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "28%", Percent(model.Rate28))
}
