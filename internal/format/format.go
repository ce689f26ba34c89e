// Package format renders amounts and timestamps for display using Indian
// Rupee and en-IN conventions. Formatting never changes stored values.
package format

import (
	"strings"
	"time"

	"github.com/Veraticus/gstcalc/internal/model"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// RupeeSymbol prefixes every formatted amount.
const RupeeSymbol = "₹"

// DateLayout matches en-IN "dd Mon yyyy, hh:mm am".
const DateLayout = "02 Jan 2006, 03:04 pm"

// minorUnits is the number of fraction digits INR is displayed with.
var minorUnits = func() int32 {
	scale, _ := currency.Standard.Rounding(currency.INR)
	return int32(scale)
}()

// Currency formats d as rupees with Indian digit grouping, e.g. ₹1,18,000.00.
func Currency(d decimal.Decimal) string {
	rounded := d.Round(minorUnits)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	fixed := rounded.StringFixed(minorUnits)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(RupeeSymbol)
	b.WriteString(groupIndian(whole))
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// groupIndian inserts separators after the last three digits and then
// after every two: 10000000 -> 1,00,00,000.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/2)

	// The leading group has one or two digits, the rest exactly two.
	first := 2 - len(head)%2
	b.WriteString(head[:first])
	for i := first; i < len(head); i += 2 {
		b.WriteByte(',')
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)

	return b.String()
}

// Date formats t in its own location, e.g. 15 Oct 2026, 02:30 pm.
func Date(t time.Time) string {
	return t.Format(DateLayout)
}

// Percent formats a rate, e.g. 18%.
func Percent(r model.Rate) string {
	return r.String()
}
