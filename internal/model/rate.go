// Package model holds the plain domain types shared across the calculator.
package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidRate is returned when a rate is outside the supported set.
var ErrInvalidRate = errors.New("invalid GST rate")

// Rate is a GST rate in whole percent.
type Rate int

// Supported GST slabs.
const (
	Rate5  Rate = 5
	Rate12 Rate = 12
	Rate18 Rate = 18
	Rate28 Rate = 28
)

// DefaultRate is the rate selected when a session starts.
const DefaultRate = Rate18

// Rates lists every supported rate in ascending order.
var Rates = []Rate{Rate5, Rate12, Rate18, Rate28}

// Valid reports whether r is one of the supported rates.
func (r Rate) Valid() bool {
	for _, known := range Rates {
		if r == known {
			return true
		}
	}
	return false
}

// Decimal returns the rate as a decimal percent (18 for 18%).
func (r Rate) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(r))
}

// Index returns the position of r in Rates, or -1.
func (r Rate) Index() int {
	for i, known := range Rates {
		if r == known {
			return i
		}
	}
	return -1
}

func (r Rate) String() string {
	return fmt.Sprintf("%d%%", int(r))
}

// ParseRate parses "18" or "18%" into a supported Rate.
func ParseRate(s string) (Rate, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(s), "%")
	n, err := strconv.Atoi(strings.TrimSpace(trimmed))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRate, s)
	}
	r := Rate(n)
	if !r.Valid() {
		return 0, fmt.Errorf("%w: %d (supported: 5, 12, 18, 28)", ErrInvalidRate, n)
	}
	return r, nil
}
