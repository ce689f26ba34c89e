package engine

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount input errors.
var (
	ErrEmptyAmount    = errors.New("amount is empty")
	ErrInvalidAmount  = errors.New("amount is not a number")
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// plainAmount is a decimal number written out in full: no exponent, no
// explicit plus sign.
var plainAmount = regexp.MustCompile(`^-?(\d+(\.\d+)?|\.\d+)$`)

// ParseAmount turns user input into an amount suitable for Compute.
// A leading rupee sign and comma grouping are accepted; scientific
// notation is not.
func ParseAmount(input string) (decimal.Decimal, error) {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "₹")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrEmptyAmount
	}

	if !plainAmount.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, input)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, input)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrNegativeAmount, amount)
	}

	return amount, nil
}
