// Package engine computes GST breakdowns.
package engine

import (
	"github.com/Veraticus/gstcalc/internal/model"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Compute splits amount into base, tax and total for the given rate.
//
// When inclusive is false amount is the pre-tax base and tax is added on top.
// When inclusive is true amount already contains the tax and is the total.
// Callers must pass a non-negative amount and a supported rate; Compute does
// no validation and no rounding.
func Compute(amount decimal.Decimal, rate model.Rate, inclusive bool) model.Breakdown {
	r := rate.Decimal()

	if inclusive {
		base := amount.Mul(hundred).Div(hundred.Add(r))
		return model.Breakdown{
			BaseAmount: base,
			GSTAmount:  amount.Sub(base),
			Total:      amount,
		}
	}

	gst := amount.Mul(r).Div(hundred)
	return model.Breakdown{
		BaseAmount: amount,
		GSTAmount:  gst,
		Total:      amount.Add(gst),
	}
}
