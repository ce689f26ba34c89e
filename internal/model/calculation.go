package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Breakdown is the result of one GST computation.
// Total always equals BaseAmount plus GSTAmount.
type Breakdown struct {
	BaseAmount decimal.Decimal
	GSTAmount  decimal.Decimal
	Total      decimal.Decimal
}

// CalculationRecord is one entry in the calculation history.
// Records are never modified after they are created.
type CalculationRecord struct {
	CreatedAt  time.Time
	ID         string
	Note       string
	BaseAmount decimal.Decimal
	GSTAmount  decimal.Decimal
	Total      decimal.Decimal
	Rate       Rate
	Inclusive  bool
}

// NewCalculationRecord builds a record from an engine result and its metadata.
func NewCalculationRecord(id string, createdAt time.Time, rate Rate, inclusive bool, note string, b Breakdown) CalculationRecord {
	return CalculationRecord{
		ID:         id,
		CreatedAt:  createdAt,
		Rate:       rate,
		Inclusive:  inclusive,
		Note:       note,
		BaseAmount: b.BaseAmount,
		GSTAmount:  b.GSTAmount,
		Total:      b.Total,
	}
}

// Mode returns "Inclusive" or "Exclusive".
func (r CalculationRecord) Mode() string {
	return ModeName(r.Inclusive)
}

// ModeName names the GST type for an inclusive flag.
func ModeName(inclusive bool) string {
	if inclusive {
		return "Inclusive"
	}
	return "Exclusive"
}
