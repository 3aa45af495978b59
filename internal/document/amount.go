package document

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Amount converts a raw float into a decimal amount. Source data frequently
// omits numeric fields or carries NaN/Inf after upstream division, so those
// coerce to 0 here rather than at every call site. This is the single
// defaulting boundary for numeric inputs.
func Amount(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}
