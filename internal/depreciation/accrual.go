package depreciation

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// Accrual is the real-time depreciation state of an asset as of a date.
type Accrual struct {
	DepreciableAmount   decimal.Decimal `json:"depreciable_amount"`
	MonthlyDepreciation decimal.Decimal `json:"monthly_depreciation"`
	MonthsElapsed       int             `json:"months_elapsed"`
	Accumulated         decimal.Decimal `json:"accumulated"`
	NetBookValue        decimal.Decimal `json:"net_book_value"`
	YearToDate          decimal.Decimal `json:"year_to_date"`
}

// Accrue computes the straight-line accrual for an asset as of asOf.
// Accumulated is clamped to [0, depreciableAmount], so netBookValue never
// drops below salvage and netBookValue + accumulated == purchaseValue always.
//
// YearToDate is calendar-year based (monthly x current month number), not
// fiscal-year; see DESIGN.md.
func Accrue(a Asset, asOf time.Time) (Accrual, error) {
	if err := a.Validate(); err != nil {
		return Accrual{}, err
	}
	if a.method() != MethodStraightLine {
		return Accrual{}, ErrMethodNotSupported
	}

	depreciable := a.PurchaseValue.Sub(a.SalvageValue)
	months := decimal.NewFromInt(int64(a.usefulLife())).Mul(twelve)
	monthly := depreciable.Div(months)

	elapsed := monthsElapsed(a.PurchaseDate, asOf)
	accumulated := monthly.Mul(decimal.NewFromInt(int64(elapsed)))
	if accumulated.GreaterThan(depreciable) {
		accumulated = depreciable
	}
	if accumulated.IsNegative() {
		accumulated = decimal.Zero
	}

	return Accrual{
		DepreciableAmount:   depreciable,
		MonthlyDepreciation: monthly,
		MonthsElapsed:       elapsed,
		Accumulated:         accumulated,
		NetBookValue:        a.PurchaseValue.Sub(accumulated),
		YearToDate:          monthly.Mul(decimal.NewFromInt(int64(asOf.Month()))),
	}, nil
}

// monthsElapsed counts whole calendar months between purchase and asOf,
// clamped to 0 for future-dated purchases.
func monthsElapsed(purchase, asOf time.Time) int {
	n := (asOf.Year()-purchase.Year())*12 + int(asOf.Month()) - int(purchase.Month())
	if n < 0 {
		return 0
	}
	return n
}

// ScheduleRow is one year of the depreciation schedule.
type ScheduleRow struct {
	Year         int             `json:"year"`
	Opening      decimal.Decimal `json:"opening"`
	Depreciation decimal.Decimal `json:"depreciation"`
	Accumulated  decimal.Decimal `json:"accumulated"`
	Closing      decimal.Decimal `json:"closing"`
	Rate         decimal.Decimal `json:"rate"`
}

// Schedule derives the full per-year schedule from the useful-life formula.
// The closing value of the final year is the salvage value.
func Schedule(a Asset) ([]ScheduleRow, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if a.method() != MethodStraightLine {
		return nil, ErrMethodNotSupported
	}

	life := a.usefulLife()
	depreciable := a.PurchaseValue.Sub(a.SalvageValue)
	annual := depreciable.Div(decimal.NewFromInt(int64(life)))
	rate := hundred.Div(decimal.NewFromInt(int64(life)))

	rows := make([]ScheduleRow, 0, life)
	opening := a.PurchaseValue
	accumulated := decimal.Zero
	for y := 1; y <= life; y++ {
		accumulated = accumulated.Add(annual)
		closing := a.PurchaseValue.Sub(accumulated)
		rows = append(rows, ScheduleRow{
			Year:         a.PurchaseDate.Year() + y - 1,
			Opening:      opening,
			Depreciation: annual,
			Accumulated:  accumulated,
			Closing:      closing,
			Rate:         rate,
		})
		opening = closing
	}
	return rows, nil
}
