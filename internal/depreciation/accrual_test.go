package depreciation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func machineAsset() Asset {
	return Asset{
		ID:              "AST-001",
		Name:            "CNC machine",
		PurchaseValue:   decimal.NewFromInt(1_200_000),
		SalvageValue:    decimal.Zero,
		UsefulLifeYears: 5,
		PurchaseDate:    time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		Status:          AssetActive,
	}
}

func TestAccrue_EighteenMonths(t *testing.T) {
	asOf := time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC)

	acc, err := Accrue(machineAsset(), asOf)
	require.NoError(t, err)

	assert.Equal(t, 18, acc.MonthsElapsed)
	assert.True(t, acc.MonthlyDepreciation.Equal(decimal.NewFromInt(20_000)), "monthly %s", acc.MonthlyDepreciation)
	assert.True(t, acc.Accumulated.Equal(decimal.NewFromInt(360_000)), "accumulated %s", acc.Accumulated)
	assert.True(t, acc.NetBookValue.Equal(decimal.NewFromInt(840_000)), "nbv %s", acc.NetBookValue)
}

func TestAccrue_FutureDatedPurchase(t *testing.T) {
	a := machineAsset()
	a.PurchaseDate = time.Date(2027, time.March, 1, 0, 0, 0, 0, time.UTC)

	acc, err := Accrue(a, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, acc.MonthsElapsed)
	assert.True(t, acc.Accumulated.IsZero())
	assert.True(t, acc.NetBookValue.Equal(a.PurchaseValue))
}

func TestAccrue_ClampsAtDepreciableAmount(t *testing.T) {
	a := machineAsset()
	a.SalvageValue = decimal.NewFromInt(200_000)

	// well beyond the useful life
	acc, err := Accrue(a, time.Date(2040, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, acc.Accumulated.Equal(decimal.NewFromInt(1_000_000)))
	assert.True(t, acc.NetBookValue.Equal(a.SalvageValue))
}

func TestAccrue_MonotonicAndBounded(t *testing.T) {
	a := machineAsset()
	prev := decimal.NewFromInt(-1)
	asOf := a.PurchaseDate
	for i := 0; i < 90; i++ {
		acc, err := Accrue(a, asOf)
		require.NoError(t, err)

		assert.True(t, acc.Accumulated.GreaterThanOrEqual(prev), "month %d", i)
		assert.True(t, acc.Accumulated.GreaterThanOrEqual(decimal.Zero))
		assert.True(t, acc.Accumulated.LessThanOrEqual(acc.DepreciableAmount))
		assert.True(t, acc.NetBookValue.Add(acc.Accumulated).Equal(a.PurchaseValue))

		prev = acc.Accumulated
		asOf = asOf.AddDate(0, 1, 0)
	}
}

func TestAccrue_DefaultsUsefulLife(t *testing.T) {
	a := machineAsset()
	a.UsefulLifeYears = 0

	acc, err := Accrue(a, a.PurchaseDate.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.True(t, acc.MonthlyDepreciation.Equal(decimal.NewFromInt(20_000)))
}

func TestAccrue_RejectsSalvageAbovePurchase(t *testing.T) {
	a := machineAsset()
	a.SalvageValue = a.PurchaseValue.Add(decimal.NewFromInt(1))

	_, err := Accrue(a, time.Now())
	assert.ErrorIs(t, err, ErrInvalidAsset)
}

func TestAccrue_UnsupportedMethods(t *testing.T) {
	for _, m := range []Method{MethodDecliningBalance, MethodSumOfYearsDigits, MethodUnitsOfProduction} {
		a := machineAsset()
		a.Method = m
		_, err := Accrue(a, time.Now())
		assert.ErrorIs(t, err, ErrMethodNotSupported, string(m))
	}
}

func TestSchedule(t *testing.T) {
	rows, err := Schedule(machineAsset())
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, 2025, rows[0].Year)
	assert.True(t, rows[0].Opening.Equal(decimal.NewFromInt(1_200_000)))
	assert.True(t, rows[0].Depreciation.Equal(decimal.NewFromInt(240_000)))
	assert.True(t, rows[0].Rate.Equal(decimal.NewFromInt(20)))

	last := rows[len(rows)-1]
	assert.True(t, last.Closing.IsZero())
	assert.True(t, last.Accumulated.Equal(decimal.NewFromInt(1_200_000)))

	// each year chains: closing(n) == opening(n+1)
	for i := 1; i < len(rows); i++ {
		assert.True(t, rows[i-1].Closing.Equal(rows[i].Opening))
	}
}
