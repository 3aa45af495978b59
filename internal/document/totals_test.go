package document

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestTotals_Empty(t *testing.T) {
	r := Totals(nil)
	assert.True(t, r.SubTotal.IsZero())
	assert.True(t, r.DiscountTotal.IsZero())
	assert.True(t, r.TotalTax.IsZero())
	assert.True(t, r.GrandTotal.IsZero())
}

func TestTotals_SingleItem(t *testing.T) {
	items := []LineItem{{
		Name:            "Office chair",
		HSNCode:         "9401",
		Quantity:        dec("2"),
		Rate:            dec("5000"),
		DiscountPercent: dec("10"),
		CGSTRate:        dec("9"),
		SGSTRate:        dec("9"),
	}}

	r := Totals(items)
	assert.True(t, r.SubTotal.Equal(dec("10000")), "subtotal %s", r.SubTotal)
	assert.True(t, r.DiscountTotal.Equal(dec("1000")))
	assert.True(t, r.TaxableValue.Equal(dec("9000")))
	assert.True(t, r.CGSTAmount.Equal(dec("810")))
	assert.True(t, r.SGSTAmount.Equal(dec("810")))
	assert.True(t, r.IGSTAmount.IsZero())
	assert.True(t, r.TotalTax.Equal(dec("1620")))
	assert.True(t, r.GrandTotal.Equal(dec("10620")))
}

func TestTotals_Identities(t *testing.T) {
	items := []LineItem{
		{Quantity: dec("3"), Rate: dec("1250.50"), DiscountPercent: dec("5"), IGSTRate: dec("18")},
		{Quantity: dec("1"), Rate: dec("799"), CGSTRate: dec("6"), SGSTRate: dec("6")},
		{Quantity: dec("10"), Rate: dec("42.42"), DiscountPercent: dec("12.5"), CGSTRate: dec("14"), SGSTRate: dec("14")},
	}

	r := Totals(items)
	require.True(t, r.TotalTax.Equal(r.CGSTAmount.Add(r.SGSTAmount).Add(r.IGSTAmount)))
	require.True(t, r.GrandTotal.Equal(r.SubTotal.Sub(r.DiscountTotal).Add(r.TotalTax)))
}

func TestAmount_CoercesNaNAndInf(t *testing.T) {
	assert.True(t, Amount(math.NaN()).IsZero())
	assert.True(t, Amount(math.Inf(1)).IsZero())
	assert.True(t, Amount(math.Inf(-1)).IsZero())
	assert.True(t, Amount(12.5).Equal(dec("12.5")))
}

func TestLineItem_TaxableValue(t *testing.T) {
	li := LineItem{Quantity: dec("4"), Rate: dec("250"), DiscountPercent: dec("25")}
	assert.True(t, li.TaxableValue().Equal(dec("750")))
}

func TestLineItem_NominalTaxRate(t *testing.T) {
	li := LineItem{CGSTRate: dec("9"), SGSTRate: dec("9")}
	assert.True(t, li.NominalTaxRate().Equal(dec("18")))

	li = LineItem{IGSTRate: dec("28")}
	assert.True(t, li.NominalTaxRate().Equal(dec("28")))
}
