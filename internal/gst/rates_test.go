package gst

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/taxledger/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(cgst, sgst, igst int64) document.LineItem {
	return document.LineItem{
		Name:     "item",
		Quantity: decimal.NewFromInt(1),
		Rate:     decimal.NewFromInt(100),
		CGSTRate: decimal.NewFromInt(cgst),
		SGSTRate: decimal.NewFromInt(sgst),
		IGSTRate: decimal.NewFromInt(igst),
	}
}

func TestApplyRates_IntraState(t *testing.T) {
	got := ApplyRates(IntraState, []document.LineItem{item(0, 0, 18)}, decimal.Zero)
	require.Len(t, got, 1)
	assert.True(t, got[0].CGSTRate.Equal(decimal.NewFromInt(9)))
	assert.True(t, got[0].SGSTRate.Equal(decimal.NewFromInt(9)))
	assert.True(t, got[0].IGSTRate.IsZero())
}

func TestApplyRates_InterState(t *testing.T) {
	got := ApplyRates(InterState, []document.LineItem{item(9, 9, 0)}, decimal.Zero)
	require.Len(t, got, 1)
	assert.True(t, got[0].IGSTRate.Equal(decimal.NewFromInt(18)))
	assert.True(t, got[0].CGSTRate.IsZero())
	assert.True(t, got[0].SGSTRate.IsZero())
}

func TestApplyRates_DefaultNominal(t *testing.T) {
	got := ApplyRates(IntraState, []document.LineItem{item(0, 0, 0)}, decimal.Zero)
	assert.True(t, got[0].CGSTRate.Equal(decimal.NewFromInt(9)))
	assert.True(t, got[0].SGSTRate.Equal(decimal.NewFromInt(9)))

	got = ApplyRates(InterState, []document.LineItem{item(0, 0, 0)}, decimal.NewFromInt(28))
	assert.True(t, got[0].IGSTRate.Equal(decimal.NewFromInt(28)))
}

func TestApplyRates_UndeterminedIsNoOp(t *testing.T) {
	in := []document.LineItem{item(9, 9, 0)}
	got := ApplyRates(Undetermined, in, decimal.Zero)
	assert.Equal(t, in, got)
}

func TestApplyRates_Idempotent(t *testing.T) {
	once := ApplyRates(IntraState, []document.LineItem{item(0, 0, 18), item(6, 6, 0)}, decimal.Zero)
	twice := ApplyRates(IntraState, once, decimal.Zero)
	assert.Equal(t, once, twice)

	once = ApplyRates(InterState, once, decimal.Zero)
	twice = ApplyRates(InterState, once, decimal.Zero)
	assert.Equal(t, once, twice)
}

func TestApplyRates_DoesNotMutateInputOrOtherFields(t *testing.T) {
	in := []document.LineItem{{
		Name:            "laptop",
		HSNCode:         "8471",
		Quantity:        decimal.NewFromInt(2),
		Rate:            decimal.NewFromInt(55000),
		DiscountPercent: decimal.NewFromInt(5),
		IGSTRate:        decimal.NewFromInt(18),
	}}
	got := ApplyRates(IntraState, in, decimal.Zero)

	// input untouched
	assert.True(t, in[0].IGSTRate.Equal(decimal.NewFromInt(18)))
	assert.True(t, in[0].CGSTRate.IsZero())

	// non-tax fields preserved
	assert.Equal(t, "laptop", got[0].Name)
	assert.Equal(t, "8471", got[0].HSNCode)
	assert.True(t, got[0].Quantity.Equal(decimal.NewFromInt(2)))
	assert.True(t, got[0].Rate.Equal(decimal.NewFromInt(55000)))
	assert.True(t, got[0].DiscountPercent.Equal(decimal.NewFromInt(5)))
}

func TestReclassify_CounterpartyChange(t *testing.T) {
	items := []document.LineItem{item(9, 9, 0)}

	typ, got := Reclassify("27AAPFU0939F1ZV", "06BZAHM6385P6Z2", items, decimal.Zero)
	assert.Equal(t, InterState, typ)
	assert.True(t, got[0].IGSTRate.Equal(decimal.NewFromInt(18)))

	// malformed new counterparty: rates must not be zeroed
	typ, got = Reclassify("27AAPFU0939F1ZV", "06", got, decimal.Zero)
	assert.Equal(t, Undetermined, typ)
	assert.True(t, got[0].IGSTRate.Equal(decimal.NewFromInt(18)))
}
