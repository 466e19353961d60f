package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name      string
		quantity  float64
		unitPrice float64
		want      float64
	}{
		{"whole units", 10, 50, 500},
		{"fractional quantity", 2.5, 40, 100},
		{"zero quantity", 0, 99.99, 0},
		{"zero price", 7, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LineTotal(tt.quantity, tt.unitPrice))
		})
	}
}

func TestSubtotalSumsStoredTotals(t *testing.T) {
	items := []Item{
		{Quantity: 1, UnitPrice: 100, Total: 100},
		{Quantity: 2, UnitPrice: 50, Total: 100},
		{Quantity: 3, UnitPrice: 10, Total: 42}, // manually overridden total
	}
	assert.Equal(t, 242.0, Subtotal(items))
}

func TestSubtotalIgnoresOrder(t *testing.T) {
	items := []Item{{Total: 12.5}, {Total: 30}, {Total: 7.25}}
	reversed := []Item{{Total: 7.25}, {Total: 30}, {Total: 12.5}}
	assert.Equal(t, Subtotal(items), Subtotal(reversed))
}

func TestSubtotalEmpty(t *testing.T) {
	assert.Zero(t, Subtotal(nil))
}

func TestDiscountAmount(t *testing.T) {
	tests := []struct {
		name         string
		subtotal     float64
		discountType DiscountType
		value        float64
		want         float64
	}{
		{"percentage", 1000, DiscountPercentage, 10, 100},
		{"percentage zero", 1000, DiscountPercentage, 0, 0},
		{"fixed", 200, DiscountFixed, 50, 50},
		{"fixed zero", 200, DiscountFixed, 0, 0},
		{"fixed exceeds subtotal", 200, DiscountFixed, 250, 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DiscountAmount(tt.subtotal, tt.discountType, tt.value))
		})
	}
}

func TestTotalIdentity(t *testing.T) {
	// total == subtotal + tax - discount must hold exactly across rates
	// and both discount modes.
	subtotals := []float64{0, 1, 200, 1000, 98765.43}
	rates := []float64{0, 8.25, 50, 100}
	for _, subtotal := range subtotals {
		for _, rate := range rates {
			for _, typ := range []DiscountType{DiscountPercentage, DiscountFixed} {
				tax := TaxAmount(subtotal, rate)
				discount := DiscountAmount(subtotal, typ, 10)
				assert.Equal(t, subtotal+tax-discount, Total(subtotal, tax, discount))
			}
		}
	}
}

func TestComputeNoTaxNoDiscount(t *testing.T) {
	items := []Item{{Quantity: 10, UnitPrice: 50, Total: LineTotal(10, 50)}}

	totals := Compute(items, 0, DiscountPercentage, 0)

	assert.Equal(t, 500.0, totals.Subtotal)
	assert.Zero(t, totals.TaxAmount)
	assert.Zero(t, totals.DiscountAmount)
	assert.Equal(t, 500.0, totals.Total)
}

func TestComputeTaxAndPercentageDiscount(t *testing.T) {
	items := []Item{{Quantity: 1, UnitPrice: 1000, Total: 1000}}

	totals := Compute(items, 8.25, DiscountPercentage, 10)

	assert.Equal(t, 1000.0, totals.Subtotal)
	assert.Equal(t, 82.5, totals.TaxAmount)
	assert.Equal(t, 100.0, totals.DiscountAmount)
	assert.Equal(t, 982.5, totals.Total)
}

func TestComputeFixedDiscountMayGoNegative(t *testing.T) {
	items := []Item{{Quantity: 4, UnitPrice: 50, Total: 200}}

	totals := Compute(items, 0, DiscountFixed, 250)

	assert.Equal(t, 250.0, totals.DiscountAmount)
	assert.Equal(t, -50.0, totals.Total)
}

func TestDiscountTypeValid(t *testing.T) {
	assert.True(t, DiscountPercentage.Valid())
	assert.True(t, DiscountFixed.Valid())
	assert.False(t, DiscountType("rebate").Valid())
}
