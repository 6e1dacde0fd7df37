package billing_test

import (
	"math"
	"testing"

	"github.com/sangkips/salon-billing-api/internal/billing"
	"github.com/sangkips/salon-billing-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateItemTax(t *testing.T) {
	settings := standardTaxSettings()

	tests := []struct {
		name     string
		item     billing.BillItem
		wantRate float64
		wantTax  float64
		wantHalf float64
	}{
		{
			name:     "service",
			item:     billing.BillItem{Name: "Haircut", Kind: enum.ItemKindService, UnitPrice: 500, Quantity: 1},
			wantRate: 5, wantTax: 25, wantHalf: 12.5,
		},
		{
			name:     "essential product",
			item:     billing.BillItem{Name: "Soap", Kind: enum.ItemKindProduct, UnitPrice: 200, Quantity: 1, TaxCategory: enum.TaxCategoryEssential},
			wantRate: 5, wantTax: 10, wantHalf: 5,
		},
		{
			name:     "standard product",
			item:     billing.BillItem{Name: "Shampoo", Kind: enum.ItemKindProduct, UnitPrice: 300, Quantity: 1, TaxCategory: enum.TaxCategoryStandard},
			wantRate: 18, wantTax: 54, wantHalf: 27,
		},
		{
			name:     "luxury product",
			item:     billing.BillItem{Name: "Perfume", Kind: enum.ItemKindProduct, UnitPrice: 500, Quantity: 1, TaxCategory: enum.TaxCategoryLuxury},
			wantRate: 28, wantTax: 140, wantHalf: 70,
		},
		{
			name:     "product without category uses standard rate",
			item:     billing.BillItem{Name: "Comb", Kind: enum.ItemKindProduct, UnitPrice: 100, Quantity: 2},
			wantRate: 18, wantTax: 36, wantHalf: 18,
		},
		{
			name:     "exempt product",
			item:     billing.BillItem{Name: "Cotton", Kind: enum.ItemKindProduct, UnitPrice: 80, Quantity: 1, TaxCategory: enum.TaxCategoryExempt},
			wantRate: 0, wantTax: 0, wantHalf: 0,
		},
		{
			name:     "package goes through product slabs",
			item:     billing.BillItem{Name: "Bridal", Kind: enum.ItemKindPackage, UnitPrice: 1000, Quantity: 1, TaxCategory: enum.TaxCategoryIntermediate},
			wantRate: 12, wantTax: 120, wantHalf: 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := billing.CalculateItemTax(tt.item, settings)

			assert.Equal(t, tt.wantRate, got.TaxRate)
			assert.InDelta(t, tt.wantTax, got.TaxAmount, 1e-9)
			assert.InDelta(t, tt.wantHalf, got.CGST, 1e-9)
			assert.InDelta(t, tt.wantHalf, got.SGST, 1e-9)
			assert.InDelta(t, got.BaseAmount+got.TaxAmount, got.TotalAmount, 1e-9)
		})
	}
}

func TestCalculateItemTax_Disabled(t *testing.T) {
	settings := standardTaxSettings()
	settings.Enabled = false

	got := billing.CalculateItemTax(billing.BillItem{Kind: enum.ItemKindProduct, UnitPrice: 250, Quantity: 2, TaxCategory: enum.TaxCategoryLuxury}, settings)

	assert.Zero(t, got.TaxRate)
	assert.Zero(t, got.TaxAmount)
	assert.Zero(t, got.CGST)
	assert.Zero(t, got.SGST)
	assert.Equal(t, 500.0, got.BaseAmount)
	assert.Equal(t, 500.0, got.TotalAmount)
}

func TestCalculateItemTax_SplitIgnoresConfiguredHalves(t *testing.T) {
	settings := standardTaxSettings()
	settings.CGSTRate = 2
	settings.SGSTRate = 16

	got := billing.CalculateItemTax(billing.BillItem{Kind: enum.ItemKindService, UnitPrice: 500, Quantity: 1}, settings)

	assert.Equal(t, got.CGST, got.SGST)
	assert.InDelta(t, 12.5, got.CGST, 1e-9)
}

func TestCalculateBillTax_MixedBill(t *testing.T) {
	items := []billing.BillItem{
		{ID: "1", Name: "Haircut", Kind: enum.ItemKindService, UnitPrice: 500, Quantity: 1},
		{ID: "2", Name: "Soap", Kind: enum.ItemKindProduct, UnitPrice: 200, Quantity: 1, TaxCategory: enum.TaxCategoryEssential},
		{ID: "3", Name: "Shampoo", Kind: enum.ItemKindProduct, UnitPrice: 300, Quantity: 1, TaxCategory: enum.TaxCategoryStandard},
		{ID: "4", Name: "Perfume", Kind: enum.ItemKindProduct, UnitPrice: 500, Quantity: 1, TaxCategory: enum.TaxCategoryLuxury},
	}

	summary := billing.CalculateBillTax(items, standardTaxSettings())

	require.Len(t, summary.Items, 4)
	for i, r := range summary.Items {
		assert.Equal(t, items[i].ID, r.ItemID, "items keep billed order")
	}
	assert.Equal(t, 1500.0, summary.TotalBase)
	assert.Equal(t, 229.0, summary.TotalTaxAmount)
	assert.Equal(t, 114.5, summary.TotalCGST)
	assert.Equal(t, 114.5, summary.TotalSGST)
	assert.Equal(t, 1729.0, summary.TotalAmount)
}

func TestCalculateBillTax_Empty(t *testing.T) {
	summary := billing.CalculateBillTax(nil, standardTaxSettings())

	assert.NotNil(t, summary.Items)
	assert.Empty(t, summary.Items)
	assert.Zero(t, summary.TotalAmount)
}

func TestCalculateBillTax_AcceptsMalformedItems(t *testing.T) {
	items := []billing.BillItem{
		{ID: "neg", Kind: enum.ItemKindService, UnitPrice: -100, Quantity: 1},
		{ID: "zero", Kind: enum.ItemKindProduct, UnitPrice: 100, Quantity: 0},
	}

	summary := billing.CalculateBillTax(items, standardTaxSettings())

	require.Len(t, summary.Items, 2)
	assert.Equal(t, -100.0, summary.TotalBase)
	assert.Equal(t, -5.0, summary.TotalTaxAmount)
}

func TestCalculateBillTax_NonFiniteInputs(t *testing.T) {
	settings := standardTaxSettings()
	settings.ServiceRate = math.NaN()
	settings.LuxuryRate = math.Inf(1)

	items := []billing.BillItem{
		{ID: "nan-rate", Kind: enum.ItemKindService, UnitPrice: 500, Quantity: 1},
		{ID: "inf-rate", Kind: enum.ItemKindProduct, UnitPrice: 200, Quantity: 1, TaxCategory: enum.TaxCategoryLuxury},
		{ID: "overflow", Kind: enum.ItemKindPackage, UnitPrice: 1e308, Quantity: 10},
		{ID: "plain", Kind: enum.ItemKindPackage, UnitPrice: 100, Quantity: 1},
	}

	var summary billing.BillTaxSummary
	require.NotPanics(t, func() {
		summary = billing.CalculateBillTax(items, settings)
	})

	require.Len(t, summary.Items, 4)
	for _, it := range summary.Items {
		assert.False(t, math.IsNaN(it.TaxAmount) || math.IsInf(it.TaxAmount, 0), it.ItemID)
		assert.False(t, math.IsNaN(it.TotalAmount) || math.IsInf(it.TotalAmount, 0), it.ItemID)
	}
	assert.Zero(t, summary.Items[0].TaxAmount)
	assert.Zero(t, summary.Items[1].TaxAmount)
	assert.Zero(t, summary.Items[2].BaseAmount)
	assert.Equal(t, 800.0, summary.TotalBase)
	assert.Equal(t, 18.0, summary.TotalTaxAmount)
	assert.Equal(t, 818.0, summary.TotalAmount)
}
