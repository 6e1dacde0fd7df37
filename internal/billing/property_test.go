package billing_test

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/sangkips/salon-billing-api/internal/billing"
	"github.com/sangkips/salon-billing-api/internal/domain/enum"
)

func propertyParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return parameters
}

// TestItemTaxSplit verifies the CGST/SGST halves always add back to the tax.
// Property: cgst + sgst == tax, tax == base * rate / 100
func TestItemTaxSplit(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())
	settings := standardTaxSettings()

	properties.Property("halves add up to the item tax", prop.ForAll(
		func(price float64, qty int, kind int, category int) bool {
			item := billing.BillItem{
				Kind:        enum.ItemKind(kind),
				UnitPrice:   price,
				Quantity:    qty,
				TaxCategory: enum.TaxCategory(category),
			}
			r := billing.CalculateItemTax(item, settings)
			return math.Abs(r.CGST+r.SGST-r.TaxAmount) < 1e-9 &&
				math.Abs(r.TaxAmount-r.BaseAmount*r.TaxRate/100) < 1e-9
		},
		gen.Float64Range(0, 100000),
		gen.IntRange(0, 20),
		gen.IntRange(0, 6),
		gen.IntRange(0, 7),
	))

	properties.TestingRun(t)
}

// TestBillTotalsMatchItems verifies no item is dropped from a bill's totals.
// Property: bill.Total* == sum(item.*) within rounding
func TestBillTotalsMatchItems(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())
	settings := standardTaxSettings()

	properties.Property("totals are the sum of the items", prop.ForAll(
		func(prices []float64) bool {
			items := make([]billing.BillItem, len(prices))
			for i, p := range prices {
				items[i] = billing.BillItem{
					Kind:        enum.ItemKind(i%5 + 1),
					UnitPrice:   p,
					Quantity:    i%3 + 1,
					TaxCategory: enum.TaxCategory(i % 6),
				}
			}
			summary := billing.CalculateBillTax(items, settings)
			if len(summary.Items) != len(items) {
				return false
			}

			var base, tax, cgst, sgst, total float64
			for _, r := range summary.Items {
				base += r.BaseAmount
				tax += r.TaxAmount
				cgst += r.CGST
				sgst += r.SGST
				total += r.TotalAmount
			}
			const tolerance = 0.0051
			return math.Abs(summary.TotalBase-base) < tolerance &&
				math.Abs(summary.TotalTaxAmount-tax) < tolerance &&
				math.Abs(summary.TotalCGST-cgst) < tolerance &&
				math.Abs(summary.TotalSGST-sgst) < tolerance &&
				math.Abs(summary.TotalAmount-total) < tolerance
		},
		gen.SliceOf(gen.Float64Range(0, 5000)),
	))

	properties.TestingRun(t)
}

// TestDisabledTaxIsZero verifies disabling tax zeroes every item.
func TestDisabledTaxIsZero(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())
	settings := standardTaxSettings()
	settings.Enabled = false

	properties.Property("no tax when disabled", prop.ForAll(
		func(price float64, kind int, category int) bool {
			r := billing.CalculateItemTax(billing.BillItem{
				Kind:        enum.ItemKind(kind),
				UnitPrice:   price,
				Quantity:    1,
				TaxCategory: enum.TaxCategory(category),
			}, settings)
			return r.TaxAmount == 0 && r.CGST == 0 && r.SGST == 0 && r.TotalAmount == r.BaseAmount
		},
		gen.Float64Range(0, 100000),
		gen.IntRange(0, 6),
		gen.IntRange(0, 6),
	))

	properties.TestingRun(t)
}

// TestCascadingIsContinuous verifies progressive tiers have no jumps at boundaries.
// Property: |c(R + 1) - c(R)| <= max tier rate% of 1, plus rounding
func TestCascadingIsContinuous(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())
	profile := targetProfile(true, percentTier(0, 5000, 5), percentTier(5000, 10000, 8), percentTier(10000, 50000, 12))

	commission := func(revenue float64) float64 {
		sales := []billing.Sale{{ID: uuid.Nil, Items: []billing.SaleItem{line(alice.ID, enum.ItemKindService, revenue)}}}
		return billing.EvaluateProfile(alice.ID, profile, sales).Commission
	}

	properties.Property("one unit of revenue moves commission by at most the top rate", prop.ForAll(
		func(revenue float64) bool {
			r := math.Round(revenue)
			return math.Abs(commission(r+1)-commission(r)) <= 0.12+0.011
		},
		gen.Float64Range(1, 49000),
	))

	properties.TestingRun(t)
}

// TestAggregationIsAssociative verifies splitting the sales changes nothing.
// Property: agg(A ++ B) == agg(A) + agg(B) per staff member
func TestAggregationIsAssociative(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())
	staff := []billing.StaffMember{alice, bob}
	profiles := map[uuid.UUID][]billing.CommissionProfile{
		alice.ID: {targetProfile(true, percentTier(0, 1000, 5), fixedTier(1000, 3000, 40), percentTier(3000, 20000, 9))},
	}
	agg := billing.Aggregator{Fallback: &billing.CommissionConfig{ServiceCommissionRate: 7.5, ProductCommissionRate: 3, MinimumCommission: ptr(10)}}

	toSales := func(amounts []float64, offset int) []billing.Sale {
		out := make([]billing.Sale, len(amounts))
		for i, a := range amounts {
			staffID := alice.ID
			if i%2 == 1 {
				staffID = bob.ID
			}
			out[i] = sale(day(offset+i%10), line(staffID, enum.ItemKind(i%2+1), a))
		}
		return out
	}
	totals := func(results []billing.StaffCommissionResult) map[uuid.UUID]float64 {
		m := map[uuid.UUID]float64{}
		for _, r := range results {
			m[r.StaffID] = r.TotalCommission
		}
		return m
	}

	properties.Property("aggregating together equals summing the parts", prop.ForAll(
		func(left, right []float64) bool {
			a, b := toSales(left, 1), toSales(right, 11)
			whole := totals(agg.Aggregate(append(append([]billing.Sale{}, a...), b...), staff, profiles))
			l := totals(agg.Aggregate(a, staff, profiles))
			r := totals(agg.Aggregate(b, staff, profiles))

			for _, m := range staff {
				if math.Abs(whole[m.ID]-(l[m.ID]+r[m.ID])) > 1e-6 {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Float64Range(0, 8000)),
		gen.SliceOf(gen.Float64Range(0, 8000)),
	))

	properties.TestingRun(t)
}
