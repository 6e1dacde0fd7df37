package billing

import "github.com/sangkips/salon-billing-api/internal/domain/enum"

// ProductRate returns the rate for a product tax slab. Products with no
// category are taxed at the standard rate.
func (s TaxSettings) ProductRate(c enum.TaxCategory) float64 {
	switch c {
	case enum.TaxCategoryEssential:
		return s.EssentialRate
	case enum.TaxCategoryIntermediate:
		return s.IntermediateRate
	case enum.TaxCategoryLuxury:
		return s.LuxuryRate
	case enum.TaxCategoryExempt:
		return s.ExemptRate
	default:
		return s.StandardRate
	}
}

// DefaultTaxSettings returns the built-in GST slabs: 5% on services, product
// slabs of 5, 12, 18 and 28 percent, and a 9+9 CGST/SGST split.
func DefaultTaxSettings() TaxSettings {
	return TaxSettings{
		Enabled:          true,
		ServiceRate:      5,
		EssentialRate:    5,
		IntermediateRate: 12,
		StandardRate:     18,
		LuxuryRate:       28,
		ExemptRate:       0,
		CGSTRate:         9,
		SGSTRate:         9,
	}
}

// TaxRateFor returns the GST rate, in percent, that applies to item.
// Services use the service rate; every other kind is billed through its
// product slab.
func TaxRateFor(item BillItem, settings TaxSettings) float64 {
	if !settings.Enabled {
		return 0
	}
	if item.Kind == enum.ItemKindService {
		return settings.ServiceRate
	}
	return settings.ProductRate(item.TaxCategory)
}

// CalculateItemTax prices a single item. Figures are left unrounded so that
// bill totals can be rounded once. A rate, base or tax that is not a finite
// number is treated as 0.
func CalculateItemTax(item BillItem, settings TaxSettings) ItemTaxResult {
	rate := finiteOrZero(TaxRateFor(item, settings))
	base := finiteOrZero(item.UnitPrice * float64(item.Quantity))
	tax := finiteOrZero(base * rate / 100)
	half := tax / 2

	return ItemTaxResult{
		ItemID:      item.ID,
		Name:        item.Name,
		Kind:        item.Kind,
		TaxRate:     rate,
		BaseAmount:  base,
		TaxAmount:   tax,
		CGST:        half,
		SGST:        half,
		TotalAmount: base + tax,
	}
}

// CalculateBillTax prices every item of a bill, preserving order, and totals the results
func CalculateBillTax(items []BillItem, settings TaxSettings) BillTaxSummary {
	results := make([]ItemTaxResult, 0, len(items))
	var base, tax, cgst, sgst, total amount

	for _, item := range items {
		r := CalculateItemTax(item, settings)
		results = append(results, r)

		base.add(r.BaseAmount)
		tax.add(r.TaxAmount)
		cgst.add(r.CGST)
		sgst.add(r.SGST)
		total.add(r.TotalAmount)
	}

	return BillTaxSummary{
		Items:          results,
		TotalBase:      base.value(),
		TotalTaxAmount: tax.value(),
		TotalCGST:      cgst.value(),
		TotalSGST:      sgst.value(),
		TotalAmount:    total.value(),
	}
}
