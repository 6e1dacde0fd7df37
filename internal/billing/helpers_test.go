package billing_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salon-billing-api/internal/billing"
	"github.com/sangkips/salon-billing-api/internal/domain/enum"
)

var (
	alice = billing.StaffMember{ID: uuid.MustParse("6f1c3d0e-1a4b-4c39-9b8e-0a1f2e3d4c5b"), Name: "Alice"}
	bob   = billing.StaffMember{ID: uuid.MustParse("0d9e8f7a-2b3c-4d5e-8f60-718293a4b5c6"), Name: "Bob"}
	carol = billing.StaffMember{ID: uuid.MustParse("a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"), Name: "Carol"}
)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 11, 30, 0, 0, time.UTC)
}

func sale(at time.Time, items ...billing.SaleItem) billing.Sale {
	return billing.Sale{ID: uuid.New(), Date: at, Items: items}
}

func line(staff uuid.UUID, kind enum.ItemKind, total float64) billing.SaleItem {
	return billing.SaleItem{ID: uuid.New(), StaffID: staff, Kind: kind, Name: kind.String(), Quantity: 1, Price: total, Total: total}
}

func taxedLine(staff uuid.UUID, kind enum.ItemKind, total, tax float64) billing.SaleItem {
	it := line(staff, kind, total)
	it.TaxAmount = tax
	return it
}

func percentTier(from, to, value float64) billing.TargetTier {
	return billing.TargetTier{From: from, To: to, CalculateBy: enum.CalculateByPercent, Value: value}
}

func fixedTier(from, to, value float64) billing.TargetTier {
	return billing.TargetTier{From: from, To: to, CalculateBy: enum.CalculateByFixed, Value: value}
}

func targetProfile(cascading bool, tiers ...billing.TargetTier) billing.CommissionProfile {
	return billing.CommissionProfile{
		ID:              uuid.New(),
		Name:            "Stylist targets",
		QualifyingItems: []enum.ItemKind{enum.ItemKindService},
		IsActive:        true,
		Rule:            billing.TargetRule{Cascading: cascading, Tiers: tiers},
	}
}

func standardTaxSettings() billing.TaxSettings {
	return billing.TaxSettings{
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

func ptr(v float64) *float64 { return &v }
