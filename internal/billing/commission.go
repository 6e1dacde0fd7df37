package billing

import (
	"math"

	"github.com/google/uuid"
	"github.com/sangkips/salon-billing-api/internal/domain/enum"
)

// ProfileEvaluation is what one profile earned a staff member over a set of sales
type ProfileEvaluation struct {
	Commission float64 `json:"commission"`
	Revenue    float64 `json:"revenue"`
	ItemCount  int     `json:"item_count"`
}

// EvaluateProfile computes the commission staffID earns under profile across
// sales, treating the sales as a single evaluation window. Only items
// attributed to staffID whose kind qualifies under the profile contribute.
// When nothing qualifies the result is zero, fixed tier amounts included.
func EvaluateProfile(staffID uuid.UUID, profile CommissionProfile, sales []Sale) ProfileEvaluation {
	revenue, count := qualifyingRevenue(staffID, &profile, sales)
	if count == 0 || profile.Rule == nil {
		return ProfileEvaluation{Revenue: revenue, ItemCount: count}
	}

	return ProfileEvaluation{
		Commission: round2(profile.Rule.commission(revenue, &profile)),
		Revenue:    revenue,
		ItemCount:  count,
	}
}

func qualifyingRevenue(staffID uuid.UUID, p *CommissionProfile, sales []Sale) (float64, int) {
	var revenue amount
	count := 0
	for _, sale := range sales {
		for _, item := range sale.Items {
			if item.StaffID != staffID || !p.Qualifies(item.Kind) {
				continue
			}
			revenue.add(item.Total)
			if p.IncludeTax {
				revenue.add(item.TaxAmount)
			}
			count++
		}
	}
	return revenue.value(), count
}

func (r TargetRule) commission(revenue float64, _ *CommissionProfile) float64 {
	if r.Cascading {
		return r.cascade(revenue)
	}
	t, ok := r.Match(revenue)
	if !ok {
		return 0
	}
	return t.apply(revenue)
}

// Match returns the tier whose inclusive [From, To] range contains revenue.
// When ranges overlap the tier with the greatest From wins.
func (r TargetRule) Match(revenue float64) (TargetTier, bool) {
	var best TargetTier
	found := false
	for _, t := range r.Tiers {
		if revenue < t.From || revenue > t.To {
			continue
		}
		if !found || t.From > best.From {
			best, found = t, true
		}
	}
	return best, found
}

// cascade pays each tier on the part of revenue that falls inside it
func (r TargetRule) cascade(revenue float64) float64 {
	var total amount
	for _, t := range r.Tiers {
		if revenue < t.From {
			continue
		}
		slice := math.Min(revenue, t.To) - t.From
		if slice < 0 {
			continue
		}
		total.add(t.apply(slice))
	}
	return total.value()
}

func (t TargetTier) apply(base float64) float64 {
	if t.CalculateBy == enum.CalculateByFixed {
		return t.Value
	}
	return base * t.Value / 100
}

// commission applies every rate whose item type qualifies to the whole
// qualifying revenue of the profile.
func (r ItemRule) commission(revenue float64, p *CommissionProfile) float64 {
	var total amount
	for _, rate := range r.Rates {
		if !p.Qualifies(rate.ItemType) {
			continue
		}
		if rate.CalculateBy == enum.CalculateByFixed {
			total.add(rate.Rate)
			continue
		}
		total.add(revenue * rate.Rate / 100)
	}
	return total.value()
}
