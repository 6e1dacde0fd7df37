package billing

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salon-billing-api/internal/domain/enum"
	"github.com/sourcegraph/conc/iter"
)

// ProfileCommission is the share of a staff member's commission earned under one profile
type ProfileCommission struct {
	ProfileID   uuid.UUID        `json:"profile_id"`
	ProfileName string           `json:"profile_name"`
	ProfileType enum.ProfileType `json:"profile_type"`
	Commission  float64          `json:"commission"`
	Revenue     float64          `json:"revenue"`
	ItemCount   int              `json:"item_count"`
}

// StaffCommissionResult summarises what one staff member earned over a set of sales
type StaffCommissionResult struct {
	StaffID                         uuid.UUID                 `json:"staff_id"`
	StaffName                       string                    `json:"staff_name"`
	TotalCommission                 float64                   `json:"total_commission"`
	TotalRevenue                    float64                   `json:"total_revenue"`
	AttributedRevenue               float64                   `json:"attributed_revenue"`
	RevenueByItemType               map[enum.ItemKind]float64 `json:"revenue_by_item_type"`
	ByProfile                       []ProfileCommission       `json:"by_profile"`
	FlatRateCommission              float64                   `json:"flat_rate_commission"`
	TransactionCount                int                       `json:"transaction_count"`
	ItemCount                       int                       `json:"item_count"`
	AverageCommissionPerTransaction float64                   `json:"average_commission_per_transaction"`
	EffectiveCommissionRate         float64                   `json:"effective_commission_rate"`
}

// Aggregator combines profile evaluations across sales and staff. When
// Fallback is set, staff without any active profile are paid flat-rate
// commission under it.
type Aggregator struct {
	Fallback *CommissionConfig
}

// AggregateStaffCommission aggregates with no flat-rate fallback
func AggregateStaffCommission(sales []Sale, staff []StaffMember, profilesByStaff map[uuid.UUID][]CommissionProfile) []StaffCommissionResult {
	return Aggregator{}.Aggregate(sales, staff, profilesByStaff)
}

// AggregateStaffCommissionForRange aggregates only the sales dated within [start, end]
func AggregateStaffCommissionForRange(sales []Sale, start, end time.Time, staff []StaffMember, profilesByStaff map[uuid.UUID][]CommissionProfile) []StaffCommissionResult {
	return Aggregator{}.AggregateForRange(sales, start, end, staff, profilesByStaff)
}

// Aggregate returns one result per staff member, ordered by total commission
// descending. Members with equal commission keep their input order.
func (a Aggregator) Aggregate(sales []Sale, staff []StaffMember, profilesByStaff map[uuid.UUID][]CommissionProfile) []StaffCommissionResult {
	results := iter.Map(staff, func(member *StaffMember) StaffCommissionResult {
		return a.aggregateMember(*member, sales, profilesByStaff[member.ID])
	})

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalCommission > results[j].TotalCommission
	})
	return results
}

// AggregateForRange is Aggregate over the sales dated within [start, end]
func (a Aggregator) AggregateForRange(sales []Sale, start, end time.Time, staff []StaffMember, profilesByStaff map[uuid.UUID][]CommissionProfile) []StaffCommissionResult {
	return a.Aggregate(FilterSales(sales, start, end), staff, profilesByStaff)
}

// FilterSales keeps the sales whose date lies within [start, end]
func FilterSales(sales []Sale, start, end time.Time) []Sale {
	out := make([]Sale, 0, len(sales))
	for _, s := range sales {
		if s.Date.Before(start) || s.Date.After(end) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (a Aggregator) aggregateMember(member StaffMember, sales []Sale, profiles []CommissionProfile) StaffCommissionResult {
	res := StaffCommissionResult{
		StaffID:           member.ID,
		StaffName:         member.Name,
		RevenueByItemType: map[enum.ItemKind]float64{},
		ByProfile:         []ProfileCommission{},
	}

	var attributed amount
	byKind := map[enum.ItemKind]*amount{}
	for _, sale := range sales {
		touched := false
		for _, item := range sale.Items {
			if item.StaffID != member.ID {
				continue
			}
			touched = true
			res.ItemCount++
			attributed.add(item.Total)
			if byKind[item.Kind] == nil {
				byKind[item.Kind] = &amount{}
			}
			byKind[item.Kind].add(item.Total)
		}
		if touched {
			res.TransactionCount++
		}
	}
	res.AttributedRevenue = attributed.value()
	for k, v := range byKind {
		res.RevenueByItemType[k] = v.value()
	}

	var commission, revenue amount
	active := activeProfiles(profiles)
	for i := range active {
		pc := evaluateAcrossSales(member.ID, active[i], sales)
		commission.add(pc.Commission)
		revenue.add(pc.Revenue)
		res.ByProfile = append(res.ByProfile, pc)
	}

	if len(active) == 0 && a.Fallback != nil {
		var flat amount
		for _, sale := range sales {
			if !hasItemsFor(member.ID, sale) {
				continue
			}
			r := CalculateFlatRateCommission(member.ID, sale, *a.Fallback)
			flat.add(r.Commission)
			revenue.add(r.ServiceRevenue)
			revenue.add(r.ProductRevenue)
		}
		res.FlatRateCommission = flat.value()
		commission.add(res.FlatRateCommission)
	}

	res.TotalCommission = commission.value()
	res.TotalRevenue = revenue.value()
	if res.TransactionCount > 0 {
		res.AverageCommissionPerTransaction = round2(res.TotalCommission / float64(res.TransactionCount))
	}
	res.EffectiveCommissionRate = ratio(res.TotalCommission, res.TotalRevenue)
	return res
}

// evaluateAcrossSales evaluates p against each sale on its own and sums the results
func evaluateAcrossSales(staffID uuid.UUID, p CommissionProfile, sales []Sale) ProfileCommission {
	var commission, revenue amount
	pc := ProfileCommission{
		ProfileID:   p.ID,
		ProfileName: p.Name,
		ProfileType: p.Type(),
	}
	for i := range sales {
		ev := EvaluateProfile(staffID, p, sales[i:i+1])
		commission.add(ev.Commission)
		revenue.add(ev.Revenue)
		pc.ItemCount += ev.ItemCount
	}
	pc.Commission = commission.value()
	pc.Revenue = revenue.value()
	return pc
}

func activeProfiles(profiles []CommissionProfile) []CommissionProfile {
	out := make([]CommissionProfile, 0, len(profiles))
	for _, p := range profiles {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

func hasItemsFor(staffID uuid.UUID, sale Sale) bool {
	for _, item := range sale.Items {
		if item.StaffID == staffID {
			return true
		}
	}
	return false
}
