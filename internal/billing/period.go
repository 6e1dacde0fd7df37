package billing

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salon-billing-api/internal/domain/enum"
)

// PeriodCommission is a profile evaluation over the sales of one settlement
// period. A period cut by the edges of the settled range is Partial and its
// bounds are those of the range.
type PeriodCommission struct {
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	Partial     bool      `json:"partial"`
	ProfileEvaluation
}

// PeriodStart returns the start of the settlement period containing t in loc
func PeriodStart(t time.Time, interval enum.CalculationInterval, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	if interval == enum.CalculationIntervalDaily {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
}

func periodEnd(start time.Time, interval enum.CalculationInterval) time.Time {
	if interval == enum.CalculationIntervalDaily {
		return start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return start.AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// SettleProfilePeriods groups the sales dated within [start, end] into the
// profile's calculation interval and evaluates the profile once per period,
// so tiers apply to the revenue accumulated within each period. A zero start
// or end leaves that side of the range open. Periods in which staffID sold
// nothing that qualifies are omitted. Results are in chronological order.
func SettleProfilePeriods(staffID uuid.UUID, profile CommissionProfile, sales []Sale, start, end time.Time, loc *time.Location) []PeriodCommission {
	buckets := map[time.Time][]Sale{}
	for _, s := range sales {
		if (!start.IsZero() && s.Date.Before(start)) || (!end.IsZero() && s.Date.After(end)) {
			continue
		}
		ps := PeriodStart(s.Date, profile.CalculationInterval, loc)
		buckets[ps] = append(buckets[ps], s)
	}

	out := make([]PeriodCommission, 0, len(buckets))
	for ps, bucket := range buckets {
		ev := EvaluateProfile(staffID, profile, bucket)
		if ev.ItemCount == 0 {
			continue
		}
		period := PeriodCommission{
			PeriodStart:       ps,
			PeriodEnd:         periodEnd(ps, profile.CalculationInterval),
			ProfileEvaluation: ev,
		}
		if !start.IsZero() && period.PeriodStart.Before(start) {
			period.PeriodStart = start.In(ps.Location())
			period.Partial = true
		}
		if !end.IsZero() && period.PeriodEnd.After(end) {
			period.PeriodEnd = end.In(ps.Location())
			period.Partial = true
		}
		out = append(out, period)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].PeriodStart.Before(out[j].PeriodStart)
	})
	return out
}
