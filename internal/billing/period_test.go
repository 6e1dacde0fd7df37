package billing_test

import (
	"testing"
	"time"

	"github.com/sangkips/salon-billing-api/internal/billing"
	"github.com/sangkips/salon-billing-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettleProfilePeriods(t *testing.T) {
	at := func(m time.Month, d int) time.Time { return time.Date(2024, m, d, 15, 0, 0, 0, time.UTC) }
	sales := []billing.Sale{
		sale(at(time.February, 3), line(alice.ID, enum.ItemKindService, 800)),
		sale(at(time.January, 5), line(alice.ID, enum.ItemKindService, 800)),
		sale(at(time.January, 20), line(alice.ID, enum.ItemKindService, 800)),
		sale(at(time.March, 1), line(bob.ID, enum.ItemKindService, 800)),
	}
	profile := targetProfile(true, percentTier(0, 1000, 5), percentTier(1000, 5000, 10))

	t.Run("monthly", func(t *testing.T) {
		got := billing.SettleProfilePeriods(alice.ID, profile, sales, time.Time{}, time.Time{}, time.UTC)

		require.Len(t, got, 2)
		assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), got[0].PeriodStart)
		assert.Equal(t, time.Date(2024, time.January, 31, 23, 59, 59, 999999999, time.UTC), got[0].PeriodEnd)
		// 1000 * 5% + 600 * 10%
		assert.Equal(t, 110.0, got[0].Commission)
		assert.Equal(t, 1600.0, got[0].Revenue)
		assert.Equal(t, 40.0, got[1].Commission)
		assert.False(t, got[0].Partial)
	})

	t.Run("daily", func(t *testing.T) {
		p := profile
		p.CalculationInterval = enum.CalculationIntervalDaily

		got := billing.SettleProfilePeriods(alice.ID, p, sales, time.Time{}, time.Time{}, time.UTC)

		require.Len(t, got, 3)
		for _, period := range got {
			assert.Equal(t, 40.0, period.Commission)
		}
		assert.True(t, got[0].PeriodStart.Before(got[1].PeriodStart))
	})
}

func TestSettleProfilePeriods_ClampsToRange(t *testing.T) {
	at := func(m time.Month, d int) time.Time { return time.Date(2024, m, d, 15, 0, 0, 0, time.UTC) }
	sales := []billing.Sale{
		sale(at(time.January, 5), line(alice.ID, enum.ItemKindService, 800)),
		sale(at(time.January, 20), line(alice.ID, enum.ItemKindService, 800)),
		sale(at(time.February, 3), line(alice.ID, enum.ItemKindService, 800)),
		sale(at(time.February, 25), line(alice.ID, enum.ItemKindService, 800)),
	}
	profile := targetProfile(true, percentTier(0, 1000, 5), percentTier(1000, 5000, 10))
	start := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.February, 10, 23, 59, 59, 0, time.UTC)

	got := billing.SettleProfilePeriods(alice.ID, profile, sales, start, end, time.UTC)

	require.Len(t, got, 2)
	assert.True(t, got[0].Partial)
	assert.Equal(t, start, got[0].PeriodStart)
	assert.Equal(t, time.Date(2024, time.January, 31, 23, 59, 59, 999999999, time.UTC), got[0].PeriodEnd)
	assert.Equal(t, 800.0, got[0].Revenue, "the sale before start is excluded")
	assert.Equal(t, 40.0, got[0].Commission)

	assert.True(t, got[1].Partial)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), got[1].PeriodStart)
	assert.Equal(t, end, got[1].PeriodEnd)
	assert.Equal(t, 800.0, got[1].Revenue, "the sale after end is excluded")
}

func TestSettleProfilePeriods_FullPeriodsInRange(t *testing.T) {
	sales := []billing.Sale{
		sale(time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC), line(alice.ID, enum.ItemKindService, 500)),
	}
	profile := targetProfile(true, percentTier(0, 1000, 5))
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 31, 23, 59, 59, 999999999, time.UTC)

	got := billing.SettleProfilePeriods(alice.ID, profile, sales, start, end, time.UTC)

	require.Len(t, got, 1)
	assert.False(t, got[0].Partial)
	assert.Equal(t, start, got[0].PeriodStart)
	assert.Equal(t, end, got[0].PeriodEnd)
}

func TestPeriodStart_UsesLocation(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	late := time.Date(2024, time.January, 31, 20, 0, 0, 0, time.UTC)

	got := billing.PeriodStart(late, enum.CalculationIntervalMonthly, ist)

	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, ist), got)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), billing.PeriodStart(late, enum.CalculationIntervalMonthly, nil))
}
