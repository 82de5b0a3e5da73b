package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

func TestBuildDepreciationSchedule(t *testing.T) {
	t.Run("success - full-year straight line", func(t *testing.T) {
		inv := domain.Investment{Label: "Machine", Amount: decimal.NewFromInt(15000), Month: 1, LifeYears: 5}

		schedule, err := BuildDepreciationSchedule(inv)
		require.NoError(t, err)
		require.Len(t, schedule.Rows, 5)

		for _, row := range schedule.Rows {
			assert.Equal(t, "3000.00", row.Charge.StringFixed(2), "year %d", row.Year)
		}
		assert.True(t, schedule.Rows[4].BookValue.IsZero())
	})

	t.Run("success - proration adds a remainder year", func(t *testing.T) {
		inv := domain.Investment{Label: "Van", Amount: decimal.NewFromInt(12000), Month: 4, LifeYears: 3}

		schedule, err := BuildDepreciationSchedule(inv)
		require.NoError(t, err)
		require.Len(t, schedule.Rows, 4)

		// 9 of 12 months in service the first year.
		assert.Equal(t, "3000.00", schedule.Rows[0].Charge.StringFixed(2))
		assert.Equal(t, "4000.00", schedule.Rows[1].Charge.StringFixed(2))
		assert.Equal(t, "4000.00", schedule.Rows[2].Charge.StringFixed(2))
		assert.Equal(t, "1000.00", schedule.Rows[3].Charge.StringFixed(2))
		assert.True(t, schedule.Rows[3].BookValue.IsZero())
	})

	t.Run("success - charges sum to the cost", func(t *testing.T) {
		inv := domain.Investment{Label: "Laptop", Amount: decimal.NewFromFloat(2999.99), Month: 8, LifeYears: 3}

		schedule, err := BuildDepreciationSchedule(inv)
		require.NoError(t, err)

		total := decimal.Zero
		for _, row := range schedule.Rows {
			total = total.Add(row.Charge)
		}
		assert.True(t, total.Equal(inv.Amount), "total %s, want %s", total, inv.Amount)
	})

	t.Run("success - acquisition in a later projection year", func(t *testing.T) {
		inv := domain.Investment{Label: "Upgrade", Amount: decimal.NewFromInt(6000), Month: 14, LifeYears: 2}

		schedule, err := BuildDepreciationSchedule(inv)
		require.NoError(t, err)
		assert.Equal(t, 2, schedule.Rows[0].Year)
		// 11 of 12 months in service: 3000 * 11/12 = 2750.
		assert.Equal(t, "2750.00", schedule.Rows[0].Charge.StringFixed(2))
	})

	t.Run("error - non-positive life", func(t *testing.T) {
		inv := domain.Investment{Label: "Broken", Amount: decimal.NewFromInt(100), LifeYears: 0}
		_, err := BuildDepreciationSchedule(inv)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Broken")
	})
}

func TestDepreciationForYear(t *testing.T) {
	plan := testPlan()
	schedules, err := BuildDepreciationSchedules(plan)
	require.NoError(t, err)

	assert.Equal(t, "4000.00", DepreciationForYear(schedules, 1).StringFixed(2))
	assert.Equal(t, "4000.00", DepreciationForYear(schedules, 2).StringFixed(2))
	assert.True(t, DepreciationForYear(schedules, 9).IsZero())
}
