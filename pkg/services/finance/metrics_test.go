package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNPV(t *testing.T) {
	t.Run("success - discounts from t zero", func(t *testing.T) {
		flows := []float64{-1000, 500, 500, 500}
		assert.InDelta(t, 243.43, NPV(0.10, flows), 0.01)
	})

	t.Run("success - zero rate sums the flows", func(t *testing.T) {
		flows := []float64{-1000, 400, 700}
		assert.InDelta(t, 100, NPV(0, flows), 1e-9)
	})
}

func TestIRR(t *testing.T) {
	t.Run("success - single period", func(t *testing.T) {
		irr, err := IRR([]float64{-100, 110})
		require.NoError(t, err)
		assert.InDelta(t, 0.10, irr, 1e-4)
	})

	t.Run("success - npv at irr is zero", func(t *testing.T) {
		flows := []float64{-5000, 1500, 2000, 2500, 1000}
		irr, err := IRR(flows)
		require.NoError(t, err)
		assert.InDelta(t, 0, NPV(irr, flows), 0.01)
	})

	t.Run("error - all positive flows never converge", func(t *testing.T) {
		_, err := IRR([]float64{100, 100, 100})
		assert.ErrorIs(t, err, ErrIRRNoConvergence)
	})

	t.Run("error - too short series", func(t *testing.T) {
		_, err := IRR([]float64{-100})
		assert.ErrorIs(t, err, ErrIRRNoConvergence)
	})
}

func TestPaybackMonths(t *testing.T) {
	t.Run("success - recovers mid-series", func(t *testing.T) {
		assert.Equal(t, 3, PaybackMonths(100, []float64{50, 30, 30, 30}))
	})

	t.Run("success - nothing to recover", func(t *testing.T) {
		assert.Equal(t, 0, PaybackMonths(0, []float64{10}))
	})

	t.Run("success - never recovers", func(t *testing.T) {
		assert.Equal(t, -1, PaybackMonths(1000, []float64{10, 10}))
	})
}

func TestBreakEvenRevenue(t *testing.T) {
	t.Run("success - fixed over margin", func(t *testing.T) {
		r, err := BreakEvenRevenue(100, 0.4)
		require.NoError(t, err)
		assert.InDelta(t, 250, r, 1e-9)
	})

	t.Run("error - non-positive margin", func(t *testing.T) {
		_, err := BreakEvenRevenue(100, 0)
		assert.ErrorIs(t, err, ErrNoMargin)
	})
}
