package finance

import (
	"errors"
	"math"
)

var (
	// ErrIRRNoConvergence is returned when the cash-flow series has no
	// rate of return in the searchable range.
	ErrIRRNoConvergence = errors.New("irr did not converge")

	// ErrNoMargin is returned when the contribution margin is not positive,
	// which makes a break-even point undefined.
	ErrNoMargin = errors.New("contribution margin must be positive")
)

const (
	irrLowerBound = -0.9999
	irrUpperBound = 10.0
	irrIterations = 200
	irrTolerance  = 1e-7
)

// NPV discounts a cash-flow series at the given rate. The first flow is
// taken at t=0, i.e. undiscounted.
func NPV(rate float64, flows []float64) float64 {
	npv := 0.0
	for t, flow := range flows {
		npv += flow / math.Pow(1+rate, float64(t))
	}
	return npv
}

// IRR finds the rate at which the series' NPV is zero, by bisection.
// The series needs at least one sign change to bracket a root.
func IRR(flows []float64) (float64, error) {
	if len(flows) < 2 {
		return 0, ErrIRRNoConvergence
	}

	lo, hi := irrLowerBound, irrUpperBound
	fLo, fHi := NPV(lo, flows), NPV(hi, flows)
	if fLo*fHi > 0 {
		return 0, ErrIRRNoConvergence
	}

	for i := 0; i < irrIterations; i++ {
		mid := (lo + hi) / 2
		fMid := NPV(mid, flows)
		if math.Abs(fMid) < irrTolerance {
			return mid, nil
		}
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}
	return (lo + hi) / 2, nil
}

// PaybackMonths returns the first 1-based month where the cumulative net
// cash flow recovers the initial outlay, or -1 when it never does.
func PaybackMonths(initialOutlay float64, monthlyNet []float64) int {
	cumulative := -initialOutlay
	if cumulative >= 0 {
		return 0
	}
	for i, net := range monthlyNet {
		cumulative += net
		if cumulative >= 0 {
			return i + 1
		}
	}
	return -1
}

// BreakEvenRevenue returns the revenue level covering all fixed charges,
// given the contribution margin ratio (1 - variable costs / revenue).
func BreakEvenRevenue(fixedCharges, marginRatio float64) (float64, error) {
	if marginRatio <= 0 {
		return 0, ErrNoMargin
	}
	return fixedCharges / marginRatio, nil
}
