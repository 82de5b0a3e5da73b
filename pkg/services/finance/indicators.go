package finance

import (
	"errors"
	"fmt"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

// ComputeIndicators derives the plan-level profitability metrics from the
// projection: discounted flows are the yearly self-financing capacities
// (net income plus depreciation) against the initial outlay of the
// financing plan.
func ComputeIndicators(plan *domain.Plan) (*domain.Indicators, error) {
	income, err := BuildIncomeStatement(plan)
	if err != nil {
		return nil, fmt.Errorf("indicators: %w", err)
	}
	financing, err := BuildFinancingPlan(plan)
	if err != nil {
		return nil, fmt.Errorf("indicators: %w", err)
	}

	outlay := financing.TotalNeed.InexactFloat64()

	flows := make([]float64, 0, plan.Assumptions.Years+1)
	flows = append(flows, -outlay)
	monthly := make([]float64, 0, plan.Assumptions.TotalMonths())
	for _, y := range income.Years {
		caf := y.NetIncome.Add(y.Depreciation).InexactFloat64()
		flows = append(flows, caf)
		for m := 0; m < 12; m++ {
			monthly = append(monthly, caf/12)
		}
	}

	ind := &domain.Indicators{
		PlanID:        plan.ID,
		NPV:           NPV(plan.Assumptions.DiscountRate, flows),
		PaybackMonths: PaybackMonths(outlay, monthly),
	}

	irr, err := IRR(flows)
	switch {
	case err == nil:
		ind.IRR = irr
		ind.IRRConverged = true
	case errors.Is(err, ErrIRRNoConvergence):
		// Leave the zero value; the caller reports "n/a".
	default:
		return nil, fmt.Errorf("indicators: %w", err)
	}

	if breakEven, err := breakEvenFirstYear(income); err == nil {
		ind.BreakEvenRevenue = breakEven
	}

	return ind, nil
}

// breakEvenFirstYear treats purchases as the only variable cost and
// everything else as fixed.
func breakEvenFirstYear(income *domain.IncomeStatement) (float64, error) {
	if len(income.Years) == 0 {
		return 0, ErrNoMargin
	}
	y := income.Years[0]

	revenue := y.Revenue.InexactFloat64()
	if revenue <= 0 {
		return 0, ErrNoMargin
	}

	variable := y.Purchases.InexactFloat64()
	fixed := y.ExternalCharges.
		Add(y.OtherCharges).
		Add(y.Payroll).
		Add(y.EmployerCharges).
		Add(y.Depreciation).
		Add(y.LoanInterest).
		InexactFloat64()

	return BreakEvenRevenue(fixed, 1-variable/revenue)
}
