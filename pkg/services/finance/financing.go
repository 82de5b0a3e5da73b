package finance

import (
	"github.com/shopspring/decimal"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

// BuildFinancingPlan opposes the startup needs (investments plus a working
// capital allowance derived from first-year revenue) to the financing
// resources (capital, loans, subsidies).
func BuildFinancingPlan(plan *domain.Plan) (*domain.FinancingPlan, error) {
	fp := &domain.FinancingPlan{PlanID: plan.ID}

	for _, inv := range plan.Investments {
		fp.Needs = append(fp.Needs, domain.FinancingItem{Label: inv.Label, Amount: inv.Amount})
		fp.TotalNeed = fp.TotalNeed.Add(inv.Amount)
	}

	if days := plan.Assumptions.WorkingCapitalDays; days > 0 {
		firstYearRevenue := decimal.Zero
		for m := 1; m <= 12 && m <= plan.Assumptions.TotalMonths(); m++ {
			firstYearRevenue = firstYearRevenue.Add(MonthlyRevenue(plan, m))
		}
		wc := firstYearRevenue.
			Mul(decimal.NewFromInt(int64(days))).
			DivRound(decimal.NewFromInt(365), 2)
		fp.Needs = append(fp.Needs, domain.FinancingItem{Label: "Working capital", Amount: wc})
		fp.TotalNeed = fp.TotalNeed.Add(wc)
	}

	for _, c := range plan.Contributions {
		fp.Resources = append(fp.Resources, domain.FinancingItem{Label: c.Label, Amount: c.Amount})
		fp.TotalRes = fp.TotalRes.Add(c.Amount)
	}
	for _, l := range plan.Loans {
		fp.Resources = append(fp.Resources, domain.FinancingItem{Label: l.Label, Amount: l.Principal})
		fp.TotalRes = fp.TotalRes.Add(l.Principal)
	}
	for _, s := range plan.Subsidies {
		fp.Resources = append(fp.Resources, domain.FinancingItem{Label: s.Label, Amount: s.Amount})
		fp.TotalRes = fp.TotalRes.Add(s.Amount)
	}

	fp.Balance = fp.TotalRes.Sub(fp.TotalNeed)
	return fp, nil
}
