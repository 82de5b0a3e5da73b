package finance

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

// BuildIncomeStatement computes one result per projection year. Yearly
// figures are sums of the same rounded monthly series the cash flow uses,
// so the statements never drift apart.
func BuildIncomeStatement(plan *domain.Plan) (*domain.IncomeStatement, error) {
	deprSchedules, err := BuildDepreciationSchedules(plan)
	if err != nil {
		return nil, fmt.Errorf("income statement: %w", err)
	}
	loanSchedules, err := BuildLoanSchedules(plan)
	if err != nil {
		return nil, fmt.Errorf("income statement: %w", err)
	}

	taxRate := decimal.NewFromFloat(plan.Assumptions.CorporateTaxRate)
	years := make([]domain.YearResult, 0, plan.Assumptions.Years)

	for y := 1; y <= plan.Assumptions.Years; y++ {
		r := domain.YearResult{Year: y}

		for m := (y-1)*12 + 1; m <= y*12; m++ {
			r.Revenue = r.Revenue.Add(MonthlyRevenue(plan, m))
			r.Purchases = r.Purchases.Add(MonthlyExpenses(plan, m, domain.ExpensePurchases))
			r.ExternalCharges = r.ExternalCharges.Add(MonthlyExpenses(plan, m, domain.ExpenseExternal))
			r.OtherCharges = r.OtherCharges.Add(MonthlyExpenses(plan, m, domain.ExpenseOther))

			gross, employer := MonthlyPayroll(plan, m)
			r.Payroll = r.Payroll.Add(gross)
			r.EmployerCharges = r.EmployerCharges.Add(employer)
		}

		r.Depreciation = DepreciationForYear(deprSchedules, y)
		r.LoanInterest = interestForYear(loanSchedules, y)

		r.EBT = r.Revenue.
			Sub(r.Purchases).
			Sub(r.ExternalCharges).
			Sub(r.OtherCharges).
			Sub(r.Payroll).
			Sub(r.EmployerCharges).
			Sub(r.Depreciation).
			Sub(r.LoanInterest)

		if r.EBT.IsPositive() {
			r.CorporateTax = r.EBT.Mul(taxRate).Round(2)
		}
		r.NetIncome = r.EBT.Sub(r.CorporateTax)

		years = append(years, r)
	}

	return &domain.IncomeStatement{PlanID: plan.ID, Years: years}, nil
}

func interestForYear(schedules []domain.LoanSchedule, year int) decimal.Decimal {
	total := decimal.Zero
	for _, s := range schedules {
		for _, row := range s.Rows {
			if yearOf(row.Month) == year {
				total = total.Add(row.Interest)
			}
		}
	}
	return total
}
