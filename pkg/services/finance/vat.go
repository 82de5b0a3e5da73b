package finance

import (
	"github.com/shopspring/decimal"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

// BuildVATBudget nets collected against deductible VAT month by month.
// A negative month leaves a credit that offsets the following months; a
// positive month is due to the tax office and remitted one month later.
func BuildVATBudget(plan *domain.Plan) (*domain.VATBudget, error) {
	totalMonths := plan.Assumptions.TotalMonths()
	months := make([]domain.VATMonth, 0, totalMonths)

	credit := decimal.Zero
	previousDue := decimal.Zero

	for m := 1; m <= totalMonths; m++ {
		collected := MonthlyRevenueVAT(plan, m)
		deductible := MonthlyExpenseVAT(plan, m).Add(InvestmentVAT(plan, m))

		net := collected.Sub(deductible).Sub(credit)

		vm := domain.VATMonth{
			Month:      m,
			Collected:  collected,
			Deductible: deductible,
			Net:        net,
			Remitted:   previousDue,
		}

		if net.IsNegative() {
			credit = net.Neg()
			vm.Credit = credit
			previousDue = decimal.Zero
		} else {
			credit = decimal.Zero
			previousDue = net
		}

		months = append(months, vm)
	}

	return &domain.VATBudget{PlanID: plan.ID, Months: months}, nil
}

// vatDueAt returns the amount payable to the tax office at the end of the
// given month (declared but not yet remitted).
func vatDueAt(budget *domain.VATBudget, month int) decimal.Decimal {
	if month < 1 || month > len(budget.Months) {
		return decimal.Zero
	}
	net := budget.Months[month-1].Net
	if net.IsPositive() {
		return net
	}
	return decimal.Zero
}

// vatCreditAt returns the deductible credit outstanding at the end of the
// given month.
func vatCreditAt(budget *domain.VATBudget, month int) decimal.Decimal {
	if month < 1 || month > len(budget.Months) {
		return decimal.Zero
	}
	return budget.Months[month-1].Credit
}
