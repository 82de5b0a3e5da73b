package finance

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

// BuildCashFlow projects monthly treasury over the whole horizon. Receipts
// are VAT-inclusive sales plus financing inflows; disbursements are
// VAT-inclusive charges, investments, payroll, loan payments, the VAT
// remittance and the corporate tax of each year paid in its twelfth month.
func BuildCashFlow(plan *domain.Plan) (*domain.CashFlowStatement, error) {
	income, err := BuildIncomeStatement(plan)
	if err != nil {
		return nil, fmt.Errorf("cash flow: %w", err)
	}
	vat, err := BuildVATBudget(plan)
	if err != nil {
		return nil, fmt.Errorf("cash flow: %w", err)
	}
	loans, err := BuildLoanSchedules(plan)
	if err != nil {
		return nil, fmt.Errorf("cash flow: %w", err)
	}

	totalMonths := plan.Assumptions.TotalMonths()
	months := make([]domain.MonthFlow, 0, totalMonths)
	closing := decimal.Zero

	for m := 1; m <= totalMonths; m++ {
		receipts := MonthlyRevenue(plan, m).Add(MonthlyRevenueVAT(plan, m))
		for _, loan := range plan.Loans {
			if loanMonth(loan) == m {
				receipts = receipts.Add(loan.Principal)
			}
		}
		for _, c := range plan.Contributions {
			if defaultMonth(c.Month) == m {
				receipts = receipts.Add(c.Amount)
			}
		}
		for _, s := range plan.Subsidies {
			if defaultMonth(s.Month) == m {
				receipts = receipts.Add(s.Amount)
			}
		}

		// Per-category sums so the rounding matches the income statement.
		disbursements := MonthlyExpenses(plan, m, domain.ExpensePurchases).
			Add(MonthlyExpenses(plan, m, domain.ExpenseExternal)).
			Add(MonthlyExpenses(plan, m, domain.ExpenseOther)).
			Add(MonthlyExpenseVAT(plan, m))
		for _, inv := range plan.Investments {
			if investmentMonth(inv) == m {
				disbursements = disbursements.Add(inv.Amount)
			}
		}
		disbursements = disbursements.Add(InvestmentVAT(plan, m))

		gross, employer := MonthlyPayroll(plan, m)
		disbursements = disbursements.Add(gross).Add(employer)
		disbursements = disbursements.Add(loanPaymentsAt(loans, m))
		disbursements = disbursements.Add(vat.Months[m-1].Remitted)

		if m%12 == 0 {
			disbursements = disbursements.Add(income.Years[yearOf(m)-1].CorporateTax)
		}

		net := receipts.Sub(disbursements)
		closing = closing.Add(net)

		months = append(months, domain.MonthFlow{
			Month:         m,
			Receipts:      receipts.Round(2),
			Disbursements: disbursements.Round(2),
			Net:           net.Round(2),
			Closing:       closing.Round(2),
		})
	}

	return &domain.CashFlowStatement{PlanID: plan.ID, Months: months}, nil
}

func loanMonth(loan domain.Loan) int {
	if loan.Month < 1 {
		return 1
	}
	return loan.Month
}

func defaultMonth(m int) int {
	if m < 1 {
		return 1
	}
	return m
}

func loanPaymentsAt(schedules []domain.LoanSchedule, month int) decimal.Decimal {
	total := decimal.Zero
	for _, s := range schedules {
		for _, row := range s.Rows {
			if row.Month == month {
				total = total.Add(row.Payment)
			}
		}
	}
	return total
}
