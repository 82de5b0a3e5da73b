package finance

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

// BuildBalanceSheet derives a year-end balance sheet per projection year
// from the other statements. Assets and liabilities balance by construction:
// every flow lands either in cash, in an asset or in a liability bucket.
func BuildBalanceSheet(plan *domain.Plan) (*domain.BalanceSheet, error) {
	income, err := BuildIncomeStatement(plan)
	if err != nil {
		return nil, fmt.Errorf("balance sheet: %w", err)
	}
	cashflow, err := BuildCashFlow(plan)
	if err != nil {
		return nil, fmt.Errorf("balance sheet: %w", err)
	}
	vat, err := BuildVATBudget(plan)
	if err != nil {
		return nil, fmt.Errorf("balance sheet: %w", err)
	}
	deprSchedules, err := BuildDepreciationSchedules(plan)
	if err != nil {
		return nil, fmt.Errorf("balance sheet: %w", err)
	}
	loanSchedules, err := BuildLoanSchedules(plan)
	if err != nil {
		return nil, fmt.Errorf("balance sheet: %w", err)
	}

	years := make([]domain.BalanceYear, 0, plan.Assumptions.Years)
	retained := decimal.Zero

	for y := 1; y <= plan.Assumptions.Years; y++ {
		lastMonth := y * 12
		b := domain.BalanceYear{Year: y}

		for _, inv := range plan.Investments {
			if investmentMonth(inv) <= lastMonth {
				b.GrossFixedAssets = b.GrossFixedAssets.Add(inv.Amount)
			}
		}
		for yy := 1; yy <= y; yy++ {
			b.AccumulatedDepr = b.AccumulatedDepr.Add(DepreciationForYear(deprSchedules, yy))
		}
		b.NetFixedAssets = b.GrossFixedAssets.Sub(b.AccumulatedDepr)

		b.VATCredit = vatCreditAt(vat, lastMonth)
		b.Cash = cashflow.Months[lastMonth-1].Closing
		b.TotalAssets = b.NetFixedAssets.Add(b.VATCredit).Add(b.Cash)

		for _, c := range plan.Contributions {
			if defaultMonth(c.Month) <= lastMonth {
				b.Capital = b.Capital.Add(c.Amount)
			}
		}
		for _, s := range plan.Subsidies {
			if defaultMonth(s.Month) <= lastMonth {
				b.Subsidies = b.Subsidies.Add(s.Amount)
			}
		}

		retained = retained.Add(income.Years[y-1].NetIncome)
		b.RetainedEarnings = retained
		b.LoanBalance = loanBalanceAt(loanSchedules, lastMonth)
		b.VATPayable = vatDueAt(vat, lastMonth)

		b.TotalLiabilities = b.Capital.
			Add(b.Subsidies).
			Add(b.RetainedEarnings).
			Add(b.LoanBalance).
			Add(b.VATPayable)

		years = append(years, b)
	}

	return &domain.BalanceSheet{PlanID: plan.ID, Years: years}, nil
}

// loanBalanceAt returns the principal still owed across all loans at the
// end of the given month. A loan drawn but not yet due counts in full.
func loanBalanceAt(schedules []domain.LoanSchedule, month int) decimal.Decimal {
	total := decimal.Zero
	for _, s := range schedules {
		drawn := loanMonth(s.Loan)
		if drawn > month {
			continue
		}
		balance := s.Loan.Principal
		for _, row := range s.Rows {
			if row.Month <= month {
				balance = row.Balance
			}
		}
		total = total.Add(balance)
	}
	return total
}
