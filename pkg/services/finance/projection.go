package finance

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

// yearOf maps a 1-based month index to its 1-based projection year.
func yearOf(month int) int {
	return (month-1)/12 + 1
}

func growthFactor(annualGrowth float64, month int) decimal.Decimal {
	if annualGrowth == 0 {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromFloat(math.Pow(1+annualGrowth, float64(yearOf(month)-1)))
}

// MonthlyRevenue returns the VAT-exclusive revenue booked in a month.
func MonthlyRevenue(plan *domain.Plan, month int) decimal.Decimal {
	total := decimal.Zero
	for _, line := range plan.Revenues {
		total = total.Add(line.MonthlyAmount.Mul(growthFactor(line.AnnualGrowth, month)))
	}
	return total.Round(2)
}

// MonthlyRevenueVAT returns the VAT collected on a month's revenue.
func MonthlyRevenueVAT(plan *domain.Plan, month int) decimal.Decimal {
	total := decimal.Zero
	for _, line := range plan.Revenues {
		rate := vatRate(line.VATRate, plan.Assumptions.DefaultVATRate)
		amount := line.MonthlyAmount.Mul(growthFactor(line.AnnualGrowth, month))
		total = total.Add(amount.Mul(decimal.NewFromFloat(rate)))
	}
	return total.Round(2)
}

// MonthlyExpenses returns the VAT-exclusive operating charges booked in a
// month, filtered by category. No categories means all of them.
func MonthlyExpenses(plan *domain.Plan, month int, categories ...domain.ExpenseCategory) decimal.Decimal {
	total := decimal.Zero
	for _, line := range plan.Expenses {
		if !matchesCategory(line.Category, categories) {
			continue
		}
		total = total.Add(line.MonthlyAmount.Mul(growthFactor(line.AnnualGrowth, month)))
	}
	return total.Round(2)
}

// MonthlyExpenseVAT returns the VAT deductible on a month's operating charges.
func MonthlyExpenseVAT(plan *domain.Plan, month int) decimal.Decimal {
	total := decimal.Zero
	for _, line := range plan.Expenses {
		rate := vatRate(line.VATRate, plan.Assumptions.DefaultVATRate)
		amount := line.MonthlyAmount.Mul(growthFactor(line.AnnualGrowth, month))
		total = total.Add(amount.Mul(decimal.NewFromFloat(rate)))
	}
	return total.Round(2)
}

// MonthlyPayroll returns the gross salaries and employer charges of a month.
func MonthlyPayroll(plan *domain.Plan, month int) (gross, employer decimal.Decimal) {
	gross, employer = decimal.Zero, decimal.Zero
	for _, pos := range plan.Payroll {
		start := pos.StartMonth
		if start < 1 {
			start = 1
		}
		if month < start {
			continue
		}
		headcount := decimal.NewFromInt(int64(pos.Headcount))
		g := pos.GrossMonthly.Mul(headcount)
		gross = gross.Add(g)
		employer = employer.Add(g.Mul(decimal.NewFromFloat(pos.EmployerRate)))
	}
	return gross.Round(2), employer.Round(2)
}

// InvestmentVAT returns the VAT deductible on investments acquired in a month.
func InvestmentVAT(plan *domain.Plan, month int) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range plan.Investments {
		if investmentMonth(inv) != month {
			continue
		}
		rate := vatRate(inv.VATRate, plan.Assumptions.DefaultVATRate)
		total = total.Add(inv.Amount.Mul(decimal.NewFromFloat(rate)))
	}
	return total.Round(2)
}

func investmentMonth(inv domain.Investment) int {
	if inv.Month < 1 {
		return 1
	}
	return inv.Month
}

func vatRate(lineRate, defaultRate float64) float64 {
	if lineRate > 0 {
		return lineRate
	}
	return defaultRate
}

func matchesCategory(cat domain.ExpenseCategory, filter []domain.ExpenseCategory) bool {
	if cat == "" {
		cat = domain.ExpenseOther
	}
	if len(filter) == 0 {
		return true
	}
	for _, f := range filter {
		if cat == f {
			return true
		}
	}
	return false
}
