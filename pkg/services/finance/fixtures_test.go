package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

func testPlan() *domain.Plan {
	return &domain.Plan{
		ID:   "plan-1",
		Name: "Test Venture",
		Assumptions: domain.Assumptions{
			Start:              time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			Years:              2,
			CorporateTaxRate:   0.25,
			DefaultVATRate:     0.20,
			DiscountRate:       0.08,
			WorkingCapitalDays: 30,
		},
		Investments: []domain.Investment{
			{Label: "Equipment", Amount: decimal.NewFromInt(12000), Month: 1, LifeYears: 3, VATRate: 0.20},
		},
		Loans: []domain.Loan{
			{Label: "Bank loan", Principal: decimal.NewFromInt(10000), AnnualRate: 0.06, TermMonths: 24, Month: 1},
		},
		Subsidies: []domain.Subsidy{
			{Label: "Startup grant", Amount: decimal.NewFromInt(2000), Month: 1},
		},
		Contributions: []domain.Contribution{
			{Label: "Founder capital", Amount: decimal.NewFromInt(5000), Month: 1},
		},
		Revenues: []domain.RevenueLine{
			{Label: "Subscriptions", MonthlyAmount: decimal.NewFromInt(3000), VATRate: 0.20},
		},
		Expenses: []domain.ExpenseLine{
			{Label: "Stock", Category: domain.ExpensePurchases, MonthlyAmount: decimal.NewFromInt(500), VATRate: 0.20},
			{Label: "Rent", Category: domain.ExpenseExternal, MonthlyAmount: decimal.NewFromInt(800), VATRate: 0.20},
		},
		Payroll: []domain.PayrollPosition{
			{Label: "Engineer", GrossMonthly: decimal.NewFromInt(1500), Headcount: 1, EmployerRate: 0.42, StartMonth: 1},
		},
	}
}

// profitablePlan is a revenue-heavy variant that turns a profit in year 1,
// so tax, IRR and payback paths all get exercised.
func profitablePlan() *domain.Plan {
	plan := testPlan()
	plan.Revenues = []domain.RevenueLine{
		{Label: "Subscriptions", MonthlyAmount: decimal.NewFromInt(8000), AnnualGrowth: 0.10, VATRate: 0.20},
	}
	return plan
}
