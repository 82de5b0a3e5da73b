package plan

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

// DefaultPlan returns a worked three-year example: a small consulting
// company with one loan, a starter team and steady recurring revenue.
// It seeds new sessions so every screen renders something meaningful
// before the first real input.
func DefaultPlan() domain.Plan {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)

	return domain.Plan{
		Name: "Example consulting company",
		Company: domain.Company{
			Name:      "Atlas Conseil",
			LegalForm: "SASU",
			Activity:  "IT consulting",
		},
		Assumptions: domain.Assumptions{
			Start:              start,
			Years:              3,
			CorporateTaxRate:   0.25,
			DefaultVATRate:     0.20,
			DiscountRate:       0.08,
			WorkingCapitalDays: 30,
		},
		Investments: []domain.Investment{
			{Label: "Workstations and laptops", Amount: decimal.NewFromInt(6000), Month: 1, LifeYears: 3, VATRate: 0.20},
			{Label: "Office fit-out", Amount: decimal.NewFromInt(9000), Month: 1, LifeYears: 5, VATRate: 0.20},
		},
		Loans: []domain.Loan{
			{Label: "Startup loan", Principal: decimal.NewFromInt(15000), AnnualRate: 0.045, TermMonths: 36, Month: 1},
		},
		Subsidies: []domain.Subsidy{
			{Label: "Regional innovation grant", Amount: decimal.NewFromInt(3000), Month: 2},
		},
		Contributions: []domain.Contribution{
			{Label: "Founder capital", Amount: decimal.NewFromInt(10000), Month: 1},
		},
		Revenues: []domain.RevenueLine{
			{Label: "Consulting engagements", MonthlyAmount: decimal.NewFromInt(6500), AnnualGrowth: 0.08, VATRate: 0.20},
			{Label: "Support contracts", MonthlyAmount: decimal.NewFromInt(1200), AnnualGrowth: 0.05, VATRate: 0.20},
		},
		Expenses: []domain.ExpenseLine{
			{Label: "Subcontracting", Category: domain.ExpensePurchases, MonthlyAmount: decimal.NewFromInt(800), VATRate: 0.20},
			{Label: "Office rent", Category: domain.ExpenseExternal, MonthlyAmount: decimal.NewFromInt(900), VATRate: 0.20},
			{Label: "Insurance", Category: domain.ExpenseExternal, MonthlyAmount: decimal.NewFromInt(150), VATRate: 0.20},
			{Label: "Marketing", Category: domain.ExpenseExternal, MonthlyAmount: decimal.NewFromInt(350), AnnualGrowth: 0.05, VATRate: 0.20},
			{Label: "Miscellaneous", Category: domain.ExpenseOther, MonthlyAmount: decimal.NewFromInt(200), VATRate: 0.20},
		},
		Payroll: []domain.PayrollPosition{
			{Label: "Founder", GrossMonthly: decimal.NewFromInt(2800), Headcount: 1, EmployerRate: 0.42, StartMonth: 1},
			{Label: "Consultant", GrossMonthly: decimal.NewFromInt(2400), Headcount: 1, EmployerRate: 0.42, StartMonth: 13},
		},
	}
}
