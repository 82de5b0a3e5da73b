package finance

import (
	"fmt"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

const maxProjectionYears = 10

// Validate checks the plan inputs and returns every issue found. It never
// stops at the first problem so callers can report a complete list.
func Validate(plan *domain.Plan) []domain.ValidationIssue {
	var issues []domain.ValidationIssue

	add := func(field, format string, args ...interface{}) {
		issues = append(issues, domain.ValidationIssue{
			Field:   field,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if plan.Name == "" {
		add("name", "plan name is required")
	}
	if plan.Assumptions.Years < 1 || plan.Assumptions.Years > maxProjectionYears {
		add("assumptions.years", "projection horizon must be between 1 and %d years, got %d", maxProjectionYears, plan.Assumptions.Years)
	}
	checkRate := func(field string, rate float64) {
		if rate < 0 || rate > 1 {
			add(field, "rate must be between 0 and 1, got %g", rate)
		}
	}
	checkRate("assumptions.corporate_tax_rate", plan.Assumptions.CorporateTaxRate)
	checkRate("assumptions.default_vat_rate", plan.Assumptions.DefaultVATRate)
	checkRate("assumptions.discount_rate", plan.Assumptions.DiscountRate)

	horizon := plan.Assumptions.TotalMonths()
	checkMonth := func(field string, month int) {
		if month > horizon {
			add(field, "month %d is beyond the %d-month horizon", month, horizon)
		}
	}

	for i, inv := range plan.Investments {
		field := fmt.Sprintf("investments[%d]", i)
		if inv.Amount.IsNegative() {
			add(field+".amount", "amount must not be negative, got %s", inv.Amount)
		}
		if inv.LifeYears <= 0 {
			add(field+".life_years", "life must be positive, got %d", inv.LifeYears)
		}
		checkRate(field+".vat_rate", inv.VATRate)
		checkMonth(field+".month", inv.Month)
	}

	for i, loan := range plan.Loans {
		field := fmt.Sprintf("loans[%d]", i)
		if loan.Principal.IsNegative() {
			add(field+".principal", "principal must not be negative, got %s", loan.Principal)
		}
		if loan.TermMonths <= 0 {
			add(field+".term_months", "term must be positive, got %d", loan.TermMonths)
		}
		if loan.AnnualRate < 0 {
			add(field+".annual_rate", "rate must not be negative, got %g", loan.AnnualRate)
		}
		checkMonth(field+".month", loan.Month)
	}

	for i, s := range plan.Subsidies {
		field := fmt.Sprintf("subsidies[%d]", i)
		if s.Amount.IsNegative() {
			add(field+".amount", "amount must not be negative, got %s", s.Amount)
		}
		checkMonth(field+".month", s.Month)
	}
	for i, c := range plan.Contributions {
		field := fmt.Sprintf("contributions[%d]", i)
		if c.Amount.IsNegative() {
			add(field+".amount", "amount must not be negative, got %s", c.Amount)
		}
		checkMonth(field+".month", c.Month)
	}

	for i, r := range plan.Revenues {
		field := fmt.Sprintf("revenues[%d]", i)
		if r.MonthlyAmount.IsNegative() {
			add(field+".monthly_amount", "amount must not be negative, got %s", r.MonthlyAmount)
		}
		checkRate(field+".vat_rate", r.VATRate)
	}
	for i, e := range plan.Expenses {
		field := fmt.Sprintf("expenses[%d]", i)
		if e.MonthlyAmount.IsNegative() {
			add(field+".monthly_amount", "amount must not be negative, got %s", e.MonthlyAmount)
		}
		checkRate(field+".vat_rate", e.VATRate)
		switch e.Category {
		case domain.ExpensePurchases, domain.ExpenseExternal, domain.ExpenseOther, "":
		default:
			add(field+".category", "unknown category %q", e.Category)
		}
	}

	for i, p := range plan.Payroll {
		field := fmt.Sprintf("payroll[%d]", i)
		if p.GrossMonthly.IsNegative() {
			add(field+".gross_monthly", "amount must not be negative, got %s", p.GrossMonthly)
		}
		if p.Headcount < 0 {
			add(field+".headcount", "headcount must not be negative, got %d", p.Headcount)
		}
		checkRate(field+".employer_rate", p.EmployerRate)
		checkMonth(field+".start_month", p.StartMonth)
	}

	return issues
}
