package adapters

import (
	"strings"
	"time"

	"github.com/venture-tools/plan-atlas/pkg/models/api"
	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

// monthLayout is the wire format of the projection start month.
const monthLayout = "2006-01"

// parseMonth accepts "2006-01" or a full date, returning the zero time
// when the input does not parse. Callers default zero starts.
func parseMonth(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(monthLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Time{}
}

// mapExpenseCategory folds unknown categories into "other" so every
// expense line lands in exactly one statement bucket.
func mapExpenseCategory(raw string) domain.ExpenseCategory {
	switch domain.ExpenseCategory(strings.ToLower(strings.TrimSpace(raw))) {
	case domain.ExpensePurchases:
		return domain.ExpensePurchases
	case domain.ExpenseExternal:
		return domain.ExpenseExternal
	default:
		return domain.ExpenseOther
	}
}

func MapPlanApiToDomain(p api.Plan) domain.Plan {
	plan := domain.Plan{
		ID:   p.ID,
		Name: p.Name,
		Company: domain.Company{
			Name:      p.Company.Name,
			LegalForm: p.Company.LegalForm,
			Activity:  p.Company.Activity,
			Founded:   p.Company.Founded,
			Address:   p.Company.Address,
			Contact:   p.Company.Contact,
		},
		Assumptions: domain.Assumptions{
			Start:              parseMonth(p.Assumptions.Start),
			Years:              p.Assumptions.Years,
			CorporateTaxRate:   float64(p.Assumptions.CorporateTaxRate),
			DefaultVATRate:     float64(p.Assumptions.DefaultVATRate),
			DiscountRate:       float64(p.Assumptions.DiscountRate),
			WorkingCapitalDays: p.Assumptions.WorkingCapitalDays,
		},
	}

	for _, inv := range p.Investments {
		plan.Investments = append(plan.Investments, domain.Investment{
			Label:     inv.Label,
			Amount:    inv.Amount.Decimal,
			Month:     inv.Month,
			LifeYears: inv.LifeYears,
			VATRate:   float64(inv.VATRate),
		})
	}
	for _, loan := range p.Loans {
		plan.Loans = append(plan.Loans, domain.Loan{
			Label:      loan.Label,
			Principal:  loan.Principal.Decimal,
			AnnualRate: float64(loan.AnnualRate),
			TermMonths: loan.TermMonths,
			Month:      loan.Month,
		})
	}
	for _, sub := range p.Subsidies {
		plan.Subsidies = append(plan.Subsidies, domain.Subsidy{
			Label:  sub.Label,
			Amount: sub.Amount.Decimal,
			Month:  sub.Month,
		})
	}
	for _, con := range p.Contributions {
		plan.Contributions = append(plan.Contributions, domain.Contribution{
			Label:  con.Label,
			Amount: con.Amount.Decimal,
			Month:  con.Month,
		})
	}
	for _, rev := range p.Revenues {
		plan.Revenues = append(plan.Revenues, domain.RevenueLine{
			Label:         rev.Label,
			MonthlyAmount: rev.MonthlyAmount.Decimal,
			AnnualGrowth:  float64(rev.AnnualGrowth),
			VATRate:       float64(rev.VATRate),
		})
	}
	for _, exp := range p.Expenses {
		plan.Expenses = append(plan.Expenses, domain.ExpenseLine{
			Label:         exp.Label,
			Category:      mapExpenseCategory(exp.Category),
			MonthlyAmount: exp.MonthlyAmount.Decimal,
			AnnualGrowth:  float64(exp.AnnualGrowth),
			VATRate:       float64(exp.VATRate),
		})
	}
	for _, pos := range p.Payroll {
		plan.Payroll = append(plan.Payroll, domain.PayrollPosition{
			Label:        pos.Label,
			GrossMonthly: pos.GrossMonthly.Decimal,
			Headcount:    pos.Headcount,
			EmployerRate: float64(pos.EmployerRate),
			StartMonth:   pos.StartMonth,
		})
	}

	if p.CreatedAt != nil {
		plan.CreatedAt = *p.CreatedAt
	}
	if p.UpdatedAt != nil {
		plan.UpdatedAt = *p.UpdatedAt
	}
	return plan
}

func MapPlanDomainToApi(plan domain.Plan) api.Plan {
	start := ""
	if !plan.Assumptions.Start.IsZero() {
		start = plan.Assumptions.Start.Format(monthLayout)
	}

	p := api.Plan{
		ID:   plan.ID,
		Name: plan.Name,
		Company: api.Company{
			Name:      plan.Company.Name,
			LegalForm: plan.Company.LegalForm,
			Activity:  plan.Company.Activity,
			Founded:   plan.Company.Founded,
			Address:   plan.Company.Address,
			Contact:   plan.Company.Contact,
		},
		Assumptions: api.Assumptions{
			Start:              start,
			Years:              plan.Assumptions.Years,
			CorporateTaxRate:   api.Rate(plan.Assumptions.CorporateTaxRate),
			DefaultVATRate:     api.Rate(plan.Assumptions.DefaultVATRate),
			DiscountRate:       api.Rate(plan.Assumptions.DiscountRate),
			WorkingCapitalDays: plan.Assumptions.WorkingCapitalDays,
		},
	}

	for _, inv := range plan.Investments {
		p.Investments = append(p.Investments, api.Investment{
			Label:     inv.Label,
			Amount:    api.NewAmount(inv.Amount),
			Month:     inv.Month,
			LifeYears: inv.LifeYears,
			VATRate:   api.Rate(inv.VATRate),
		})
	}
	for _, loan := range plan.Loans {
		p.Loans = append(p.Loans, api.Loan{
			Label:      loan.Label,
			Principal:  api.NewAmount(loan.Principal),
			AnnualRate: api.Rate(loan.AnnualRate),
			TermMonths: loan.TermMonths,
			Month:      loan.Month,
		})
	}
	for _, sub := range plan.Subsidies {
		p.Subsidies = append(p.Subsidies, api.Subsidy{
			Label:  sub.Label,
			Amount: api.NewAmount(sub.Amount),
			Month:  sub.Month,
		})
	}
	for _, con := range plan.Contributions {
		p.Contributions = append(p.Contributions, api.Contribution{
			Label:  con.Label,
			Amount: api.NewAmount(con.Amount),
			Month:  con.Month,
		})
	}
	for _, rev := range plan.Revenues {
		p.Revenues = append(p.Revenues, api.RevenueLine{
			Label:         rev.Label,
			MonthlyAmount: api.NewAmount(rev.MonthlyAmount),
			AnnualGrowth:  api.Rate(rev.AnnualGrowth),
			VATRate:       api.Rate(rev.VATRate),
		})
	}
	for _, exp := range plan.Expenses {
		p.Expenses = append(p.Expenses, api.ExpenseLine{
			Label:         exp.Label,
			Category:      string(exp.Category),
			MonthlyAmount: api.NewAmount(exp.MonthlyAmount),
			AnnualGrowth:  api.Rate(exp.AnnualGrowth),
			VATRate:       api.Rate(exp.VATRate),
		})
	}
	for _, pos := range plan.Payroll {
		p.Payroll = append(p.Payroll, api.PayrollPosition{
			Label:        pos.Label,
			GrossMonthly: api.NewAmount(pos.GrossMonthly),
			Headcount:    pos.Headcount,
			EmployerRate: api.Rate(pos.EmployerRate),
			StartMonth:   pos.StartMonth,
		})
	}

	if !plan.CreatedAt.IsZero() {
		created := plan.CreatedAt
		p.CreatedAt = &created
	}
	if !plan.UpdatedAt.IsZero() {
		updated := plan.UpdatedAt
		p.UpdatedAt = &updated
	}
	return p
}

func MapValidationIssuesDomainToApi(issues []domain.ValidationIssue) api.ValidationResult {
	result := api.ValidationResult{Valid: len(issues) == 0}
	for _, issue := range issues {
		result.Issues = append(result.Issues, api.ValidationIssue{
			Field:   issue.Field,
			Message: issue.Message,
		})
	}
	return result
}
