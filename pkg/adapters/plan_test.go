package adapters

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venture-tools/plan-atlas/pkg/models/api"
	"github.com/venture-tools/plan-atlas/pkg/models/domain"
	"github.com/venture-tools/plan-atlas/pkg/models/store"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{name: "month layout", input: "2026-03", expected: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{name: "full date snaps to first of month", input: "2026-03-17", expected: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{name: "padded input", input: "  2026-03  ", expected: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{name: "empty is zero", input: "", expected: time.Time{}},
		{name: "garbage is zero", input: "next spring", expected: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, parseMonth(tt.input).Equal(tt.expected))
		})
	}
}

func TestMapExpenseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.ExpenseCategory
	}{
		{input: "purchases", expected: domain.ExpensePurchases},
		{input: " External ", expected: domain.ExpenseExternal},
		{input: "other", expected: domain.ExpenseOther},
		{input: "rent", expected: domain.ExpenseOther},
		{input: "", expected: domain.ExpenseOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, mapExpenseCategory(tt.input), "input %q", tt.input)
	}
}

func TestMapPlanApiToDomain(t *testing.T) {
	created := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	apiPlan := api.Plan{
		ID:   "plan-1",
		Name: "Bakery expansion",
		Company: api.Company{
			Name:      "Sunrise Bakery",
			LegalForm: "LLC",
		},
		Assumptions: api.Assumptions{
			Start:              "2026-04",
			Years:              3,
			CorporateTaxRate:   0.25,
			DefaultVATRate:     0.20,
			DiscountRate:       0.08,
			WorkingCapitalDays: 30,
		},
		Investments: []api.Investment{
			{Label: "Oven", Amount: api.NewAmount(decimal.NewFromInt(12000)), Month: 1, LifeYears: 5, VATRate: 0.20},
		},
		Loans: []api.Loan{
			{Label: "Bank loan", Principal: api.NewAmount(decimal.NewFromInt(50000)), AnnualRate: 0.045, TermMonths: 60, Month: 1},
		},
		Revenues: []api.RevenueLine{
			{Label: "Counter sales", MonthlyAmount: api.NewAmount(decimal.NewFromInt(8000)), AnnualGrowth: 0.05, VATRate: 0.055},
		},
		Expenses: []api.ExpenseLine{
			{Label: "Flour", Category: "Purchases", MonthlyAmount: api.NewAmount(decimal.NewFromInt(2000))},
			{Label: "Misc", Category: "whatever", MonthlyAmount: api.NewAmount(decimal.NewFromInt(300))},
		},
		Payroll: []api.PayrollPosition{
			{Label: "Baker", GrossMonthly: api.NewAmount(decimal.NewFromInt(2600)), Headcount: 2, EmployerRate: 0.42, StartMonth: 1},
		},
		CreatedAt: &created,
	}

	plan := MapPlanApiToDomain(apiPlan)

	assert.Equal(t, "plan-1", plan.ID)
	assert.Equal(t, "Sunrise Bakery", plan.Company.Name)
	assert.True(t, plan.Assumptions.Start.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0.25, plan.Assumptions.CorporateTaxRate)

	require.Len(t, plan.Investments, 1)
	assert.True(t, plan.Investments[0].Amount.Equal(decimal.NewFromInt(12000)))

	require.Len(t, plan.Expenses, 2)
	assert.Equal(t, domain.ExpensePurchases, plan.Expenses[0].Category)
	assert.Equal(t, domain.ExpenseOther, plan.Expenses[1].Category, "unknown categories fold into other")

	require.Len(t, plan.Payroll, 1)
	assert.Equal(t, 2, plan.Payroll[0].Headcount)
	assert.Equal(t, created, plan.CreatedAt)
}

func TestMapPlanRoundTrip(t *testing.T) {
	apiPlan := api.Plan{
		Name:    "Studio",
		Company: api.Company{Name: "Atelier Nord"},
		Assumptions: api.Assumptions{
			Start: "2026-09",
			Years: 5,
		},
		Subsidies: []api.Subsidy{
			{Label: "Regional grant", Amount: api.NewAmount(decimal.NewFromInt(15000)), Month: 3},
		},
		Contributions: []api.Contribution{
			{Label: "Founder equity", Amount: api.NewAmount(decimal.NewFromInt(20000)), Month: 1},
		},
		Expenses: []api.ExpenseLine{
			{Label: "Rent", Category: "external", MonthlyAmount: api.NewAmount(decimal.NewFromInt(1200))},
		},
	}

	back := MapPlanDomainToApi(MapPlanApiToDomain(apiPlan))

	assert.Equal(t, "2026-09", back.Assumptions.Start)
	assert.Equal(t, 5, back.Assumptions.Years)
	require.Len(t, back.Subsidies, 1)
	assert.Equal(t, "Regional grant", back.Subsidies[0].Label)
	require.Len(t, back.Contributions, 1)
	assert.True(t, back.Contributions[0].Amount.Equal(decimal.NewFromInt(20000)))
	require.Len(t, back.Expenses, 1)
	assert.Equal(t, "external", back.Expenses[0].Category)
	assert.Nil(t, back.CreatedAt, "zero timestamps stay omitted")
}

func TestMapPlanStoreRoundTrip(t *testing.T) {
	plan := domain.Plan{
		ID:      "plan-9",
		Name:    "Food truck",
		Company: domain.Company{Name: "Rolling Thunder"},
		Assumptions: domain.Assumptions{
			Start: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			Years: 2,
		},
		Revenues: []domain.RevenueLine{
			{Label: "Lunch service", MonthlyAmount: decimal.NewFromInt(6500), AnnualGrowth: 0.1, VATRate: 0.1},
		},
		CreatedAt: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 3, 10, 0, 0, 0, time.UTC),
	}

	record, err := MapPlanDomainToStore(plan)
	require.NoError(t, err)
	assert.Equal(t, "plan-9", record.ID)
	assert.Equal(t, "Rolling Thunder", record.Company)
	assert.NotEmpty(t, record.Payload)

	back, err := MapPlanStoreToDomain(record)
	require.NoError(t, err)
	assert.Equal(t, plan.ID, back.ID)
	assert.True(t, plan.Assumptions.Start.Equal(back.Assumptions.Start))
	require.Len(t, back.Revenues, 1)
	assert.True(t, back.Revenues[0].MonthlyAmount.Equal(decimal.NewFromInt(6500)))
	assert.True(t, plan.CreatedAt.Equal(back.CreatedAt))
}

func TestMapPlanStoreToDomain_BadPayload(t *testing.T) {
	_, err := MapPlanStoreToDomain(store.PlanRecord{ID: "plan-1", Payload: []byte("not json")})
	assert.ErrorContains(t, err, "decode plan payload")
}

func TestMapValidationIssuesDomainToApi(t *testing.T) {
	t.Run("success - no issues means valid", func(t *testing.T) {
		result := MapValidationIssuesDomainToApi(nil)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Issues)
	})

	t.Run("success - issues are carried over", func(t *testing.T) {
		result := MapValidationIssuesDomainToApi([]domain.ValidationIssue{
			{Field: "assumptions.years", Message: "must be between 1 and 10"},
		})
		assert.False(t, result.Valid)
		require.Len(t, result.Issues, 1)
		assert.Equal(t, "assumptions.years", result.Issues[0].Field)
	})
}
