package plan

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

func TestScenarioRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	plan := DefaultPlan()

	require.NoError(t, WriteScenario(path, plan))

	loaded, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, plan.Name, loaded.Name)
	assert.Equal(t, plan.Company.Name, loaded.Company.Name)
	assert.True(t, plan.Assumptions.Start.Equal(loaded.Assumptions.Start))
	assert.Equal(t, plan.Assumptions.Years, loaded.Assumptions.Years)

	require.Len(t, loaded.Investments, 2)
	assert.True(t, plan.Investments[0].Amount.Equal(loaded.Investments[0].Amount))
	require.Len(t, loaded.Loans, 1)
	assert.Equal(t, 36, loaded.Loans[0].TermMonths)
	require.Len(t, loaded.Contributions, 1, "capital entries map to contributions")
	require.Len(t, loaded.Expenses, 5)
	assert.Equal(t, domain.ExpensePurchases, loaded.Expenses[0].Category)
	require.Len(t, loaded.Payroll, 2)
	assert.Equal(t, 13, loaded.Payroll[1].StartMonth)
}

func TestLoadScenario_HandEditedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	content := `
name: Corner cafe
company: Bean There
assumptions:
  start: "2026-05"
  years: 2
  corporate_tax_rate: 0.25
  default_vat_rate: 0.10
revenues:
  - label: Coffee sales
    monthly_amount: 5400
    annual_growth: 0.04
    vat_rate: 0.10
expenses:
  - label: Beans
    category: purchases
    monthly_amount: 1100
  - label: Something odd
    category: utilities
    monthly_amount: 90
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	loaded, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "Corner cafe", loaded.Name)
	assert.True(t, loaded.Assumptions.Start.Equal(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)))
	require.Len(t, loaded.Revenues, 1)
	assert.Equal(t, "5400", loaded.Revenues[0].MonthlyAmount.String())
	require.Len(t, loaded.Expenses, 2)
	assert.Equal(t, domain.ExpensePurchases, loaded.Expenses[0].Category)
	assert.Equal(t, domain.ExpenseOther, loaded.Expenses[1].Category, "unknown categories fold into other")
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read scenario file")
}

func TestWriteScenario_BadPath(t *testing.T) {
	err := WriteScenario(filepath.Join(t.TempDir(), "missing", "scenario.yaml"), DefaultPlan())
	assert.ErrorContains(t, err, "write scenario file")
}
