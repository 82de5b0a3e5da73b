package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

func TestBuildIncomeStatement(t *testing.T) {
	plan := testPlan()

	statement, err := BuildIncomeStatement(plan)
	require.NoError(t, err)
	require.Len(t, statement.Years, 2)

	y1 := statement.Years[0]

	t.Run("success - yearly aggregates", func(t *testing.T) {
		assert.Equal(t, "36000.00", y1.Revenue.StringFixed(2))
		assert.Equal(t, "6000.00", y1.Purchases.StringFixed(2))
		assert.Equal(t, "9600.00", y1.ExternalCharges.StringFixed(2))
		assert.Equal(t, "18000.00", y1.Payroll.StringFixed(2))
		assert.Equal(t, "7560.00", y1.EmployerCharges.StringFixed(2))
		assert.Equal(t, "4000.00", y1.Depreciation.StringFixed(2))
	})

	t.Run("success - ebt reconciles with its components", func(t *testing.T) {
		for _, y := range statement.Years {
			expected := y.Revenue.
				Sub(y.Purchases).
				Sub(y.ExternalCharges).
				Sub(y.OtherCharges).
				Sub(y.Payroll).
				Sub(y.EmployerCharges).
				Sub(y.Depreciation).
				Sub(y.LoanInterest)
			assert.True(t, y.EBT.Equal(expected), "year %d", y.Year)
			assert.True(t, y.NetIncome.Equal(y.EBT.Sub(y.CorporateTax)), "year %d", y.Year)
		}
	})

	t.Run("success - no tax on a loss", func(t *testing.T) {
		assert.True(t, y1.EBT.IsNegative())
		assert.True(t, y1.CorporateTax.IsZero())
	})

	t.Run("success - tax accrues on a profit", func(t *testing.T) {
		profit, err := BuildIncomeStatement(profitablePlan())
		require.NoError(t, err)

		y := profit.Years[0]
		assert.True(t, y.EBT.IsPositive())
		expectedTax := y.EBT.Mul(decimal.NewFromFloat(0.25)).Round(2)
		assert.True(t, y.CorporateTax.Equal(expectedTax), "tax %s, want %s", y.CorporateTax, expectedTax)
	})

	t.Run("success - growth compounds at year boundaries", func(t *testing.T) {
		profit, err := BuildIncomeStatement(profitablePlan())
		require.NoError(t, err)

		assert.Equal(t, "96000.00", profit.Years[0].Revenue.StringFixed(2))
		assert.Equal(t, "105600.00", profit.Years[1].Revenue.StringFixed(2))
	})
}

func TestBuildCashFlow(t *testing.T) {
	plan := testPlan()

	statement, err := BuildCashFlow(plan)
	require.NoError(t, err)
	require.Len(t, statement.Months, 24)

	t.Run("success - first month carries the financing inflows", func(t *testing.T) {
		m1 := statement.Months[0]
		// 3000 revenue + 600 VAT + 10000 loan + 5000 capital + 2000 subsidy.
		assert.Equal(t, "20600.00", m1.Receipts.StringFixed(2))
	})

	t.Run("success - closing is the running sum of nets", func(t *testing.T) {
		running := decimal.Zero
		for _, m := range statement.Months {
			running = running.Add(m.Net)
			assert.True(t, m.Closing.Equal(running), "month %d: closing %s, want %s", m.Month, m.Closing, running)
		}
	})

	t.Run("success - net is receipts minus disbursements", func(t *testing.T) {
		for _, m := range statement.Months {
			assert.True(t, m.Net.Equal(m.Receipts.Sub(m.Disbursements)), "month %d", m.Month)
		}
	})
}

func TestBuildVATBudget(t *testing.T) {
	plan := &domain.Plan{
		ID:   "vat-plan",
		Name: "VAT fixture",
		Assumptions: domain.Assumptions{
			Years:          2,
			DefaultVATRate: 0.20,
		},
		Investments: []domain.Investment{
			{Label: "Equipment", Amount: decimal.NewFromInt(12000), Month: 1, LifeYears: 3, VATRate: 0.20},
		},
		Revenues: []domain.RevenueLine{
			{Label: "Sales", MonthlyAmount: decimal.NewFromInt(1000), VATRate: 0.20},
		},
	}

	budget, err := BuildVATBudget(plan)
	require.NoError(t, err)
	require.Len(t, budget.Months, 24)

	t.Run("success - investment VAT creates a credit", func(t *testing.T) {
		m1 := budget.Months[0]
		assert.Equal(t, "200.00", m1.Collected.StringFixed(2))
		assert.Equal(t, "2400.00", m1.Deductible.StringFixed(2))
		assert.Equal(t, "2200.00", m1.Credit.StringFixed(2))
		assert.True(t, m1.Remitted.IsZero())
	})

	t.Run("success - credit burns down month by month", func(t *testing.T) {
		assert.Equal(t, "2000.00", budget.Months[1].Credit.StringFixed(2))
		assert.Equal(t, "200.00", budget.Months[10].Credit.StringFixed(2))
		assert.True(t, budget.Months[11].Credit.IsZero())
		assert.True(t, budget.Months[11].Net.IsZero())
	})

	t.Run("success - remittance lags the due month by one", func(t *testing.T) {
		m13, m14 := budget.Months[12], budget.Months[13]
		assert.Equal(t, "200.00", m13.Net.StringFixed(2))
		assert.True(t, m13.Remitted.IsZero())
		assert.Equal(t, "200.00", m14.Remitted.StringFixed(2))
	})
}

func TestBuildBalanceSheet(t *testing.T) {
	t.Run("success - assets equal liabilities", func(t *testing.T) {
		for name, plan := range map[string]*domain.Plan{
			"baseline":   testPlan(),
			"profitable": profitablePlan(),
		} {
			statement, err := BuildBalanceSheet(plan)
			require.NoError(t, err, name)

			for _, y := range statement.Years {
				assert.True(t, y.TotalAssets.Equal(y.TotalLiabilities),
					"%s year %d: assets %s, liabilities %s", name, y.Year, y.TotalAssets, y.TotalLiabilities)
			}
		}
	})

	t.Run("success - fixed assets depreciate", func(t *testing.T) {
		statement, err := BuildBalanceSheet(testPlan())
		require.NoError(t, err)

		y1, y2 := statement.Years[0], statement.Years[1]
		assert.Equal(t, "12000.00", y1.GrossFixedAssets.StringFixed(2))
		assert.Equal(t, "8000.00", y1.NetFixedAssets.StringFixed(2))
		assert.Equal(t, "4000.00", y2.NetFixedAssets.StringFixed(2))
	})

	t.Run("success - loan balance shrinks", func(t *testing.T) {
		statement, err := BuildBalanceSheet(testPlan())
		require.NoError(t, err)

		y1, y2 := statement.Years[0], statement.Years[1]
		assert.True(t, y1.LoanBalance.IsPositive())
		assert.True(t, y1.LoanBalance.LessThan(decimal.NewFromInt(10000)))
		assert.True(t, y2.LoanBalance.IsZero(), "balance %s", y2.LoanBalance)
	})
}
