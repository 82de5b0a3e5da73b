package finance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

func TestNewController(t *testing.T) {
	t.Run("success - default controller supports every statement", func(t *testing.T) {
		c, err := NewDefaultController()
		require.NoError(t, err)

		assert.ElementsMatch(t,
			[]string{StatementIncome, StatementBalance, StatementCashFlow, StatementVAT, StatementFinancing},
			c.GetSupportedStatements())
	})

	t.Run("error - duplicate builder", func(t *testing.T) {
		_, err := NewController(IncomeBuilder{}, IncomeBuilder{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("error - no builders", func(t *testing.T) {
		_, err := NewController()
		require.Error(t, err)
	})
}

func TestGenerateStatement(t *testing.T) {
	c, err := NewDefaultController()
	require.NoError(t, err)

	ctx := context.Background()
	plan := testPlan()

	t.Run("success - income report has a section per year", func(t *testing.T) {
		report, err := c.GenerateStatement(ctx, plan, StatementIncome)
		require.NoError(t, err)

		assert.Len(t, report.Sections, plan.Assumptions.Years)
		assert.Equal(t, "EUR", report.Currency)
		assert.Equal(t, 24, report.Period.Duration)
	})

	t.Run("success - cashflow report carries monthly rows", func(t *testing.T) {
		report, err := c.GenerateStatement(ctx, plan, StatementCashFlow)
		require.NoError(t, err)

		require.Len(t, report.Sections, 2)
		assert.Len(t, report.Sections[0].Details, 12)
		assert.Contains(t, report.Sections[0].Summary, "lowest_balance")
	})

	t.Run("success - financing report opposes needs and resources", func(t *testing.T) {
		report, err := c.GenerateStatement(ctx, plan, StatementFinancing)
		require.NoError(t, err)

		require.Len(t, report.Sections, 2)
		assert.Equal(t, "Needs", report.Sections[0].Title)
		assert.Equal(t, "Resources", report.Sections[1].Title)
	})

	t.Run("error - unsupported statement type", func(t *testing.T) {
		_, err := c.GenerateStatement(ctx, plan, "quarterly")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "unsupported statement type")
	})
}
