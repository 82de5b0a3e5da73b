package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

func TestAnnuityPayment(t *testing.T) {
	t.Run("success - standard annuity", func(t *testing.T) {
		payment, err := AnnuityPayment(decimal.NewFromInt(10000), 0.06, 12)
		require.NoError(t, err)
		assert.Equal(t, "860.66", payment.StringFixed(2))
	})

	t.Run("success - zero rate splits principal", func(t *testing.T) {
		payment, err := AnnuityPayment(decimal.NewFromInt(1200), 0, 12)
		require.NoError(t, err)
		assert.Equal(t, "100.00", payment.StringFixed(2))
	})

	t.Run("error - non-positive term", func(t *testing.T) {
		_, err := AnnuityPayment(decimal.NewFromInt(1000), 0.05, 0)
		require.Error(t, err)
	})

	t.Run("error - negative rate", func(t *testing.T) {
		_, err := AnnuityPayment(decimal.NewFromInt(1000), -0.01, 12)
		require.Error(t, err)
	})
}

func TestBuildLoanSchedule(t *testing.T) {
	loan := domain.Loan{
		Label:      "Bank loan",
		Principal:  decimal.NewFromInt(10000),
		AnnualRate: 0.06,
		TermMonths: 24,
		Month:      1,
	}

	schedule, err := BuildLoanSchedule(loan)
	require.NoError(t, err)
	require.Len(t, schedule.Rows, 24)

	t.Run("success - principal repays in full", func(t *testing.T) {
		repaid := decimal.Zero
		for _, row := range schedule.Rows {
			repaid = repaid.Add(row.Principal)
		}
		assert.True(t, repaid.Equal(loan.Principal), "repaid %s, want %s", repaid, loan.Principal)
	})

	t.Run("success - final balance is zero", func(t *testing.T) {
		last := schedule.Rows[len(schedule.Rows)-1]
		assert.True(t, last.Balance.IsZero(), "final balance %s", last.Balance)
	})

	t.Run("success - each payment splits into interest and principal", func(t *testing.T) {
		for _, row := range schedule.Rows {
			sum := row.Interest.Add(row.Principal)
			assert.True(t, row.Payment.Equal(sum), "month %d: payment %s != %s", row.Month, row.Payment, sum)
		}
	})

	t.Run("success - balance decreases monotonically", func(t *testing.T) {
		prev := loan.Principal
		for _, row := range schedule.Rows {
			assert.True(t, row.Balance.LessThan(prev), "month %d", row.Month)
			prev = row.Balance
		}
	})

	t.Run("success - rows start at the drawdown month", func(t *testing.T) {
		deferred := loan
		deferred.Month = 7
		s, err := BuildLoanSchedule(deferred)
		require.NoError(t, err)
		assert.Equal(t, 7, s.Rows[0].Month)
		assert.Equal(t, 30, s.Rows[len(s.Rows)-1].Month)
	})

	t.Run("error - invalid term", func(t *testing.T) {
		bad := loan
		bad.TermMonths = -1
		_, err := BuildLoanSchedule(bad)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Bank loan")
	})
}

func TestBuildLoanSchedule_ZeroRate(t *testing.T) {
	loan := domain.Loan{
		Label:      "Interest-free",
		Principal:  decimal.NewFromInt(1200),
		TermMonths: 12,
		Month:      1,
	}

	schedule, err := BuildLoanSchedule(loan)
	require.NoError(t, err)

	assert.True(t, schedule.Interest.IsZero(), "total interest %s", schedule.Interest)
	for _, row := range schedule.Rows {
		assert.True(t, row.Interest.IsZero(), "month %d interest %s", row.Month, row.Interest)
	}
	assert.True(t, schedule.Rows[len(schedule.Rows)-1].Balance.IsZero())
}
