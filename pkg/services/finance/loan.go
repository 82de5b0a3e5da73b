package finance

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

// AnnuityPayment returns the constant monthly payment for a loan of the
// given principal, annual rate and term. A zero rate degenerates to a
// straight principal split.
func AnnuityPayment(principal decimal.Decimal, annualRate float64, termMonths int) (decimal.Decimal, error) {
	if termMonths <= 0 {
		return decimal.Zero, fmt.Errorf("loan term must be positive, got %d", termMonths)
	}
	if annualRate < 0 {
		return decimal.Zero, fmt.Errorf("loan rate must not be negative, got %f", annualRate)
	}
	if annualRate == 0 {
		return principal.DivRound(decimal.NewFromInt(int64(termMonths)), 2), nil
	}

	r := annualRate / 12
	factor := r / (1 - math.Pow(1+r, -float64(termMonths)))
	return principal.Mul(decimal.NewFromFloat(factor)).Round(2), nil
}

// BuildLoanSchedule amortizes a loan month by month. Each row splits the
// annuity into interest on the outstanding balance and principal repayment;
// the final row absorbs rounding so the balance lands on exactly zero.
func BuildLoanSchedule(loan domain.Loan) (domain.LoanSchedule, error) {
	payment, err := AnnuityPayment(loan.Principal, loan.AnnualRate, loan.TermMonths)
	if err != nil {
		return domain.LoanSchedule{}, fmt.Errorf("loan %q: %w", loan.Label, err)
	}

	start := loan.Month
	if start < 1 {
		start = 1
	}

	monthlyRate := decimal.NewFromFloat(loan.AnnualRate / 12)
	balance := loan.Principal
	totalInterest := decimal.Zero
	rows := make([]domain.LoanPayment, 0, loan.TermMonths)

	for m := 1; m <= loan.TermMonths; m++ {
		interest := balance.Mul(monthlyRate).Round(2)
		principalPart := payment.Sub(interest)
		rowPayment := payment

		if m == loan.TermMonths || principalPart.GreaterThan(balance) {
			principalPart = balance
			rowPayment = interest.Add(principalPart)
		}

		balance = balance.Sub(principalPart)
		totalInterest = totalInterest.Add(interest)

		rows = append(rows, domain.LoanPayment{
			Month:     start + m - 1,
			Payment:   rowPayment,
			Interest:  interest,
			Principal: principalPart,
			Balance:   balance,
		})

		if balance.IsZero() {
			break
		}
	}

	return domain.LoanSchedule{
		Loan:     loan,
		Payment:  payment,
		Rows:     rows,
		Interest: totalInterest,
	}, nil
}

// BuildLoanSchedules amortizes every loan of a plan.
func BuildLoanSchedules(plan *domain.Plan) ([]domain.LoanSchedule, error) {
	schedules := make([]domain.LoanSchedule, 0, len(plan.Loans))
	for _, loan := range plan.Loans {
		s, err := BuildLoanSchedule(loan)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, nil
}
