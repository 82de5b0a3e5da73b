package domain

import "github.com/shopspring/decimal"

// LoanSchedule is the month-by-month amortization of a single loan.
type LoanSchedule struct {
	Loan     Loan
	Payment  decimal.Decimal // constant annuity, except possibly the last row
	Rows     []LoanPayment
	Interest decimal.Decimal // total interest over the term
}

type LoanPayment struct {
	Month     int // 1-based within the horizon
	Payment   decimal.Decimal
	Interest  decimal.Decimal
	Principal decimal.Decimal
	Balance   decimal.Decimal // remaining principal after this payment
}

// DepreciationSchedule is the year-by-year straight-line depreciation
// of a single investment.
type DepreciationSchedule struct {
	Investment Investment
	Rows       []DepreciationEntry
}

type DepreciationEntry struct {
	Year      int // 1-based projection year
	Charge    decimal.Decimal
	BookValue decimal.Decimal // net book value after this charge
}
