package domain

import "github.com/shopspring/decimal"

// IncomeStatement aggregates one YearResult per projection year.
type IncomeStatement struct {
	PlanID string
	Years  []YearResult
}

type YearResult struct {
	Year            int
	Revenue         decimal.Decimal
	Purchases       decimal.Decimal
	ExternalCharges decimal.Decimal
	OtherCharges    decimal.Decimal
	Payroll         decimal.Decimal // gross salaries
	EmployerCharges decimal.Decimal
	Depreciation    decimal.Decimal
	LoanInterest    decimal.Decimal
	EBT             decimal.Decimal // earnings before tax
	CorporateTax    decimal.Decimal
	NetIncome       decimal.Decimal
}

// CashFlowStatement tracks monthly receipts and disbursements across the
// whole horizon. Opening cash is zero; Closing of month m is Opening of m+1.
type CashFlowStatement struct {
	PlanID string
	Months []MonthFlow
}

type MonthFlow struct {
	Month         int
	Receipts      decimal.Decimal
	Disbursements decimal.Decimal
	Net           decimal.Decimal
	Closing       decimal.Decimal // cumulative balance at end of month
}

// VATBudget tracks collected vs deductible VAT monthly. A negative net
// becomes a credit carried into the next month; the amount due for month m
// is remitted in month m+1.
type VATBudget struct {
	PlanID string
	Months []VATMonth
}

type VATMonth struct {
	Month      int
	Collected  decimal.Decimal
	Deductible decimal.Decimal
	Net        decimal.Decimal // collected - deductible - prior credit
	Credit     decimal.Decimal // carried forward when Net < 0
	Remitted   decimal.Decimal // paid this month for the previous one
}

// BalanceSheet holds one balanced year-end statement per projection year.
type BalanceSheet struct {
	PlanID string
	Years  []BalanceYear
}

type BalanceYear struct {
	Year             int
	GrossFixedAssets decimal.Decimal
	AccumulatedDepr  decimal.Decimal
	NetFixedAssets   decimal.Decimal
	VATCredit        decimal.Decimal
	Cash             decimal.Decimal
	TotalAssets      decimal.Decimal
	Capital          decimal.Decimal
	Subsidies        decimal.Decimal
	RetainedEarnings decimal.Decimal // cumulative net income through this year
	LoanBalance      decimal.Decimal
	VATPayable       decimal.Decimal
	TotalLiabilities decimal.Decimal
}

// FinancingPlan opposes startup needs to financing resources.
type FinancingPlan struct {
	PlanID    string
	Needs     []FinancingItem
	Resources []FinancingItem
	TotalNeed decimal.Decimal
	TotalRes  decimal.Decimal
	Balance   decimal.Decimal // resources - needs
}

type FinancingItem struct {
	Label  string
	Amount decimal.Decimal
}

// Indicators are the plan-level profitability metrics.
type Indicators struct {
	PlanID           string
	NPV              float64
	IRR              float64
	IRRConverged     bool
	PaybackMonths    int // -1 when cumulative cash never turns positive
	BreakEvenRevenue float64
}
