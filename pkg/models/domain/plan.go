package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type ExpenseCategory string

const (
	ExpensePurchases ExpenseCategory = "purchases"
	ExpenseExternal  ExpenseCategory = "external"
	ExpenseOther     ExpenseCategory = "other"
)

// Plan holds every input of a financial projection: who the company is,
// what it buys, how it is financed and what it expects to earn and spend.
// All derived figures (schedules, statements, indicators) are computed
// from a Plan, never stored on it.
type Plan struct {
	ID            string
	Name          string
	Company       Company
	Assumptions   Assumptions
	Investments   []Investment
	Loans         []Loan
	Subsidies     []Subsidy
	Contributions []Contribution
	Revenues      []RevenueLine
	Expenses      []ExpenseLine
	Payroll       []PayrollPosition
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Company struct {
	Name      string
	LegalForm string
	Activity  string
	Founded   string
	Address   string
	Contact   string
}

// Assumptions drive the projection horizon and the global rates.
// Rates are fractions (0.20 means 20%).
type Assumptions struct {
	Start              time.Time // first month of the projection
	Years              int
	CorporateTaxRate   float64
	DefaultVATRate     float64
	DiscountRate       float64
	WorkingCapitalDays int
}

// TotalMonths returns the projection horizon in months.
func (a Assumptions) TotalMonths() int {
	return a.Years * 12
}

// MonthDate maps a 1-based month index within the horizon to its calendar month.
func (a Assumptions) MonthDate(month int) time.Time {
	return a.Start.AddDate(0, month-1, 0)
}

type Investment struct {
	Label     string
	Amount    decimal.Decimal
	Month     int // acquisition month, 1-based within the horizon
	LifeYears int
	VATRate   float64
}

type Loan struct {
	Label      string
	Principal  decimal.Decimal
	AnnualRate float64
	TermMonths int
	Month      int // drawdown month, 1-based within the horizon
}

type Subsidy struct {
	Label  string
	Amount decimal.Decimal
	Month  int
}

type Contribution struct {
	Label  string
	Amount decimal.Decimal
	Month  int
}

// RevenueLine is a recurring revenue stream. The monthly amount grows by
// AnnualGrowth at each year boundary of the horizon.
type RevenueLine struct {
	Label         string
	MonthlyAmount decimal.Decimal
	AnnualGrowth  float64
	VATRate       float64
}

type ExpenseLine struct {
	Label         string
	Category      ExpenseCategory
	MonthlyAmount decimal.Decimal
	AnnualGrowth  float64
	VATRate       float64
}

// PayrollPosition is a payroll line: Headcount employees at GrossMonthly
// each, hired at StartMonth. EmployerRate is the employer social charge
// fraction applied on top of gross.
type PayrollPosition struct {
	Label        string
	GrossMonthly decimal.Decimal
	Headcount    int
	EmployerRate float64
	StartMonth   int
}

// ValidationIssue describes a single plan input that failed validation.
type ValidationIssue struct {
	Field   string
	Message string
}

func (v ValidationIssue) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}
