package api

import "time"

// Plan is the wire shape of a business plan. The assumption start month
// uses the "2006-01" layout.
type Plan struct {
	ID            string         `json:"id,omitempty"`
	Name          string         `json:"name"`
	Company       Company        `json:"company"`
	Assumptions   Assumptions    `json:"assumptions"`
	Investments   []Investment   `json:"investments,omitempty"`
	Loans         []Loan         `json:"loans,omitempty"`
	Subsidies     []Subsidy      `json:"subsidies,omitempty"`
	Contributions []Contribution `json:"contributions,omitempty"`
	Revenues      []RevenueLine  `json:"revenues,omitempty"`
	Expenses      []ExpenseLine  `json:"expenses,omitempty"`
	Payroll       []PayrollPosition     `json:"payroll,omitempty"`
	CreatedAt     *time.Time     `json:"created_at,omitempty"`
	UpdatedAt     *time.Time     `json:"updated_at,omitempty"`
}

type Company struct {
	Name      string `json:"name"`
	LegalForm string `json:"legal_form,omitempty"`
	Activity  string `json:"activity,omitempty"`
	Founded   string `json:"founded,omitempty"`
	Address   string `json:"address,omitempty"`
	Contact   string `json:"contact,omitempty"`
}

type Assumptions struct {
	Start              string `json:"start"`
	Years              int    `json:"years"`
	CorporateTaxRate   Rate   `json:"corporate_tax_rate"`
	DefaultVATRate     Rate   `json:"default_vat_rate"`
	DiscountRate       Rate   `json:"discount_rate"`
	WorkingCapitalDays int    `json:"working_capital_days"`
}

type Investment struct {
	Label     string `json:"label"`
	Amount    Amount `json:"amount"`
	Month     int    `json:"month"`
	LifeYears int    `json:"life_years"`
	VATRate   Rate   `json:"vat_rate"`
}

type Loan struct {
	Label      string `json:"label"`
	Principal  Amount `json:"principal"`
	AnnualRate Rate   `json:"annual_rate"`
	TermMonths int    `json:"term_months"`
	Month      int    `json:"month"`
}

type Subsidy struct {
	Label  string `json:"label"`
	Amount Amount `json:"amount"`
	Month  int    `json:"month"`
}

type Contribution struct {
	Label  string `json:"label"`
	Amount Amount `json:"amount"`
	Month  int    `json:"month"`
}

type RevenueLine struct {
	Label         string `json:"label"`
	MonthlyAmount Amount `json:"monthly_amount"`
	AnnualGrowth  Rate   `json:"annual_growth"`
	VATRate       Rate   `json:"vat_rate"`
}

type ExpenseLine struct {
	Label         string `json:"label"`
	Category      string `json:"category"`
	MonthlyAmount Amount `json:"monthly_amount"`
	AnnualGrowth  Rate   `json:"annual_growth"`
	VATRate       Rate   `json:"vat_rate"`
}

type PayrollPosition struct {
	Label        string `json:"label"`
	GrossMonthly Amount `json:"gross_monthly"`
	Headcount    int    `json:"headcount"`
	EmployerRate Rate   `json:"employer_rate"`
	StartMonth   int    `json:"start_month"`
}

type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Issues []ValidationIssue `json:"issues,omitempty"`
}
