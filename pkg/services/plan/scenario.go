package plan

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

// Scenario is the on-disk shape of a plan, editable by hand. Amounts
// are plain numbers; viper accepts the file in YAML, JSON or TOML.
type Scenario struct {
	Name        string `mapstructure:"name" yaml:"name"`
	Company     string `mapstructure:"company" yaml:"company"`
	LegalForm   string `mapstructure:"legal_form" yaml:"legal_form,omitempty"`
	Activity    string `mapstructure:"activity" yaml:"activity,omitempty"`
	Assumptions struct {
		Start              string  `mapstructure:"start" yaml:"start"`
		Years              int     `mapstructure:"years" yaml:"years"`
		CorporateTaxRate   float64 `mapstructure:"corporate_tax_rate" yaml:"corporate_tax_rate"`
		DefaultVATRate     float64 `mapstructure:"default_vat_rate" yaml:"default_vat_rate"`
		DiscountRate       float64 `mapstructure:"discount_rate" yaml:"discount_rate"`
		WorkingCapitalDays int     `mapstructure:"working_capital_days" yaml:"working_capital_days"`
	} `mapstructure:"assumptions" yaml:"assumptions"`
	Investments []ScenarioInvestment `mapstructure:"investments" yaml:"investments,omitempty"`
	Loans       []ScenarioLoan       `mapstructure:"loans" yaml:"loans,omitempty"`
	Subsidies   []ScenarioItem       `mapstructure:"subsidies" yaml:"subsidies,omitempty"`
	Capital     []ScenarioItem       `mapstructure:"capital" yaml:"capital,omitempty"`
	Revenues    []ScenarioLine       `mapstructure:"revenues" yaml:"revenues,omitempty"`
	Expenses    []ScenarioExpense    `mapstructure:"expenses" yaml:"expenses,omitempty"`
	Payroll     []ScenarioPosition   `mapstructure:"payroll" yaml:"payroll,omitempty"`
}

type ScenarioInvestment struct {
	Label     string  `mapstructure:"label" yaml:"label"`
	Amount    float64 `mapstructure:"amount" yaml:"amount"`
	Month     int     `mapstructure:"month" yaml:"month"`
	LifeYears int     `mapstructure:"life_years" yaml:"life_years"`
	VATRate   float64 `mapstructure:"vat_rate" yaml:"vat_rate"`
}

type ScenarioLoan struct {
	Label      string  `mapstructure:"label" yaml:"label"`
	Principal  float64 `mapstructure:"principal" yaml:"principal"`
	AnnualRate float64 `mapstructure:"annual_rate" yaml:"annual_rate"`
	TermMonths int     `mapstructure:"term_months" yaml:"term_months"`
	Month      int     `mapstructure:"month" yaml:"month"`
}

type ScenarioItem struct {
	Label  string  `mapstructure:"label" yaml:"label"`
	Amount float64 `mapstructure:"amount" yaml:"amount"`
	Month  int     `mapstructure:"month" yaml:"month"`
}

type ScenarioLine struct {
	Label         string  `mapstructure:"label" yaml:"label"`
	MonthlyAmount float64 `mapstructure:"monthly_amount" yaml:"monthly_amount"`
	AnnualGrowth  float64 `mapstructure:"annual_growth" yaml:"annual_growth"`
	VATRate       float64 `mapstructure:"vat_rate" yaml:"vat_rate"`
}

type ScenarioExpense struct {
	Label         string  `mapstructure:"label" yaml:"label"`
	Category      string  `mapstructure:"category" yaml:"category"`
	MonthlyAmount float64 `mapstructure:"monthly_amount" yaml:"monthly_amount"`
	AnnualGrowth  float64 `mapstructure:"annual_growth" yaml:"annual_growth"`
	VATRate       float64 `mapstructure:"vat_rate" yaml:"vat_rate"`
}

type ScenarioPosition struct {
	Label        string  `mapstructure:"label" yaml:"label"`
	GrossMonthly float64 `mapstructure:"gross_monthly" yaml:"gross_monthly"`
	Headcount    int     `mapstructure:"headcount" yaml:"headcount"`
	EmployerRate float64 `mapstructure:"employer_rate" yaml:"employer_rate"`
	StartMonth   int     `mapstructure:"start_month" yaml:"start_month"`
}

// LoadScenario reads a scenario file and converts it to a plan.
func LoadScenario(path string) (domain.Plan, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return domain.Plan{}, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	if err := v.Unmarshal(&scenario); err != nil {
		return domain.Plan{}, fmt.Errorf("failed to parse scenario: %w", err)
	}
	return scenario.ToPlan(), nil
}

// ToPlan converts the file shape into a domain plan.
func (s Scenario) ToPlan() domain.Plan {
	p := domain.Plan{
		Name: s.Name,
		Company: domain.Company{
			Name:      s.Company,
			LegalForm: s.LegalForm,
			Activity:  s.Activity,
		},
		Assumptions: domain.Assumptions{
			Start:              parseScenarioMonth(s.Assumptions.Start),
			Years:              s.Assumptions.Years,
			CorporateTaxRate:   s.Assumptions.CorporateTaxRate,
			DefaultVATRate:     s.Assumptions.DefaultVATRate,
			DiscountRate:       s.Assumptions.DiscountRate,
			WorkingCapitalDays: s.Assumptions.WorkingCapitalDays,
		},
	}

	for _, inv := range s.Investments {
		p.Investments = append(p.Investments, domain.Investment{
			Label:     inv.Label,
			Amount:    decimal.NewFromFloat(inv.Amount),
			Month:     inv.Month,
			LifeYears: inv.LifeYears,
			VATRate:   inv.VATRate,
		})
	}
	for _, loan := range s.Loans {
		p.Loans = append(p.Loans, domain.Loan{
			Label:      loan.Label,
			Principal:  decimal.NewFromFloat(loan.Principal),
			AnnualRate: loan.AnnualRate,
			TermMonths: loan.TermMonths,
			Month:      loan.Month,
		})
	}
	for _, sub := range s.Subsidies {
		p.Subsidies = append(p.Subsidies, domain.Subsidy{
			Label:  sub.Label,
			Amount: decimal.NewFromFloat(sub.Amount),
			Month:  sub.Month,
		})
	}
	for _, item := range s.Capital {
		p.Contributions = append(p.Contributions, domain.Contribution{
			Label:  item.Label,
			Amount: decimal.NewFromFloat(item.Amount),
			Month:  item.Month,
		})
	}
	for _, rev := range s.Revenues {
		p.Revenues = append(p.Revenues, domain.RevenueLine{
			Label:         rev.Label,
			MonthlyAmount: decimal.NewFromFloat(rev.MonthlyAmount),
			AnnualGrowth:  rev.AnnualGrowth,
			VATRate:       rev.VATRate,
		})
	}
	for _, exp := range s.Expenses {
		p.Expenses = append(p.Expenses, domain.ExpenseLine{
			Label:         exp.Label,
			Category:      mapCategory(domain.ExpenseCategory(exp.Category)),
			MonthlyAmount: decimal.NewFromFloat(exp.MonthlyAmount),
			AnnualGrowth:  exp.AnnualGrowth,
			VATRate:       exp.VATRate,
		})
	}
	for _, pos := range s.Payroll {
		p.Payroll = append(p.Payroll, domain.PayrollPosition{
			Label:        pos.Label,
			GrossMonthly: decimal.NewFromFloat(pos.GrossMonthly),
			Headcount:    pos.Headcount,
			EmployerRate: pos.EmployerRate,
			StartMonth:   pos.StartMonth,
		})
	}
	return p
}

// FromPlan converts a plan back to the file shape.
func FromPlan(p domain.Plan) Scenario {
	var s Scenario
	s.Name = p.Name
	s.Company = p.Company.Name
	s.LegalForm = p.Company.LegalForm
	s.Activity = p.Company.Activity
	if !p.Assumptions.Start.IsZero() {
		s.Assumptions.Start = p.Assumptions.Start.Format("2006-01")
	}
	s.Assumptions.Years = p.Assumptions.Years
	s.Assumptions.CorporateTaxRate = p.Assumptions.CorporateTaxRate
	s.Assumptions.DefaultVATRate = p.Assumptions.DefaultVATRate
	s.Assumptions.DiscountRate = p.Assumptions.DiscountRate
	s.Assumptions.WorkingCapitalDays = p.Assumptions.WorkingCapitalDays

	for _, inv := range p.Investments {
		s.Investments = append(s.Investments, ScenarioInvestment{
			Label:     inv.Label,
			Amount:    inv.Amount.InexactFloat64(),
			Month:     inv.Month,
			LifeYears: inv.LifeYears,
			VATRate:   inv.VATRate,
		})
	}
	for _, loan := range p.Loans {
		s.Loans = append(s.Loans, ScenarioLoan{
			Label:      loan.Label,
			Principal:  loan.Principal.InexactFloat64(),
			AnnualRate: loan.AnnualRate,
			TermMonths: loan.TermMonths,
			Month:      loan.Month,
		})
	}
	for _, sub := range p.Subsidies {
		s.Subsidies = append(s.Subsidies, ScenarioItem{
			Label:  sub.Label,
			Amount: sub.Amount.InexactFloat64(),
			Month:  sub.Month,
		})
	}
	for _, con := range p.Contributions {
		s.Capital = append(s.Capital, ScenarioItem{
			Label:  con.Label,
			Amount: con.Amount.InexactFloat64(),
			Month:  con.Month,
		})
	}
	for _, rev := range p.Revenues {
		s.Revenues = append(s.Revenues, ScenarioLine{
			Label:         rev.Label,
			MonthlyAmount: rev.MonthlyAmount.InexactFloat64(),
			AnnualGrowth:  rev.AnnualGrowth,
			VATRate:       rev.VATRate,
		})
	}
	for _, exp := range p.Expenses {
		s.Expenses = append(s.Expenses, ScenarioExpense{
			Label:         exp.Label,
			Category:      string(exp.Category),
			MonthlyAmount: exp.MonthlyAmount.InexactFloat64(),
			AnnualGrowth:  exp.AnnualGrowth,
			VATRate:       exp.VATRate,
		})
	}
	for _, pos := range p.Payroll {
		s.Payroll = append(s.Payroll, ScenarioPosition{
			Label:        pos.Label,
			GrossMonthly: pos.GrossMonthly.InexactFloat64(),
			Headcount:    pos.Headcount,
			EmployerRate: pos.EmployerRate,
			StartMonth:   pos.StartMonth,
		})
	}
	return s
}

func parseScenarioMonth(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse("2006-01", s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Time{}
}

// WriteScenario saves a plan as an editable YAML scenario file.
func WriteScenario(path string, p domain.Plan) error {
	data, err := yaml.Marshal(FromPlan(p))
	if err != nil {
		return fmt.Errorf("encode scenario: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write scenario file: %w", err)
	}
	return nil
}
