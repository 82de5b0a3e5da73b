package plan

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/venture-tools/plan-atlas/pkg/adapters"
	"github.com/venture-tools/plan-atlas/pkg/models/domain"
	"github.com/venture-tools/plan-atlas/pkg/services/finance"
	planstore "github.com/venture-tools/plan-atlas/pkg/store/sqlite/plan"
)

// Service manages stored plans and derives their statements.
type Service interface {
	Create(ctx context.Context, p domain.Plan) (domain.Plan, error)
	Update(ctx context.Context, p domain.Plan) (domain.Plan, error)
	Get(ctx context.Context, id string) (domain.Plan, error)
	List(ctx context.Context) ([]domain.Plan, error)
	Delete(ctx context.Context, id string) error
	Validate(ctx context.Context, p domain.Plan) []domain.ValidationIssue
	GenerateStatement(ctx context.Context, id, statementType string) (*domain.Report, error)
	SupportedStatements() []string
	Indicators(ctx context.Context, id string) (*domain.Indicators, error)
	LoanSchedules(ctx context.Context, id string) ([]domain.LoanSchedule, error)
	DepreciationSchedules(ctx context.Context, id string) ([]domain.DepreciationSchedule, error)
}

type service struct {
	plans      planstore.Store
	statements finance.Controller
}

func NewService(plans planstore.Store, statements finance.Controller) Service {
	return &service{plans: plans, statements: statements}
}

func (s *service) Create(ctx context.Context, p domain.Plan) (domain.Plan, error) {
	sanitize(ctx, &p)

	now := time.Now().UTC()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	record, err := adapters.MapPlanDomainToStore(p)
	if err != nil {
		return domain.Plan{}, err
	}
	if err := s.plans.Add(ctx, record); err != nil {
		return domain.Plan{}, fmt.Errorf("create plan: %w", err)
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, p domain.Plan) (domain.Plan, error) {
	if p.ID == "" {
		return domain.Plan{}, fmt.Errorf("plan id is required")
	}

	existing, err := s.Get(ctx, p.ID)
	if err != nil {
		return domain.Plan{}, err
	}

	sanitize(ctx, &p)
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()

	record, err := adapters.MapPlanDomainToStore(p)
	if err != nil {
		return domain.Plan{}, err
	}
	if err := s.plans.Update(ctx, record); err != nil {
		return domain.Plan{}, fmt.Errorf("update plan: %w", err)
	}
	return p, nil
}

func (s *service) Get(ctx context.Context, id string) (domain.Plan, error) {
	record, err := s.plans.Get(ctx, id)
	if err != nil {
		return domain.Plan{}, err
	}
	return adapters.MapPlanStoreToDomain(*record)
}

func (s *service) List(ctx context.Context) ([]domain.Plan, error) {
	records, err := s.plans.List(ctx)
	if err != nil {
		return nil, err
	}

	plans := make([]domain.Plan, 0, len(records))
	for _, record := range records {
		p, err := adapters.MapPlanStoreToDomain(record)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("plan", record.ID).Msg("skipping unreadable plan")
			continue
		}
		plans = append(plans, p)
	}
	return plans, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.plans.Delete(ctx, id)
}

func (s *service) Validate(_ context.Context, p domain.Plan) []domain.ValidationIssue {
	return finance.Validate(&p)
}

func (s *service) GenerateStatement(ctx context.Context, id, statementType string) (*domain.Report, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.statements.GenerateStatement(ctx, &p, statementType)
}

func (s *service) SupportedStatements() []string {
	return s.statements.GetSupportedStatements()
}

func (s *service) Indicators(ctx context.Context, id string) (*domain.Indicators, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return finance.ComputeIndicators(&p)
}

func (s *service) LoanSchedules(ctx context.Context, id string) ([]domain.LoanSchedule, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return finance.BuildLoanSchedules(&p)
}

func (s *service) DepreciationSchedules(ctx context.Context, id string) ([]domain.DepreciationSchedule, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return finance.BuildDepreciationSchedules(&p)
}

// sanitize fills the gaps a half-filled form leaves. Suspicious values
// are logged and defaulted rather than rejected; Validate reports them
// to the caller separately.
func sanitize(ctx context.Context, p *domain.Plan) {
	logger := zerolog.Ctx(ctx)

	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		p.Name = "Untitled plan"
	}

	if p.Assumptions.Start.IsZero() {
		now := time.Now().UTC()
		p.Assumptions.Start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		logger.Warn().Str("plan", p.Name).Msg("missing start month, defaulting to current month")
	}
	if p.Assumptions.Years <= 0 {
		p.Assumptions.Years = 3
		logger.Warn().Str("plan", p.Name).Msg("missing horizon, defaulting to 3 years")
	}

	p.Assumptions.CorporateTaxRate = clampRate(logger, p.Name, "corporate_tax_rate", p.Assumptions.CorporateTaxRate)
	p.Assumptions.DefaultVATRate = clampRate(logger, p.Name, "default_vat_rate", p.Assumptions.DefaultVATRate)
	p.Assumptions.DiscountRate = clampRate(logger, p.Name, "discount_rate", p.Assumptions.DiscountRate)

	for i := range p.Investments {
		p.Investments[i].Amount = clampAmount(logger, p.Name, "investment amount", p.Investments[i].Amount)
		p.Investments[i].VATRate = clampRate(logger, p.Name, "investment vat_rate", p.Investments[i].VATRate)
	}
	for i := range p.Loans {
		p.Loans[i].Principal = clampAmount(logger, p.Name, "loan principal", p.Loans[i].Principal)
		p.Loans[i].AnnualRate = clampRate(logger, p.Name, "loan annual_rate", p.Loans[i].AnnualRate)
	}
	for i := range p.Subsidies {
		p.Subsidies[i].Amount = clampAmount(logger, p.Name, "subsidy amount", p.Subsidies[i].Amount)
	}
	for i := range p.Contributions {
		p.Contributions[i].Amount = clampAmount(logger, p.Name, "contribution amount", p.Contributions[i].Amount)
	}
	for i := range p.Revenues {
		p.Revenues[i].MonthlyAmount = clampAmount(logger, p.Name, "revenue amount", p.Revenues[i].MonthlyAmount)
		p.Revenues[i].VATRate = clampRate(logger, p.Name, "revenue vat_rate", p.Revenues[i].VATRate)
	}
	for i := range p.Payroll {
		p.Payroll[i].GrossMonthly = clampAmount(logger, p.Name, "payroll gross", p.Payroll[i].GrossMonthly)
		p.Payroll[i].EmployerRate = clampRate(logger, p.Name, "payroll employer_rate", p.Payroll[i].EmployerRate)
	}
	for i := range p.Expenses {
		p.Expenses[i].Category = mapCategory(p.Expenses[i].Category)
		p.Expenses[i].MonthlyAmount = clampAmount(logger, p.Name, "expense amount", p.Expenses[i].MonthlyAmount)
		p.Expenses[i].VATRate = clampRate(logger, p.Name, "expense vat_rate", p.Expenses[i].VATRate)
	}
}

func clampAmount(logger *zerolog.Logger, plan, field string, v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		logger.Warn().Str("plan", plan).Str("field", field).Str("value", v.String()).Msg("negative amount clamped to zero")
		return decimal.Zero
	}
	return v
}

func clampRate(logger *zerolog.Logger, plan, field string, v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		logger.Warn().Str("plan", plan).Str("field", field).Float64("value", v).Msg("invalid rate clamped to zero")
		return 0
	}
	return v
}

func mapCategory(c domain.ExpenseCategory) domain.ExpenseCategory {
	switch c {
	case domain.ExpensePurchases, domain.ExpenseExternal, domain.ExpenseOther:
		return c
	default:
		return domain.ExpenseOther
	}
}
