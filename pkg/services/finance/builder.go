package finance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/exp/maps"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

const (
	StatementIncome    = "income"
	StatementBalance   = "balance"
	StatementCashFlow  = "cashflow"
	StatementVAT       = "vat"
	StatementFinancing = "financing"
)

// Builder renders one statement type of a plan as a report.
type Builder interface {
	StatementType() string
	GenerateReport(ctx context.Context, plan *domain.Plan) (*domain.Report, error)
}

// Controller routes statement requests to the registered builders.
type Controller interface {
	GenerateStatement(ctx context.Context, plan *domain.Plan, statementType string) (*domain.Report, error)
	GetSupportedStatements() []string
}

type controller struct {
	builders map[string]Builder
}

// NewController wires the given builders into a controller. Every builder
// must carry a distinct statement type.
func NewController(builders ...Builder) (Controller, error) {
	c := &controller{builders: make(map[string]Builder)}

	for _, b := range builders {
		st := b.StatementType()
		if _, exists := c.builders[st]; exists {
			return nil, fmt.Errorf("duplicate builder for statement type: %s", st)
		}
		c.builders[st] = b
	}

	if len(c.builders) == 0 {
		return nil, fmt.Errorf("at least one builder must be provided")
	}

	return c, nil
}

// NewDefaultController registers every statement builder this package ships.
func NewDefaultController() (Controller, error) {
	return NewController(
		IncomeBuilder{},
		BalanceBuilder{},
		CashFlowBuilder{},
		VATBuilder{},
		FinancingBuilder{},
	)
}

func (c *controller) GenerateStatement(ctx context.Context, plan *domain.Plan, statementType string) (*domain.Report, error) {
	b, ok := c.builders[statementType]
	if !ok {
		return nil, fmt.Errorf("unsupported statement type %q: %w", statementType, domain.ErrInvalidInput)
	}
	return b.GenerateReport(ctx, plan)
}

func (c *controller) GetSupportedStatements() []string {
	keys := maps.Keys(c.builders)
	sort.Strings(keys)
	return keys
}

func reportPeriod(plan *domain.Plan) domain.TimePeriod {
	months := plan.Assumptions.TotalMonths()
	return domain.TimePeriod{
		Start:    plan.Assumptions.Start,
		End:      plan.Assumptions.Start.AddDate(0, months, 0),
		Duration: months,
	}
}

func newReport(plan *domain.Plan, title string) *domain.Report {
	return &domain.Report{
		Title:       fmt.Sprintf("%s - %s", plan.Name, title),
		GeneratedAt: time.Now(),
		Period:      reportPeriod(plan),
		Currency:    "EUR",
	}
}
