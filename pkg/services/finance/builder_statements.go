package finance

import (
	"context"
	"fmt"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

type IncomeBuilder struct{}

func (IncomeBuilder) StatementType() string { return StatementIncome }

func (IncomeBuilder) GenerateReport(_ context.Context, plan *domain.Plan) (*domain.Report, error) {
	statement, err := BuildIncomeStatement(plan)
	if err != nil {
		return nil, err
	}

	report := newReport(plan, "Income Statement")
	cumulative := 0.0

	for _, y := range statement.Years {
		section := domain.ReportSection{
			Title: fmt.Sprintf("Year %d", y.Year),
			Summary: map[string]interface{}{
				"revenue":    y.Revenue.StringFixed(2),
				"ebt":        y.EBT.StringFixed(2),
				"net_income": y.NetIncome.StringFixed(2),
			},
			Details: []domain.ReportDetail{
				{Name: "Revenue", Value: y.Revenue.StringFixed(2), Unit: "EUR"},
				{Name: "Purchases", Value: y.Purchases.StringFixed(2), Unit: "EUR"},
				{Name: "External charges", Value: y.ExternalCharges.StringFixed(2), Unit: "EUR"},
				{Name: "Other charges", Value: y.OtherCharges.StringFixed(2), Unit: "EUR"},
				{Name: "Gross payroll", Value: y.Payroll.StringFixed(2), Unit: "EUR"},
				{Name: "Employer charges", Value: y.EmployerCharges.StringFixed(2), Unit: "EUR"},
				{Name: "Depreciation", Value: y.Depreciation.StringFixed(2), Unit: "EUR"},
				{Name: "Loan interest", Value: y.LoanInterest.StringFixed(2), Unit: "EUR"},
				{Name: "Earnings before tax", Value: y.EBT.StringFixed(2), Unit: "EUR"},
				{Name: "Corporate tax", Value: y.CorporateTax.StringFixed(2), Unit: "EUR"},
				{Name: "Net income", Value: y.NetIncome.StringFixed(2), Unit: "EUR"},
			},
		}
		report.Sections = append(report.Sections, section)
		cumulative += y.NetIncome.InexactFloat64()
	}

	report.TotalAmount = cumulative
	return report, nil
}

type CashFlowBuilder struct{}

func (CashFlowBuilder) StatementType() string { return StatementCashFlow }

func (CashFlowBuilder) GenerateReport(_ context.Context, plan *domain.Plan) (*domain.Report, error) {
	statement, err := BuildCashFlow(plan)
	if err != nil {
		return nil, err
	}

	report := newReport(plan, "Cash Flow")

	for y := 1; y <= plan.Assumptions.Years; y++ {
		section := domain.ReportSection{Title: fmt.Sprintf("Year %d", y)}
		for _, mf := range statement.Months {
			if yearOf(mf.Month) != y {
				continue
			}
			section.Details = append(section.Details, domain.ReportDetail{
				Name:  plan.Assumptions.MonthDate(mf.Month).Format("2006-01"),
				Value: mf.Net.StringFixed(2),
				Unit:  "EUR",
				Description: fmt.Sprintf("in %s, out %s, closing %s",
					mf.Receipts.StringFixed(2), mf.Disbursements.StringFixed(2), mf.Closing.StringFixed(2)),
			})
		}
		report.Sections = append(report.Sections, section)
	}

	if n := len(statement.Months); n > 0 {
		closing := statement.Months[n-1].Closing
		lowest := statement.Months[0].Closing
		for _, mf := range statement.Months {
			if mf.Closing.LessThan(lowest) {
				lowest = mf.Closing
			}
		}
		report.TotalAmount = closing.InexactFloat64()
		report.Sections[0].Summary = map[string]interface{}{
			"final_balance":  closing.StringFixed(2),
			"lowest_balance": lowest.StringFixed(2),
		}
	}

	return report, nil
}

type VATBuilder struct{}

func (VATBuilder) StatementType() string { return StatementVAT }

func (VATBuilder) GenerateReport(_ context.Context, plan *domain.Plan) (*domain.Report, error) {
	budget, err := BuildVATBudget(plan)
	if err != nil {
		return nil, err
	}

	report := newReport(plan, "VAT Budget")
	remitted := 0.0

	for y := 1; y <= plan.Assumptions.Years; y++ {
		section := domain.ReportSection{Title: fmt.Sprintf("Year %d", y)}
		for _, vm := range budget.Months {
			if yearOf(vm.Month) != y {
				continue
			}
			section.Details = append(section.Details, domain.ReportDetail{
				Name:  plan.Assumptions.MonthDate(vm.Month).Format("2006-01"),
				Value: vm.Net.StringFixed(2),
				Unit:  "EUR",
				Description: fmt.Sprintf("collected %s, deductible %s, remitted %s",
					vm.Collected.StringFixed(2), vm.Deductible.StringFixed(2), vm.Remitted.StringFixed(2)),
			})
			remitted += vm.Remitted.InexactFloat64()
		}
		report.Sections = append(report.Sections, section)
	}

	report.TotalAmount = remitted
	return report, nil
}

type BalanceBuilder struct{}

func (BalanceBuilder) StatementType() string { return StatementBalance }

func (BalanceBuilder) GenerateReport(_ context.Context, plan *domain.Plan) (*domain.Report, error) {
	statement, err := BuildBalanceSheet(plan)
	if err != nil {
		return nil, err
	}

	report := newReport(plan, "Balance Sheet")

	for _, y := range statement.Years {
		section := domain.ReportSection{
			Title: fmt.Sprintf("Year %d", y.Year),
			Summary: map[string]interface{}{
				"total_assets":      y.TotalAssets.StringFixed(2),
				"total_liabilities": y.TotalLiabilities.StringFixed(2),
			},
			Details: []domain.ReportDetail{
				{Name: "Gross fixed assets", Value: y.GrossFixedAssets.StringFixed(2), Unit: "EUR"},
				{Name: "Accumulated depreciation", Value: y.AccumulatedDepr.StringFixed(2), Unit: "EUR"},
				{Name: "Net fixed assets", Value: y.NetFixedAssets.StringFixed(2), Unit: "EUR"},
				{Name: "VAT credit", Value: y.VATCredit.StringFixed(2), Unit: "EUR"},
				{Name: "Cash", Value: y.Cash.StringFixed(2), Unit: "EUR"},
				{Name: "Total assets", Value: y.TotalAssets.StringFixed(2), Unit: "EUR"},
				{Name: "Capital", Value: y.Capital.StringFixed(2), Unit: "EUR"},
				{Name: "Subsidies", Value: y.Subsidies.StringFixed(2), Unit: "EUR"},
				{Name: "Retained earnings", Value: y.RetainedEarnings.StringFixed(2), Unit: "EUR"},
				{Name: "Loan balance", Value: y.LoanBalance.StringFixed(2), Unit: "EUR"},
				{Name: "VAT payable", Value: y.VATPayable.StringFixed(2), Unit: "EUR"},
				{Name: "Total liabilities", Value: y.TotalLiabilities.StringFixed(2), Unit: "EUR"},
			},
		}
		report.Sections = append(report.Sections, section)
	}

	if n := len(statement.Years); n > 0 {
		report.TotalAmount = statement.Years[n-1].TotalAssets.InexactFloat64()
	}
	return report, nil
}

type FinancingBuilder struct{}

func (FinancingBuilder) StatementType() string { return StatementFinancing }

func (FinancingBuilder) GenerateReport(_ context.Context, plan *domain.Plan) (*domain.Report, error) {
	fp, err := BuildFinancingPlan(plan)
	if err != nil {
		return nil, err
	}

	report := newReport(plan, "Financing Plan")

	needs := domain.ReportSection{
		Title:   "Needs",
		Summary: map[string]interface{}{"total": fp.TotalNeed.StringFixed(2)},
	}
	for _, item := range fp.Needs {
		needs.Details = append(needs.Details, domain.ReportDetail{
			Name: item.Label, Value: item.Amount.StringFixed(2), Unit: "EUR",
		})
	}

	resources := domain.ReportSection{
		Title: "Resources",
		Summary: map[string]interface{}{
			"total":   fp.TotalRes.StringFixed(2),
			"balance": fp.Balance.StringFixed(2),
		},
	}
	for _, item := range fp.Resources {
		resources.Details = append(resources.Details, domain.ReportDetail{
			Name: item.Label, Value: item.Amount.StringFixed(2), Unit: "EUR",
		})
	}

	report.Sections = append(report.Sections, needs, resources)
	report.TotalAmount = fp.Balance.InexactFloat64()
	return report, nil
}
