package adapters

import (
	"github.com/venture-tools/plan-atlas/pkg/models/api"
	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

func MapReportDomainToApi(report *domain.Report) *api.Report {
	if report == nil {
		return nil
	}

	apiReport := &api.Report{
		Title:       report.Title,
		GeneratedAt: report.GeneratedAt,
		Period: api.TimePeriod{
			Start:    report.Period.Start,
			End:      report.Period.End,
			Duration: report.Period.Duration,
		},
		Sections:    []api.ReportSection{},
		TotalAmount: report.TotalAmount,
		Currency:    report.Currency,
	}

	for _, section := range report.Sections {
		apiReport.Sections = append(apiReport.Sections, MapReportSectionDomainToApi(section))
	}
	return apiReport
}

func MapReportSectionDomainToApi(section domain.ReportSection) api.ReportSection {
	apiSection := api.ReportSection{
		Title:    section.Title,
		Summary:  section.Summary,
		Details:  []api.ReportDetail{},
		Metadata: section.Metadata,
	}

	for _, detail := range section.Details {
		apiSection.Details = append(apiSection.Details, api.ReportDetail{
			Name:        detail.Name,
			Value:       detail.Value,
			Unit:        detail.Unit,
			Description: detail.Description,
		})
	}
	return apiSection
}

func MapIndicatorsDomainToApi(ind domain.Indicators) api.Indicators {
	return api.Indicators{
		PlanID:           ind.PlanID,
		NPV:              ind.NPV,
		IRR:              ind.IRR,
		IRRConverged:     ind.IRRConverged,
		PaybackMonths:    ind.PaybackMonths,
		BreakEvenRevenue: ind.BreakEvenRevenue,
	}
}
