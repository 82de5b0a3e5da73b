package adapters

import (
	"github.com/venture-tools/plan-atlas/pkg/models/api"
	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

func MapLoanScheduleDomainToApi(schedule domain.LoanSchedule) api.LoanSchedule {
	apiSchedule := api.LoanSchedule{
		Label:         schedule.Loan.Label,
		Payment:       api.NewAmount(schedule.Payment),
		TotalInterest: api.NewAmount(schedule.Interest),
	}
	for _, row := range schedule.Rows {
		apiSchedule.Rows = append(apiSchedule.Rows, api.LoanPayment{
			Month:     row.Month,
			Payment:   api.NewAmount(row.Payment),
			Interest:  api.NewAmount(row.Interest),
			Principal: api.NewAmount(row.Principal),
			Balance:   api.NewAmount(row.Balance),
		})
	}
	return apiSchedule
}

func MapDepreciationScheduleDomainToApi(schedule domain.DepreciationSchedule) api.DepreciationSchedule {
	apiSchedule := api.DepreciationSchedule{
		Label: schedule.Investment.Label,
	}
	for _, row := range schedule.Rows {
		apiSchedule.Rows = append(apiSchedule.Rows, api.DepreciationEntry{
			Year:      row.Year,
			Charge:    api.NewAmount(row.Charge),
			BookValue: api.NewAmount(row.BookValue),
		})
	}
	return apiSchedule
}
