package api

import "time"

type Report struct {
	Title       string          `json:"title"`
	GeneratedAt time.Time       `json:"generated_at"`
	Period      TimePeriod      `json:"period"`
	Sections    []ReportSection `json:"sections"`
	TotalAmount float64         `json:"total_amount,omitempty"`
	Currency    string          `json:"currency,omitempty"`
}

type TimePeriod struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration int       `json:"duration_months"`
}

type ReportSection struct {
	Title    string                 `json:"title"`
	Summary  map[string]interface{} `json:"summary,omitempty"`
	Details  []ReportDetail         `json:"details"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

type ReportDetail struct {
	Name        string      `json:"name"`
	Value       interface{} `json:"value"`
	Unit        string      `json:"unit,omitempty"`
	Description string      `json:"description,omitempty"`
}

type Indicators struct {
	PlanID           string  `json:"plan_id"`
	NPV              float64 `json:"npv"`
	IRR              float64 `json:"irr"`
	IRRConverged     bool    `json:"irr_converged"`
	PaybackMonths    int     `json:"payback_months"`
	BreakEvenRevenue float64 `json:"break_even_revenue"`
}
