package api

type LoanSchedule struct {
	Label         string        `json:"label"`
	Payment       Amount        `json:"payment"`
	TotalInterest Amount        `json:"total_interest"`
	Rows          []LoanPayment `json:"rows"`
}

type LoanPayment struct {
	Month     int    `json:"month"`
	Payment   Amount `json:"payment"`
	Interest  Amount `json:"interest"`
	Principal Amount `json:"principal"`
	Balance   Amount `json:"balance"`
}

type DepreciationSchedule struct {
	Label string              `json:"label"`
	Rows  []DepreciationEntry `json:"rows"`
}

type DepreciationEntry struct {
	Year      int    `json:"year"`
	Charge    Amount `json:"charge"`
	BookValue Amount `json:"book_value"`
}
