package finance

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

// BuildDepreciationSchedule spreads an investment straight-line over its
// useful life. The first year is prorated by acquisition month, so a
// prorated asset carries a remainder year past its nominal life. The final
// charge absorbs rounding so the book value lands on exactly zero.
func BuildDepreciationSchedule(inv domain.Investment) (domain.DepreciationSchedule, error) {
	if inv.LifeYears <= 0 {
		return domain.DepreciationSchedule{}, fmt.Errorf("investment %q: life must be positive, got %d years", inv.Label, inv.LifeYears)
	}

	startYear, startMonth := 1, 1
	if inv.Month > 0 {
		startYear = (inv.Month-1)/12 + 1
		startMonth = (inv.Month-1)%12 + 1
	}

	annual := inv.Amount.DivRound(decimal.NewFromInt(int64(inv.LifeYears)), 2)
	firstFraction := decimal.NewFromInt(int64(13 - startMonth)).Div(decimal.NewFromInt(12))

	book := inv.Amount
	rows := []domain.DepreciationEntry{}
	year := startYear

	for book.IsPositive() {
		charge := annual
		if year == startYear {
			charge = annual.Mul(firstFraction).Round(2)
		}
		if charge.GreaterThan(book) || !charge.IsPositive() {
			charge = book
		}
		book = book.Sub(charge)
		rows = append(rows, domain.DepreciationEntry{
			Year:      year,
			Charge:    charge,
			BookValue: book,
		})
		year++
	}

	return domain.DepreciationSchedule{Investment: inv, Rows: rows}, nil
}

// BuildDepreciationSchedules builds a schedule per investment.
func BuildDepreciationSchedules(plan *domain.Plan) ([]domain.DepreciationSchedule, error) {
	schedules := make([]domain.DepreciationSchedule, 0, len(plan.Investments))
	for _, inv := range plan.Investments {
		s, err := BuildDepreciationSchedule(inv)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, nil
}

// DepreciationForYear sums the charges all schedules book in a given
// projection year.
func DepreciationForYear(schedules []domain.DepreciationSchedule, year int) decimal.Decimal {
	total := decimal.Zero
	for _, s := range schedules {
		for _, row := range s.Rows {
			if row.Year == year {
				total = total.Add(row.Charge)
			}
		}
	}
	return total
}
