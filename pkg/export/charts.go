package export

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

// WriteCashCurvePNG plots the monthly closing cash balance.
func WriteCashCurvePNG(w io.Writer, flow *domain.CashFlowStatement) error {
	if len(flow.Months) < 2 {
		return fmt.Errorf("cash flow needs at least two months to plot")
	}

	xs := make([]float64, len(flow.Months))
	ys := make([]float64, len(flow.Months))
	for i, m := range flow.Months {
		xs[i] = float64(m.Month)
		ys[i] = m.Closing.InexactFloat64()
	}

	graph := chart.Chart{
		Title:  "Cash position",
		Width:  900,
		Height: 450,
		XAxis:  chart.XAxis{Name: "Month"},
		YAxis:  chart.YAxis{Name: "EUR"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "closing balance",
				XValues: xs,
				YValues: ys,
			},
		},
	}
	return graph.Render(chart.PNG, w)
}

// WriteSignalTrendPNG plots the average RSSI across a monitor history.
func WriteSignalTrendPNG(w io.Writer, history []*domain.ScanSnapshot) error {
	if len(history) < 2 {
		return fmt.Errorf("signal trend needs at least two snapshots")
	}

	xs := make([]float64, len(history))
	ys := make([]float64, len(history))
	for i, snapshot := range history {
		xs[i] = float64(i + 1)
		ys[i] = snapshot.AverageRSSI()
	}

	graph := chart.Chart{
		Title:  "Average signal",
		Width:  900,
		Height: 450,
		XAxis:  chart.XAxis{Name: "Scan"},
		YAxis:  chart.YAxis{Name: "dBm"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "average RSSI",
				XValues: xs,
				YValues: ys,
			},
		},
	}
	return graph.Render(chart.PNG, w)
}

// WriteSecurityPiePNG renders the per-class network counts as a pie.
func WriteSecurityPiePNG(w io.Writer, summary domain.SecuritySummary) error {
	classes := []domain.SecurityClass{
		domain.SecurityOpen,
		domain.SecurityWEP,
		domain.SecurityWPA,
		domain.SecurityWPA2,
		domain.SecurityWPA3,
	}

	var values []chart.Value
	for _, class := range classes {
		count := summary.Counts[class]
		if count == 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%d)", class, count),
			Value: float64(count),
		})
	}
	if len(values) == 0 {
		return fmt.Errorf("no networks to chart")
	}

	pie := chart.PieChart{
		Title:  "Security classes",
		Width:  512,
		Height: 512,
		Values: values,
	}
	return pie.Render(chart.PNG, w)
}
