package netscan

import (
	"fmt"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

// ComputeStats aggregates a window of snapshots. Snapshots without any
// readable RSSI do not dilute the signal average.
func ComputeStats(snapshots []*domain.ScanSnapshot) domain.ScanStats {
	stats := domain.ScanStats{Snapshots: int64(len(snapshots))}
	if len(snapshots) == 0 {
		return stats
	}

	rssiSum, rssiCount := 0.0, 0
	deviceSum := 0
	for _, snapshot := range snapshots {
		if avg := snapshot.AverageRSSI(); avg != 0 {
			rssiSum += avg
			rssiCount++
		}
		deviceSum += len(snapshot.Devices)

		taken := snapshot.TakenAt
		if stats.FirstTakenAt == nil || taken.Before(*stats.FirstTakenAt) {
			first := taken
			stats.FirstTakenAt = &first
		}
		if stats.LastTakenAt == nil || taken.After(*stats.LastTakenAt) {
			last := taken
			stats.LastTakenAt = &last
		}
	}

	if rssiCount > 0 {
		stats.AvgRSSI = rssiSum / float64(rssiCount)
	}
	stats.AvgDeviceCount = float64(deviceSum) / float64(len(snapshots))
	return stats
}

// StatsReport flattens scan history aggregates into the generic report
// shape shared with the finance statements.
func StatsReport(site string, stats domain.ScanStats) *domain.Report {
	report := &domain.Report{
		Title: fmt.Sprintf("Scan history - %s", site),
	}
	if stats.FirstTakenAt != nil && stats.LastTakenAt != nil {
		report.GeneratedAt = *stats.LastTakenAt
		report.Period = domain.TimePeriod{
			Start: *stats.FirstTakenAt,
			End:   *stats.LastTakenAt,
		}
	}

	section := domain.ReportSection{
		Title: "history",
		Details: []domain.ReportDetail{
			{Name: "scans", Value: fmt.Sprintf("%d", stats.Snapshots)},
			{Name: "average signal", Value: fmt.Sprintf("%.1f", stats.AvgRSSI), Unit: "dBm"},
			{Name: "average devices", Value: fmt.Sprintf("%.1f", stats.AvgDeviceCount)},
		},
	}
	report.Sections = append(report.Sections, section)
	return report
}
