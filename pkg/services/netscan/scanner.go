package netscan

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
	"github.com/venture-tools/plan-atlas/pkg/services/netscan/collectors"
)

// Scanner runs every collector enabled for a site and merges
// their results into a single snapshot.
type Scanner interface {
	Scan(ctx context.Context, profile domain.SiteProfile) (*domain.ScanSnapshot, error)
	GenerateReport(ctx context.Context, profile domain.SiteProfile) (*domain.Report, error)
}

type defaultScanner struct {
	registry collectors.Registry
}

func NewScanner(registry collectors.Registry) Scanner {
	return &defaultScanner{registry: registry}
}

// sourcesFor selects the collectors a profile enables. WLAN and
// interface enumeration always run; nmap and SSDP are opt-in.
func sourcesFor(profile domain.SiteProfile) []string {
	sources := []string{collectors.SourceWLAN, collectors.SourceInterfaces}
	if profile.NmapScan && profile.Network != "" {
		sources = append(sources, collectors.SourceNmap)
	}
	if profile.SSDPScan {
		sources = append(sources, collectors.SourceSSDP)
	}
	return sources
}

func (s *defaultScanner) Scan(ctx context.Context, profile domain.SiteProfile) (*domain.ScanSnapshot, error) {
	logger := zerolog.Ctx(ctx)
	sources := sourcesFor(profile)

	var mu sync.Mutex
	merged := collectors.Result{}

	eg, egCtx := errgroup.WithContext(ctx)
	for _, source := range sources {
		collector, err := s.registry.Create(source, profile)
		if err != nil {
			return nil, fmt.Errorf("create collector %q: %w", source, err)
		}

		eg.Go(func() error {
			res, err := collector.Collect(egCtx)
			if err != nil {
				logger.Warn().Err(err).Str("source", collector.Source()).Msg("collector failed, continuing with partial results")
				return nil
			}

			mu.Lock()
			merged.AccessPoints = append(merged.AccessPoints, res.AccessPoints...)
			merged.Devices = append(merged.Devices, res.Devices...)
			merged.UPnPDevices = append(merged.UPnPDevices, res.UPnPDevices...)
			merged.Interfaces = append(merged.Interfaces, res.Interfaces...)
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(merged.AccessPoints, func(i, j int) bool {
		return merged.AccessPoints[i].RSSI > merged.AccessPoints[j].RSSI
	})

	anchors := profile.Anchors
	if len(anchors) == 0 {
		anchors = DefaultAnchors()
	}

	snapshot := &domain.ScanSnapshot{
		ID:           uuid.NewString(),
		Site:         profile.Name,
		TakenAt:      time.Now().UTC(),
		AccessPoints: merged.AccessPoints,
		Devices:      merged.Devices,
		UPnPDevices:  merged.UPnPDevices,
		Interfaces:   merged.Interfaces,
		Positions:    EstimatePositions(merged.AccessPoints, anchors),
		Security:     AnalyzeSecurity(merged.AccessPoints),
	}
	snapshot.Recommendations = Recommend(snapshot.AccessPoints, snapshot.Devices, snapshot.Security)

	logger.Debug().
		Str("site", profile.Name).
		Int("access_points", len(snapshot.AccessPoints)).
		Int("devices", len(snapshot.Devices)).
		Msg("scan completed")

	return snapshot, nil
}

func (s *defaultScanner) GenerateReport(ctx context.Context, profile domain.SiteProfile) (*domain.Report, error) {
	snapshot, err := s.Scan(ctx, profile)
	if err != nil {
		return nil, err
	}
	return SnapshotReport(snapshot), nil
}

// SnapshotReport flattens a snapshot into the generic report shape
// shared with the finance statements.
func SnapshotReport(snapshot *domain.ScanSnapshot) *domain.Report {
	report := &domain.Report{
		Title:       fmt.Sprintf("Network scan - %s", snapshot.Site),
		GeneratedAt: snapshot.TakenAt,
		Period: domain.TimePeriod{
			Start: snapshot.TakenAt,
			End:   snapshot.TakenAt,
		},
	}

	summarySection := domain.ReportSection{
		Title: "summary",
		Details: []domain.ReportDetail{
			{Name: "access points", Value: fmt.Sprintf("%d", len(snapshot.AccessPoints)), Unit: "networks"},
			{Name: "devices", Value: fmt.Sprintf("%d", len(snapshot.Devices)), Unit: "hosts"},
			{Name: "average signal", Value: fmt.Sprintf("%.1f", snapshot.AverageRSSI()), Unit: "dBm"},
			{Name: "coverage area", Value: fmt.Sprintf("%.1f", snapshot.CoverageArea()), Unit: "m²"},
		},
	}
	report.Sections = append(report.Sections, summarySection)

	apSection := domain.ReportSection{Title: "access points"}
	for _, ap := range snapshot.AccessPoints {
		apSection.Details = append(apSection.Details, domain.ReportDetail{
			Name:        ap.SSID,
			Value:       fmt.Sprintf("%d", ap.RSSI),
			Unit:        "dBm",
			Description: fmt.Sprintf("%s, channel %d, %s, ~%.1fm", ap.BSSID, ap.Channel, ap.Security, ap.Distance),
		})
	}
	report.Sections = append(report.Sections, apSection)

	deviceSection := domain.ReportSection{Title: "devices"}
	for _, dev := range snapshot.Devices {
		name := dev.Hostname
		if name == "" {
			name = dev.IP
		}
		deviceSection.Details = append(deviceSection.Details, domain.ReportDetail{
			Name:        name,
			Value:       dev.IP,
			Description: fmt.Sprintf("%s (%s), via %s", dev.MAC, dev.Vendor, dev.Source),
		})
	}
	report.Sections = append(report.Sections, deviceSection)

	securitySection := domain.ReportSection{
		Title: "security",
		Details: []domain.ReportDetail{
			{
				Name:  "score",
				Value: fmt.Sprintf("%.1f", snapshot.Security.Score),
				Unit:  "%",
			},
		},
	}
	for _, class := range securityClasses {
		count := snapshot.Security.Counts[class]
		if count == 0 {
			continue
		}
		securitySection.Details = append(securitySection.Details, domain.ReportDetail{
			Name:  string(class),
			Value: fmt.Sprintf("%d", count),
			Unit:  "networks",
		})
	}
	for _, rec := range snapshot.Recommendations {
		securitySection.Details = append(securitySection.Details, domain.ReportDetail{
			Name:        "recommendation",
			Description: rec,
		})
	}
	report.Sections = append(report.Sections, securitySection)

	return report
}
