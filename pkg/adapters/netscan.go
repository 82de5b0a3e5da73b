package adapters

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/venture-tools/plan-atlas/pkg/models/api"
	"github.com/venture-tools/plan-atlas/pkg/models/domain"
	"github.com/venture-tools/plan-atlas/pkg/models/store"
)

func MapScanSnapshotDomainToApi(snapshot *domain.ScanSnapshot) *api.ScanSnapshot {
	if snapshot == nil {
		return nil
	}

	apiSnapshot := &api.ScanSnapshot{
		ID:      snapshot.ID,
		Site:    snapshot.Site,
		TakenAt: snapshot.TakenAt,
		Security: api.SecuritySummary{
			Counts: map[string]int{},
			Total:  snapshot.Security.Total,
			Score:  snapshot.Security.Score,
		},
		Recommendations: snapshot.Recommendations,
		AccessPoints:    []api.AccessPoint{},
	}

	for class, count := range snapshot.Security.Counts {
		apiSnapshot.Security.Counts[string(class)] = count
	}

	for _, ap := range snapshot.AccessPoints {
		apiSnapshot.AccessPoints = append(apiSnapshot.AccessPoints, api.AccessPoint{
			SSID:          ap.SSID,
			BSSID:         ap.BSSID,
			RSSI:          ap.RSSI,
			SignalPercent: ap.SignalPercent,
			Channel:       ap.Channel,
			Band:          string(ap.Band),
			Security:      ap.Security,
			Vendor:        ap.Vendor,
			Distance:      ap.Distance,
		})
	}
	for _, dev := range snapshot.Devices {
		apiSnapshot.Devices = append(apiSnapshot.Devices, api.Device{
			IP:       dev.IP,
			Hostname: dev.Hostname,
			MAC:      dev.MAC,
			Vendor:   dev.Vendor,
			Source:   dev.Source,
		})
	}
	for _, upnp := range snapshot.UPnPDevices {
		apiSnapshot.UPnPDevices = append(apiSnapshot.UPnPDevices, api.UPnPDevice{
			Location: upnp.Location,
			Server:   upnp.Server,
			USN:      upnp.USN,
		})
	}
	for _, iface := range snapshot.Interfaces {
		apiSnapshot.Interfaces = append(apiSnapshot.Interfaces, api.Interface{
			Name:     iface.Name,
			MAC:      iface.MAC,
			Addrs:    iface.Addrs,
			Up:       iface.Up,
			Loopback: iface.Loopback,
		})
	}

	if len(snapshot.Positions) > 0 {
		apiSnapshot.Positions = map[string]api.Position{}
		for ssid, pos := range snapshot.Positions {
			apiSnapshot.Positions[ssid] = api.Position{X: pos.X, Y: pos.Y}
		}
	}
	return apiSnapshot
}

func MapScanSnapshotApiToDomain(snapshot api.ScanSnapshot) domain.ScanSnapshot {
	domainSnapshot := domain.ScanSnapshot{
		ID:      snapshot.ID,
		Site:    snapshot.Site,
		TakenAt: snapshot.TakenAt,
		Security: domain.SecuritySummary{
			Counts: map[domain.SecurityClass]int{},
			Total:  snapshot.Security.Total,
			Score:  snapshot.Security.Score,
		},
		Recommendations: snapshot.Recommendations,
	}

	for class, count := range snapshot.Security.Counts {
		domainSnapshot.Security.Counts[domain.SecurityClass(class)] = count
	}

	for _, ap := range snapshot.AccessPoints {
		domainSnapshot.AccessPoints = append(domainSnapshot.AccessPoints, domain.AccessPoint{
			SSID:          ap.SSID,
			BSSID:         ap.BSSID,
			RSSI:          ap.RSSI,
			SignalPercent: ap.SignalPercent,
			Channel:       ap.Channel,
			Band:          domain.Band(ap.Band),
			Security:      ap.Security,
			Vendor:        ap.Vendor,
			Distance:      ap.Distance,
		})
	}
	for _, dev := range snapshot.Devices {
		domainSnapshot.Devices = append(domainSnapshot.Devices, domain.Device{
			IP:       dev.IP,
			Hostname: dev.Hostname,
			MAC:      dev.MAC,
			Vendor:   dev.Vendor,
			Source:   dev.Source,
		})
	}
	for _, upnp := range snapshot.UPnPDevices {
		domainSnapshot.UPnPDevices = append(domainSnapshot.UPnPDevices, domain.UPnPDevice{
			Location: upnp.Location,
			Server:   upnp.Server,
			USN:      upnp.USN,
		})
	}
	for _, iface := range snapshot.Interfaces {
		domainSnapshot.Interfaces = append(domainSnapshot.Interfaces, domain.Interface{
			Name:     iface.Name,
			MAC:      iface.MAC,
			Addrs:    iface.Addrs,
			Up:       iface.Up,
			Loopback: iface.Loopback,
		})
	}

	if len(snapshot.Positions) > 0 {
		domainSnapshot.Positions = map[string]domain.Position{}
		for ssid, pos := range snapshot.Positions {
			domainSnapshot.Positions[ssid] = domain.Position{X: pos.X, Y: pos.Y}
		}
	}
	return domainSnapshot
}

// MapScanSnapshotToStore wraps a snapshot into its persisted form, the
// API shape serialized as the payload.
func MapScanSnapshotToStore(snapshot *domain.ScanSnapshot) (store.ScanRecord, error) {
	payload, err := json.Marshal(MapScanSnapshotDomainToApi(snapshot))
	if err != nil {
		return store.ScanRecord{}, fmt.Errorf("marshal scan payload: %w", err)
	}

	return store.ScanRecord{
		ID:      snapshot.ID,
		Site:    snapshot.Site,
		TakenAt: snapshot.TakenAt,
		Payload: payload,
	}, nil
}

func MapScanRecordToDomain(record store.ScanRecord) (domain.ScanSnapshot, error) {
	var snapshot api.ScanSnapshot
	if err := json.Unmarshal(record.Payload, &snapshot); err != nil {
		return domain.ScanSnapshot{}, fmt.Errorf("decode scan payload: %w", err)
	}

	domainSnapshot := MapScanSnapshotApiToDomain(snapshot)
	domainSnapshot.ID = record.ID
	domainSnapshot.Site = record.Site
	domainSnapshot.TakenAt = record.TakenAt
	return domainSnapshot, nil
}

func MapSiteProfileDomainToApi(profile domain.SiteProfile) api.SiteProfile {
	apiProfile := api.SiteProfile{
		Name:      profile.Name,
		Interface: profile.Interface,
		Network:   profile.Network,
		Band:      string(profile.Band),
		NmapScan:  profile.NmapScan,
		SSDPScan:  profile.SSDPScan,
	}
	for _, anchor := range profile.Anchors {
		apiProfile.Anchors = append(apiProfile.Anchors, api.Position{X: anchor.X, Y: anchor.Y})
	}
	return apiProfile
}

func MapMonitorRunDomainToApi(run domain.MonitorRun) api.MonitorRun {
	apiRun := api.MonitorRun{
		ID:          run.ID,
		Site:        run.Site,
		Status:      string(run.Status),
		IntervalSec: int(run.Interval / time.Second),
		StartedAt:   run.StartedAt,
		UpdatedAt:   run.UpdatedAt,
		Ticks:       run.Ticks,
		Error:       run.Error,
	}
	if !run.LastTakenAt.IsZero() {
		last := run.LastTakenAt
		apiRun.LastTakenAt = &last
	}
	return apiRun
}
