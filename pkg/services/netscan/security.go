package netscan

import (
	"fmt"
	"strings"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

// ClassifySecurity buckets a raw authentication string into a security
// class. Unknown strings count as open, matching how captive or
// misreported networks should be treated: untrusted.
func ClassifySecurity(raw string) domain.SecurityClass {
	s := strings.ToLower(raw)
	switch {
	case strings.Contains(s, "wpa3"):
		return domain.SecurityWPA3
	case strings.Contains(s, "wpa2"):
		return domain.SecurityWPA2
	case strings.Contains(s, "wpa"):
		return domain.SecurityWPA
	case strings.Contains(s, "wep"):
		return domain.SecurityWEP
	default:
		return domain.SecurityOpen
	}
}

// securityClasses orders classes from weakest to strongest.
var securityClasses = []domain.SecurityClass{
	domain.SecurityOpen,
	domain.SecurityWEP,
	domain.SecurityWPA,
	domain.SecurityWPA2,
	domain.SecurityWPA3,
}

// AnalyzeSecurity tallies the networks per class and scores the site as the
// share of WPA2/WPA3 networks.
func AnalyzeSecurity(aps []domain.AccessPoint) domain.SecuritySummary {
	summary := domain.SecuritySummary{
		Counts: make(map[domain.SecurityClass]int, len(securityClasses)),
		Total:  len(aps),
	}
	for _, class := range securityClasses {
		summary.Counts[class] = 0
	}

	for _, ap := range aps {
		summary.Counts[ClassifySecurity(ap.Security)]++
	}

	if summary.Total > 0 {
		secure := summary.Counts[domain.SecurityWPA2] + summary.Counts[domain.SecurityWPA3]
		summary.Score = float64(secure) / float64(summary.Total) * 100
	}

	return summary
}

const (
	weakSignalThreshold = -70 // dBm
	crowdedDeviceCount  = 20
)

// Recommend turns a snapshot into ordered, human-readable advice. Rules
// fire from most to least urgent; a healthy site gets a single all-clear.
func Recommend(aps []domain.AccessPoint, devices []domain.Device, security domain.SecuritySummary) []string {
	var recs []string

	if open := security.Counts[domain.SecurityOpen]; open > 0 {
		recs = append(recs, fmt.Sprintf("%d open network(s) detected: enable WPA2 or WPA3 on them", open))
	}
	if legacy := security.Counts[domain.SecurityWEP] + security.Counts[domain.SecurityWPA]; legacy > 0 {
		recs = append(recs, fmt.Sprintf("%d network(s) still use WEP/WPA: upgrade them to WPA2 or WPA3", legacy))
	}

	weak := 0
	for _, ap := range aps {
		if ap.RSSI != 0 && ap.RSSI < weakSignalThreshold {
			weak++
		}
	}
	if weak > 0 {
		recs = append(recs, fmt.Sprintf("%d network(s) below %d dBm: reposition access points or add repeaters", weak, weakSignalThreshold))
	}

	if len(devices) > crowdedDeviceCount {
		recs = append(recs, fmt.Sprintf("%d devices on one segment: consider VLAN segmentation", len(devices)))
	}
	if len(aps) == 1 {
		recs = append(recs, "single access point covers the site: add coverage for redundancy")
	}

	if len(recs) == 0 {
		recs = append(recs, "network configuration looks optimal")
	}
	return recs
}
