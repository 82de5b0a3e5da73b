package domain

import (
	"math"
	"time"
)

type Band string

const (
	Band24GHz Band = "2.4GHz"
	Band5GHz  Band = "5GHz"
)

type SecurityClass string

const (
	SecurityOpen SecurityClass = "open"
	SecurityWEP  SecurityClass = "wep"
	SecurityWPA  SecurityClass = "wpa"
	SecurityWPA2 SecurityClass = "wpa2"
	SecurityWPA3 SecurityClass = "wpa3"
)

// AccessPoint is one observed wireless network.
type AccessPoint struct {
	SSID          string
	BSSID         string
	RSSI          int // dBm, 0 when unknown
	SignalPercent int
	Channel       int
	Band          Band
	Security      string // raw authentication string as reported by the OS
	Vendor        string
	Distance      float64 // estimated meters, -1 when unknown
}

// Device is a host discovered on the local network.
type Device struct {
	IP       string
	Hostname string
	MAC      string
	Vendor   string
	Source   string // nmap, ssdp
}

// UPnPDevice is a responder to an SSDP search.
type UPnPDevice struct {
	Location string
	Server   string
	USN      string
}

// Interface is a local network interface.
type Interface struct {
	Name     string
	MAC      string
	Addrs    []string
	Up       bool
	Loopback bool
}

// Position is an estimated planar placement of an access point, in the
// same arbitrary meter grid as the trilateration anchors.
type Position struct {
	X float64
	Y float64
}

// SecuritySummary tallies access points per security class. Score is the
// share of WPA2/WPA3 networks, 0-100.
type SecuritySummary struct {
	Counts map[SecurityClass]int
	Total  int
	Score  float64
}

// ScanSnapshot is the full result of one scan pass over a site.
type ScanSnapshot struct {
	ID              string
	Site            string
	TakenAt         time.Time
	AccessPoints    []AccessPoint
	Devices         []Device
	UPnPDevices     []UPnPDevice
	Interfaces      []Interface
	Positions       map[string]Position // keyed by SSID
	Security        SecuritySummary
	Recommendations []string
}

// AverageRSSI returns the mean RSSI over access points with a known
// signal, or 0 when none report one.
func (s ScanSnapshot) AverageRSSI() float64 {
	sum, n := 0, 0
	for _, ap := range s.AccessPoints {
		if ap.RSSI != 0 {
			sum += ap.RSSI
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// CoverageArea returns the summed coverage disks of all located access
// points, in square meters.
func (s ScanSnapshot) CoverageArea() float64 {
	area := 0.0
	for _, ap := range s.AccessPoints {
		if ap.Distance > 0 {
			area += math.Pi * ap.Distance * ap.Distance
		}
	}
	return area
}

// ScanStats aggregates a window of persisted snapshots.
type ScanStats struct {
	Snapshots      int64
	AvgRSSI        float64
	AvgDeviceCount float64
	FirstTakenAt   *time.Time
	LastTakenAt    *time.Time
}
