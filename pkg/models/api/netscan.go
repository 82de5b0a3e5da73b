package api

import "time"

type AccessPoint struct {
	SSID          string  `json:"ssid"`
	BSSID         string  `json:"bssid"`
	RSSI          int     `json:"rssi"`
	SignalPercent int     `json:"signal_percent"`
	Channel       int     `json:"channel"`
	Band          string  `json:"band"`
	Security      string  `json:"security"`
	Vendor        string  `json:"vendor,omitempty"`
	Distance      float64 `json:"distance_m"`
}

type Device struct {
	IP       string `json:"ip"`
	Hostname string `json:"hostname,omitempty"`
	MAC      string `json:"mac,omitempty"`
	Vendor   string `json:"vendor,omitempty"`
	Source   string `json:"source"`
}

type UPnPDevice struct {
	Location string `json:"location"`
	Server   string `json:"server,omitempty"`
	USN      string `json:"usn"`
}

type Interface struct {
	Name     string   `json:"name"`
	MAC      string   `json:"mac,omitempty"`
	Addrs    []string `json:"addrs,omitempty"`
	Up       bool     `json:"up"`
	Loopback bool     `json:"loopback"`
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type SiteProfile struct {
	Name      string     `json:"name"`
	Interface string     `json:"interface"`
	Network   string     `json:"network,omitempty"`
	Band      string     `json:"band,omitempty"`
	Anchors   []Position `json:"anchors,omitempty"`
	NmapScan  bool       `json:"nmap_scan"`
	SSDPScan  bool       `json:"ssdp_scan"`
}

type SecuritySummary struct {
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
	Score  float64        `json:"score"`
}

type ScanSnapshot struct {
	ID              string              `json:"id"`
	Site            string              `json:"site"`
	TakenAt         time.Time           `json:"taken_at"`
	AccessPoints    []AccessPoint       `json:"access_points"`
	Devices         []Device            `json:"devices,omitempty"`
	UPnPDevices     []UPnPDevice        `json:"upnp_devices,omitempty"`
	Interfaces      []Interface         `json:"interfaces,omitempty"`
	Positions       map[string]Position `json:"positions,omitempty"`
	Security        SecuritySummary     `json:"security"`
	Recommendations []string            `json:"recommendations,omitempty"`
}

type MonitorRun struct {
	ID          string     `json:"id"`
	Site        string     `json:"site"`
	Status      string     `json:"status"`
	IntervalSec int        `json:"interval_seconds"`
	StartedAt   time.Time  `json:"started_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Ticks       int        `json:"ticks"`
	LastTakenAt *time.Time `json:"last_taken_at,omitempty"`
	Error       *string    `json:"error,omitempty"`
}

// MonitorRequest starts a monitor for a site with an optional custom
// interval.
type MonitorRequest struct {
	IntervalSec int `json:"interval_seconds,omitempty"`
}
