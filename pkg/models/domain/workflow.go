package domain

import "time"

type MonitorStatus string

const (
	MonitorStatusPending   MonitorStatus = "pending"
	MonitorStatusRunning   MonitorStatus = "running"
	MonitorStatusFailed    MonitorStatus = "failed"
	MonitorStatusCancelled MonitorStatus = "cancelled"
)

// MonitorRun tracks one background scan loop over a site.
type MonitorRun struct {
	ID          string
	Site        string
	Status      MonitorStatus
	Interval    time.Duration
	StartedAt   time.Time
	UpdatedAt   time.Time
	Ticks       int
	LastTakenAt time.Time
	Error       *string
}
