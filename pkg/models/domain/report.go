package domain

import "time"

// Report is the common rendering model: statement builders and the network
// scanner both flatten their typed results into sections of named details,
// which the terminal, PDF and JSON renderers consume.
type Report struct {
	Title       string
	GeneratedAt time.Time
	Period      TimePeriod
	Sections    []ReportSection
	TotalAmount float64
	Currency    string
}

// TimePeriod represents the span a report covers
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in months
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title    string
	Summary  map[string]interface{}
	Details  []ReportDetail
	Metadata map[string]interface{}
}

// ReportDetail represents detailed information within a section
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
