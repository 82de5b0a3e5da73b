package store

import "time"

// ScanRecord keeps a whole snapshot as one JSON payload. Scans are
// written once and read back whole, so there is nothing to gain from
// exploding them into columns.
type ScanRecord struct {
	ID      string
	Site    string
	TakenAt time.Time
	Payload []byte
}
