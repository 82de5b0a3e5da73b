package store

import "time"

// PlanRecord carries a business plan as stored: assumptions and lines
// are serialized into the payload, identity and timestamps stay
// relational for listing.
type PlanRecord struct {
	ID        string
	Name      string
	Company   string
	Payload   []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}
