package store

import "time"

type DocumentRecord struct {
	ID      string
	PlanID  string
	Title   string
	SavedAt time.Time
}

// DocumentFieldRecord is one answered prompt of a document section.
// Position preserves the authoring order within the section.
type DocumentFieldRecord struct {
	DocumentID string
	Section    string
	Key        string
	Label      string
	Value      string
	Position   int
}

// DocumentTableRecord stores a grid field. Headers and rows are
// serialized as JSON columns.
type DocumentTableRecord struct {
	DocumentID string
	Section    string
	Key        string
	Label      string
	Headers    []string
	Rows       [][]string
	Position   int
}
