package domain

import "time"

// Document is a structured business-plan dossier: ordered sections of
// free-text fields and editable tables. Section and field keys are stable
// identifiers; persistence and updates address content by key.
type Document struct {
	ID        string
	PlanID    string // optional link to the plan whose figures fill the finance section
	Name      string
	Sections  []DocSection
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DocSection struct {
	Key    string
	Title  string
	Fields []DocField
	Tables []DocTable
}

type DocField struct {
	Key       string
	Label     string
	Value     string
	Multiline bool
}

type DocTable struct {
	Key     string
	Title   string
	Columns []string
	Rows    [][]string
}

// Field returns the field with the given key, searching all sections.
func (d *Document) Field(key string) (*DocField, bool) {
	for si := range d.Sections {
		for fi := range d.Sections[si].Fields {
			if d.Sections[si].Fields[fi].Key == key {
				return &d.Sections[si].Fields[fi], true
			}
		}
	}
	return nil, false
}

// Table returns the table with the given key, searching all sections.
func (d *Document) Table(key string) (*DocTable, bool) {
	for si := range d.Sections {
		for ti := range d.Sections[si].Tables {
			if d.Sections[si].Tables[ti].Key == key {
				return &d.Sections[si].Tables[ti], true
			}
		}
	}
	return nil, false
}
