package api

import "time"

type Document struct {
	ID        string       `json:"id"`
	PlanID    string       `json:"plan_id,omitempty"`
	Name      string       `json:"name"`
	Sections  []DocSection `json:"sections"`
	CreatedAt *time.Time   `json:"created_at,omitempty"`
	UpdatedAt *time.Time   `json:"updated_at,omitempty"`
}

type DocSection struct {
	Key    string     `json:"key"`
	Title  string     `json:"title"`
	Fields []DocField `json:"fields,omitempty"`
	Tables []DocTable `json:"tables,omitempty"`
}

type DocField struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Value     string `json:"value"`
	Multiline bool   `json:"multiline,omitempty"`
}

type DocTable struct {
	Key     string     `json:"key"`
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// FieldUpdate sets the value of one field addressed by key.
type FieldUpdate struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// TableUpdate replaces the rows of one table addressed by key.
type TableUpdate struct {
	Key  string     `json:"key"`
	Rows [][]string `json:"rows"`
}
