package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is wrapped by stores when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

const PlanTableSchema = `
	CREATE TABLE IF NOT EXISTS plans (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		company TEXT,
		payload TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);
`

const DocumentTableSchema = `
	CREATE TABLE IF NOT EXISTS documents (
		id TEXT NOT NULL PRIMARY KEY,
		plan_id TEXT,
		title TEXT NOT NULL,
		saved_at INTEGER NOT NULL
	);
`

const DocumentFieldTableSchema = `
	CREATE TABLE IF NOT EXISTS document_fields (
		document_id TEXT NOT NULL,
		section TEXT NOT NULL,
		key TEXT NOT NULL,
		label TEXT,
		value TEXT,
		position INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (document_id, section, key)
	);
`

const DocumentTableGridSchema = `
	CREATE TABLE IF NOT EXISTS document_tables (
		document_id TEXT NOT NULL,
		section TEXT NOT NULL,
		key TEXT NOT NULL,
		label TEXT,
		headers TEXT NOT NULL,
		rows TEXT NOT NULL,
		position INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (document_id, section, key)
	);
`

const ScanTableSchema = `
	CREATE TABLE IF NOT EXISTS scans (
		id TEXT NOT NULL PRIMARY KEY,
		site TEXT NOT NULL,
		taken_at INTEGER NOT NULL,
		payload TEXT NOT NULL
	);
`

var bootQueries = []string{
	PlanTableSchema,
	DocumentTableSchema,
	DocumentFieldTableSchema,
	DocumentTableGridSchema,
	ScanTableSchema,
}

type Settings struct {
	DbPath string
}

// NewDB opens the embedded database and creates missing tables. The
// path ":memory:" yields a throwaway in-memory database.
func NewDB(settings Settings) (*sql.DB, error) {
	if settings.DbPath == "" {
		return nil, fmt.Errorf("database path is required")
	}

	dsn := settings.DbPath
	if dsn != ":memory:" {
		dsn += "?_journal_mode=WAL&_busy_timeout=5000"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	for _, query := range bootQueries {
		if _, err := db.ExecContext(context.Background(), query); err != nil {
			db.Close()
			return nil, fmt.Errorf("boot query: %w", err)
		}
	}

	return db, nil
}

// ToMillis normalizes timestamps to millisecond precision for storage.
func ToMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// FromMillis restores a stored timestamp in UTC.
func FromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}
