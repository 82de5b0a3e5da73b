package scan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/venture-tools/plan-atlas/pkg/models/store"
	"github.com/venture-tools/plan-atlas/pkg/store/sqlite"
)

type Store interface {
	Add(ctx context.Context, record store.ScanRecord) error
	Get(ctx context.Context, id string) (*store.ScanRecord, error)
	// List returns the most recent scans for a site, newest first.
	// A non-positive limit returns everything.
	List(ctx context.Context, site string, limit int) ([]store.ScanRecord, error)
	// Clear removes every stored scan for a site and reports how many
	// rows were dropped.
	Clear(ctx context.Context, site string) (int64, error)
	// Prune keeps only the cap newest scans for a site. A non-positive
	// cap is a no-op.
	Prune(ctx context.Context, site string, cap int) error
}

type scanStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &scanStore{db: db}, nil
}

func (s *scanStore) Add(ctx context.Context, record store.ScanRecord) error {
	query := `INSERT INTO scans (id, site, taken_at, payload) VALUES (?, ?, ?, ?)`

	var err error
	if tx := sqlite.GetTransaction(ctx); tx != nil {
		_, err = tx.ExecContext(ctx, query, record.ID, record.Site, sqlite.ToMillis(record.TakenAt), string(record.Payload))
	} else {
		_, err = s.db.ExecContext(ctx, query, record.ID, record.Site, sqlite.ToMillis(record.TakenAt), string(record.Payload))
	}
	if err != nil {
		return fmt.Errorf("insert scan: %w", err)
	}
	return nil
}

func (s *scanStore) Get(ctx context.Context, id string) (*store.ScanRecord, error) {
	var record store.ScanRecord
	var takenAt int64
	var payload string

	err := s.db.QueryRowContext(ctx, `SELECT id, site, taken_at, payload FROM scans WHERE id = ?`, id).
		Scan(&record.ID, &record.Site, &takenAt, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("scan %q: %w", id, sqlite.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get scan: %w", err)
	}

	record.TakenAt = sqlite.FromMillis(takenAt)
	record.Payload = []byte(payload)
	return &record, nil
}

func (s *scanStore) List(ctx context.Context, site string, limit int) ([]store.ScanRecord, error) {
	query := `SELECT id, site, taken_at, payload FROM scans WHERE site = ? ORDER BY taken_at DESC`
	args := []any{site}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}
	defer rows.Close()

	var records []store.ScanRecord
	for rows.Next() {
		var record store.ScanRecord
		var takenAt int64
		var payload string
		if err := rows.Scan(&record.ID, &record.Site, &takenAt, &payload); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		record.TakenAt = sqlite.FromMillis(takenAt)
		record.Payload = []byte(payload)
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *scanStore) Clear(ctx context.Context, site string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM scans WHERE site = ?`, site)
	if err != nil {
		return 0, fmt.Errorf("clear scans: %w", err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear scans: %w", err)
	}
	return count, nil
}

func (s *scanStore) Prune(ctx context.Context, site string, cap int) error {
	if cap <= 0 {
		return nil
	}

	query := `DELETE FROM scans WHERE site = ? AND id NOT IN (
		SELECT id FROM scans WHERE site = ? ORDER BY taken_at DESC LIMIT ?)`
	if _, err := s.db.ExecContext(ctx, query, site, site, cap); err != nil {
		return fmt.Errorf("prune scans: %w", err)
	}
	return nil
}
