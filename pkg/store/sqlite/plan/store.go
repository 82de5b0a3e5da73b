package plan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/venture-tools/plan-atlas/pkg/models/store"
	"github.com/venture-tools/plan-atlas/pkg/store/sqlite"
)

type Store interface {
	Add(ctx context.Context, record store.PlanRecord) error
	Update(ctx context.Context, record store.PlanRecord) error
	Get(ctx context.Context, id string) (*store.PlanRecord, error)
	List(ctx context.Context) ([]store.PlanRecord, error)
	Delete(ctx context.Context, id string) error
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type planStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &planStore{db: db}, nil
}

func (s *planStore) conn(ctx context.Context) querier {
	if tx := sqlite.GetTransaction(ctx); tx != nil {
		return tx
	}
	return s.db
}

func (s *planStore) Add(ctx context.Context, record store.PlanRecord) error {
	query := `
		INSERT INTO plans (id, name, company, payload, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := s.conn(ctx).ExecContext(ctx, query,
		record.ID,
		record.Name,
		record.Company,
		string(record.Payload),
		sqlite.ToMillis(record.CreatedAt),
		sqlite.ToMillis(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

func (s *planStore) Update(ctx context.Context, record store.PlanRecord) error {
	query := `
		UPDATE plans SET name = ?, company = ?, payload = ?, updated_at = ?
		WHERE id = ?`

	res, err := s.conn(ctx).ExecContext(ctx, query,
		record.Name,
		record.Company,
		string(record.Payload),
		sqlite.ToMillis(record.UpdatedAt),
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("update plan: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update plan: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("plan %q: %w", record.ID, sqlite.ErrNotFound)
	}
	return nil
}

func (s *planStore) Get(ctx context.Context, id string) (*store.PlanRecord, error) {
	query := `
		SELECT id, name, company, payload, created_at, updated_at
		FROM plans WHERE id = ?`

	row := s.conn(ctx).QueryRowContext(ctx, query, id)

	record, err := scanPlan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("plan %q: %w", id, sqlite.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return record, nil
}

func (s *planStore) List(ctx context.Context) ([]store.PlanRecord, error) {
	query := `
		SELECT id, name, company, payload, created_at, updated_at
		FROM plans ORDER BY updated_at DESC`

	rows, err := s.conn(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var records []store.PlanRecord
	for rows.Next() {
		record, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("list plans: %w", err)
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

func (s *planStore) Delete(ctx context.Context, id string) error {
	res, err := s.conn(ctx).ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("plan %q: %w", id, sqlite.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (*store.PlanRecord, error) {
	var record store.PlanRecord
	var payload string
	var createdAt, updatedAt int64

	if err := row.Scan(&record.ID, &record.Name, &record.Company, &payload, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	record.Payload = []byte(payload)
	record.CreatedAt = sqlite.FromMillis(createdAt)
	record.UpdatedAt = sqlite.FromMillis(updatedAt)
	return &record, nil
}
