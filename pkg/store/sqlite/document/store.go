package document

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/venture-tools/plan-atlas/pkg/models/store"
	"github.com/venture-tools/plan-atlas/pkg/store/sqlite"
)

type Store interface {
	// Save upserts a document with all its fields and tables. The
	// previous content is replaced wholesale, so a save is always the
	// full document, never a patch.
	Save(
		ctx context.Context,
		doc store.DocumentRecord,
		fields []store.DocumentFieldRecord,
		tables []store.DocumentTableRecord,
	) error
	Get(ctx context.Context, id string) (*store.DocumentRecord, []store.DocumentFieldRecord, []store.DocumentTableRecord, error)
	List(ctx context.Context) ([]store.DocumentRecord, error)
	Delete(ctx context.Context, id string) error
}

type documentStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &documentStore{db: db}, nil
}

func (s *documentStore) Save(
	ctx context.Context,
	doc store.DocumentRecord,
	fields []store.DocumentFieldRecord,
	tables []store.DocumentTableRecord,
) error {
	tx := sqlite.GetTransaction(ctx)
	ownTx := tx == nil
	if ownTx {
		var err error
		tx, err = s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback()
	}

	if err := saveTx(ctx, tx, doc, fields, tables); err != nil {
		return err
	}

	if ownTx {
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit document: %w", err)
		}
	}
	return nil
}

func saveTx(
	ctx context.Context,
	tx *sql.Tx,
	doc store.DocumentRecord,
	fields []store.DocumentFieldRecord,
	tables []store.DocumentTableRecord,
) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO documents (id, plan_id, title, saved_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET plan_id = excluded.plan_id, title = excluded.title, saved_at = excluded.saved_at`,
		doc.ID, doc.PlanID, doc.Title, sqlite.ToMillis(doc.SavedAt),
	)
	if err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM document_fields WHERE document_id = ?`, doc.ID); err != nil {
		return fmt.Errorf("clear fields: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM document_tables WHERE document_id = ?`, doc.ID); err != nil {
		return fmt.Errorf("clear tables: %w", err)
	}

	fieldStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO document_fields (document_id, section, key, label, value, position)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare field insert: %w", err)
	}
	defer fieldStmt.Close()

	for _, f := range fields {
		_, err := fieldStmt.ExecContext(ctx, doc.ID, f.Section, f.Key, f.Label, f.Value, f.Position)
		if err != nil {
			return fmt.Errorf("insert field %s/%s: %w", f.Section, f.Key, err)
		}
	}

	tableStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO document_tables (document_id, section, key, label, headers, rows, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare table insert: %w", err)
	}
	defer tableStmt.Close()

	for _, t := range tables {
		headers, err := json.Marshal(t.Headers)
		if err != nil {
			return fmt.Errorf("marshal headers: %w", err)
		}
		rows, err := json.Marshal(t.Rows)
		if err != nil {
			return fmt.Errorf("marshal rows: %w", err)
		}

		_, err = tableStmt.ExecContext(ctx, doc.ID, t.Section, t.Key, t.Label, string(headers), string(rows), t.Position)
		if err != nil {
			return fmt.Errorf("insert table %s/%s: %w", t.Section, t.Key, err)
		}
	}

	return nil
}

func (s *documentStore) Get(
	ctx context.Context,
	id string,
) (*store.DocumentRecord, []store.DocumentFieldRecord, []store.DocumentTableRecord, error) {
	var doc store.DocumentRecord
	var savedAt int64

	err := s.db.QueryRowContext(ctx, `SELECT id, plan_id, title, saved_at FROM documents WHERE id = ?`, id).
		Scan(&doc.ID, &doc.PlanID, &doc.Title, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, nil, fmt.Errorf("document %q: %w", id, sqlite.ErrNotFound)
	}
	if err != nil {
		return nil, nil, nil, fmt.Errorf("get document: %w", err)
	}
	doc.SavedAt = sqlite.FromMillis(savedAt)

	fields, err := s.fields(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	tables, err := s.tables(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}

	return &doc, fields, tables, nil
}

func (s *documentStore) fields(ctx context.Context, id string) ([]store.DocumentFieldRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT document_id, section, key, label, value, position
		FROM document_fields WHERE document_id = ?
		ORDER BY section, position`, id)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}
	defer rows.Close()

	var fields []store.DocumentFieldRecord
	for rows.Next() {
		var f store.DocumentFieldRecord
		if err := rows.Scan(&f.DocumentID, &f.Section, &f.Key, &f.Label, &f.Value, &f.Position); err != nil {
			return nil, fmt.Errorf("scan field: %w", err)
		}
		fields = append(fields, f)
	}
	return fields, rows.Err()
}

func (s *documentStore) tables(ctx context.Context, id string) ([]store.DocumentTableRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT document_id, section, key, label, headers, rows, position
		FROM document_tables WHERE document_id = ?
		ORDER BY section, position`, id)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var tables []store.DocumentTableRecord
	for rows.Next() {
		var t store.DocumentTableRecord
		var headers, rowsJSON string
		if err := rows.Scan(&t.DocumentID, &t.Section, &t.Key, &t.Label, &headers, &rowsJSON, &t.Position); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		if err := json.Unmarshal([]byte(headers), &t.Headers); err != nil {
			return nil, fmt.Errorf("decode headers: %w", err)
		}
		if err := json.Unmarshal([]byte(rowsJSON), &t.Rows); err != nil {
			return nil, fmt.Errorf("decode rows: %w", err)
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

func (s *documentStore) List(ctx context.Context) ([]store.DocumentRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, plan_id, title, saved_at FROM documents ORDER BY saved_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []store.DocumentRecord
	for rows.Next() {
		var doc store.DocumentRecord
		var savedAt int64
		if err := rows.Scan(&doc.ID, &doc.PlanID, &doc.Title, &savedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		doc.SavedAt = sqlite.FromMillis(savedAt)
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *documentStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("document %q: %w", id, sqlite.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM document_fields WHERE document_id = ?`, id); err != nil {
		return fmt.Errorf("delete fields: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM document_tables WHERE document_id = ?`, id); err != nil {
		return fmt.Errorf("delete tables: %w", err)
	}

	return tx.Commit()
}
