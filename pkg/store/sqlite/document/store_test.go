package document

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venture-tools/plan-atlas/pkg/models/store"
	"github.com/venture-tools/plan-atlas/pkg/store/sqlite"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupFixture(t *testing.T) fixture {
	t.Helper()

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	docStore, err := NewStore(db)
	require.NoError(t, err)

	return fixture{db: db, store: docStore}
}

func sampleRecords(id string) (store.DocumentRecord, []store.DocumentFieldRecord, []store.DocumentTableRecord) {
	doc := store.DocumentRecord{
		ID:      id,
		PlanID:  "plan-1",
		Title:   "Business plan",
		SavedAt: time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC),
	}
	fields := []store.DocumentFieldRecord{
		{DocumentID: id, Section: "presentation", Key: "founders", Label: "Founders", Value: "Two chefs", Position: 0},
		{DocumentID: id, Section: "presentation", Key: "location", Label: "Location", Value: "Lyon", Position: 1},
	}
	tables := []store.DocumentTableRecord{
		{
			DocumentID: id,
			Section:    "market",
			Key:        "swot",
			Label:      "SWOT",
			Headers:    []string{"Strengths", "Weaknesses"},
			Rows:       [][]string{{"Fresh bread", "High rent"}},
			Position:   0,
		},
	}
	return doc, fields, tables
}

func TestNewStore(t *testing.T) {
	_, err := NewStore(nil)
	assert.EqualError(t, err, "database connection is nil")
}

func TestStore_Save(t *testing.T) {
	ctx := context.Background()
	f := setupFixture(t)

	doc, fields, tables := sampleRecords("d1")

	t.Run("success - round trips fields and tables", func(t *testing.T) {
		require.NoError(t, f.store.Save(ctx, doc, fields, tables))

		loaded, loadedFields, loadedTables, err := f.store.Get(ctx, "d1")
		require.NoError(t, err)
		assert.Equal(t, "Business plan", loaded.Title)
		assert.Equal(t, "plan-1", loaded.PlanID)
		assert.True(t, doc.SavedAt.Equal(loaded.SavedAt))

		require.Len(t, loadedFields, 2)
		assert.Equal(t, "Two chefs", loadedFields[0].Value)
		require.Len(t, loadedTables, 1)
		assert.Equal(t, []string{"Strengths", "Weaknesses"}, loadedTables[0].Headers)
		assert.Equal(t, [][]string{{"Fresh bread", "High rent"}}, loadedTables[0].Rows)
	})

	t.Run("success - save replaces previous content wholesale", func(t *testing.T) {
		doc.Title = "Renamed plan"
		replacement := []store.DocumentFieldRecord{
			{DocumentID: "d1", Section: "presentation", Key: "founders", Label: "Founders", Value: "One chef", Position: 0},
		}
		require.NoError(t, f.store.Save(ctx, doc, replacement, nil))

		loaded, loadedFields, loadedTables, err := f.store.Get(ctx, "d1")
		require.NoError(t, err)
		assert.Equal(t, "Renamed plan", loaded.Title)
		require.Len(t, loadedFields, 1)
		assert.Equal(t, "One chef", loadedFields[0].Value)
		assert.Empty(t, loadedTables)

		var count int
		require.NoError(t, f.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&count))
		assert.Equal(t, 1, count, "saving twice upserts, never duplicates")
	})
}

func TestStore_Get_NotFound(t *testing.T) {
	f := setupFixture(t)

	_, _, _, err := f.store.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, sqlite.ErrNotFound)
}

func TestStore_List(t *testing.T) {
	ctx := context.Background()
	f := setupFixture(t)

	older, fields, tables := sampleRecords("d1")
	require.NoError(t, f.store.Save(ctx, older, fields, tables))

	newer, _, _ := sampleRecords("d2")
	newer.SavedAt = older.SavedAt.Add(time.Hour)
	require.NoError(t, f.store.Save(ctx, newer, nil, nil))

	records, err := f.store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "d2", records[0].ID, "newest first")
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	f := setupFixture(t)

	doc, fields, tables := sampleRecords("d1")
	require.NoError(t, f.store.Save(ctx, doc, fields, tables))

	require.NoError(t, f.store.Delete(ctx, "d1"))

	_, _, _, err := f.store.Get(ctx, "d1")
	assert.ErrorIs(t, err, sqlite.ErrNotFound)

	var count int
	require.NoError(t, f.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM document_fields`).Scan(&count))
	assert.Zero(t, count, "field rows go with the document")
	require.NoError(t, f.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM document_tables`).Scan(&count))
	assert.Zero(t, count, "table rows go with the document")

	err = f.store.Delete(ctx, "d1")
	assert.ErrorIs(t, err, sqlite.ErrNotFound)
}
