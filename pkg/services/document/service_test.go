package document

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
	"github.com/venture-tools/plan-atlas/pkg/store/sqlite"
	docstore "github.com/venture-tools/plan-atlas/pkg/store/sqlite/document"
)

func setupService(t *testing.T) Service {
	t.Helper()

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store, err := docstore.NewStore(db)
	require.NoError(t, err)

	return NewService(store)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	t.Run("success - named document linked to a plan", func(t *testing.T) {
		doc, err := svc.Create(ctx, "Bakery dossier", "plan-1")
		require.NoError(t, err)
		assert.NotEmpty(t, doc.ID)
		assert.Equal(t, "Bakery dossier", doc.Name)
		assert.Equal(t, "plan-1", doc.PlanID)

		loaded, err := svc.Get(ctx, doc.ID)
		require.NoError(t, err)
		assert.Equal(t, "Bakery dossier", loaded.Name)
		assert.Len(t, loaded.Sections, 6)
	})

	t.Run("success - empty name falls back to the template title", func(t *testing.T) {
		doc, err := svc.Create(ctx, "", "")
		require.NoError(t, err)
		assert.Equal(t, "Business plan", doc.Name)
	})
}

func TestDefaultTemplate_Canvas(t *testing.T) {
	doc := DefaultTemplate()

	var canvas *domain.DocSection
	for i := range doc.Sections {
		if doc.Sections[i].Key == "canvas" {
			canvas = &doc.Sections[i]
		}
	}
	require.NotNil(t, canvas)
	require.Len(t, canvas.Fields, 9)

	keys := make([]string, 0, len(canvas.Fields))
	for _, f := range canvas.Fields {
		keys = append(keys, f.Key)
		assert.True(t, f.Multiline, f.Key)
	}
	assert.Equal(t, []string{
		"bmc_partners", "bmc_activities", "bmc_resources",
		"bmc_value_proposition", "bmc_relationships", "bmc_channels",
		"bmc_segments", "bmc_costs", "bmc_revenues",
	}, keys)

	targets, ok := doc.Table("targets")
	require.True(t, ok)
	assert.Equal(t, []string{"Segment", "Benefits"}, targets.Columns)
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	t.Run("error - unknown document", func(t *testing.T) {
		_, err := svc.Get(ctx, "ghost")
		assert.ErrorIs(t, err, sqlite.ErrNotFound)
	})

	t.Run("success - stored values overlay the template", func(t *testing.T) {
		doc, err := svc.Create(ctx, "", "")
		require.NoError(t, err)

		_, err = svc.UpdateField(ctx, doc.ID, "founders", "Two pastry chefs")
		require.NoError(t, err)

		loaded, err := svc.Get(ctx, doc.ID)
		require.NoError(t, err)

		field, ok := loaded.Field("founders")
		require.True(t, ok)
		assert.Equal(t, "Two pastry chefs", field.Value)
		assert.True(t, field.Multiline, "template flags survive the store round trip")
	})
}

func TestService_UpdateField(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	doc, err := svc.Create(ctx, "", "")
	require.NoError(t, err)

	t.Run("success - persists the new value", func(t *testing.T) {
		updated, err := svc.UpdateField(ctx, doc.ID, "location", "Lyon, Croix-Rousse")
		require.NoError(t, err)

		field, ok := updated.Field("location")
		require.True(t, ok)
		assert.Equal(t, "Lyon, Croix-Rousse", field.Value)
	})

	t.Run("error - unknown key", func(t *testing.T) {
		_, err := svc.UpdateField(ctx, doc.ID, "nonexistent", "value")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorContains(t, err, `unknown field "nonexistent"`)
	})
}

func TestService_UpdateTable(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	doc, err := svc.Create(ctx, "", "")
	require.NoError(t, err)

	t.Run("success - rows are padded and truncated to the column count", func(t *testing.T) {
		updated, err := svc.UpdateTable(ctx, doc.ID, "swot", [][]string{
			{"Fresh bread"},
			{"Small team", "High rent", "Tourism", "Chains", "extra cell"},
		})
		require.NoError(t, err)

		table, ok := updated.Table("swot")
		require.True(t, ok)
		require.Len(t, table.Rows, 2)
		assert.Equal(t, []string{"Fresh bread", "", "", ""}, table.Rows[0])
		assert.Equal(t, []string{"Small team", "High rent", "Tourism", "Chains"}, table.Rows[1])
	})

	t.Run("error - unknown key", func(t *testing.T) {
		_, err := svc.UpdateTable(ctx, doc.ID, "nonexistent", nil)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorContains(t, err, `unknown table "nonexistent"`)
	})
}

func TestService_Reset(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	doc, err := svc.Create(ctx, "Named dossier", "plan-7")
	require.NoError(t, err)
	_, err = svc.UpdateField(ctx, doc.ID, "pricing", "Premium")
	require.NoError(t, err)

	reset, err := svc.Reset(ctx, doc.ID)
	require.NoError(t, err)

	assert.Equal(t, doc.ID, reset.ID)
	assert.Equal(t, "Named dossier", reset.Name)
	assert.Equal(t, "plan-7", reset.PlanID)

	field, ok := reset.Field("pricing")
	require.True(t, ok)
	assert.Empty(t, field.Value)
}

func TestService_SaveAndList(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	t.Run("error - save requires an id", func(t *testing.T) {
		_, err := svc.Save(ctx, domain.Document{Name: "No id"})
		assert.EqualError(t, err, "document id is required")
	})

	t.Run("success - list returns light records", func(t *testing.T) {
		first, err := svc.Create(ctx, "First", "")
		require.NoError(t, err)
		_, err = svc.Create(ctx, "Second", "")
		require.NoError(t, err)

		docs, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		for _, d := range docs {
			assert.Empty(t, d.Sections)
			assert.False(t, d.UpdatedAt.IsZero())
		}

		require.NoError(t, svc.Delete(ctx, first.ID))
		docs, err = svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, docs, 1)
	})
}

func TestService_Render(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	doc, err := svc.Create(ctx, "", "")
	require.NoError(t, err)
	_, err = svc.UpdateField(ctx, doc.ID, "project_summary", "A neighborhood bakery")
	require.NoError(t, err)

	report, err := svc.Render(ctx, doc.ID)
	require.NoError(t, err)

	assert.Equal(t, "Business plan", report.Title)
	require.Len(t, report.Sections, 6)

	presentation := report.Sections[0]
	assert.Equal(t, "Presentation", presentation.Title)
	require.NotEmpty(t, presentation.Details)
	assert.Equal(t, "Project summary", presentation.Details[1].Name)
	assert.Equal(t, "A neighborhood bakery", presentation.Details[1].Value)

	market := report.Sections[1]
	var swot *domain.ReportDetail
	for i := range market.Details {
		if market.Details[i].Name == "SWOT" {
			swot = &market.Details[i]
		}
	}
	require.NotNil(t, swot)
	assert.Equal(t, "1 row(s)", swot.Value)
	assert.Equal(t, "Strengths | Weaknesses | Opportunities | Threats", swot.Description)
}
