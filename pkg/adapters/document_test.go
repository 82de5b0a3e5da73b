package adapters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

func sampleDocument() domain.Document {
	return domain.Document{
		ID:     "doc-1",
		PlanID: "plan-1",
		Name:   "Business plan",
		Sections: []domain.DocSection{
			{
				Key:   "identity",
				Title: "Company identity",
				Fields: []domain.DocField{
					{Key: "company_name", Label: "Company name", Value: "Sunrise Bakery"},
					{Key: "pitch", Label: "Pitch", Value: "Bread worth crossing town for", Multiline: true},
				},
			},
			{
				Key:   "market",
				Title: "Market",
				Fields: []domain.DocField{
					{Key: "customers", Label: "Target customers", Value: "Neighborhood families"},
				},
				Tables: []domain.DocTable{
					{
						Key:     "competitors",
						Title:   "Competitors",
						Columns: []string{"Name", "Strength", "Weakness"},
						Rows: [][]string{
							{"Corner bakery", "Location", "Quality"},
						},
					},
				},
			},
		},
		UpdatedAt: time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC),
	}
}

func TestMapDocumentApiRoundTrip(t *testing.T) {
	doc := sampleDocument()

	back := MapDocumentApiToDomain(MapDocumentDomainToApi(doc))

	assert.Equal(t, doc.ID, back.ID)
	assert.Equal(t, doc.PlanID, back.PlanID)
	require.Len(t, back.Sections, 2)
	assert.Equal(t, doc.Sections[0].Fields, back.Sections[0].Fields)
	assert.Equal(t, doc.Sections[1].Tables, back.Sections[1].Tables)
	assert.True(t, doc.UpdatedAt.Equal(back.UpdatedAt))
}

func TestMapDocumentDomainToStore(t *testing.T) {
	doc := sampleDocument()

	record, fields, tables := MapDocumentDomainToStore(doc)

	assert.Equal(t, "doc-1", record.ID)
	assert.Equal(t, "plan-1", record.PlanID)
	assert.Equal(t, "Business plan", record.Title)
	assert.True(t, doc.UpdatedAt.Equal(record.SavedAt))

	require.Len(t, fields, 3)
	assert.Equal(t, "identity", fields[0].Section)
	assert.Equal(t, 0, fields[0].Position)
	assert.Equal(t, 1, fields[1].Position, "positions count per section")
	assert.Equal(t, "market", fields[2].Section)
	assert.Equal(t, 0, fields[2].Position)

	require.Len(t, tables, 1)
	assert.Equal(t, "competitors", tables[0].Key)
	assert.Equal(t, []string{"Name", "Strength", "Weakness"}, tables[0].Headers)
}

func TestMapDocumentStoreToDomain(t *testing.T) {
	doc := sampleDocument()
	record, fields, tables := MapDocumentDomainToStore(doc)

	back := MapDocumentStoreToDomain(record, fields, tables)

	assert.Equal(t, doc.ID, back.ID)
	require.Len(t, back.Sections, 2, "sections rebuild in first-seen order")
	assert.Equal(t, "identity", back.Sections[0].Key)
	assert.Equal(t, "identity", back.Sections[0].Title, "store keeps no titles, key stands in")
	require.Len(t, back.Sections[0].Fields, 2)
	assert.Equal(t, "Sunrise Bakery", back.Sections[0].Fields[0].Value)
	assert.False(t, back.Sections[0].Fields[1].Multiline, "field flags live in the template, not the store")

	require.Len(t, back.Sections[1].Tables, 1)
	assert.Equal(t, doc.Sections[1].Tables[0].Rows, back.Sections[1].Tables[0].Rows)
}
