package adapters

import (
	"github.com/venture-tools/plan-atlas/pkg/models/api"
	"github.com/venture-tools/plan-atlas/pkg/models/domain"
	"github.com/venture-tools/plan-atlas/pkg/models/store"
)

func MapDocumentDomainToApi(doc domain.Document) api.Document {
	apiDoc := api.Document{
		ID:     doc.ID,
		PlanID: doc.PlanID,
		Name:   doc.Name,
	}

	for _, section := range doc.Sections {
		apiSection := api.DocSection{
			Key:   section.Key,
			Title: section.Title,
		}
		for _, field := range section.Fields {
			apiSection.Fields = append(apiSection.Fields, api.DocField{
				Key:       field.Key,
				Label:     field.Label,
				Value:     field.Value,
				Multiline: field.Multiline,
			})
		}
		for _, table := range section.Tables {
			apiSection.Tables = append(apiSection.Tables, api.DocTable{
				Key:     table.Key,
				Title:   table.Title,
				Columns: table.Columns,
				Rows:    table.Rows,
			})
		}
		apiDoc.Sections = append(apiDoc.Sections, apiSection)
	}

	if !doc.CreatedAt.IsZero() {
		created := doc.CreatedAt
		apiDoc.CreatedAt = &created
	}
	if !doc.UpdatedAt.IsZero() {
		updated := doc.UpdatedAt
		apiDoc.UpdatedAt = &updated
	}
	return apiDoc
}

func MapDocumentApiToDomain(doc api.Document) domain.Document {
	domainDoc := domain.Document{
		ID:     doc.ID,
		PlanID: doc.PlanID,
		Name:   doc.Name,
	}

	for _, section := range doc.Sections {
		domainSection := domain.DocSection{
			Key:   section.Key,
			Title: section.Title,
		}
		for _, field := range section.Fields {
			domainSection.Fields = append(domainSection.Fields, domain.DocField{
				Key:       field.Key,
				Label:     field.Label,
				Value:     field.Value,
				Multiline: field.Multiline,
			})
		}
		for _, table := range section.Tables {
			domainSection.Tables = append(domainSection.Tables, domain.DocTable{
				Key:     table.Key,
				Title:   table.Title,
				Columns: table.Columns,
				Rows:    table.Rows,
			})
		}
		domainDoc.Sections = append(domainDoc.Sections, domainSection)
	}

	if doc.CreatedAt != nil {
		domainDoc.CreatedAt = *doc.CreatedAt
	}
	if doc.UpdatedAt != nil {
		domainDoc.UpdatedAt = *doc.UpdatedAt
	}
	return domainDoc
}

// MapDocumentDomainToStore flattens a document into its three record
// kinds. Field and table positions preserve section order on reload.
func MapDocumentDomainToStore(
	doc domain.Document,
) (store.DocumentRecord, []store.DocumentFieldRecord, []store.DocumentTableRecord) {
	record := store.DocumentRecord{
		ID:      doc.ID,
		PlanID:  doc.PlanID,
		Title:   doc.Name,
		SavedAt: doc.UpdatedAt,
	}

	var fields []store.DocumentFieldRecord
	var tables []store.DocumentTableRecord
	for _, section := range doc.Sections {
		for i, field := range section.Fields {
			fields = append(fields, store.DocumentFieldRecord{
				DocumentID: doc.ID,
				Section:    section.Key,
				Key:        field.Key,
				Label:      field.Label,
				Value:      field.Value,
				Position:   i,
			})
		}
		for i, table := range section.Tables {
			tables = append(tables, store.DocumentTableRecord{
				DocumentID: doc.ID,
				Section:    section.Key,
				Key:        table.Key,
				Label:      table.Title,
				Headers:    table.Columns,
				Rows:       table.Rows,
				Position:   i,
			})
		}
	}
	return record, fields, tables
}

// MapDocumentStoreToDomain rebuilds a document from its records.
// Sections come back in first-seen order with the key as title; the
// document service overlays stored content onto the full template to
// restore titles and field flags.
func MapDocumentStoreToDomain(
	record store.DocumentRecord,
	fields []store.DocumentFieldRecord,
	tables []store.DocumentTableRecord,
) domain.Document {
	doc := domain.Document{
		ID:        record.ID,
		PlanID:    record.PlanID,
		Name:      record.Title,
		UpdatedAt: record.SavedAt,
	}

	sectionIndex := map[string]int{}
	section := func(key string) *domain.DocSection {
		if idx, ok := sectionIndex[key]; ok {
			return &doc.Sections[idx]
		}
		doc.Sections = append(doc.Sections, domain.DocSection{Key: key, Title: key})
		sectionIndex[key] = len(doc.Sections) - 1
		return &doc.Sections[len(doc.Sections)-1]
	}

	for _, f := range fields {
		s := section(f.Section)
		s.Fields = append(s.Fields, domain.DocField{
			Key:   f.Key,
			Label: f.Label,
			Value: f.Value,
		})
	}
	for _, t := range tables {
		s := section(t.Section)
		s.Tables = append(s.Tables, domain.DocTable{
			Key:     t.Key,
			Title:   t.Label,
			Columns: t.Headers,
			Rows:    t.Rows,
		})
	}
	return doc
}
