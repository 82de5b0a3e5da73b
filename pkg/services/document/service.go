package document

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/venture-tools/plan-atlas/pkg/adapters"
	"github.com/venture-tools/plan-atlas/pkg/models/domain"
	docstore "github.com/venture-tools/plan-atlas/pkg/store/sqlite/document"
)

// Service manages business-plan documents. Save replaces the whole
// stored document; UpdateField and UpdateTable are single-key edits
// that load, change and persist in one step.
type Service interface {
	Create(ctx context.Context, name, planID string) (domain.Document, error)
	Get(ctx context.Context, id string) (domain.Document, error)
	List(ctx context.Context) ([]domain.Document, error)
	Save(ctx context.Context, doc domain.Document) (domain.Document, error)
	UpdateField(ctx context.Context, id, key, value string) (domain.Document, error)
	UpdateTable(ctx context.Context, id, key string, rows [][]string) (domain.Document, error)
	Reset(ctx context.Context, id string) (domain.Document, error)
	Delete(ctx context.Context, id string) error
	Render(ctx context.Context, id string) (*domain.Report, error)
}

type service struct {
	docs docstore.Store
}

func NewService(docs docstore.Store) Service {
	return &service{docs: docs}
}

// Create persists an empty template under a fresh id so later saves
// are updates of a known document.
func (s *service) Create(ctx context.Context, name, planID string) (domain.Document, error) {
	doc := DefaultTemplate()
	if name != "" {
		doc.Name = name
	}
	doc.ID = uuid.NewString()
	doc.PlanID = planID

	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	return s.Save(ctx, doc)
}

// Get loads a document and overlays its stored values onto the current
// template, so documents saved before a template change still carry
// every section.
func (s *service) Get(ctx context.Context, id string) (domain.Document, error) {
	record, fields, tables, err := s.docs.Get(ctx, id)
	if err != nil {
		return domain.Document{}, err
	}

	stored := adapters.MapDocumentStoreToDomain(*record, fields, tables)

	doc := DefaultTemplate()
	doc.ID = stored.ID
	doc.PlanID = stored.PlanID
	doc.Name = stored.Name
	doc.UpdatedAt = stored.UpdatedAt

	logger := zerolog.Ctx(ctx)
	for _, section := range stored.Sections {
		for _, field := range section.Fields {
			if target, ok := doc.Field(field.Key); ok {
				target.Value = field.Value
			} else {
				logger.Debug().Str("document", id).Str("field", field.Key).Msg("dropping field unknown to the template")
			}
		}
		for _, table := range section.Tables {
			if target, ok := doc.Table(table.Key); ok {
				target.Rows = table.Rows
			} else {
				logger.Debug().Str("document", id).Str("table", table.Key).Msg("dropping table unknown to the template")
			}
		}
	}
	return doc, nil
}

func (s *service) List(ctx context.Context) ([]domain.Document, error) {
	records, err := s.docs.List(ctx)
	if err != nil {
		return nil, err
	}

	docs := make([]domain.Document, 0, len(records))
	for _, record := range records {
		docs = append(docs, domain.Document{
			ID:        record.ID,
			PlanID:    record.PlanID,
			Name:      record.Title,
			UpdatedAt: record.SavedAt,
		})
	}
	return docs, nil
}

func (s *service) Save(ctx context.Context, doc domain.Document) (domain.Document, error) {
	if doc.ID == "" {
		return domain.Document{}, fmt.Errorf("document id is required")
	}

	doc.UpdatedAt = time.Now().UTC()
	record, fields, tables := adapters.MapDocumentDomainToStore(doc)
	if err := s.docs.Save(ctx, record, fields, tables); err != nil {
		return domain.Document{}, fmt.Errorf("save document: %w", err)
	}
	return doc, nil
}

// UpdateField sets one field by key and persists the document.
func (s *service) UpdateField(ctx context.Context, id, key, value string) (domain.Document, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return domain.Document{}, err
	}

	field, ok := doc.Field(key)
	if !ok {
		return domain.Document{}, fmt.Errorf("unknown field %q: %w", key, domain.ErrNotFound)
	}
	field.Value = value

	return s.Save(ctx, doc)
}

// UpdateTable replaces the rows of one table by key and persists the
// document. Rows are padded or truncated to the table width so a
// misaligned grid cannot be stored.
func (s *service) UpdateTable(ctx context.Context, id, key string, rows [][]string) (domain.Document, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return domain.Document{}, err
	}

	table, ok := doc.Table(key)
	if !ok {
		return domain.Document{}, fmt.Errorf("unknown table %q: %w", key, domain.ErrNotFound)
	}

	width := len(table.Columns)
	normalized := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, width)
		copy(cells, row)
		normalized = append(normalized, cells)
	}
	table.Rows = normalized

	return s.Save(ctx, doc)
}

// Reset restores the template content but keeps identity and name.
func (s *service) Reset(ctx context.Context, id string) (domain.Document, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return domain.Document{}, err
	}

	doc := DefaultTemplate()
	doc.ID = existing.ID
	doc.PlanID = existing.PlanID
	doc.Name = existing.Name

	return s.Save(ctx, doc)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.docs.Delete(ctx, id)
}

// Render flattens a document into the shared report shape. Empty
// fields are kept so the rendering shows what remains to be filled.
func (s *service) Render(ctx context.Context, id string) (*domain.Report, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		Title:       doc.Name,
		GeneratedAt: time.Now().UTC(),
	}
	for _, section := range doc.Sections {
		reportSection := domain.ReportSection{Title: section.Title}
		for _, field := range section.Fields {
			reportSection.Details = append(reportSection.Details, domain.ReportDetail{
				Name:  field.Label,
				Value: field.Value,
			})
		}
		for _, table := range section.Tables {
			reportSection.Details = append(reportSection.Details, domain.ReportDetail{
				Name:        table.Title,
				Value:       fmt.Sprintf("%d row(s)", len(table.Rows)),
				Description: joinCells(table.Columns),
			})
		}
		report.Sections = append(report.Sections, reportSection)
	}
	return report, nil
}

func joinCells(cells []string) string {
	out := ""
	for i, c := range cells {
		if i > 0 {
			out += " | "
		}
		out += c
	}
	return out
}
