package document

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/venture-tools/plan-atlas/pkg/adapters"
	"github.com/venture-tools/plan-atlas/pkg/export"
	"github.com/venture-tools/plan-atlas/pkg/handlers/httpio"
	"github.com/venture-tools/plan-atlas/pkg/models/api"
	"github.com/venture-tools/plan-atlas/pkg/models/domain"
	docsvc "github.com/venture-tools/plan-atlas/pkg/services/document"
	plansvc "github.com/venture-tools/plan-atlas/pkg/services/plan"
)

type Handler struct {
	docs  docsvc.Service
	plans plansvc.Service
}

func NewHandler(docs docsvc.Service, plans plansvc.Service) *Handler {
	return &Handler{docs: docs, plans: plans}
}

type createDocumentRequest struct {
	Name   string `json:"name"`
	PlanID string `json:"plan_id"`
}

func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	docs, err := h.docs.List(ctx)
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}

	out := make([]api.Document, 0, len(docs))
	for _, doc := range docs {
		out = append(out, adapters.MapDocumentDomainToApi(doc))
	}
	httpio.JSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpio.BadRequest(ctx, w, fmt.Errorf("decode request: %w", err))
		return
	}

	doc, err := h.docs.Create(ctx, req.Name, req.PlanID)
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}
	httpio.JSON(ctx, w, http.StatusCreated, adapters.MapDocumentDomainToApi(doc))
}

func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, err := h.docs.Get(ctx, chi.URLParam(r, "documentID"))
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}
	httpio.JSON(ctx, w, http.StatusOK, adapters.MapDocumentDomainToApi(doc))
}

// SaveDocument replaces the stored document with the request body. The
// id in the path wins over any id carried in the body.
func (h *Handler) SaveDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload api.Document
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpio.BadRequest(ctx, w, fmt.Errorf("decode request: %w", err))
		return
	}

	doc := adapters.MapDocumentApiToDomain(payload)
	doc.ID = chi.URLParam(r, "documentID")

	saved, err := h.docs.Save(ctx, doc)
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}
	httpio.JSON(ctx, w, http.StatusOK, adapters.MapDocumentDomainToApi(saved))
}

func (h *Handler) UpdateField(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var update api.FieldUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		httpio.BadRequest(ctx, w, fmt.Errorf("decode request: %w", err))
		return
	}
	if update.Key == "" {
		httpio.BadRequest(ctx, w, fmt.Errorf("field key is required"))
		return
	}

	doc, err := h.docs.UpdateField(ctx, chi.URLParam(r, "documentID"), update.Key, update.Value)
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}
	httpio.JSON(ctx, w, http.StatusOK, adapters.MapDocumentDomainToApi(doc))
}

func (h *Handler) UpdateTable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var update api.TableUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		httpio.BadRequest(ctx, w, fmt.Errorf("decode request: %w", err))
		return
	}
	if update.Key == "" {
		httpio.BadRequest(ctx, w, fmt.Errorf("table key is required"))
		return
	}

	doc, err := h.docs.UpdateTable(ctx, chi.URLParam(r, "documentID"), update.Key, update.Rows)
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}
	httpio.JSON(ctx, w, http.StatusOK, adapters.MapDocumentDomainToApi(doc))
}

func (h *Handler) ResetDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, err := h.docs.Reset(ctx, chi.URLParam(r, "documentID"))
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}
	httpio.JSON(ctx, w, http.StatusOK, adapters.MapDocumentDomainToApi(doc))
}

func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.docs.Delete(ctx, chi.URLParam(r, "documentID")); err != nil {
		httpio.Error(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RenderReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report, err := h.docs.Render(ctx, chi.URLParam(r, "documentID"))
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}
	httpio.JSON(ctx, w, http.StatusOK, adapters.MapReportDomainToApi(report))
}

// ExportPDF renders the document itself and, when the document is
// linked to a plan, appends that plan's financial statements.
func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, err := h.docs.Get(ctx, chi.URLParam(r, "documentID"))
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}

	var reports []*domain.Report
	if doc.PlanID != "" {
		reports = h.planReports(ctx, doc.PlanID)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Name+".pdf"))
	if err := export.WriteDocumentPDF(w, &doc, reports); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to write document pdf")
	}
}

// planReports builds every supported statement for the linked plan. A
// missing plan or a statement that cannot be built only shrinks the
// appendix, it never fails the export.
func (h *Handler) planReports(ctx context.Context, planID string) []*domain.Report {
	logger := zerolog.Ctx(ctx)

	if _, err := h.plans.Get(ctx, planID); err != nil {
		logger.Warn().Err(err).Str("plan", planID).Msg("linked plan not found, exporting document alone")
		return nil
	}

	var reports []*domain.Report
	for _, statementType := range h.plans.SupportedStatements() {
		report, err := h.plans.GenerateStatement(ctx, planID, statementType)
		if err != nil {
			logger.Warn().Err(err).Str("statement", statementType).Msg("skipping statement in document export")
			continue
		}
		reports = append(reports, report)
	}
	return reports
}
