package plan

import (
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
	"github.com/venture-tools/plan-atlas/pkg/services/finance"
	plansvc "github.com/venture-tools/plan-atlas/pkg/services/plan"
)

type Handler struct {
	plans plansvc.Service
}

func NewHandler(plans plansvc.Service) *Handler {
	return &Handler{plans: plans}
}

func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	plans, err := h.plans.List(ctx)
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}

	response := make([]api.Plan, 0, len(plans))
	for _, p := range plans {
		response = append(response, adapters.MapPlanDomainToApi(p))
	}
	httpio.JSON(ctx, w, http.StatusOK, response)
}

func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body api.Plan
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpio.BadRequest(ctx, w, fmt.Errorf("decode plan: %w", err))
		return
	}

	created, err := h.plans.Create(ctx, adapters.MapPlanApiToDomain(body))
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}
	httpio.JSON(ctx, w, http.StatusCreated, adapters.MapPlanDomainToApi(created))
}

// DefaultPlan returns the worked example without storing it, for
// seeding a fresh editing session.
func (h *Handler) DefaultPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	httpio.JSON(ctx, w, http.StatusOK, adapters.MapPlanDomainToApi(plansvc.DefaultPlan()))
}

func (h *Handler) SupportedStatements(w http.ResponseWriter, r *http.Request) {
	httpio.JSON(r.Context(), w, http.StatusOK, h.plans.SupportedStatements())
}

// ValidatePlan checks a submitted plan body without storing it.
func (h *Handler) ValidatePlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body api.Plan
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpio.BadRequest(ctx, w, fmt.Errorf("decode plan: %w", err))
		return
	}

	issues := h.plans.Validate(ctx, adapters.MapPlanApiToDomain(body))
	httpio.JSON(ctx, w, http.StatusOK, adapters.MapValidationIssuesDomainToApi(issues))
}

func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "planID")

	p, err := h.plans.Get(ctx, id)
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}
	httpio.JSON(ctx, w, http.StatusOK, adapters.MapPlanDomainToApi(p))
}

func (h *Handler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "planID")

	var body api.Plan
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpio.BadRequest(ctx, w, fmt.Errorf("decode plan: %w", err))
		return
	}

	p := adapters.MapPlanApiToDomain(body)
	p.ID = id

	updated, err := h.plans.Update(ctx, p)
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}
	httpio.JSON(ctx, w, http.StatusOK, adapters.MapPlanDomainToApi(updated))
}

func (h *Handler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "planID")

	if err := h.plans.Delete(ctx, id); err != nil {
		httpio.Error(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetStatement renders one statement. The default body is the JSON
// report; format=csv streams the same rows as CSV.
func (h *Handler) GetStatement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "planID")
	statementType := chi.URLParam(r, "statementType")

	report, err := h.plans.GenerateStatement(ctx, id, statementType)
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s-%s.csv", id, statementType))
		if err := export.WriteReportCSV(w, report); err != nil {
			httpio.Error(ctx, w, err)
		}
		return
	}

	httpio.JSON(ctx, w, http.StatusOK, adapters.MapReportDomainToApi(report))
}

func (h *Handler) GetIndicators(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "planID")

	indicators, err := h.plans.Indicators(ctx, id)
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}
	httpio.JSON(ctx, w, http.StatusOK, adapters.MapIndicatorsDomainToApi(*indicators))
}

func (h *Handler) GetLoanSchedules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "planID")

	schedules, err := h.plans.LoanSchedules(ctx, id)
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}

	response := make([]api.LoanSchedule, 0, len(schedules))
	for _, schedule := range schedules {
		response = append(response, adapters.MapLoanScheduleDomainToApi(schedule))
	}
	httpio.JSON(ctx, w, http.StatusOK, response)
}

func (h *Handler) GetDepreciationSchedules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "planID")

	schedules, err := h.plans.DepreciationSchedules(ctx, id)
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}

	response := make([]api.DepreciationSchedule, 0, len(schedules))
	for _, schedule := range schedules {
		response = append(response, adapters.MapDepreciationScheduleDomainToApi(schedule))
	}
	httpio.JSON(ctx, w, http.StatusOK, response)
}

// ExportPDF renders the complete financial dossier: every supported
// statement in one document.
func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "planID")

	p, err := h.plans.Get(ctx, id)
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}

	var reports []*domain.Report
	for _, statementType := range h.plans.SupportedStatements() {
		report, err := h.plans.GenerateStatement(ctx, id, statementType)
		if err != nil {
			httpio.Error(ctx, w, err)
			return
		}
		reports = append(reports, report)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", id))
	if err := export.WritePlanPDF(w, &p, reports); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to render plan pdf")
	}
}

// ExportCashChart plots the monthly closing balance as a PNG.
func (h *Handler) ExportCashChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "planID")

	p, err := h.plans.Get(ctx, id)
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}

	flow, err := finance.BuildCashFlow(&p)
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := export.WriteCashCurvePNG(w, flow); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to render cash chart")
	}
}
