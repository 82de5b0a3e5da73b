package netscan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/venture-tools/plan-atlas/pkg/adapters"
	"github.com/venture-tools/plan-atlas/pkg/export"
	"github.com/venture-tools/plan-atlas/pkg/handlers/httpio"
	"github.com/venture-tools/plan-atlas/pkg/models/api"
	"github.com/venture-tools/plan-atlas/pkg/models/domain"
	"github.com/venture-tools/plan-atlas/pkg/services/config"
	"github.com/venture-tools/plan-atlas/pkg/services/netscan"
	scanstore "github.com/venture-tools/plan-atlas/pkg/store/sqlite/scan"
)

const defaultTrendWindow = 50

type Handler struct {
	sites    config.Registry
	scanner  netscan.Scanner
	monitors netscan.Controller
	scans    scanstore.Store
}

func NewHandler(
	sites config.Registry,
	scanner netscan.Scanner,
	monitors netscan.Controller,
	scans scanstore.Store,
) *Handler {
	return &Handler{
		sites:    sites,
		scanner:  scanner,
		monitors: monitors,
		scans:    scans,
	}
}

func (h *Handler) ListSites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sites, err := h.sites.GetSites(ctx)
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}
	httpio.JSON(ctx, w, http.StatusOK, sites)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile, err := h.sites.GetProfile(ctx, chi.URLParam(r, "site"))
	if err != nil {
		httpio.BadRequest(ctx, w, err)
		return
	}
	httpio.JSON(ctx, w, http.StatusOK, adapters.MapSiteProfileDomainToApi(profile))
}

// RunScan sweeps the site once and stores the snapshot so it stays
// addressable by id afterwards.
func (h *Handler) RunScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile, err := h.sites.GetProfile(ctx, chi.URLParam(r, "site"))
	if err != nil {
		httpio.BadRequest(ctx, w, err)
		return
	}

	snapshot, err := h.scanner.Scan(ctx, profile)
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}

	if record, err := adapters.MapScanSnapshotToStore(snapshot); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("scan completed but could not be encoded for storage")
	} else if err := h.scans.Add(ctx, record); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("scan", snapshot.ID).Msg("scan completed but could not be stored")
	}

	httpio.JSON(ctx, w, http.StatusOK, adapters.MapScanSnapshotDomainToApi(snapshot))
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile, err := h.sites.GetProfile(ctx, chi.URLParam(r, "site"))
	if err != nil {
		httpio.BadRequest(ctx, w, err)
		return
	}

	report, err := h.scanner.GenerateReport(ctx, profile)
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}
	httpio.JSON(ctx, w, http.StatusOK, adapters.MapReportDomainToApi(report))
}

func (h *Handler) ListScans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := queryLimit(r, 0)
	if err != nil {
		httpio.BadRequest(ctx, w, err)
		return
	}

	records, err := h.scans.List(ctx, chi.URLParam(r, "site"), limit)
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}

	out := make([]*api.ScanSnapshot, 0, len(records))
	for _, record := range records {
		snapshot, err := adapters.MapScanRecordToDomain(record)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("scan", record.ID).Msg("skipping unreadable scan record")
			continue
		}
		out = append(out, adapters.MapScanSnapshotDomainToApi(&snapshot))
	}
	httpio.JSON(ctx, w, http.StatusOK, out)
}

// ClearScans drops the stored scan history of a site.
func (h *Handler) ClearScans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	site := chi.URLParam(r, "site")
	count, err := h.scans.Clear(ctx, site)
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}

	zerolog.Ctx(ctx).Info().Str("site", site).Int64("removed", count).Msg("scan history cleared")
	httpio.JSON(ctx, w, http.StatusOK, map[string]int64{"removed": count})
}

func (h *Handler) GetScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snapshot, err := h.loadSnapshot(ctx, chi.URLParam(r, "scanID"))
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}
	httpio.JSON(ctx, w, http.StatusOK, adapters.MapScanSnapshotDomainToApi(snapshot))
}

// StartMonitor launches the background loop for a site. The loop is
// detached from the request context so it survives the response.
func (h *Handler) StartMonitor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile, err := h.sites.GetProfile(ctx, chi.URLParam(r, "site"))
	if err != nil {
		httpio.BadRequest(ctx, w, err)
		return
	}

	var req api.MonitorRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpio.BadRequest(ctx, w, fmt.Errorf("decode request: %w", err))
			return
		}
	}

	var cfg netscan.RunnerConfig
	if req.IntervalSec > 0 {
		cfg.Interval = time.Duration(req.IntervalSec) * time.Second
	}

	run, err := h.monitors.Start(context.WithoutCancel(ctx), profile, cfg)
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}
	httpio.JSON(ctx, w, http.StatusCreated, adapters.MapMonitorRunDomainToApi(run))
}

func (h *Handler) CancelMonitor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.monitors.Cancel(ctx, chi.URLParam(r, "site")); err != nil {
		httpio.Error(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) MonitorStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	run, err := h.monitors.Status(ctx, chi.URLParam(r, "site"))
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}
	httpio.JSON(ctx, w, http.StatusOK, adapters.MapMonitorRunDomainToApi(run))
}

func (h *Handler) MonitorHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	history, err := h.monitors.History(ctx, chi.URLParam(r, "site"))
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}

	out := make([]*api.ScanSnapshot, 0, len(history))
	for _, snapshot := range history {
		out = append(out, adapters.MapScanSnapshotDomainToApi(snapshot))
	}
	httpio.JSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) ExportKML(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snapshot, err := h.loadSnapshot(ctx, chi.URLParam(r, "scanID"))
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.google-earth.kml+xml")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", snapshot.Site+".kml"))
	if err := export.WriteKML(w, snapshot); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to write kml")
	}
}

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snapshot, err := h.loadSnapshot(ctx, chi.URLParam(r, "scanID"))
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", snapshot.Site+".csv"))
	if err := export.WriteScanCSV(w, snapshot); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to write scan csv")
	}
}

func (h *Handler) ExportTopology(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snapshot, err := h.loadSnapshot(ctx, chi.URLParam(r, "scanID"))
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	export.WriteTopologySVG(w, snapshot)
}

func (h *Handler) ExportSecurityPie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snapshot, err := h.loadSnapshot(ctx, chi.URLParam(r, "scanID"))
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}
	if snapshot.Security.Total == 0 {
		httpio.BadRequest(ctx, w, fmt.Errorf("scan has no access points to chart"))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := export.WriteSecurityPiePNG(w, snapshot.Security); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to write security chart")
	}
}

// ExportSignalTrend charts average signal strength over the stored
// scans of a site, oldest to newest.
func (h *Handler) ExportSignalTrend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := queryLimit(r, defaultTrendWindow)
	if err != nil {
		httpio.BadRequest(ctx, w, err)
		return
	}

	records, err := h.scans.List(ctx, chi.URLParam(r, "site"), limit)
	if err != nil {
		httpio.Error(ctx, w, err)
		return
	}

	history := make([]*domain.ScanSnapshot, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		snapshot, err := adapters.MapScanRecordToDomain(records[i])
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("scan", records[i].ID).Msg("skipping unreadable scan record")
			continue
		}
		history = append(history, &snapshot)
	}
	if len(history) < 2 {
		httpio.BadRequest(ctx, w, fmt.Errorf("need at least two stored scans, have %d", len(history)))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := export.WriteSignalTrendPNG(w, history); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to write signal trend chart")
	}
}

func (h *Handler) loadSnapshot(ctx context.Context, id string) (*domain.ScanSnapshot, error) {
	record, err := h.scans.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot, err := adapters.MapScanRecordToDomain(*record)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func queryLimit(r *http.Request, fallback int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid limit %q", raw)
	}
	return limit, nil
}
