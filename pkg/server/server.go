package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	dochandlers "github.com/venture-tools/plan-atlas/pkg/handlers/document"
	nethandlers "github.com/venture-tools/plan-atlas/pkg/handlers/netscan"
	planhandlers "github.com/venture-tools/plan-atlas/pkg/handlers/plan"

	planatlasmiddleware "github.com/venture-tools/plan-atlas/pkg/server/middleware"
	"github.com/venture-tools/plan-atlas/pkg/services/config"
	docsvc "github.com/venture-tools/plan-atlas/pkg/services/document"
	"github.com/venture-tools/plan-atlas/pkg/services/netscan"
	plansvc "github.com/venture-tools/plan-atlas/pkg/services/plan"
	scanstore "github.com/venture-tools/plan-atlas/pkg/store/sqlite/scan"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Dependencies struct {
	Plans     plansvc.Service
	Documents docsvc.Service
	Sites     config.Registry
	Scanner   netscan.Scanner
	Monitors  netscan.Controller
	Scans     scanstore.Store
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	planHandler := planhandlers.NewHandler(config.Dependencies.Plans)
	docHandler := dochandlers.NewHandler(config.Dependencies.Documents, config.Dependencies.Plans)
	netHandler := nethandlers.NewHandler(
		config.Dependencies.Sites,
		config.Dependencies.Scanner,
		config.Dependencies.Monitors,
		config.Dependencies.Scans,
	)

	router := chi.NewRouter()

	router.Use(planatlasmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/plans", func(r chi.Router) {
			r.Get("/", planHandler.ListPlans)
			r.Post("/", planHandler.CreatePlan)
			r.Get("/default", planHandler.DefaultPlan)
			r.Get("/statements", planHandler.SupportedStatements)
			r.Post("/validate", planHandler.ValidatePlan)

			r.Route("/{planID}", func(r chi.Router) {
				r.Get("/", planHandler.GetPlan)
				r.Put("/", planHandler.UpdatePlan)
				r.Delete("/", planHandler.DeletePlan)
				r.Get("/statements/{statementType}", planHandler.GetStatement)
				r.Get("/indicators", planHandler.GetIndicators)
				r.Get("/schedules/loans", planHandler.GetLoanSchedules)
				r.Get("/schedules/depreciation", planHandler.GetDepreciationSchedules)
				r.Get("/export/pdf", planHandler.ExportPDF)
				r.Get("/export/cash.png", planHandler.ExportCashChart)
			})
		})

		r.Route("/documents", func(r chi.Router) {
			r.Get("/", docHandler.ListDocuments)
			r.Post("/", docHandler.CreateDocument)

			r.Route("/{documentID}", func(r chi.Router) {
				r.Get("/", docHandler.GetDocument)
				r.Put("/", docHandler.SaveDocument)
				r.Delete("/", docHandler.DeleteDocument)
				r.Patch("/fields", docHandler.UpdateField)
				r.Patch("/tables", docHandler.UpdateTable)
				r.Post("/reset", docHandler.ResetDocument)
				r.Get("/report", docHandler.RenderReport)
				r.Get("/export/pdf", docHandler.ExportPDF)
			})
		})

		r.Route("/netscan", func(r chi.Router) {
			r.Get("/sites", netHandler.ListSites)

			r.Route("/sites/{site}", func(r chi.Router) {
				r.Get("/", netHandler.GetProfile)
				r.Post("/scan", netHandler.RunScan)
				r.Get("/report", netHandler.GetReport)
				r.Get("/scans", netHandler.ListScans)
				r.Delete("/scans", netHandler.ClearScans)
				r.Get("/export/trend.png", netHandler.ExportSignalTrend)

				r.Route("/monitor", func(r chi.Router) {
					r.Post("/", netHandler.StartMonitor)
					r.Get("/", netHandler.MonitorStatus)
					r.Delete("/", netHandler.CancelMonitor)
					r.Get("/history", netHandler.MonitorHistory)
				})
			})

			r.Route("/scans/{scanID}", func(r chi.Router) {
				r.Get("/", netHandler.GetScan)
				r.Get("/export/kml", netHandler.ExportKML)
				r.Get("/export/csv", netHandler.ExportCSV)
				r.Get("/export/map.svg", netHandler.ExportTopology)
				r.Get("/export/security.png", netHandler.ExportSecurityPie)
			})
		})
	})

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
