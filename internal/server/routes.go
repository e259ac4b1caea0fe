package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"launchdash/internal/binding"
	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/handlers"
	"launchdash/internal/handlers/api"
	"launchdash/internal/render"
)

// Deps are the long-lived values the routes are built from.
type Deps struct {
	Table     *dataset.Table
	Registry  *binding.Registry
	Renderer  *render.Renderer
	Dashboard *config.Dashboard
	DB        handlers.Pinger // nil when the dataset came from a file
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(d Deps) {
	dashboardHandler := handlers.NewDashboardHandler(d.Table, d.Registry, d.Renderer, s.Cfg, d.Dashboard)
	probeHandler := handlers.NewProbeHandler(d.Table, d.DB)
	chartAPI := api.NewChartHandler(d.Table, d.Registry, d.Dashboard)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Dashboard
	s.App.Get("/", dashboardHandler.Index)
	s.App.Get("/dashboard/update", dashboardHandler.Update)
	s.App.Get("/charts/:output", dashboardHandler.Chart)

	// JSON API
	s.App.Get("/api/options", chartAPI.Options)
	s.App.Get("/api/charts/:output", chartAPI.Get)
	s.App.Post("/api/update", chartAPI.Update)
}
