package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"launchdash/internal/binding"
	"launchdash/internal/config"
	"launchdash/internal/logging"
	"launchdash/internal/metrics"
	"launchdash/internal/models"
	"launchdash/internal/render"
	"launchdash/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	Long: `Loads the launch records once, from DATABASE_URL when set and DATA_FILE
otherwise, and serves the dashboard on SERVER_ADDR. A dataset that cannot be
loaded stops the process before it starts listening.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	initLogging(cfg)
	log := logging.New("serve")

	dash, err := config.LoadDashboard(cfg.ConfigFile)
	if err != nil {
		return err
	}

	table, database, err := loadTable(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	deps := server.Deps{Table: table, Dashboard: dash}
	if database != nil {
		defer database.Close()
		deps.DB = database
	}

	metrics.Init(table)

	deriveLog := logging.New("derive")
	deps.Registry, err = binding.NewDashboard(table, binding.WithObserver(func(output string, state models.FilterState, elapsed time.Duration) {
		metrics.ObserveDerivation(output, state, elapsed)
		deriveLog.Debug("chart derived", "output", output, "site", state.Site,
			"min", state.PayloadMin, "max", state.PayloadMax, "elapsed", elapsed)
	}))
	if err != nil {
		return fmt.Errorf("bind charts: %w", err)
	}

	deps.Renderer = render.New(cfg.ChartWidth, cfg.ChartHeight)
	deps.Renderer.Palette = deps.Renderer.Palette.With(dash.Colors)

	srv := server.New(cfg)
	srv.RegisterRoutes(deps)

	// Graceful shutdown
	errc := make(chan error, 1)
	go func() {
		errc <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("server exited")
	return nil
}
