package main

import (
	"context"
	"fmt"
	"log/slog"

	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/db"
	"launchdash/internal/logging"
)

// loadTable reads the dataset from the database when one is configured and
// from the CSV file otherwise. The returned database is nil for file sources
// and must be closed by the caller.
func loadTable(ctx context.Context, cfg *config.Config) (*dataset.Table, *db.DB, error) {
	log := logging.New("dataset")

	if !cfg.UsesDatabase() {
		table, err := dataset.LoadFile(cfg.DataFile)
		if err != nil {
			return nil, nil, err
		}
		log.Info("dataset loaded", "source", cfg.DataFile, "records", table.Len(), "sites", len(table.Sites()))
		return table, nil, nil
	}

	database, err := openDatabase(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	recs, err := database.LoadLaunchRecords(ctx)
	if err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("load launch records: %w", err)
	}

	table := dataset.FromRecords(recs)
	log.Info("dataset loaded", "source", "database", "records", table.Len(), "sites", len(table.Sites()))
	return table, database, nil
}

func openDatabase(ctx context.Context, cfg *config.Config) (*db.DB, error) {
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		database.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	slog.Debug("migrations completed")
	return database, nil
}

func initLogging(cfg *config.Config) {
	logging.Init(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
}
