package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/logging"
)

var importFlags struct {
	file string
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the database launch records with a CSV file",
	RunE:  runImport,
}

func init() {
	f := importCmd.Flags()
	f.StringVar(&importFlags.file, "file", "", "CSV file to import (default: DATA_FILE)")
}

func runImport(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	initLogging(cfg)

	if !cfg.UsesDatabase() {
		return errors.New("DATABASE_URL is not set")
	}

	path := importFlags.file
	if path == "" {
		path = cfg.DataFile
	}
	table, err := dataset.LoadFile(path)
	if err != nil {
		return err
	}

	database, err := openDatabase(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	n, err := database.ReplaceLaunchRecords(cmd.Context(), slices.Collect(table.All()))
	if err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}

	total, err := database.CountLaunchRecords(cmd.Context())
	if err != nil {
		return err
	}

	logging.New("import").Info("launch records imported", "file", path, "records", n, "stored", total)
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d launch records from %s\n", n, path)
	return nil
}
