package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"launchdash/internal/binding"
	"launchdash/internal/config"
	"launchdash/internal/render"
	"launchdash/internal/validation"
)

var renderFlags struct {
	site   string
	min    string
	max    string
	out    string
	format string
	width  int
	height int
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write both charts for a filter to image files",
	Long: `Renders every dashboard chart for the given site and payload range without
starting the server. Blank bounds default to the dataset's payload range.`,
	RunE: runRender,
}

func init() {
	f := renderCmd.Flags()
	f.StringVar(&renderFlags.site, "site", "ALL", "launch site, or ALL")
	f.StringVar(&renderFlags.min, "min", "", "minimum payload mass in kg")
	f.StringVar(&renderFlags.max, "max", "", "maximum payload mass in kg")
	f.StringVarP(&renderFlags.out, "out", "o", "charts", "output directory")
	f.StringVar(&renderFlags.format, "format", "png", "image format: png or svg")
	f.IntVar(&renderFlags.width, "width", 0, "image width (default: CHART_WIDTH)")
	f.IntVar(&renderFlags.height, "height", 0, "image height (default: CHART_HEIGHT)")
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	initLogging(cfg)

	format, err := render.ParseFormat(renderFlags.format)
	if err != nil {
		return err
	}

	dash, err := config.LoadDashboard(cfg.ConfigFile)
	if err != nil {
		return err
	}

	table, database, err := loadTable(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	if database != nil {
		database.Close()
	}

	lo, hi := table.PayloadBounds()
	filter, err := validation.ParseFilter(validation.FilterParams{
		Site: renderFlags.site,
		Min:  renderFlags.min,
		Max:  renderFlags.max,
	}, lo, hi)
	if err != nil {
		return err
	}

	registry, err := binding.NewDashboard(table)
	if err != nil {
		return fmt.Errorf("bind charts: %w", err)
	}

	width, height := cfg.ChartWidth, cfg.ChartHeight
	if renderFlags.width > 0 {
		width = renderFlags.width
	}
	if renderFlags.height > 0 {
		height = renderFlags.height
	}
	renderer := render.New(width, height)
	renderer.Palette = renderer.Palette.With(dash.Colors)

	if err := os.MkdirAll(renderFlags.out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, r := range registry.Update(filter) {
		path := filepath.Join(renderFlags.out, r.Output+"."+string(format))
		if err := writeChart(renderer, path, r, format); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s\n", r.Spec.Title, path)
	}
	return nil
}

func writeChart(renderer *render.Renderer, path string, r binding.Result, format render.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := renderer.Render(f, r.Spec, format); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", r.Output, err)
	}
	return f.Close()
}
