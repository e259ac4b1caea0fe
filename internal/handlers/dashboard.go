package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"launchdash/internal/binding"
	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/models"
	"launchdash/internal/render"
	"launchdash/internal/validation"
)

// ChartView is the template data for one chart container.
type ChartView struct {
	ID     string
	Title  string
	URL    string
	Width  int
	Height int
	OOB    bool
}

// DashboardHandler serves the dashboard page and its chart updates.
type DashboardHandler struct {
	table    *dataset.Table
	registry *binding.Registry
	renderer *render.Renderer
	cfg      *config.Config
	dash     *config.Dashboard
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(table *dataset.Table, registry *binding.Registry, renderer *render.Renderer, cfg *config.Config, dash *config.Dashboard) *DashboardHandler {
	return &DashboardHandler{table: table, registry: registry, renderer: renderer, cfg: cfg, dash: dash}
}

// Index renders the dashboard with both charts at the initial filter.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	f, err := h.filter(c)
	if err != nil {
		return err
	}

	lo, hi := h.sliderBounds()
	return c.Render("index", MergeBranding(fiber.Map{
		"Title":       "Dashboard",
		"SiteOptions": h.table.SiteOptions(h.dash.AllSitesLabel),
		"Filter":      f,
		"PayloadLow":  lo,
		"PayloadHigh": hi,
		"Step":        h.dash.Slider.Step,
		"Marks":       h.dash.Marks(lo, hi),
		"Charts":      h.chartViews(h.registry.Update(f), f, false),
	}, h.cfg))
}

// Update recomputes the charts that depend on the control that changed and
// returns them as out-of-band swaps.
func (h *DashboardHandler) Update(c fiber.Ctx) error {
	f, err := h.filter(c)
	if err != nil {
		return htmxError(c, err.Error())
	}

	changed := validation.ParseChanged(c.Query("trigger", c.Get("HX-Trigger")))
	views := h.chartViews(h.registry.Update(f, changed...), f, true)

	return c.Render("partials/charts", fiber.Map{
		"Charts": views,
	}, "")
}

// Chart renders a single chart as an image.
func (h *DashboardHandler) Chart(c fiber.Ctx) error {
	format, err := render.ParseFormat(c.Query("format"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	f, err := h.filter(c)
	if err != nil {
		return err
	}

	spec, err := h.registry.Invoke(c.Params("output"), f)
	if err != nil {
		if errors.Is(err, binding.ErrUnknownOutput) {
			return fiber.NewError(fiber.StatusNotFound, "chart not found")
		}
		return err
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, spec, format); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	c.Set(fiber.HeaderContentType, format.ContentType())
	c.Set(fiber.HeaderCacheControl, "no-cache")
	return c.Send(buf.Bytes())
}

// filter parses the request's filter. Missing bounds default to the slider
// bounds, which cover every observed payload.
func (h *DashboardHandler) filter(c fiber.Ctx) (models.FilterState, error) {
	lo, hi := h.sliderBounds()
	f, err := validation.ParseFilter(validation.FilterParams{
		Site: c.Query("site"),
		Min:  c.Query("min"),
		Max:  c.Query("max"),
	}, lo, hi)
	if err != nil {
		return f, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return f, nil
}

func (h *DashboardHandler) sliderBounds() (float64, float64) {
	return h.dash.SliderBounds(h.table.PayloadBounds())
}

func (h *DashboardHandler) chartViews(results []binding.Result, f models.FilterState, oob bool) []ChartView {
	views := make([]ChartView, 0, len(results))
	for _, r := range results {
		views = append(views, ChartView{
			ID:     r.Output,
			Title:  r.Spec.Title,
			URL:    ChartURL(r.Output, f),
			Width:  h.renderer.Width,
			Height: h.renderer.Height,
			OOB:    oob,
		})
	}
	return views
}

// ChartURL returns the image URL for output at filter f.
func ChartURL(output string, f models.FilterState) string {
	q := url.Values{}
	q.Set("site", f.Site)
	q.Set("min", strconv.FormatFloat(f.PayloadMin, 'f', -1, 64))
	q.Set("max", strconv.FormatFloat(f.PayloadMax, 'f', -1, 64))
	return "/charts/" + url.PathEscape(output) + "?" + q.Encode()
}
