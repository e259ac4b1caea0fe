package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"launchdash/internal/binding"
	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/models"
	"launchdash/internal/validation"
)

// ChartHandler exposes chart derivations as JSON.
type ChartHandler struct {
	table    *dataset.Table
	registry *binding.Registry
	dash     *config.Dashboard
}

// NewChartHandler creates a new API chart handler.
func NewChartHandler(table *dataset.Table, registry *binding.Registry, dash *config.Dashboard) *ChartHandler {
	return &ChartHandler{table: table, registry: registry, dash: dash}
}

// OptionsResponse describes the dashboard controls.
type OptionsResponse struct {
	Sites   []dataset.SiteOption `json:"sites"`
	Payload PayloadOptions       `json:"payload"`
	Outputs []string             `json:"outputs"`
	Records int                  `json:"records"`
}

// PayloadOptions configures the payload range control. Min and Max are the
// observed payload bounds; SliderMax is Max rounded up onto the step grid.
type PayloadOptions struct {
	Min       float64   `json:"min"`
	Max       float64   `json:"max"`
	SliderMax float64   `json:"slider_max"`
	Step      float64   `json:"step"`
	Marks     []float64 `json:"marks"`
}

// Options returns the site options and payload bounds.
func (h *ChartHandler) Options(c fiber.Ctx) error {
	lo, hi := h.table.PayloadBounds()
	_, sliderMax := h.dash.SliderBounds(lo, hi)
	return jsonSuccess(c, OptionsResponse{
		Sites: h.table.SiteOptions(h.dash.AllSitesLabel),
		Payload: PayloadOptions{
			Min:       lo,
			Max:       hi,
			SliderMax: sliderMax,
			Step:      h.dash.Slider.Step,
			Marks:     h.dash.Marks(lo, sliderMax),
		},
		Outputs: h.registry.Outputs(),
		Records: h.table.Len(),
	})
}

// Get returns the chart spec for one output.
func (h *ChartHandler) Get(c fiber.Ctx) error {
	lo, hi := h.dash.SliderBounds(h.table.PayloadBounds())
	f, err := validation.ParseFilter(validation.FilterParams{
		Site: c.Query("site"),
		Min:  c.Query("min"),
		Max:  c.Query("max"),
	}, lo, hi)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	spec, err := h.registry.Invoke(c.Params("output"), f)
	if err != nil {
		if errors.Is(err, binding.ErrUnknownOutput) {
			return jsonError(c, fiber.StatusNotFound, "chart not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to derive chart")
	}

	return jsonSuccess(c, spec)
}

// UpdateRequest is the body of an update call.
type UpdateRequest struct {
	Changed []string `json:"changed"`
	State   struct {
		Site string   `json:"site"`
		Min  *float64 `json:"min"`
		Max  *float64 `json:"max"`
	} `json:"state"`
}

// Update recomputes the outputs depending on the changed inputs.
func (h *ChartHandler) Update(c fiber.Ctx) error {
	var body UpdateRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	lo, hi := h.dash.SliderBounds(h.table.PayloadBounds())
	f, err := validation.BuildFilter(body.State.Site, body.State.Min, body.State.Max, lo, hi)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	for _, in := range body.Changed {
		if in != binding.SiteInput && in != binding.PayloadInput {
			return jsonError(c, fiber.StatusBadRequest, "unknown input: "+in)
		}
	}

	out := make(map[string]models.ChartSpec)
	for _, r := range h.registry.Update(f, body.Changed...) {
		out[r.Output] = r.Spec
	}
	return jsonSuccess(c, out)
}
