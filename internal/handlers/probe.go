package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"launchdash/internal/dataset"
)

// Pinger is implemented by the optional database source.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	table *dataset.Table
	db    Pinger
}

// NewProbeHandler creates a new probe handler. database may be nil when the
// dataset was loaded from a file.
func NewProbeHandler(table *dataset.Table, database Pinger) *ProbeHandler {
	return &ProbeHandler{table: table, db: database}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK once the dataset is loaded and its database, if any, is reachable.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.table == nil || h.table.Len() == 0 {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "dataset not loaded",
		})
	}

	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "error",
				"error":  "database unavailable",
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"records": h.table.Len(),
	})
}
