package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/skillpath/pkg/dataset"
	"github.com/artem13815/skillpath/pkg/health"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	svc      health.ReadinessUseCase
	datasets *dataset.Holder
}

func NewHealthHandler(svc health.ReadinessUseCase, datasets *dataset.Holder) *HealthHandler {
	return &HealthHandler{svc: svc, datasets: datasets}
}

type liveness struct {
	Status   string         `json:"status"`
	Datasets *dataset.Stats `json:"datasets,omitempty"`
}

// Health: liveness plus row counts of the snapshot currently served.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} liveness
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := liveness{Status: "ok"}
	if h.datasets != nil {
		if store := h.datasets.Current(); store != nil {
			stats := store.Stats()
			resp.Datasets = &stats
		}
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// Ready: readiness check over loaded datasets (and the database when it is the source).
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "not_ready",
			"details": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ready"})
}
