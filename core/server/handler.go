package server

import (
	"prefix-list-updater/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the status endpoints.
type Handler struct {
	status  StatusSource
	trigger Triggerer
	logger  *zap.Logger
}

// Healthz answers liveness probes.
func (h *Handler) Healthz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Readyz fails while the last completed cycle is failed.
func (h *Handler) Readyz(c *fiber.Ctx) error {
	if !h.status.Ready() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "failing"})
	}
	return c.JSON(fiber.Map{"status": "ready"})
}

// Status returns the last cycle report and outcome counters.
func (h *Handler) Status(c *fiber.Ctx) error {
	return c.JSON(h.status.Status())
}

// Reconcile queues an immediate cycle. Requests arriving while one is
// already queued are coalesced.
func (h *Handler) Reconcile(c *fiber.Ctx) error {
	queued := h.trigger.Trigger()
	logger.WithRequestID(h.logger, c).Info("Reconcile requested", zap.Bool("queued", queued))
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"queued": queued})
}
