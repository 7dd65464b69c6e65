package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/akshayk/webapp-backend/internal/service"
)

type HealthHandler struct {
	healthService *service.HealthService
}

func NewHealthHandler(healthService *service.HealthService) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

// Check handles GET /healthz. A request carrying a query string or a body is
// rejected before the database is touched. Every response is uncacheable.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "no-cache")

	if len(c.Request().URI().QueryString()) > 0 || len(c.Body()) > 0 {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if !h.healthService.DatabaseConnected() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendStatus(fiber.StatusOK)
}
