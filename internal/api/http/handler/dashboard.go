package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/dentio/dentio_backend/internal/service/dashboard"
)

type DashboardHandler struct {
	svc dashboard.Service
}

func NewDashboardHandler(svc dashboard.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GET /dashboard/stats
func (h *DashboardHandler) Stats(c fiber.Ctx) error {
	st, err := h.svc.Stats(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, st)
}

// GET /dashboard/calendar?date=2024-01-15
func (h *DashboardHandler) Calendar(c fiber.Ctx) error {
	raw := c.Query("date")
	if raw == "" {
		return badRequest(c, "date query parameter is required")
	}

	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		date, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(c, "date must be YYYY-MM-DD or RFC3339")
		}
	}

	incidents, err := h.svc.Calendar(c.Context(), date)
	if err != nil {
		return internalError(c)
	}
	return ok(c, incidents)
}
