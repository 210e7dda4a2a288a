package catalog

import (
	"catalog-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Post("/reconcile", h.HandleReconcile)
	group.Get("/summary", h.HandleSummary)
}

// HandleReconcile runs one reconciliation pass over the catalog source tree.
// @Summary Reconcile Catalog
// @Description Walk the catalog source tree and reconcile it into the database.
// @Tags catalog
// @Produce json
// @Success 200 {object} reconcile.Report "Pass Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Reconcile(c.Context())
	if err != nil {
		l.Error("Reconciliation pass failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Info("Reconciliation pass completed",
		zap.Int("companies", report.Companies),
		zap.Int("warnings", report.Warnings),
		zap.Int("asset_failures", report.AssetFailures),
	)
	return c.JSON(report)
}

// HandleSummary returns persisted entity counts.
// @Summary Catalog Summary
// @Description Get the persisted row count per catalog entity table.
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]int64 "Entity Counts"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/summary [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	counts, err := h.service.Summary(c.Context())
	if err != nil {
		l.Error("Summary query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(counts)
}
