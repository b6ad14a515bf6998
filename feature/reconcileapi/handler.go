package reconcileapi

import (
	"strconv"

	"dataset-reconciler/core/logger"
	"dataset-reconciler/feature/reconcileapi/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reconciliations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reconciliation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/reconcile", h.HandleReconcile)
	app.Get("/profiles", h.HandleListProfiles)
	app.Get("/runs", h.HandleRecentRuns)
	app.Get("/health", h.HandleHealth)
}

// HandleReconcile reconciles a master dataset against an incoming one.
// @Summary Reconcile Datasets
// @Description Compares a master dataset against an incoming one and classifies every row as added, removed or unchanged.
// @Tags reconcile
// @Accept json
// @Produce json
// @Param request body models.ReconcileRequest true "Datasets and profile"
// @Success 200 {object} models.ReconcileResponse "Reconciliation Result"
// @Failure 400 {object} map[string]string "Invalid Request"
// @Router /reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req models.ReconcileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	resp, err := h.service.Reconcile(req)
	if err != nil {
		l.Warn("Reconciliation rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Reconciliation completed",
		zap.String("profile", resp.Profile),
		zap.Int("added", resp.Summary.Added),
		zap.Int("removed", resp.Summary.Removed),
		zap.Int("unchanged", resp.Summary.Unchanged))

	return c.JSON(resp)
}

// HandleListProfiles lists the available dataset profiles.
// @Summary List Profiles
// @Description Returns the built-in dataset profiles plus the custom ones from the config file.
// @Tags reconcile
// @Accept json
// @Produce json
// @Success 200 {array} profile.Profile "Profiles"
// @Router /profiles [get]
func (h *Handler) HandleListProfiles(c *fiber.Ctx) error {
	return c.JSON(h.service.ListProfiles())
}

// HandleRecentRuns returns the newest recorded reconciliation runs.
// @Summary Recent Runs
// @Description Returns the newest reconciliation runs from the history database.
// @Tags reconcile
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of runs (default 20)"
// @Success 200 {array} history.Run "Runs"
// @Failure 503 {object} map[string]string "History Unavailable"
// @Router /runs [get]
func (h *Handler) HandleRecentRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	limit, _ := strconv.Atoi(c.Query("limit"))
	runs, err := h.service.RecentRuns(limit)
	if err != nil {
		l.Warn("Run history lookup failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(runs)
}

// HandleHealth reports service liveness.
// @Summary Health Check
// @Description Reports whether the service is up.
// @Tags reconcile
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
