package runs

import (
	"errors"

	"catalog-reconciler/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for runs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the run routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/runs")
	group.Get("/", h.HandleListRuns)
	group.Post("/", h.HandleExecuteRun)
	group.Get("/:id", h.HandleGetRun)
}

// HandleListRuns returns recent runs.
// @Summary List Runs
// @Description List recent reconciliation runs, newest first.
// @Tags runs
// @Produce json
// @Param limit query int false "Maximum number of runs" default(20)
// @Success 200 {array} runs.Run "Runs"
// @Failure 503 {object} map[string]string "History disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /runs [get]
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	list, err := h.service.List(c.Context(), c.QueryInt("limit", DefaultListLimit))
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(list)
}

// HandleGetRun returns one run with its deltas.
// @Summary Get Run
// @Description Get a reconciliation run and every delta it classified.
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} runs.Run "Run"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /runs/{id} [get]
func (h *Handler) HandleGetRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	run, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(run)
}

// HandleExecuteRun reconciles the bucket inputs now.
// @Summary Execute Run
// @Description Reconcile the configured bucket inputs, publish the report and record the run.
// @Tags runs
// @Produce json
// @Success 201 {object} runs.Run "Run"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /runs [post]
func (h *Handler) HandleExecuteRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	run, err := h.service.Execute(c.Context())
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.Status(fiber.StatusCreated).JSON(run)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrRunNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrHistoryDisabled):
		status = fiber.StatusServiceUnavailable
	default:
		l.Error("Run request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
