package products

import (
	"errors"

	"catalog-reconciler/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for products.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the product routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/products")
	group.Get("/:id", h.HandleGetProductDetail)
}

// HandleGetProductDetail returns the reconciliation of a single product.
// @Summary Get Product Detail
// @Description Get baseline rows, crawl record, deltas and planned actions for one product.
// @Tags products
// @Produce json
// @Param id path string true "Product or seller id (e.g. 'A000000123' or 'oliveyoung_A000000123')"
// @Success 200 {object} products.Detail "Product Detail"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /products/{id} [get]
func (h *Handler) HandleGetProductDetail(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRayID(h.service.logger, c)

	detail, err := h.service.GetDetail(c.Context(), id)
	if errors.Is(err, ErrProductNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Product detail failed", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(detail)
}
