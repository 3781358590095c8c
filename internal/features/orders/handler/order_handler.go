package handler

import (
	"errors"
	"net/http"

	"retail-insights/internal/core/logger"
	"retail-insights/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests related to orders.
type OrderHandler struct {
	// service is the OrderService instance.
	service *service.OrderService
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(s *service.OrderService) *OrderHandler {
	return &OrderHandler{
		service: s,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// ReloadErrorResponse is returned when a reload fails after parsing the feed.
type ReloadErrorResponse struct {
	ErrorResponse
	// Report is present when the feed was parsed but rejected as a whole.
	Report *service.LoadReport `json:"report,omitempty"`
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

// ListOrders returns every loaded order.
// @Summary List loaded orders
// @Tags orders
// @Produce json
// @Success 200 {array} domain.Order
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.List())
}

// GetOrder returns one loaded order by ID.
// @Summary Get Order by ID
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")

	order, err := h.service.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Order not found",
				RayID:   rayID(c),
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(order)
}

// Reload fetches the order feed again and replaces the loaded set.
// @Summary Reload the order feed
// @Description Fetches, normalizes and validates the feed. Invalid orders are skipped and reported.
// @Tags orders
// @Produce json
// @Success 200 {object} service.LoadReport
// @Failure 422 {object} ReloadErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /orders/reload [post]
func (h *OrderHandler) Reload(c *fiber.Ctx) error {
	report, err := h.service.Load(c.UserContext())
	if err == nil {
		return c.Status(http.StatusOK).JSON(report)
	}

	logger.Get().Error("Failed to reload order feed",
		zap.String("ray_id", rayID(c)),
		zap.Error(err),
	)

	status := http.StatusInternalServerError
	msg := err.Error()

	switch {
	case errors.Is(err, service.ErrFeedUnavailable), errors.Is(err, service.ErrInvalidFeedJSON):
		status = http.StatusBadGateway
	case errors.Is(err, service.ErrFeedNotArray):
		status = http.StatusUnprocessableEntity
		msg = "The order feed must return a JSON array of orders; check the feed URL."
	case errors.Is(err, service.ErrNoValidOrders):
		status = http.StatusUnprocessableEntity
		msg = "No order in the feed passed validation; the feed format is probably wrong."
	}

	return c.Status(status).JSON(ReloadErrorResponse{
		ErrorResponse: ErrorResponse{Message: msg, RayID: rayID(c)},
		Report:        report,
	})
}
