package handler

import (
	"errors"
	"net/http"
	"net/url"

	"retail-insights/internal/core/logger"
	"retail-insights/internal/features/forecasting/engine"
	"retail-insights/internal/features/forecasting/service"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

const defaultHorizon = 1

// ForecastHandler handles forecast requests.
type ForecastHandler struct {
	service *service.ForecastService
}

// NewForecastHandler creates a new instance of ForecastHandler.
func NewForecastHandler(s *service.ForecastService) *ForecastHandler {
	return &ForecastHandler{
		service: s,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	Message string `json:"message"`
	RayID   string `json:"ray_id"`
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

// ForecastRequest is the parsed form of a forecast query.
type ForecastRequest struct {
	Product string
	Model   engine.Model
	Horizon int
}

// ParseForecastRequest reads the product path parameter and the model and
// horizon query parameters, applying defaults.
func ParseForecastRequest(c *fiber.Ctx) (ForecastRequest, error) {
	product, err := url.PathUnescape(c.Params("product"))
	if err != nil {
		return ForecastRequest{}, err
	}

	model := engine.ModelSES
	if q := c.Query("model"); q != "" {
		if model, err = engine.ParseModel(q); err != nil {
			return ForecastRequest{}, err
		}
	}

	horizon := defaultHorizon
	if q := c.Query("horizon"); q != "" {
		horizon, err = cast.ToIntE(q)
		if err != nil {
			return ForecastRequest{}, errors.Join(engine.ErrInvalidHorizon, err)
		}
	}

	return ForecastRequest{Product: product, Model: model, Horizon: horizon}, nil
}

// GetForecast projects a product's monthly unit sales.
// @Summary Forecast product sales
// @Description Falls back to a simpler model when the history is too short; the response reports the model used.
// @Tags forecast
// @Produce json
// @Param product path string true "Product name"
// @Param model query string false "ses, holt or holt-winters" default(ses)
// @Param horizon query int false "Months to forecast" default(1)
// @Success 200 {object} domain.ProductForecast
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /forecast/{product} [get]
func (h *ForecastHandler) GetForecast(c *fiber.Ctx) error {
	req, err := ParseForecastRequest(c)
	if err != nil {
		return h.fail(c, err)
	}

	pf, err := h.service.ForecastProduct(req.Product, req.Model, req.Horizon)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(http.StatusOK).JSON(pf)
}

func (h *ForecastHandler) fail(c *fiber.Ctx, err error) error {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.Get().Error("Forecast failed",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
	}
	return c.Status(status).JSON(ErrorResponse{
		Message: err.Error(),
		RayID:   rayID(c),
	})
}

// StatusFor maps forecasting errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, engine.ErrUnknownModel), errors.Is(err, engine.ErrInvalidHorizon):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrProductNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
