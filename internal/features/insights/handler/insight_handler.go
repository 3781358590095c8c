package handler

import (
	"errors"
	"net/http"

	"retail-insights/internal/core/logger"
	"retail-insights/internal/features/forecasting/engine"
	forecasting "retail-insights/internal/features/forecasting/service"
	"retail-insights/internal/features/insights/domain"
	"retail-insights/internal/features/insights/ports"
	"retail-insights/internal/features/insights/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	clientIDHeader  = "X-Client-ID"
	defaultClientID = "anonymous"
)

// InsightHandler serves AI commentary and the support chat.
type InsightHandler struct {
	forecasts *forecasting.ForecastService
	insights  *service.InsightService
}

// NewInsightHandler creates a new instance of InsightHandler.
func NewInsightHandler(f *forecasting.ForecastService, s *service.InsightService) *InsightHandler {
	return &InsightHandler{
		forecasts: f,
		insights:  s,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	Message string `json:"message"`
	RayID   string `json:"ray_id"`
}

// ForecastInsightRequest selects the forecast to comment on.
type ForecastInsightRequest struct {
	Product string `json:"product"`
	Model   string `json:"model"`
	Horizon int    `json:"horizon"`
}

// ChatRequest is one support chat turn.
type ChatRequest struct {
	Query   string               `json:"query"`
	History []domain.ChatMessage `json:"history"`
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

func clientID(c *fiber.Ctx) string {
	if id := c.Get(clientIDHeader); id != "" {
		return id
	}
	return defaultClientID
}

// AnalyzeForecast forecasts a product and asks the AI to comment on it.
// @Summary AI commentary on a product forecast
// @Tags insights
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "Client identifier for discarding superseded requests"
// @Param request body ForecastInsightRequest true "Product and model"
// @Success 200 {object} domain.ForecastInsight
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /insights/forecast [post]
func (h *InsightHandler) AnalyzeForecast(c *fiber.Ctx) error {
	var req ForecastInsightRequest
	if err := c.BodyParser(&req); err != nil {
		return h.respond(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Product == "" {
		return h.respond(c, http.StatusBadRequest, "product is required")
	}

	model := engine.ModelSES
	if req.Model != "" {
		var err error
		if model, err = engine.ParseModel(req.Model); err != nil {
			return h.fail(c, err)
		}
	}
	if req.Horizon == 0 {
		req.Horizon = 1
	}

	pf, err := h.forecasts.ForecastProduct(req.Product, model, req.Horizon)
	if err != nil {
		return h.fail(c, err)
	}

	insight, err := h.insights.AnalyzeForecast(c.UserContext(), clientID(c), pf)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(http.StatusOK).JSON(domain.ForecastInsight{Forecast: pf, Insight: insight})
}

// Chat answers a customer-support question.
// @Summary Support chat
// @Tags insights
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "Client identifier for discarding superseded requests"
// @Param request body ChatRequest true "Query and recent history"
// @Success 200 {object} domain.ChatReply
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /chat [post]
func (h *InsightHandler) Chat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return h.respond(c, http.StatusBadRequest, "Invalid request body")
	}

	reply, err := h.insights.Chat(c.UserContext(), clientID(c), req.Query, req.History)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(http.StatusOK).JSON(reply)
}

func (h *InsightHandler) fail(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := err.Error()

	switch {
	case errors.Is(err, engine.ErrUnknownModel), errors.Is(err, engine.ErrInvalidHorizon),
		errors.Is(err, service.ErrEmptyQuery), errors.Is(err, domain.ErrInvalidRole):
		status = http.StatusBadRequest
	case errors.Is(err, forecasting.ErrProductNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrStaleRequest):
		status = http.StatusConflict
	case errors.Is(err, ports.ErrNotConfigured):
		status = http.StatusServiceUnavailable
		msg = "AI service is not configured"
	case errors.Is(err, service.ErrAIServiceFailed):
		status = http.StatusBadGateway
		msg = "AI service failed"
	}

	if status >= http.StatusInternalServerError {
		logger.Get().Error("Insight request failed",
			zap.String("ray_id", rayID(c)),
			zap.Int("status", status),
			zap.Error(err),
		)
	}
	return h.respond(c, status, msg)
}

func (h *InsightHandler) respond(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID(c),
	})
}
