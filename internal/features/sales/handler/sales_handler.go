package handler

import (
	"bytes"
	"net/http"

	"retail-insights/internal/core/logger"
	"retail-insights/internal/features/sales/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const exportFilename = "sales.xlsx"

// SalesHandler serves aggregated monthly sales.
type SalesHandler struct {
	service *service.SalesService
}

// NewSalesHandler creates a new instance of SalesHandler.
func NewSalesHandler(s *service.SalesService) *SalesHandler {
	return &SalesHandler{
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

// ListSales returns monthly sales records.
// @Summary List monthly sales
// @Description One record per product and month. Cancelled orders are excluded.
// @Tags sales
// @Produce json
// @Param product query string false "Restrict to one product"
// @Success 200 {array} domain.SalesRecord
// @Router /sales [get]
func (h *SalesHandler) ListSales(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.Records(c.Query("product")))
}

// ListProducts returns the names of products with qualifying sales.
// @Summary List products
// @Tags sales
// @Produce json
// @Success 200 {array} string
// @Router /sales/products [get]
func (h *SalesHandler) ListProducts(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.Products())
}

// Export downloads every sales record as a spreadsheet.
// @Summary Export monthly sales
// @Tags sales
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} ErrorResponse
// @Router /sales/export [get]
func (h *SalesHandler) Export(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.service.Export(&buf); err != nil {
		logger.Get().Error("Failed to export sales",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Failed to export sales",
			RayID:   rayID(c),
		})
	}

	c.Attachment(exportFilename)
	c.Set(fiber.HeaderContentType, h.service.ExportContentType())
	return c.Status(http.StatusOK).Send(buf.Bytes())
}
