package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	orders "retail-insights/internal/features/orders/domain"
	adapter "retail-insights/internal/features/sales/adapters"
	"retail-insights/internal/features/sales/domain"
	"retail-insights/internal/features/sales/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticOrders []orders.Order

func (s staticOrders) List() []orders.Order { return s }

type failingExporter struct{}

func (failingExporter) ContentType() string { return "text/plain" }

func (failingExporter) Export(w io.Writer, records []domain.SalesRecord) error {
	return errors.New("boom")
}

var fixture = staticOrders{
	{ID: "1", OrderDate: "2024-01-03", Status: orders.OrderStatusDelivered, Items: []orders.OrderItem{
		{Name: "Desk", Category: "Furniture", UnitPrice: 120, Quantity: 2},
		{Name: "Chair", Category: "Furniture", UnitPrice: 45, Quantity: 4},
	}},
	{ID: "2", OrderDate: "2024-02-09", Status: orders.OrderStatusCancelled, Items: []orders.OrderItem{
		{Name: "Desk", Category: "Furniture", UnitPrice: 120, Quantity: 9},
	}},
}

func setupApp(svc *service.SalesService) *fiber.App {
	h := NewSalesHandler(svc)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Get("/sales", h.ListSales)
	app.Get("/sales/products", h.ListProducts)
	app.Get("/sales/export", h.Export)
	return app
}

func TestSalesHandler_ListSales(t *testing.T) {
	app := setupApp(service.NewSalesService(fixture, adapter.NewXLSXExporter()))

	t.Run("All", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/sales", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var records []domain.SalesRecord
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
		assert.Len(t, records, 2)
	})

	t.Run("ByProduct", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/sales?product=Desk", nil))
		require.NoError(t, err)

		var records []domain.SalesRecord
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
		require.Len(t, records, 1)
		assert.Equal(t, domain.SalesRecord{ProductName: "Desk", Month: "2024-01", UnitsSold: 2, Price: 120}, records[0])
	})
}

func TestSalesHandler_ListProducts(t *testing.T) {
	app := setupApp(service.NewSalesService(fixture, adapter.NewXLSXExporter()))

	resp, err := app.Test(httptest.NewRequest("GET", "/sales/products", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var products []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	assert.Equal(t, []string{"Chair", "Desk"}, products)
}

func TestSalesHandler_Export(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		app := setupApp(service.NewSalesService(fixture, adapter.NewXLSXExporter()))

		resp, err := app.Test(httptest.NewRequest("GET", "/sales/export", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
		assert.Contains(t, resp.Header.Get("Content-Disposition"), exportFilename)

		body, _ := io.ReadAll(resp.Body)
		assert.NotEmpty(t, body)
	})

	t.Run("Failure", func(t *testing.T) {
		app := setupApp(service.NewSalesService(fixture, failingExporter{}))

		resp, err := app.Test(httptest.NewRequest("GET", "/sales/export", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "test-ray-id", body.RayID)
	})
}
