package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	adapter "retail-insights/internal/features/orders/adapters"
	"retail-insights/internal/features/orders/domain"
	"retail-insights/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFeed is a canned implementation of ports.OrderFeed for testing.
type stubFeed struct {
	body []byte
	err  error
}

// Fetch implements OrderFeed.
func (f *stubFeed) Fetch(ctx context.Context) ([]byte, error) {
	return f.body, f.err
}

const validOrder = `{
	"id": "ORD-7",
	"customerName": "Linus",
	"orderDate": "2024-06-01",
	"status": "Shipped",
	"items": [{"name": "Router", "category": "Network", "unitPrice": 80, "quantity": 1, "total": 80}],
	"estimatedDelivery": "2024-06-04",
	"totalOrderValue": 80,
	"returnPolicy": "30 days"
}`

func setupApp(feed *stubFeed) (*fiber.App, *adapter.MemoryStore) {
	store := adapter.NewMemoryStore()
	h := NewOrderHandler(service.NewOrderService(feed, store))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Get("/orders", h.ListOrders)
	app.Post("/orders/reload", h.Reload)
	app.Get("/orders/:id", h.GetOrder)
	return app, store
}

func TestOrderHandler_Reload_Success(t *testing.T) {
	app, store := setupApp(&stubFeed{body: []byte("[" + validOrder + `, {"id": 1}]`)})

	resp, err := app.Test(httptest.NewRequest("POST", "/orders/reload", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var report service.LoadReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Accepted)
	assert.Len(t, report.Issues, 1)
	assert.Len(t, store.All(), 1)
}

func TestOrderHandler_Reload_Errors(t *testing.T) {
	tests := []struct {
		name       string
		feed       *stubFeed
		wantStatus int
		wantMsg    string
		wantReport bool
	}{
		{"FeedDown", &stubFeed{err: errors.New("connection refused")}, http.StatusBadGateway, "connection refused", false},
		{"BadJSON", &stubFeed{body: []byte("<html>")}, http.StatusBadGateway, "not valid JSON", false},
		{"NotArray", &stubFeed{body: []byte(`{"orders":[]}`)}, http.StatusUnprocessableEntity, "JSON array", false},
		{"NoValid", &stubFeed{body: []byte(`[{"id":"x"}]`)}, http.StatusUnprocessableEntity, "passed validation", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := setupApp(tt.feed)

			resp, err := app.Test(httptest.NewRequest("POST", "/orders/reload", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body ReloadErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Contains(t, body.Message, tt.wantMsg)
			assert.Equal(t, "test-ray-id", body.RayID)
			assert.Equal(t, tt.wantReport, body.Report != nil)
		})
	}
}

func TestOrderHandler_GetOrder(t *testing.T) {
	app, store := setupApp(&stubFeed{})
	store.ReplaceAll([]domain.Order{{ID: "ORD-7", CustomerName: "Linus"}})

	t.Run("Found", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/orders/ORD-7", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var order domain.Order
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&order))
		assert.Equal(t, "Linus", order.CustomerName)
	})

	t.Run("NotFound", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/orders/nope", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var errResp ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
		assert.Equal(t, "Order not found", errResp.Message)
		assert.Equal(t, "test-ray-id", errResp.RayID)
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	app, store := setupApp(&stubFeed{})
	store.ReplaceAll([]domain.Order{{ID: "A"}, {ID: "B"}})

	resp, err := app.Test(httptest.NewRequest("GET", "/orders", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var orders []domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&orders))
	assert.Len(t, orders, 2)
}
