package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"retail-insights/internal/features/forecasting/domain"
	"retail-insights/internal/features/forecasting/engine"
	"retail-insights/internal/features/forecasting/service"
	sales "retail-insights/internal/features/sales/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSales map[string][]sales.SalesRecord

func (s staticSales) Records(product string) []sales.SalesRecord { return s[product] }

func setupApp() *fiber.App {
	source := staticSales{
		"Desk Lamp": {
			{ProductName: "Desk Lamp", Month: "2024-01", UnitsSold: 10, Price: 30},
			{ProductName: "Desk Lamp", Month: "2024-02", UnitsSold: 12, Price: 30},
			{ProductName: "Desk Lamp", Month: "2024-03", UnitsSold: 11, Price: 31},
		},
	}
	h := NewForecastHandler(service.NewForecastService(source))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Get("/forecast/:product", h.GetForecast)
	return app
}

func TestForecastHandler_GetForecast(t *testing.T) {
	app := setupApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/forecast/Desk%20Lamp?horizon=2", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var pf domain.ProductForecast
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pf))
	assert.Equal(t, "Desk Lamp", pf.Product)
	assert.Equal(t, engine.ModelSES, pf.UsedModel)
	require.Len(t, pf.Forecast, 2)
	assert.Equal(t, "2024-04", pf.Forecast[0].Month)
	assert.InDelta(t, 10.72, pf.Forecast[0].Units, 1e-9)
}

func TestForecastHandler_Fallback(t *testing.T) {
	app := setupApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/forecast/Desk%20Lamp?model=Holt-Winters", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var pf domain.ProductForecast
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pf))
	assert.Equal(t, engine.ModelHoltWinters, pf.RequestedModel)
	assert.Equal(t, engine.ModelHolt, pf.UsedModel)
	assert.True(t, pf.FellBack)
}

func TestForecastHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{"UnknownModel", "/forecast/Desk%20Lamp?model=arima", http.StatusBadRequest},
		{"ZeroHorizon", "/forecast/Desk%20Lamp?horizon=0", http.StatusBadRequest},
		{"BadHorizon", "/forecast/Desk%20Lamp?horizon=soon", http.StatusBadRequest},
		{"HorizonTooFar", "/forecast/Desk%20Lamp?horizon=121", http.StatusBadRequest},
		{"HorizonHuge", "/forecast/Desk%20Lamp?horizon=4611686018427387904", http.StatusBadRequest},
		{"HorizonOverflow", "/forecast/Desk%20Lamp?horizon=99999999999999999999", http.StatusBadRequest},
		{"UnknownProduct", "/forecast/Sofa", http.StatusNotFound},
	}

	app := setupApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.url, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "test-ray-id", body.RayID)
			assert.NotEmpty(t, body.Message)
		})
	}
}
