package service

import (
	"errors"
	"fmt"
	"time"

	"retail-insights/internal/core/logger"
	"retail-insights/internal/features/forecasting/domain"
	"retail-insights/internal/features/forecasting/engine"
	"retail-insights/internal/features/forecasting/ports"

	"go.uber.org/zap"
)

const monthLayout = "2006-01"

// ErrProductNotFound is returned when a product has no sales history.
var ErrProductNotFound = errors.New("product not found")

// ForecastService projects a product's monthly unit sales.
type ForecastService struct {
	sales ports.SalesSource
}

// NewForecastService creates a new ForecastService.
func NewForecastService(sales ports.SalesSource) *ForecastService {
	return &ForecastService{sales: sales}
}

// ForecastProduct forecasts horizon months past the product's last observed month.
// Months without sales are absent from the history rather than counted as zero.
func (s *ForecastService) ForecastProduct(product string, model engine.Model, horizon int) (*domain.ProductForecast, error) {
	records := s.sales.Records(product)
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, product)
	}

	history := make([]domain.HistoryPoint, len(records))
	series := make([]float64, len(records))
	for i, r := range records {
		history[i] = domain.HistoryPoint{Month: r.Month, UnitsSold: r.UnitsSold, Price: r.Price}
		series[i] = float64(r.UnitsSold)
	}

	result, err := engine.Forecast(model, series, horizon)
	if err != nil {
		return nil, err
	}

	if result.FellBack {
		logger.Get().Info("Forecast model fell back",
			zap.String("product", product),
			zap.String("requested", string(result.Requested)),
			zap.String("used", string(result.Used)),
			zap.Int("points", len(series)),
		)
	}

	months := nextMonths(records[len(records)-1].Month, horizon)
	forecast := make([]domain.ForecastPoint, horizon)
	for i, v := range result.Values {
		forecast[i] = domain.ForecastPoint{Month: months[i], Units: v}
	}

	return &domain.ProductForecast{
		Product:        product,
		History:        history,
		Forecast:       forecast,
		RequestedModel: result.Requested,
		UsedModel:      result.Used,
		FellBack:       result.FellBack,
	}, nil
}

// nextMonths labels the n months following last. An unparseable month
// yields offsets like "2024-13+1".
func nextMonths(last string, n int) []string {
	out := make([]string, n)
	start, err := time.Parse(monthLayout, last)
	for h := 1; h <= n; h++ {
		if err != nil {
			out[h-1] = fmt.Sprintf("%s+%d", last, h)
			continue
		}
		out[h-1] = start.AddDate(0, h, 0).Format(monthLayout)
	}
	return out
}
