package domain

import "retail-insights/internal/features/forecasting/engine"

// HistoryPoint is one observed month of a product's sales.
type HistoryPoint struct {
	Month     string  `json:"month"`
	UnitsSold int     `json:"unitsSold"`
	Price     float64 `json:"price"`
}

// ForecastPoint is one projected month.
type ForecastPoint struct {
	Month string  `json:"month"`
	Units float64 `json:"units"`
}

// ProductForecast is a product's sales history together with its projection.
type ProductForecast struct {
	Product        string          `json:"product"`
	History        []HistoryPoint  `json:"history"`
	Forecast       []ForecastPoint `json:"forecast"`
	RequestedModel engine.Model    `json:"requestedModel"`
	UsedModel      engine.Model    `json:"usedModel"`
	FellBack       bool            `json:"fellBack"`
}
