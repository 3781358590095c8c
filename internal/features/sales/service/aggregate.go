package service

import (
	"sort"

	orders "retail-insights/internal/features/orders/domain"
	"retail-insights/internal/features/sales/domain"

	"github.com/shopspring/decimal"
)

type accumulator struct {
	units  int
	prices []decimal.Decimal
}

// Aggregate collapses orders into one SalesRecord per (product, month).
// Only orders whose status realizes a sale contribute. Records are sorted by
// month, then product; the function keeps no state between calls.
func Aggregate(list []orders.Order) []domain.SalesRecord {
	acc := map[domain.SalesKey]*accumulator{}

	for _, o := range list {
		if !o.Status.RealizesSale() {
			continue
		}
		month := o.Month()
		for _, item := range o.Items {
			key := domain.SalesKey{ProductName: item.Name, Month: month}
			a, ok := acc[key]
			if !ok {
				a = &accumulator{}
				acc[key] = a
			}
			a.units += item.Quantity
			a.prices = append(a.prices, decimal.NewFromFloat(item.UnitPrice))
		}
	}

	records := make([]domain.SalesRecord, 0, len(acc))
	for key, a := range acc {
		records = append(records, domain.SalesRecord{
			ProductName: key.ProductName,
			Month:       key.Month,
			UnitsSold:   a.units,
			Price:       meanPrice(a.prices),
		})
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Month != records[j].Month {
			return records[i].Month < records[j].Month
		}
		return records[i].ProductName < records[j].ProductName
	})

	return records
}

// meanPrice is the arithmetic mean rounded half away from zero to 2 places.
func meanPrice(prices []decimal.Decimal) float64 {
	if len(prices) == 0 {
		return 0
	}
	mean := decimal.Sum(prices[0], prices[1:]...).Div(decimal.NewFromInt(int64(len(prices))))
	return mean.Round(2).InexactFloat64()
}

// Products returns the distinct product names in records, sorted.
func Products(records []domain.SalesRecord) []string {
	seen := map[string]struct{}{}
	names := make([]string, 0)
	for _, r := range records {
		if _, ok := seen[r.ProductName]; ok {
			continue
		}
		seen[r.ProductName] = struct{}{}
		names = append(names, r.ProductName)
	}
	sort.Strings(names)
	return names
}

// SeriesFor returns the records of one product in chronological order.
func SeriesFor(records []domain.SalesRecord, product string) []domain.SalesRecord {
	series := make([]domain.SalesRecord, 0)
	for _, r := range records {
		if r.ProductName == product {
			series = append(series, r)
		}
	}
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Month < series[j].Month
	})
	return series
}
