package ports

import "retail-insights/internal/features/sales/domain"

// SalesSource supplies a product's monthly sales records.
type SalesSource interface {
	// Records returns the records of product; empty when it has no sales.
	Records(product string) []domain.SalesRecord
}
