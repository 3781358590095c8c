package service

import (
	"errors"
	"fmt"
	"io"

	"retail-insights/internal/features/sales/domain"
	"retail-insights/internal/features/sales/ports"
)

// ErrProductNotFound is returned when a product has no qualifying sales.
var ErrProductNotFound = errors.New("product not found")

// SalesService derives sales records from the currently loaded orders.
// Records are rebuilt on every call; nothing is cached between loads.
type SalesService struct {
	orders   ports.OrderSource
	exporter ports.RecordExporter
}

// NewSalesService creates a new SalesService.
func NewSalesService(orders ports.OrderSource, exporter ports.RecordExporter) *SalesService {
	return &SalesService{
		orders:   orders,
		exporter: exporter,
	}
}

// Records returns every sales record, or only those of product when it is non-empty.
func (s *SalesService) Records(product string) []domain.SalesRecord {
	records := Aggregate(s.orders.List())
	if product == "" {
		return records
	}
	return SeriesFor(records, product)
}

// Products returns the names of every product with qualifying sales.
func (s *SalesService) Products() []string {
	return Products(Aggregate(s.orders.List()))
}

// Series returns the chronologically sorted records of one product.
func (s *SalesService) Series(product string) ([]domain.SalesRecord, error) {
	series := SeriesFor(Aggregate(s.orders.List()), product)
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, product)
	}
	return series, nil
}

// ExportContentType is the MIME type written by Export.
func (s *SalesService) ExportContentType() string {
	return s.exporter.ContentType()
}

// Export writes every sales record through the configured exporter.
func (s *SalesService) Export(w io.Writer) error {
	if err := s.exporter.Export(w, s.Records("")); err != nil {
		return fmt.Errorf("service: failed to export sales: %w", err)
	}
	return nil
}
