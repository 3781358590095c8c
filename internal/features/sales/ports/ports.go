package ports

import (
	"io"

	orders "retail-insights/internal/features/orders/domain"
	"retail-insights/internal/features/sales/domain"
)

// OrderSource supplies the currently loaded orders.
type OrderSource interface {
	List() []orders.Order
}

// RecordExporter writes sales records in a downloadable format.
type RecordExporter interface {
	// ContentType is the MIME type of the produced document.
	ContentType() string
	// Export writes records to w.
	Export(w io.Writer, records []domain.SalesRecord) error
}
