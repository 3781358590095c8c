package adapter

import (
	"fmt"
	"io"

	"retail-insights/internal/features/sales/domain"

	"github.com/xuri/excelize/v2"
)

const salesSheet = "Sales"

// XLSXExporter implements ports.RecordExporter as an Excel workbook.
type XLSXExporter struct{}

// NewXLSXExporter creates a new XLSXExporter.
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// ContentType returns the OOXML spreadsheet MIME type.
func (e *XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Export writes records as one row each under a header row.
func (e *XLSXExporter) Export(w io.Writer, records []domain.SalesRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", salesSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := []interface{}{"Product", "Month", "Units Sold", "Average Price"}
	if err := f.SetSheetRow(salesSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{r.ProductName, r.Month, r.UnitsSold, r.Price}
		if err := f.SetSheetRow(salesSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
