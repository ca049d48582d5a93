package export

import (
	"fmt"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/brandaudit/backend/internal/domain"
	"github.com/brandaudit/backend/internal/usecase"
)

// maxSheetNameLen is the xlsx format's hard limit on sheet names.
const maxSheetNameLen = 31

// sheetNameInvalid holds the characters the xlsx format forbids in sheet
// names.
const sheetNameInvalid = `:\/?*[]`

// productHeaders is the column layout of the Audit and per-brand sheets.
var productHeaders = []string{
	"ASIN", "Item Name", "Brand", "Stock", "Gross Sales", "Ad Sales",
	"Ad Spend", "ACOS", "TACOS", "ROAS", "Organic Sales", "CTR", "CVR", "DRR",
	"Campaigns",
}

// summaryHeaders is the column layout of the Brand Summary sheet.
var summaryHeaders = []string{
	"Brand", "Products", "Stock", "Gross Sales", "Ad Sales", "Ad Spend",
	"ACOS", "TACOS", "ROAS", "DRR",
}

// ExcelExporter renders an audit run as a multi-sheet workbook: the full
// Audit sheet, the Brand Summary rollup, and one sheet per known brand,
// mirroring the dashboard views.
type ExcelExporter struct {
	brands []string
}

// NewExcelExporter creates an exporter with the brand labels to emit
// per-brand sheets for, in declaration order.
func NewExcelExporter(brands []string) *ExcelExporter {
	return &ExcelExporter{brands: brands}
}

// Workbook builds the workbook in memory and returns its bytes.
func (e *ExcelExporter) Workbook(result *domain.AuditResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := e.writeProductSheet(f, "Audit", headerStyle, result.Products); err != nil {
		return nil, err
	}
	if err := e.writeSummarySheet(f, headerStyle, result.BrandSummary); err != nil {
		return nil, err
	}
	for _, brand := range e.brands {
		name := SheetName(brand)
		if err := e.writeProductSheet(f, name, headerStyle, usecase.BrandView(result, brand)); err != nil {
			return nil, err
		}
	}

	// The default sheet excelize creates is replaced by Audit.
	if idx, err := f.GetSheetIndex("Audit"); err == nil {
		f.SetActiveSheet(idx)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	log.Printf("[EXPORT] run %s: workbook with %d sheets, %d products", result.RunID, 2+len(e.brands), len(result.Products))
	return buf.Bytes(), nil
}

// writeProductSheet writes one sheet of product rows.
func (e *ExcelExporter) writeProductSheet(f *excelize.File, sheet string, headerStyle int, products []domain.ProductRecord) error {
	if err := ensureSheet(f, sheet); err != nil {
		return err
	}
	if err := writeHeaderRow(f, sheet, headerStyle, productHeaders); err != nil {
		return err
	}

	for i, p := range products {
		row := i + 2
		values := []interface{}{
			p.ASIN, p.DisplayName, p.Brand, p.Stock, p.GrossSales, p.AdSales,
			p.AdSpend, p.ACOS, p.TACOS, p.ROAS, p.OrganicSales, p.CTR, p.CVR, p.DRR,
			p.Campaigns,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}
	return setColumnWidths(f, sheet, len(productHeaders))
}

// writeSummarySheet writes the brand rollup sheet.
func (e *ExcelExporter) writeSummarySheet(f *excelize.File, headerStyle int, rollups []domain.BrandRollup) error {
	const sheet = "Brand Summary"
	if err := ensureSheet(f, sheet); err != nil {
		return err
	}
	if err := writeHeaderRow(f, sheet, headerStyle, summaryHeaders); err != nil {
		return err
	}

	for i, r := range rollups {
		row := i + 2
		values := []interface{}{
			r.Brand, r.Products, r.Stock, r.GrossSales, r.AdSales, r.AdSpend,
			r.ACOS, r.TACOS, r.ROAS, r.DRR,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}
	return setColumnWidths(f, sheet, len(summaryHeaders))
}

// ensureSheet creates or reuses a sheet. The first sheet excelize creates
// is named "Sheet1"; the Audit sheet takes its place.
func ensureSheet(f *excelize.File, name string) error {
	if name == "Audit" {
		if err := f.SetSheetName("Sheet1", name); err == nil {
			return nil
		}
	}
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	return nil
}

// writeHeaderRow writes and styles the header row of a sheet.
func writeHeaderRow(f *excelize.File, sheet string, style int, headers []string) error {
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("failed to style header: %w", err)
		}
	}
	return nil
}

// setColumnWidths applies a uniform readable width.
func setColumnWidths(f *excelize.File, sheet string, columns int) error {
	for i := 0; i < columns; i++ {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to build column name: %w", err)
		}
		if err := f.SetColWidth(sheet, col, col, 16); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}
	return nil
}

// SheetName sanitizes a brand label into a legal xlsx sheet name: invalid
// characters replaced, then truncated to the 31-character limit.
func SheetName(brand string) string {
	name := brand
	for _, c := range sheetNameInvalid {
		name = strings.ReplaceAll(name, string(c), " ")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Sheet"
	}
	if runes := []rune(name); len(runes) > maxSheetNameLen {
		name = strings.TrimSpace(string(runes[:maxSheetNameLen]))
	}
	return name
}
