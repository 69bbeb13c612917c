package infra

import (
	"io"

	"supplychainx/internal/model"

	"github.com/xuri/excelize/v2"
)

const criticalSheet = "Critical stock"

// WriteCriticalStockXLSX writes one row per material to w as an .xlsx workbook.
func WriteCriticalStockXLSX(w io.Writer, materials []model.RawMaterial) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", criticalSheet); err != nil {
		return err
	}
	header := []interface{}{"ID", "Name", "Unit", "Stock", "Minimum", "Missing"}
	if err := f.SetSheetRow(criticalSheet, "A1", &header); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(criticalSheet, 1, 1, bold); err != nil {
		return err
	}

	for i, m := range materials {
		var stock, min int64
		if m.Stock != nil {
			stock = *m.Stock
		}
		if m.StockMin != nil {
			min = *m.StockMin
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{m.ID, m.Name, m.Unit, stock, min, min - stock}
		if err := f.SetSheetRow(criticalSheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(criticalSheet, "B", "B", 28); err != nil {
		return err
	}
	return f.Write(w)
}
