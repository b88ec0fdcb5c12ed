// Package export renders grouped collection totals as spreadsheet
// downloads for the web UI.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"boughtleaf/internal/domain"
)

const sheetName = "Collections"

// columns defines the header row of the export.
var columns = []string{
	"RegNo",
	"Supplier",
	"Route",
	"LeafType",
	"Bags",
	"Gross",
	"BagWeight",
	"Coarse",
	"Water",
	"Boiled",
	"Rejected",
	"NetWeight",
	"Records",
	"LastUpdated",
}

// Workbook builds an .xlsx file with one row per supplier/leaf-type
// group.
func Workbook(groups []domain.GroupedCollection) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("export.Workbook: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("export.Workbook: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return nil, fmt.Errorf("export.Workbook: %w", err)
		}
	}

	for i, g := range groups {
		row := i + 2
		values := []interface{}{
			g.RegNo,
			g.SupplierName,
			g.Route,
			string(g.LeafType),
			g.TotalBags,
			g.TotalGross.InexactFloat64(),
			g.TotalBagWeight.InexactFloat64(),
			g.TotalCoarse.InexactFloat64(),
			g.TotalWater.InexactFloat64(),
			g.TotalBoiled.InexactFloat64(),
			g.TotalRejected.InexactFloat64(),
			g.NetWeight.InexactFloat64(),
			g.RecordCount,
			g.LastUpdated.Format("02/01/2006 15:04"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("export.Workbook: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("export.Workbook: %w", err)
			}
		}
	}

	return f, nil
}
