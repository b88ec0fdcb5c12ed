package export_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"boughtleaf/internal/domain"
	"boughtleaf/internal/export"
)

func TestWorkbook(t *testing.T) {
	groups := []domain.GroupedCollection{
		{
			RegNo:        101,
			SupplierName: "W. Perera",
			Route:        "Galaha",
			LeafType:     domain.LeafTypeNormal,
			TotalBags:    4,
			TotalGross:   decimal.RequireFromString("120.5"),
			NetWeight:    decimal.RequireFromString("110"),
			RecordCount:  3,
			LastUpdated:  time.Date(2025, time.June, 10, 14, 30, 0, 0, time.Local),
		},
		{
			RegNo:        102,
			SupplierName: "K. Silva",
			Route:        "Deltota",
			LeafType:     domain.LeafTypeSuper,
			TotalBags:    2,
			TotalGross:   decimal.RequireFromString("55"),
			NetWeight:    decimal.RequireFromString("50"),
			RecordCount:  1,
		},
	}

	f, err := export.Workbook(groups)
	assert.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Collections", "A1")
	assert.NoError(t, err)
	assert.Equal(t, "RegNo", header)

	name, err := f.GetCellValue("Collections", "B2")
	assert.NoError(t, err)
	assert.Equal(t, "W. Perera", name)

	leafType, err := f.GetCellValue("Collections", "D3")
	assert.NoError(t, err)
	assert.Equal(t, "Super", leafType)

	updated, err := f.GetCellValue("Collections", "N2")
	assert.NoError(t, err)
	assert.Equal(t, "10/06/2025 14:30", updated)
}

func TestWorkbook_Empty(t *testing.T) {
	f, err := export.Workbook(nil)
	assert.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Equal(t, []string{"Collections"}, sheets)
}
