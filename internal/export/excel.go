package export

import (
	"fmt"

	"github.com/piwi3910/cratepack/internal/model"
	"github.com/xuri/excelize/v2"
)

const excelSheetName = "Placements"

// WriteExcel writes the same rows as WriteCSV into an .xlsx workbook,
// one "Placements" sheet, reusing the teacher's excelize dependency on
// the export rather than the import side.
func WriteExcel(path string, orderResults []*model.OrderResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", excelSheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for col, header := range outputColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(excelSheetName, cell, header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	rows := rowsFor(orderResults)
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(excelSheetName, cell, value); err != nil {
				return fmt.Errorf("write cell: %w", err)
			}
		}
	}

	return f.SaveAs(path)
}
