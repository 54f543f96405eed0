package importer

import (
	"fmt"
	"slices"

	"captainslog/output"

	"github.com/xuri/excelize/v2"
)

type ExcelReader struct{}

// Read loads the exported entries sheet when present and the first sheet
// otherwise.
func (r *ExcelReader) Read(path string) ([]Record, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file %s: %w", path, err)
	}
	defer file.Close()

	sheetName := file.GetSheetName(0)
	if slices.Contains(file.GetSheetList(), output.ExcelSheet) {
		sheetName = output.ExcelSheet
	}
	if sheetName == "" {
		return nil, fmt.Errorf("excel file has no sheets: %s", path)
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheetName)
	}

	return recordsFromRows(rows[0], rows[1:], 2), nil
}
