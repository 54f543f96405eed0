package output

import (
	"fmt"

	"captainslog/journal"

	"github.com/xuri/excelize/v2"
)

// ExcelSheet is the worksheet that holds exported entries.
const ExcelSheet = "Entries"

type ExcelRenderer struct{}

func (r *ExcelRenderer) Render(entries []journal.Entry, _ RenderOptions) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(file.GetSheetName(0), ExcelSheet); err != nil {
		return nil, fmt.Errorf("rename excel sheet: %w", err)
	}

	for col, header := range TabularHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(ExcelSheet, cell, header); err != nil {
			return nil, fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, entry := range entries {
		row := i + 2
		for col, value := range tabularRow(entry) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(ExcelSheet, cell, value); err != nil {
				return nil, fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode excel output: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *ExcelRenderer) Extension() string {
	return "xlsx"
}
