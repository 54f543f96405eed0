package importer

import "fmt"

// Reader turns a tabular file into header-keyed records.
type Reader interface {
	Read(path string) ([]Record, error)
}

func ReaderForFormat(format string) (Reader, error) {
	switch normalizeHeader(format) {
	case FormatCSV:
		return &CSVReader{}, nil
	case FormatExcel, "xlsx", "xlsm":
		return &ExcelReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported tabular format: %s", format)
	}
}

// recordsFromRows keys every data row by the normalized header of its column.
// Short rows are padded with empty values.
func recordsFromRows(headers []string, rows [][]string, firstRow int) []Record {
	normalizedHeaders := make([]string, len(headers))
	for i, header := range headers {
		normalizedHeaders[i] = normalizeHeader(header)
	}

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		values := make(map[string]string, len(normalizedHeaders))
		for col, header := range normalizedHeaders {
			if col < len(row) {
				values[header] = row[col]
			} else {
				values[header] = ""
			}
		}
		records = append(records, Record{RowNumber: firstRow + i, Values: values})
	}
	return records
}
