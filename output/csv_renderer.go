package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"captainslog/journal"
)

type CSVRenderer struct{}

func (r *CSVRenderer) Render(entries []journal.Entry, _ RenderOptions) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(TabularHeaders); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}

	for _, entry := range entries {
		if err := writer.Write(tabularRow(entry)); err != nil {
			return nil, fmt.Errorf("write csv row %d: %w", entry.ID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv output: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *CSVRenderer) Extension() string {
	return "csv"
}
