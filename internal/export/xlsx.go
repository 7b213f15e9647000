// Package export writes journal records to an XLSX workbook for review
// outside the service.
package export

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Journal"

// WriteWorkbook writes one row per record to a single sheet. Columns are
// the sorted union of record keys with the type discriminator first; nested
// values are rendered as JSON text.
func WriteWorkbook(records []map[string]any, path string) error {
	const op = "WriteWorkbook"

	if len(records) == 0 {
		return fmt.Errorf("%s: no records to export", op)
	}

	headers := columnOrder(records)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("%s: failed to name sheet: %w", op, err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("%s: invalid header cell: %w", op, err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("%s: failed to write header %q: %w", op, header, err)
		}
	}

	for row, rec := range records {
		for col, header := range headers {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("%s: invalid cell at row %d: %w", op, row+2, err)
			}
			if err := f.SetCellValue(sheetName, cell, cellValue(rec[header])); err != nil {
				return fmt.Errorf("%s: failed to write cell %s: %w", op, cell, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%s: failed to save workbook: %w", op, err)
	}

	return nil
}

// columnOrder returns "type" followed by the sorted union of all other keys.
func columnOrder(records []map[string]any) []string {
	seen := map[string]bool{"type": true}
	var rest []string
	for _, rec := range records {
		for key := range rec {
			if !seen[key] {
				seen[key] = true
				rest = append(rest, key)
			}
		}
	}
	sort.Strings(rest)
	return append([]string{"type"}, rest...)
}

func cellValue(v any) any {
	switch t := v.(type) {
	case nil:
		return ""
	case string, float64, bool:
		return t
	default:
		// Arrays and nested objects land as JSON text
		raw, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(raw)
	}
}
