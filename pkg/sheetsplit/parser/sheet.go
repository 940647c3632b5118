// Package parser loads worksheet data from xlsx workbooks.
package parser

import (
	"sheetsplit/pkg/sheetsplit/models"

	"github.com/xuri/excelize/v2"
)

// LoadSheet loads the named worksheet into a Table.
// The first sheet row becomes the header; remaining rows become records.
// All rows are padded to the width of the widest row, since excelize
// truncates trailing empty cells per row.
func LoadSheet(f *excelize.File, sheetName string) (*models.Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return &models.Table{}, nil
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	table := &models.Table{
		Header: pad(rows[0], width),
	}
	for _, row := range rows[1:] {
		table.Records = append(table.Records, pad(row, width))
	}
	return table, nil
}

// pad returns the row extended with empty cells up to width.
func pad(row []string, width int) models.Record {
	rec := make(models.Record, width)
	copy(rec, row)
	return rec
}
