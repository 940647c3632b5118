// Package models defines the in-memory row set for worksheet conversion.
package models

// Record represents a single data row, cell values in column order.
type Record []string

// IsBlank reports whether every cell of the record is empty.
func (r Record) IsBlank() bool {
	for _, cell := range r {
		if cell != "" {
			return false
		}
	}
	return true
}

// Table represents the loaded row set of one worksheet.
type Table struct {
	// Header contains the column names from the first sheet row.
	Header Record
	// Records contains the data rows in source order, padded to the
	// header width.
	Records []Record
}

// DropBlank returns a copy of the table with all-blank records removed.
// Record order is preserved; the header is shared, not copied.
func (t *Table) DropBlank() *Table {
	filtered := &Table{Header: t.Header}
	for _, rec := range t.Records {
		if !rec.IsBlank() {
			filtered.Records = append(filtered.Records, rec)
		}
	}
	return filtered
}
