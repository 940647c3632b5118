// Package sheetsplit converts one worksheet of an xlsx workbook into one or
// more CSV files, optionally split by row count and/or byte-size ceiling.
package sheetsplit

// Limits holds the optional per-file ceilings. A zero value means the
// corresponding limit is unset.
type Limits struct {
	// MaxRows is the maximum number of data rows per output file.
	MaxRows int
	// MaxBytes is the approximate maximum serialized size per output
	// file, in bytes.
	MaxBytes int64
}

// Active reports whether at least one limit is set.
func (l Limits) Active() bool {
	return l.MaxRows > 0 || l.MaxBytes > 0
}
