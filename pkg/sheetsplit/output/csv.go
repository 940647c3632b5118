// Package output writes row-set chunks as UTF-8 CSV files.
package output

import (
	"bytes"
	"encoding/csv"
	"os"

	"sheetsplit/pkg/sheetsplit/models"
)

// RecordSize returns the encoded byte length of a single record, measured
// by serializing it standalone with the same encoder used for output files.
// Quoting decisions can differ slightly when the record is part of a larger
// file, so the result is an estimate, not an exact contribution.
func RecordSize(rec models.Record) (int64, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(rec); err != nil {
		return 0, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, err
	}
	return int64(buf.Len()), nil
}

// WriteChunk writes the header followed by the records to path as UTF-8
// CSV, one record per line, no index column.
func WriteChunk(path string, header models.Record, records []models.Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
