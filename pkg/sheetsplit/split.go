package sheetsplit

import (
	"sheetsplit/pkg/sheetsplit/models"
	"sheetsplit/pkg/sheetsplit/output"
)

// SplitRecords partitions records into ordered chunks, each destined for
// one output file, honoring the given limits. Record order is preserved
// across chunks; no record is dropped or duplicated.
//
// A chunk is closed only when appending the next record would violate an
// active limit and the chunk already holds at least one record, so a
// single record larger than the byte ceiling still gets a chunk of its
// own. The byte accumulator of every chunk is seeded with the encoded
// header size; per-record sizes are standalone-encoding estimates, making
// the ceiling best-effort rather than exact.
func SplitRecords(header models.Record, records []models.Record, limits Limits) ([][]models.Record, error) {
	if !limits.Active() {
		return [][]models.Record{records}, nil
	}

	headerSize, err := output.RecordSize(header)
	if err != nil {
		return nil, err
	}

	var (
		chunks  [][]models.Record
		current []models.Record
		size    = headerSize
	)
	for _, rec := range records {
		recSize, err := output.RecordSize(rec)
		if err != nil {
			return nil, err
		}

		atRowLimit := limits.MaxRows > 0 && len(current) >= limits.MaxRows
		overBudget := limits.MaxBytes > 0 && size+recSize > limits.MaxBytes
		if (atRowLimit || overBudget) && len(current) > 0 {
			chunks = append(chunks, current)
			current = nil
			size = headerSize
		}

		current = append(current, rec)
		size += recSize
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks, nil
}
