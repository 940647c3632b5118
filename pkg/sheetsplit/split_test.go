package sheetsplit

import (
	"fmt"
	"testing"

	"sheetsplit/pkg/sheetsplit/models"
	"sheetsplit/pkg/sheetsplit/output"
)

func makeRecords(n int) []models.Record {
	recs := make([]models.Record, n)
	for i := range recs {
		recs[i] = models.Record{fmt.Sprintf("%d", i), fmt.Sprintf("value-%d", i)}
	}
	return recs
}

func TestSplitRecordsNoLimits(t *testing.T) {
	header := models.Record{"id", "name"}
	records := makeRecords(25)

	chunks, err := SplitRecords(header, records, Limits{})
	if err != nil {
		t.Fatalf("SplitRecords failed: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("Expected 1 chunk, got %d", len(chunks))
	}
	if len(chunks[0]) != 25 {
		t.Errorf("Expected 25 records, got %d", len(chunks[0]))
	}
}

func TestSplitRecordsMaxRows(t *testing.T) {
	header := models.Record{"id", "name"}

	tests := []struct {
		rows     int
		maxRows  int
		chunks   int
		lastRows int
	}{
		{250, 100, 3, 50},
		{200, 100, 2, 100},
		{99, 100, 1, 99},
		{1, 1, 1, 1},
		{5, 1, 5, 1},
	}

	for _, tt := range tests {
		chunks, err := SplitRecords(header, makeRecords(tt.rows), Limits{MaxRows: tt.maxRows})
		if err != nil {
			t.Fatalf("SplitRecords failed: %v", err)
		}
		if len(chunks) != tt.chunks {
			t.Errorf("%d rows / max %d: expected %d chunks, got %d", tt.rows, tt.maxRows, tt.chunks, len(chunks))
			continue
		}
		for i, chunk := range chunks[:len(chunks)-1] {
			if len(chunk) != tt.maxRows {
				t.Errorf("%d rows / max %d: chunk %d has %d rows, expected %d", tt.rows, tt.maxRows, i, len(chunk), tt.maxRows)
			}
		}
		if last := chunks[len(chunks)-1]; len(last) != tt.lastRows {
			t.Errorf("%d rows / max %d: last chunk has %d rows, expected %d", tt.rows, tt.maxRows, len(last), tt.lastRows)
		}
	}
}

func TestSplitRecordsPreservesOrder(t *testing.T) {
	header := models.Record{"id", "name"}
	records := makeRecords(17)

	chunks, err := SplitRecords(header, records, Limits{MaxRows: 5})
	if err != nil {
		t.Fatalf("SplitRecords failed: %v", err)
	}

	var flat []models.Record
	for _, chunk := range chunks {
		flat = append(flat, chunk...)
	}
	if len(flat) != len(records) {
		t.Fatalf("Expected %d records across chunks, got %d", len(records), len(flat))
	}
	for i := range records {
		if flat[i][0] != records[i][0] {
			t.Errorf("Record %d out of order: got id %s", i, flat[i][0])
		}
	}
}

func TestSplitRecordsMaxBytes(t *testing.T) {
	header := models.Record{"id", "name"}
	records := makeRecords(10)

	headerSize, err := output.RecordSize(header)
	if err != nil {
		t.Fatalf("RecordSize failed: %v", err)
	}
	recSize, err := output.RecordSize(records[9])
	if err != nil {
		t.Fatalf("RecordSize failed: %v", err)
	}

	// Budget for the header plus exactly three of the widest records
	limits := Limits{MaxBytes: headerSize + 3*recSize}
	chunks, err := SplitRecords(header, records, limits)
	if err != nil {
		t.Fatalf("SplitRecords failed: %v", err)
	}
	if len(chunks) != 4 {
		t.Fatalf("Expected 4 chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > 3 {
			t.Errorf("Chunk %d has %d records, budget allows at most 3", i, len(chunk))
		}
	}
}

func TestSplitRecordsOversizedRow(t *testing.T) {
	header := models.Record{"id", "blob"}
	big := make([]byte, 4096)
	for i := range big {
		big[i] = 'x'
	}
	records := []models.Record{
		{"1", "small"},
		{"2", string(big)},
		{"3", "small"},
	}

	chunks, err := SplitRecords(header, records, Limits{MaxBytes: 64})
	if err != nil {
		t.Fatalf("SplitRecords failed: %v", err)
	}
	// The oversized record must land in a chunk of its own, not loop or
	// be rejected.
	if len(chunks) != 3 {
		t.Fatalf("Expected 3 chunks, got %d", len(chunks))
	}
	if len(chunks[1]) != 1 || chunks[1][0][0] != "2" {
		t.Errorf("Expected the oversized record alone in chunk 2, got %v records", len(chunks[1]))
	}
}

func TestSplitRecordsBothLimits(t *testing.T) {
	header := models.Record{"id", "name"}
	records := makeRecords(20)

	recSize, err := output.RecordSize(records[19])
	if err != nil {
		t.Fatalf("RecordSize failed: %v", err)
	}
	headerSize, err := output.RecordSize(header)
	if err != nil {
		t.Fatalf("RecordSize failed: %v", err)
	}

	// Row limit of 10 but a byte budget that fits only two records; the
	// size limit closes chunks early.
	limits := Limits{MaxRows: 10, MaxBytes: headerSize + 2*recSize}
	chunks, err := SplitRecords(header, records, limits)
	if err != nil {
		t.Fatalf("SplitRecords failed: %v", err)
	}
	for i, chunk := range chunks {
		if len(chunk) > 2 {
			t.Errorf("Chunk %d has %d records, size budget allows at most 2", i, len(chunk))
		}
	}
	total := 0
	for _, chunk := range chunks {
		total += len(chunk)
	}
	if total != 20 {
		t.Errorf("Expected 20 records total, got %d", total)
	}
}
