package sheetsplit

import (
	"fmt"
	"io"
	"os"

	"sheetsplit/pkg/sheetsplit/output"
	"sheetsplit/pkg/sheetsplit/parser"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// FileStat describes one written output file.
type FileStat struct {
	Path string
	Rows int
	// Bytes is the on-disk size read back after the write. Only set on
	// the chunking path.
	Bytes int64
}

// Result summarizes a completed conversion.
type Result struct {
	Files     []FileStat
	TotalRows int
}

// Converter runs validated conversion jobs. Progress lines for the host
// process go to the progress writer; diagnostics go to the logger.
type Converter struct {
	progress io.Writer
	logger   *zap.Logger
}

// New creates a Converter. A nil progress writer discards progress lines;
// a nil logger disables diagnostics.
func New(progress io.Writer, logger *zap.Logger) *Converter {
	if progress == nil {
		progress = io.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{progress: progress, logger: logger}
}

func (c *Converter) printf(format string, a ...interface{}) {
	fmt.Fprintf(c.progress, format+"\n", a...)
}

// Run loads the job's worksheet, drops blank rows, and writes the result
// as one or more CSV files per the job's limits. Files written before an
// error are left in place.
func (c *Converter) Run(job *Job) (*Result, error) {
	c.printf("Reading %s...", job.InputPath)
	f, err := excelize.OpenFile(job.InputPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, err := parser.LoadSheet(f, job.SheetName)
	if err != nil {
		return nil, err
	}
	c.printf("Read %d rows", len(table.Records))

	table = table.DropBlank()
	c.printf("After removing empty rows: %d rows", len(table.Records))
	c.logger.Debug("worksheet loaded",
		zap.String("sheet", job.SheetName),
		zap.Int("rows", len(table.Records)),
		zap.Int("columns", len(table.Header)))

	if len(table.Records) == 0 {
		return nil, ErrNoData
	}

	result := &Result{TotalRows: len(table.Records)}

	if !job.Limits.Active() {
		if err := output.WriteChunk(job.OutputPath, table.Header, table.Records); err != nil {
			return nil, err
		}
		c.printf("Created %s with %d rows", job.OutputPath, len(table.Records))
		result.Files = append(result.Files, FileStat{
			Path: job.OutputPath,
			Rows: len(table.Records),
		})
		return result, nil
	}

	chunks, err := SplitRecords(table.Header, table.Records, job.Limits)
	if err != nil {
		return nil, err
	}
	if len(chunks) > 1 {
		c.printf("Splitting into %d files...", len(chunks))
	}

	for i, chunk := range chunks {
		path := output.PartPath(job.OutputPath, i+1)
		if err := output.WriteChunk(path, table.Header, chunk); err != nil {
			return nil, err
		}
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		c.printf("Created %s with %d rows (%.2f MB)", path, len(chunk), float64(info.Size())/(1024*1024))
		result.Files = append(result.Files, FileStat{
			Path:  path,
			Rows:  len(chunk),
			Bytes: info.Size(),
		})
	}
	return result, nil
}
