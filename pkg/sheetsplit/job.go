package sheetsplit

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// UnsetArg is the literal argument value the host passes for an optional
// limit it does not want, distinct from omitting the argument.
const UnsetArg = "None"

// Job is a validated conversion request. It is only constructed through
// NewJob, so downstream code never sees an unchecked path.
type Job struct {
	InputPath  string
	SheetName  string
	OutputPath string
	Limits     Limits
}

// NewJob validates the raw positional arguments
// (input path, sheet name, output path, optional max rows, optional max
// file size in MB) and returns a Job, or an *ArgumentError describing the
// first violation. It stats paths but opens no files.
func NewJob(args []string) (*Job, error) {
	if len(args) < 3 || len(args) > 5 {
		return nil, argErr("argument count", "expected 3 to 5 arguments, got %d", len(args))
	}

	input, err := validateInputPath(args[0])
	if err != nil {
		return nil, err
	}

	sheet := strings.TrimSpace(args[1])
	if sheet == "" {
		return nil, argErr("sheet name", "must not be empty")
	}

	output, err := validateOutputPath(args[2])
	if err != nil {
		return nil, err
	}

	job := &Job{
		InputPath:  input,
		SheetName:  sheet,
		OutputPath: output,
	}

	if len(args) >= 4 {
		job.Limits.MaxRows, err = parseMaxRows(args[3])
		if err != nil {
			return nil, err
		}
	}
	if len(args) >= 5 {
		job.Limits.MaxBytes, err = parseMaxSizeMB(args[4])
		if err != nil {
			return nil, err
		}
	}
	return job, nil
}

// escapesWorkdir reports whether a relative path climbs out of the working
// directory after cleaning.
func escapesWorkdir(clean string) bool {
	if filepath.IsAbs(clean) {
		return false
	}
	return clean == ".." || strings.HasPrefix(clean, ".."+string(os.PathSeparator))
}

func validateInputPath(raw string) (string, error) {
	if raw == "" {
		return "", argErr("input path", "must not be empty")
	}
	clean := filepath.Clean(raw)
	if escapesWorkdir(clean) {
		return "", argErr("input path", "%q escapes the working directory", raw)
	}
	info, err := os.Stat(clean)
	if errors.Is(err, os.ErrNotExist) {
		return "", argErr("input path", "file not found: %s", clean)
	}
	if err != nil {
		return "", argErr("input path", "cannot stat %s: %v", clean, err)
	}
	if !info.Mode().IsRegular() {
		return "", argErr("input path", "%s is not a regular file", clean)
	}
	return clean, nil
}

func validateOutputPath(raw string) (string, error) {
	if raw == "" {
		return "", argErr("output path", "must not be empty")
	}
	clean := filepath.Clean(raw)
	if escapesWorkdir(clean) {
		return "", argErr("output path", "%q escapes the working directory", raw)
	}
	dir := filepath.Dir(clean)
	info, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return "", argErr("output path", "directory does not exist: %s", dir)
	}
	if err != nil {
		return "", argErr("output path", "cannot stat %s: %v", dir, err)
	}
	if !info.IsDir() {
		return "", argErr("output path", "%s is not a directory", dir)
	}
	// Permission-bit check only; probing with a write would be a side
	// effect the validator must not have.
	if info.Mode().Perm()&0222 == 0 {
		return "", argErr("output path", "directory is not writable: %s", dir)
	}
	return clean, nil
}

func parseMaxRows(raw string) (int, error) {
	if raw == "" || raw == UnsetArg {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, argErr("max rows", "%q is not an integer", raw)
	}
	if n <= 0 {
		return 0, argErr("max rows", "must be positive, got %d", n)
	}
	return n, nil
}

func parseMaxSizeMB(raw string) (int64, error) {
	if raw == "" || raw == UnsetArg {
		return 0, nil
	}
	mb, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, argErr("max file size", "%q is not a number", raw)
	}
	if mb <= 0 {
		return 0, argErr("max file size", "must be positive, got %v", mb)
	}
	return int64(mb * 1024 * 1024), nil
}
