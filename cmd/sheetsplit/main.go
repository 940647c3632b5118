// Package main provides the CLI entry point for sheetsplit.
//
// The tool is invoked as a subprocess by a host application and speaks a
// line-oriented protocol on stdout: free-form progress lines, then a final
// "SUCCESS: <n> rows" or "ERROR: <cause>" line. Exit code 0 only follows a
// SUCCESS line. Structured diagnostics go to stderr via zap.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"sheetsplit/pkg/sheetsplit"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	logger, err := zap.NewProduction(zap.Fields(
		zap.String("appName", "sheetsplit"),
	))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	rootCmd := &cobra.Command{
		Use:   "sheetsplit <input_file> <sheet_name> <output_file> [max_rows] [max_file_size_mb]",
		Short: "Convert one worksheet of an xlsx workbook to chunked CSV files",
		Long: `sheetsplit converts a single worksheet of an xlsx workbook into one or
more UTF-8 CSV files, optionally splitting the output by row count and/or
approximate file size. Pass the literal string "None" for either optional
limit to leave it unset.`,
		Args:          cobra.RangeArgs(3, 5),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, logger)
		},
	}

	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		logger.Error("conversion failed", zap.Error(err))
		syncLogger(logger)
		os.Exit(1)
	}
	syncLogger(logger)
}

func run(args []string, logger *zap.Logger) error {
	job, err := sheetsplit.NewJob(args)
	if err != nil {
		return err
	}

	conv := sheetsplit.New(os.Stdout, logger)
	result, err := conv.Run(job)
	if err != nil {
		return err
	}

	fmt.Printf("SUCCESS: %d rows\n", result.TotalRows)
	return nil
}

// reportError prints the ERROR terminator line on stdout for the host.
// Argument problems get a distinct prefix so the host can tell a bad
// invocation from a failed conversion.
func reportError(err error) {
	var argErr *sheetsplit.ArgumentError
	if errors.As(err, &argErr) {
		fmt.Printf("ERROR: Invalid arguments. %v\n", argErr)
		return
	}
	fmt.Printf("ERROR: %v\n", err)
}

// syncLogger flushes the logger, ignoring the EINVAL that zap reports when
// stderr is not a syncable file.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if err := logger.Sync(); err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "invalid argument") {
			log.Printf("Logger sync failed: %v", err)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
