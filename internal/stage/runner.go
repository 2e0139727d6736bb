// Package stage provides the generic per-record processing engine shared by
// every pipeline stage.
package stage

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"adpipe/internal/logger"
)

// ErrInputNotFound indicates a missing input file at stage start. This is a
// fatal condition, not a per-record rejection.
var ErrInputNotFound = errors.New("input file not found")

// ErrRecordTooLarge marks a line beyond maxLineBytes. Oversized lines are
// rejected per record, never fatal.
var ErrRecordTooLarge = errors.New("record exceeds size limit")

// maxLineBytes bounds a single serialized record.
const maxLineBytes = 1024 * 1024

// Stats reports per-run processing statistics.
type Stats struct {
	Processed int
	Rejected  int
}

// Transform converts one serialized input line into an output record. A
// returned error marks the record as rejected; the run continues with the
// next line.
type Transform[T any] func(line []byte) (T, error)

// Runner reads a JSONL input, applies a stage-specific transform per record,
// isolates per-record failures and accumulates successes. A single malformed
// record never aborts the run.
type Runner[T any] struct {
	name      string
	transform Transform[T]
	log       *logger.Logger
}

// NewRunner creates a runner for the named stage.
func NewRunner[T any](name string, transform Transform[T], log *logger.Logger) *Runner[T] {
	return &Runner[T]{
		name:      name,
		transform: transform,
		log:       log,
	}
}

// Collect reads the input line by line and returns the accumulated records
// with processing statistics. Line numbers are 1-indexed in diagnostics.
func (r *Runner[T]) Collect(inputPath string) ([]T, Stats, error) {
	file, err := os.Open(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, Stats{}, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}

		return nil, Stats{}, fmt.Errorf("failed to open input: %w", err)
	}
	defer file.Close()

	var (
		records []T
		stats   Stats
	)

	reader := bufio.NewReaderSize(file, 64*1024)

	for lineNum := 1; ; lineNum++ {
		line, tooLong, err := readLine(reader)
		if err != nil && err != io.EOF {
			return nil, stats, fmt.Errorf("failed to read input: %w", err)
		}

		if err == io.EOF && len(line) == 0 && !tooLong {
			break
		}

		transformErr := ErrRecordTooLarge

		var record T
		if !tooLong {
			record, transformErr = r.transform(line)
		}

		if transformErr != nil {
			stats.Rejected++
			r.log.Warn("record rejected",
				"stage", r.name,
				"line", lineNum,
				"reason", transformErr.Error(),
			)
		} else {
			records = append(records, record)
			stats.Processed++
		}

		if err == io.EOF {
			break
		}
	}

	return records, stats, nil
}

// readLine returns the next line without its terminator. A line beyond
// maxLineBytes is drained rather than buffered whole and flagged as too
// long; io.EOF accompanies the final line when the file lacks a trailing
// newline.
func readLine(reader *bufio.Reader) ([]byte, bool, error) {
	var buf []byte

	for {
		chunk, isPrefix, err := reader.ReadLine()
		if err != nil {
			return buf, false, err
		}

		if len(buf)+len(chunk) > maxLineBytes {
			for isPrefix {
				_, isPrefix, err = reader.ReadLine()
				if err != nil {
					return nil, true, err
				}
			}

			return nil, true, nil
		}

		buf = append(buf, chunk...)

		if !isPrefix {
			return buf, false, nil
		}
	}
}

// Run processes the input and writes the accumulated records to outputPath
// as JSONL. The whole output buffer is serialized in one pass after all
// lines are consumed; an empty buffer still produces an (empty) output file.
func (r *Runner[T]) Run(inputPath, outputPath string) (Stats, error) {
	records, stats, err := r.Collect(inputPath)
	if err != nil {
		return stats, err
	}

	if err := WriteJSONL(outputPath, records); err != nil {
		return stats, err
	}

	r.log.Info("stage completed",
		"stage", r.name,
		"processed", stats.Processed,
		"rejected", stats.Rejected,
		"output", outputPath,
	)

	return stats, nil
}

// WriteJSONL serializes records one JSON object per line and writes them to
// path in a single pass, creating the parent directory if absent and
// overwriting any existing file.
func WriteJSONL[T any](path string, records []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	for _, record := range records {
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("failed to serialize record: %w", err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
