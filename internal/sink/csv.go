// Package sink persists the aggregated record set to a tabular file.
package sink

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"quotefetcher/internal/quote"
)

// Header is the fixed six-column schema written before any records
const Header = "symbol,name,price,change_price,change_percent,market_price"

// CSVSink writes records as comma-joined rows on an afero filesystem.
// Field values are stripped of embedded commas instead of quoted, so
// the output stays a plain unescaped table. There is no temp-file /
// rename step: a failure mid-write leaves a partial file behind.
type CSVSink struct {
	fs afero.Fs
}

// NewCSVSink creates a sink writing to the given filesystem
func NewCSVSink(fs afero.Fs) *CSVSink {
	return &CSVSink{fs: fs}
}

// Filename derives the per-run output name from a timestamp
func Filename(dir string, t time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("quotes_%s.csv", t.Format("20060102_150405")))
}

// Write creates the file at path and writes the header row followed by
// one row per record.
func (s *CSVSink) Write(path string, records []quote.Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := s.fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(Header + "\n"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, rec := range records {
		if _, err := f.WriteString(row(rec)); err != nil {
			return fmt.Errorf("failed to write record %s: %w", rec.Symbol, err)
		}
	}

	return nil
}

// row renders one record as a comma-joined line. Commas inside field
// values would shift every column to the right, so they are removed.
func row(rec quote.Record) string {
	fields := rec.Fields()
	cleaned := make([]string, len(fields))
	for i, field := range fields {
		cleaned[i] = strings.ReplaceAll(field, ",", "")
	}
	return strings.Join(cleaned, ",") + "\n"
}
