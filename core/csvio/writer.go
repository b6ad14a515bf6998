package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"dataset-reconciler/core/table"
)

// Config carries the output settings for written snapshots.
type Config struct {
	// Dir is the directory result snapshots are written into.
	Dir string `mapstructure:"dir" default:"Output"`
	// Timestamp appends the run time to output file names so successive
	// runs do not overwrite each other.
	Timestamp bool `mapstructure:"timestamp" default:"false"`
}

// WriteTable writes the table as comma-separated text: one header record
// with the column names followed by the data rows.
func WriteTable(w io.Writer, t table.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRows writes only the table's data rows. Incoming feeds travel
// without a header record, so generated samples of them must too.
func WriteRows(w io.Writer, t table.Table) error {
	cw := csv.NewWriter(w)
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTableFile writes the table to path, creating parent directories as
// needed, and returns the number of bytes written.
func WriteTableFile(path string, t table.Table) (int64, error) {
	return writeFile(path, func(w io.Writer) error {
		return WriteTable(w, t)
	})
}

// WriteRowsFile writes the table's data rows to path without a header
// record and returns the number of bytes written.
func WriteRowsFile(path string, t table.Table) (int64, error) {
	return writeFile(path, func(w io.Writer) error {
		return WriteRows(w, t)
	})
}

func writeFile(path string, write func(io.Writer) error) (int64, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// OutputName builds the canonical output file name for a result bucket:
// "<slug>_<bucket>.csv" under dir, with an optional UTC timestamp segment.
func OutputName(dir, slug, bucket string, at time.Time, stamped bool) string {
	name := slug + "_" + bucket
	if stamped {
		name += "_" + at.UTC().Format("20060102T150405")
	}
	return filepath.Join(dir, name+".csv")
}
