package csvio

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"dataset-reconciler/core/table"
)

// ReadTable parses comma-separated text from r into a table with the given
// schema, trimming leading and trailing whitespace from every cell. The path
// is only used for error context. When hasHeader is true the first record is
// discarded after checking that its width matches the declared columns; the
// declared columns always win over whatever the header says.
func ReadTable(r io.Reader, path string, columns []string, hasHeader bool) (table.Table, error) {
	if len(columns) == 0 {
		return table.Table{}, table.ErrNoColumns
	}

	cr := csv.NewReader(r)
	// Width is validated by hand so the error can carry file context.
	cr.FieldsPerRecord = -1

	want := len(columns)
	rows := [][]string{}
	record := 0
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		record++
		if err != nil {
			return table.Table{}, &MalformedInputError{Path: path, Line: record, Err: err}
		}
		if len(fields) != want {
			return table.Table{}, &MalformedInputError{Path: path, Line: record, Expected: want, Got: len(fields)}
		}
		if record == 1 && hasHeader {
			continue
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		rows = append(rows, fields)
	}

	return table.Table{Columns: columns, Rows: rows}, nil
}

// ReadTableFile opens path and reads it with ReadTable.
func ReadTableFile(path string, columns []string, hasHeader bool) (table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return table.Table{}, &MalformedInputError{Path: path, Err: err}
	}
	defer f.Close()

	return ReadTable(f, path, columns, hasHeader)
}

// LoadSources reads every path concurrently and concatenates the results in
// argument order, so callers can treat a series of drops as one incoming
// snapshot. All sources share the same schema and header convention. The
// first failing source aborts the load.
func LoadSources(paths []string, columns []string, hasHeader bool) (table.Table, error) {
	if len(paths) == 0 {
		return table.New(columns, nil)
	}

	tables := make([]table.Table, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			tbl, err := ReadTableFile(path, columns, hasHeader)
			if err != nil {
				return err
			}
			tables[i] = tbl
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return table.Table{}, err
	}

	return table.Concat(tables...)
}
