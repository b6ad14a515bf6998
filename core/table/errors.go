package table

import (
	"errors"
	"fmt"
)

// ErrNoColumns is returned when a Table is constructed without any columns.
var ErrNoColumns = errors.New("table: column list is empty")

// ColumnNotFoundError reports a reference to a column that is not part of a
// table's schema.
type ColumnNotFoundError struct {
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("table: column %q not found", e.Column)
}

// SchemaMismatchError reports an attempt to combine tables whose column
// lists differ.
type SchemaMismatchError struct {
	Expected []string
	Got      []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("table: schema mismatch: expected columns %v, got %v", e.Expected, e.Got)
}

// RaggedRowError reports a row whose field count differs from the column
// list it must match. Row is 1-based.
type RaggedRowError struct {
	Row      int
	Expected int
	Got      int
}

func (e *RaggedRowError) Error() string {
	return fmt.Sprintf("table: row %d has %d fields, expected %d", e.Row, e.Got, e.Expected)
}
