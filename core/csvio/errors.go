package csvio

import "fmt"

// MalformedInputError reports a source that could not be loaded: a record
// with the wrong field count, a CSV parse failure, or an unreadable file.
// Line is the 1-based record ordinal within the file, counting any header
// record; it is 0 when the failure is not tied to a record.
type MalformedInputError struct {
	Path     string
	Line     int
	Expected int
	Got      int
	Err      error
}

func (e *MalformedInputError) Error() string {
	switch {
	case e.Err != nil && e.Line > 0:
		return fmt.Sprintf("csvio: %s: record %d: %v", e.Path, e.Line, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("csvio: %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("csvio: %s: record %d has %d fields, expected %d", e.Path, e.Line, e.Got, e.Expected)
	}
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
