package reconcile

import (
	"errors"
	"fmt"
)

// ErrEmptyKey is returned when Reconcile is called without any comparison
// key columns.
var ErrEmptyKey = errors.New("reconcile: comparison key is empty")

// InvalidKeyError reports a comparison-key column that is absent from one of
// the input schemas. Side names the offending input, "master" or "incoming".
type InvalidKeyError struct {
	Column string
	Side   string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("reconcile: key column %q not found in %s table", e.Column, e.Side)
}
