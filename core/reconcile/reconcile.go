package reconcile

import (
	"strings"

	"dataset-reconciler/core/table"
)

// Side labels for InvalidKeyError context.
const (
	sideMaster   = "master"
	sideIncoming = "incoming"
)

// keySeparator joins the cells of a composite key into one lookup string.
const keySeparator = "\x1f"

// Reconcile classifies the incoming snapshot against the master under the
// given comparison key and derives the next master snapshot.
//
// Both inputs are re-normalized before comparison, so tables from loaders
// with weaker trimming guarantees still compare correctly. Rows pair by
// string equality over the key cells only; non-key cells ride along
// unmodified from their own side. Reconcile never mutates its inputs and
// always returns either a complete Result or an error, never both.
func Reconcile(master, incoming table.Table, key []string) (*Result, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	master = master.Normalize()
	incoming = incoming.Normalize()

	masterKey, err := keyIndexes(master, key, sideMaster)
	if err != nil {
		return nil, err
	}
	incomingKey, err := keyIndexes(incoming, key, sideIncoming)
	if err != nil {
		return nil, err
	}

	// Key multiplicity per side. The join is not key-deduplicating: a key
	// held by m master rows and n incoming rows matches m*n times.
	masterCount := make(map[string]int, len(master.Rows))
	for _, row := range master.Rows {
		masterCount[joinKey(row, masterKey)]++
	}
	incomingCount := make(map[string]int, len(incoming.Rows))
	for _, row := range incoming.Rows {
		incomingCount[joinKey(row, incomingKey)]++
	}

	added := [][]string{}
	for _, row := range incoming.Rows {
		if masterCount[joinKey(row, incomingKey)] == 0 {
			added = append(added, row)
		}
	}

	removed := [][]string{}
	unchanged := [][]string{}
	for _, row := range master.Rows {
		n := incomingCount[joinKey(row, masterKey)]
		if n == 0 {
			removed = append(removed, row)
			continue
		}
		for i := 0; i < n; i++ {
			unchanged = append(unchanged, row)
		}
	}

	result := &Result{
		Added:     table.Table{Columns: incoming.Columns, Rows: added},
		Removed:   table.Table{Columns: master.Columns, Rows: removed},
		Unchanged: table.Table{Columns: master.Columns, Rows: unchanged},
	}
	result.NewMaster = nextMaster(result.Added, result.Unchanged)
	result.Summary = Summary{
		MasterRows:   master.NumRows(),
		IncomingRows: incoming.NumRows(),
		Added:        result.Added.NumRows(),
		Removed:      result.Removed.NumRows(),
		Unchanged:    result.Unchanged.NumRows(),
		NewMaster:    result.NewMaster.NumRows(),
	}
	return result, nil
}

// nextMaster derives the next master snapshot: added rows first, then
// unchanged rows. When both sides carry the same column list this is a plain
// concatenation. When their non-key columns differ, the result adopts the
// union of both lists, master columns first, and cells a side never had stay
// empty; values are never merged across sides.
func nextMaster(added, unchanged table.Table) table.Table {
	merged, err := table.Concat(added, unchanged)
	if err == nil {
		return merged
	}

	columns := unionColumns(unchanged.Columns, added.Columns)
	rows := make([][]string, 0, added.NumRows()+unchanged.NumRows())
	for _, row := range added.Rows {
		rows = append(rows, fitRow(row, added.Columns, columns))
	}
	for _, row := range unchanged.Rows {
		rows = append(rows, fitRow(row, unchanged.Columns, columns))
	}
	return table.Table{Columns: columns, Rows: rows}
}

// keyIndexes resolves the key columns to positions in the table's schema.
func keyIndexes(t table.Table, key []string, side string) ([]int, error) {
	idx := make([]int, len(key))
	for i, column := range key {
		pos := t.ColumnIndex(column)
		if pos < 0 {
			return nil, &InvalidKeyError{Column: column, Side: side}
		}
		idx[i] = pos
	}
	return idx, nil
}

// joinKey builds the composite lookup key for a row by joining its key cells
// with an ASCII unit separator.
func joinKey(row []string, idx []int) string {
	if len(idx) == 1 {
		return row[idx[0]]
	}
	parts := make([]string, len(idx))
	for i, j := range idx {
		parts[i] = row[j]
	}
	return strings.Join(parts, keySeparator)
}

// unionColumns appends the columns of b that a does not already have.
func unionColumns(a, b []string) []string {
	out := make([]string, len(a), len(a)+len(b))
	copy(out, a)
	seen := make(map[string]struct{}, len(a))
	for _, c := range a {
		seen[c] = struct{}{}
	}
	for _, c := range b {
		if _, ok := seen[c]; !ok {
			out = append(out, c)
			seen[c] = struct{}{}
		}
	}
	return out
}

// fitRow reshapes a row from one column list onto another, leaving cells for
// unknown columns empty.
func fitRow(row []string, from, to []string) []string {
	values := make(map[string]string, len(from))
	for i, c := range from {
		values[c] = row[i]
	}
	out := make([]string, len(to))
	for i, c := range to {
		out[i] = values[c]
	}
	return out
}
