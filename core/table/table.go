package table

import "strings"

// Table is an ordered, rectangular snapshot of delimited data. Columns names
// the fields in order and Rows holds the cell values row-major. Every row is
// exactly as wide as Columns.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// New builds a Table from a column list and row data. It rejects an empty
// column list and any row whose width differs from the column list, so a
// Table obtained from New is always rectangular.
func New(columns []string, rows [][]string) (Table, error) {
	if len(columns) == 0 {
		return Table{}, ErrNoColumns
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return Table{}, &RaggedRowError{Row: i + 1, Expected: len(columns), Got: len(row)}
		}
	}
	if rows == nil {
		rows = [][]string{}
	}
	return Table{Columns: columns, Rows: rows}, nil
}

// NumRows returns the number of data rows.
func (t Table) NumRows() int {
	return len(t.Rows)
}

// NumColumns returns the width of the table.
func (t Table) NumColumns() int {
	return len(t.Columns)
}

// Empty reports whether the table holds no data rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// ColumnIndex returns the position of the named column, or -1 when the
// column is not part of the schema.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column is part of the schema.
func (t Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Normalize returns a copy of the table with leading and trailing whitespace
// stripped from every cell. The receiver is left untouched.
func (t Table) Normalize() Table {
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		clean := make([]string, len(row))
		for j, cell := range row {
			clean[j] = strings.TrimSpace(cell)
		}
		rows[i] = clean
	}
	return Table{Columns: t.Columns, Rows: rows}
}

// Filter returns the rows whose trimmed value in the named column appears in
// the allow list. Allow-list entries are trimmed the same way before
// comparison. An empty allow list therefore selects no rows. Row order and
// duplicate multiplicity are preserved.
func (t Table) Filter(column string, allow []string) (Table, error) {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return Table{}, &ColumnNotFoundError{Column: column}
	}
	allowed := make(map[string]struct{}, len(allow))
	for _, v := range allow {
		allowed[strings.TrimSpace(v)] = struct{}{}
	}
	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if _, ok := allowed[strings.TrimSpace(row[idx])]; ok {
			rows = append(rows, row)
		}
	}
	return Table{Columns: t.Columns, Rows: rows}, nil
}

// Concat appends the given tables into one, preserving input order. All
// tables must carry an identical column list; the first table's columns
// become the schema of the result. Concat of nothing yields an empty Table.
func Concat(tables ...Table) (Table, error) {
	if len(tables) == 0 {
		return Table{}, nil
	}
	columns := tables[0].Columns
	total := 0
	for _, in := range tables {
		total += len(in.Rows)
	}
	rows := make([][]string, 0, total)
	for _, in := range tables {
		if !equalColumns(columns, in.Columns) {
			return Table{}, &SchemaMismatchError{Expected: columns, Got: in.Columns}
		}
		rows = append(rows, in.Rows...)
	}
	return Table{Columns: columns, Rows: rows}, nil
}

func equalColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
