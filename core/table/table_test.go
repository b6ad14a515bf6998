package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tbl, err := New([]string{"ID", "STATE"}, [][]string{
		{"1", "AL"},
		{"2", "AK"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, 2, tbl.NumColumns())
	assert.False(t, tbl.Empty())
}

func TestNewNilRows(t *testing.T) {
	tbl, err := New([]string{"ID"}, nil)

	require.NoError(t, err)
	assert.True(t, tbl.Empty())
	assert.NotNil(t, tbl.Rows)
}

func TestNewNoColumns(t *testing.T) {
	_, err := New(nil, nil)

	assert.ErrorIs(t, err, ErrNoColumns)
}

func TestNewRaggedRow(t *testing.T) {
	_, err := New([]string{"ID", "STATE"}, [][]string{
		{"1", "AL"},
		{"2"},
	})

	require.Error(t, err)
	var ragged *RaggedRowError
	require.ErrorAs(t, err, &ragged)
	assert.Equal(t, 2, ragged.Row)
	assert.Equal(t, 2, ragged.Expected)
	assert.Equal(t, 1, ragged.Got)
}

func TestNormalize(t *testing.T) {
	tbl := Table{
		Columns: []string{"ID", "CITY"},
		Rows: [][]string{
			{"  1 ", "Anchorage  "},
			{"2", "\tJuneau\n"},
		},
	}

	clean := tbl.Normalize()

	assert.Equal(t, [][]string{
		{"1", "Anchorage"},
		{"2", "Juneau"},
	}, clean.Rows)
	// The receiver keeps its raw cells.
	assert.Equal(t, "  1 ", tbl.Rows[0][0])
}

func TestFilter(t *testing.T) {
	tbl := Table{
		Columns: []string{"ID", "STATE"},
		Rows: [][]string{
			{"1", "AL"},
			{"2", "AK"},
			{"3", " AL "},
			{"4", "TX"},
			{"5", "AL"},
		},
	}

	tests := []struct {
		name   string
		column string
		allow  []string
		want   [][]string
	}{
		{
			name:   "single value keeps duplicates in order",
			column: "STATE",
			allow:  []string{"AL"},
			want:   [][]string{{"1", "AL"}, {"3", " AL "}, {"5", "AL"}},
		},
		{
			name:   "multiple values",
			column: "STATE",
			allow:  []string{"AK", "TX"},
			want:   [][]string{{"2", "AK"}, {"4", "TX"}},
		},
		{
			name:   "allow values are trimmed",
			column: "STATE",
			allow:  []string{" TX "},
			want:   [][]string{{"4", "TX"}},
		},
		{
			name:   "empty allow list selects nothing",
			column: "STATE",
			allow:  nil,
			want:   [][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tbl.Filter(tt.column, tt.allow)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Rows)
			assert.Equal(t, tbl.Columns, got.Columns)
		})
	}
}

func TestFilterUnknownColumn(t *testing.T) {
	tbl := Table{Columns: []string{"ID"}, Rows: [][]string{{"1"}}}

	_, err := tbl.Filter("STATE", []string{"AL"})

	var notFound *ColumnNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "STATE", notFound.Column)
}

func TestConcat(t *testing.T) {
	a := Table{Columns: []string{"ID"}, Rows: [][]string{{"1"}, {"2"}}}
	b := Table{Columns: []string{"ID"}, Rows: [][]string{{"3"}}}
	c := Table{Columns: []string{"ID"}, Rows: [][]string{{"2"}}}

	got, err := Concat(a, b, c)

	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1"}, {"2"}, {"3"}, {"2"}}, got.Rows)
}

func TestConcatSchemaMismatch(t *testing.T) {
	a := Table{Columns: []string{"ID", "STATE"}}
	b := Table{Columns: []string{"STATE", "ID"}}

	_, err := Concat(a, b)

	var mismatch *SchemaMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, []string{"ID", "STATE"}, mismatch.Expected)
	assert.Equal(t, []string{"STATE", "ID"}, mismatch.Got)
}

func TestConcatNothing(t *testing.T) {
	got, err := Concat()

	require.NoError(t, err)
	assert.True(t, got.Empty())
}

func TestColumnIndex(t *testing.T) {
	tbl := Table{Columns: []string{"ID", "STATE", "CITY"}}

	assert.Equal(t, 1, tbl.ColumnIndex("STATE"))
	assert.Equal(t, -1, tbl.ColumnIndex("ZIP"))
	assert.True(t, tbl.HasColumn("CITY"))
	assert.False(t, tbl.HasColumn("ZIP"))
}
