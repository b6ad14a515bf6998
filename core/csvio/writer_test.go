package csvio

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataset-reconciler/core/table"
)

func TestWriteTable(t *testing.T) {
	tbl := table.Table{
		Columns: []string{"ID", "CITY"},
		Rows: [][]string{
			{"1", "Birmingham, North"},
			{"2", "Anchorage"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, tbl))

	assert.Equal(t, "ID,CITY\n1,\"Birmingham, North\"\n2,Anchorage\n", buf.String())
}

func TestWriteRows(t *testing.T) {
	tbl := table.Table{
		Columns: []string{"ID", "CITY"},
		Rows: [][]string{
			{"1", "Birmingham"},
			{"2", "Anchorage"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, tbl))

	assert.Equal(t, "1,Birmingham\n2,Anchorage\n", buf.String())
}

func TestWriteRowsFileRoundTrip(t *testing.T) {
	tbl := table.Table{
		Columns: []string{"ID", "CITY"},
		Rows:    [][]string{{"1", "Anchorage"}},
	}
	path := filepath.Join(t.TempDir(), "incoming.csv")

	size, err := WriteRowsFile(path, tbl)
	require.NoError(t, err)
	assert.Greater(t, size, int64(0))

	got, err := ReadTableFile(path, tbl.Columns, false)
	require.NoError(t, err)
	assert.Equal(t, tbl.Rows, got.Rows)
}

func TestWriteTableFileRoundTrip(t *testing.T) {
	tbl := table.Table{
		Columns: []string{"ID", "CITY"},
		Rows:    [][]string{{"1", "Anchorage"}},
	}
	path := filepath.Join(t.TempDir(), "out", "labs_added.csv")

	size, err := WriteTableFile(path, tbl)
	require.NoError(t, err)
	assert.Greater(t, size, int64(0))

	// The written file carries a header record to discard on the way back.
	got, err := ReadTableFile(path, tbl.Columns, true)
	require.NoError(t, err)
	assert.Equal(t, tbl.Rows, got.Rows)
}

func TestOutputName(t *testing.T) {
	at := time.Date(2024, 3, 9, 14, 30, 5, 0, time.UTC)

	assert.Equal(t,
		filepath.Join("Output", "clia_labs_added.csv"),
		OutputName("Output", "clia_labs", "added", at, false))
	assert.Equal(t,
		filepath.Join("Output", "clia_labs_added_20240309T143005.csv"),
		OutputName("Output", "clia_labs", "added", at, true))
}
