package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataset-reconciler/core/reconcile"
	"dataset-reconciler/core/table"
)

func TestBanner(t *testing.T) {
	out := Banner("New labs")

	lines := strings.Split(strings.Trim(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("*", len("New labs")), lines[0])
	assert.Equal(t, "New labs", lines[1])
	assert.Equal(t, lines[0], lines[2])
}

func TestBannerCapsRuleWidth(t *testing.T) {
	out := Banner(strings.Repeat("x", 500))

	lines := strings.Split(strings.Trim(out, "\n"), "\n")
	assert.Equal(t, strings.Repeat("*", 200), lines[0])
}

func TestRenderPadsColumns(t *testing.T) {
	tbl := table.Table{
		Columns: []string{"ID", "CITY"},
		Rows: [][]string{
			{"1", "Anchorage"},
			{"21", "Austin"},
		},
	}

	out := Render(tbl, Config{MaxRows: 20, MaxColWidth: 40})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID  CITY     ", lines[0])
	assert.Equal(t, "1   Anchorage", lines[1])
	assert.Equal(t, "21  Austin   ", lines[2])
	assert.Equal(t, "[2 rows x 2 columns]", lines[3])
}

func TestRenderElidesMiddleRows(t *testing.T) {
	rows := make([][]string, 30)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("row%d", i)}
	}
	tbl := table.Table{Columns: []string{"ID"}, Rows: rows}

	out := Render(tbl, Config{MaxRows: 20})

	// The head and tail frame the elision marker.
	assert.Contains(t, out, "row0")
	assert.Contains(t, out, "row29")
	assert.NotContains(t, out, "row15")
	assert.Contains(t, out, "... (10 rows elided)")
	assert.Contains(t, out, "[30 rows x 1 columns]")
	// Header + 10 head rows + elision + 10 tail rows + shape.
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 23)
}

func TestRenderTruncatesWideCells(t *testing.T) {
	tbl := table.Table{
		Columns: []string{"NAME"},
		Rows:    [][]string{{"A LABORATORY WITH AN EXTREMELY LONG NAME"}},
	}

	out := Render(tbl, Config{MaxRows: 20, MaxColWidth: 10})

	assert.Contains(t, out, "A LABOR...")
	assert.NotContains(t, out, "EXTREMELY")
}

func TestRenderEmptyTable(t *testing.T) {
	tbl := table.Table{Columns: []string{"ID", "CITY"}}

	out := Render(tbl, Config{MaxRows: 20})

	assert.Contains(t, out, "(no rows)")
	assert.Contains(t, out, "[0 rows x 2 columns]")
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(reconcile.Summary{
		MasterRows:   120,
		IncomingRows: 118,
		Added:        4,
		Removed:      6,
		Unchanged:    114,
		NewMaster:    118,
	})

	assert.Contains(t, out, "added:          4")
	assert.Contains(t, out, "removed:        6")
	assert.Contains(t, out, "new master:     118")
}

func TestFileLine(t *testing.T) {
	out := FileLine("Output/clia_labs_added.csv", 12345)

	assert.Contains(t, out, "Output/clia_labs_added.csv")
	assert.Contains(t, out, "kB")
}
