package report

import (
	"fmt"
	"strings"

	"github.com/docker/go-units"

	"dataset-reconciler/core/reconcile"
	"dataset-reconciler/core/table"
)

// maxBannerWidth caps the star rules around a banner description.
const maxBannerWidth = 200

// Config carries the display limits for rendered tables. Zero or negative
// values disable the corresponding limit.
type Config struct {
	// MaxRows caps how many data rows Render shows before eliding.
	MaxRows int `mapstructure:"max_rows" default:"20"`
	// MaxColWidth caps the rendered width of a single column.
	MaxColWidth int `mapstructure:"max_col_width" default:"40"`
}

// Banner formats a section heading between star rules sized to the
// description.
func Banner(description string) string {
	width := len(description)
	if width > maxBannerWidth {
		width = maxBannerWidth
	}
	rule := strings.Repeat("*", width)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(description)
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")
	return b.String()
}

// Render formats the table for terminal display: a header line, the data
// rows padded per column, and a shape trailer. Past cfg.MaxRows only the
// head and tail of the data are shown, with an elision marker between them.
func Render(t table.Table, cfg Config) string {
	var b strings.Builder

	if t.Empty() {
		b.WriteString("(no rows)\n")
		b.WriteString(shape(t))
		return b.String()
	}

	head := t.Rows
	var tail [][]string
	elided := 0
	if cfg.MaxRows > 0 && len(t.Rows) > cfg.MaxRows {
		headLen := (cfg.MaxRows + 1) / 2
		tailLen := cfg.MaxRows - headLen
		head = t.Rows[:headLen]
		tail = t.Rows[len(t.Rows)-tailLen:]
		elided = len(t.Rows) - cfg.MaxRows
	}

	shown := make([][]string, 0, len(head)+len(tail))
	shown = append(shown, head...)
	shown = append(shown, tail...)

	widths := columnWidths(t.Columns, shown, cfg.MaxColWidth)

	writeRow(&b, t.Columns, widths)
	for _, row := range head {
		writeRow(&b, row, widths)
	}
	if elided > 0 {
		fmt.Fprintf(&b, "... (%d rows elided)\n", elided)
	}
	for _, row := range tail {
		writeRow(&b, row, widths)
	}
	b.WriteString(shape(t))
	return b.String()
}

// RenderSummary formats the aggregate counts of a reconciliation run.
func RenderSummary(s reconcile.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-15s %d\n", "master rows:", s.MasterRows)
	fmt.Fprintf(&b, "%-15s %d\n", "incoming rows:", s.IncomingRows)
	fmt.Fprintf(&b, "%-15s %d\n", "added:", s.Added)
	fmt.Fprintf(&b, "%-15s %d\n", "removed:", s.Removed)
	fmt.Fprintf(&b, "%-15s %d\n", "unchanged:", s.Unchanged)
	fmt.Fprintf(&b, "%-15s %d\n", "new master:", s.NewMaster)
	return b.String()
}

// FileLine describes a written file with a human-readable size.
func FileLine(path string, size int64) string {
	return fmt.Sprintf("%s (%s)", path, units.HumanSize(float64(size)))
}

func shape(t table.Table) string {
	return fmt.Sprintf("[%d rows x %d columns]\n", t.NumRows(), t.NumColumns())
}

// columnWidths sizes each column to its widest shown cell or header, capped
// at maxWidth when positive.
func columnWidths(columns []string, rows [][]string, maxWidth int) []int {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	if maxWidth > 0 {
		for i := range widths {
			if widths[i] > maxWidth {
				widths[i] = maxWidth
			}
		}
	}
	return widths
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		if len(cell) > widths[i] {
			cell = truncate(cell, widths[i])
		}
		if i > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(b, "%-*s", widths[i], cell)
	}
	b.WriteString("\n")
}

func truncate(s string, width int) string {
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}
