package sample

import (
	"strings"

	"dataset-reconciler/core/profile"
	"dataset-reconciler/core/table"

	"github.com/brianvoe/gofakeit/v6"
)

// Generate builds a synthetic dataset for the profile with n rows. The
// same seed always produces the same dataset.
func Generate(p profile.Profile, n int, seed uint64) (table.Table, error) {
	faker := gofakeit.New(seed)

	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, row(faker, p.Columns))
	}
	return table.New(p.Columns, rows)
}

// Derive simulates the next release of a master dataset: it keeps most
// of the master's rows, drops `removed` of them, and appends `added`
// fresh ones. The same seed always drops the same rows and generates
// the same additions.
func Derive(p profile.Profile, master table.Table, added, removed int, seed uint64) (table.Table, error) {
	if added < 0 {
		added = 0
	}
	if removed < 0 {
		removed = 0
	}
	if removed > master.NumRows() {
		removed = master.NumRows()
	}

	faker := gofakeit.New(seed)

	indexes := make([]int, master.NumRows())
	for i := range indexes {
		indexes[i] = i
	}
	faker.ShuffleInts(indexes)

	dropped := make(map[int]bool, removed)
	for _, idx := range indexes[:removed] {
		dropped[idx] = true
	}

	rows := make([][]string, 0, master.NumRows()-removed+added)
	for i, r := range master.Rows {
		if dropped[i] {
			continue
		}
		rows = append(rows, append([]string(nil), r...))
	}
	for i := 0; i < added; i++ {
		rows = append(rows, row(faker, p.Columns))
	}
	return table.New(p.Columns, rows)
}

func row(f *gofakeit.Faker, columns []string) []string {
	cells := make([]string, len(columns))
	for i, col := range columns {
		cells[i] = value(f, col)
	}
	return cells
}

// value picks a generator from the column's name. The names follow the
// CLIA registry conventions, but the matching is loose enough to cover
// custom profiles with similar vocabularies.
func value(f *gofakeit.Faker, column string) string {
	name := strings.ToUpper(column)
	switch {
	case strings.Contains(name, "CLIA"):
		return f.DigitN(2) + "D" + f.DigitN(7)
	case strings.Contains(name, "CERTIFICATE"):
		return f.RandomString([]string{"Compliance", "Waiver", "Accreditation", "PPM"})
	case strings.Contains(name, "FACILITY") || strings.Contains(name, "TYPE"):
		return f.RandomString([]string{"Laboratory", "Physician Office", "Hospital", "Home Health Agency"})
	case strings.Contains(name, "NAME"):
		return strings.ToUpper(f.Company())
	case strings.Contains(name, "STREET"):
		return f.Street()
	case strings.Contains(name, "CITY"):
		return f.City()
	case strings.Contains(name, "STATE"):
		return f.StateAbr()
	case strings.Contains(name, "ZIP"):
		return f.Zip()
	case strings.Contains(name, "PHONE"):
		return f.Phone()
	case strings.Contains(name, "CONTACT"):
		return f.Name()
	case strings.Contains(name, "TOUCH") || strings.Contains(name, "TAG"):
		// Workflow columns start blank and are filled in by staff.
		return ""
	default:
		return f.Word()
	}
}
