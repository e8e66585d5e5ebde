package csv

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// keyCollator compares translation keys case-insensitively with
// locale-aware collation.
var keyCollator = collate.New(language.Und, collate.IgnoreCase)

// Sorted returns a new table with the header unchanged and the data rows
// ordered by case-insensitive collation of the trimmed first cell. The
// sort is stable: rows with equal keys keep their input order. Rows whose
// trimmed key is empty are dropped.
func Sorted(t *Table) *Table {
	out := &Table{HasBOM: t.HasBOM}
	if len(t.Rows) == 0 {
		return out
	}

	out.Rows = append(out.Rows, t.Rows[0])

	var data [][]string
	for _, row := range t.Rows[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		data = append(data, row)
	}

	sort.SliceStable(data, func(i, j int) bool {
		a := strings.TrimSpace(data[i][0])
		b := strings.TrimSpace(data[j][0])
		return keyCollator.CompareString(a, b) < 0
	})

	out.Rows = append(out.Rows, data...)
	return out
}
