package csv

import (
	"fmt"
	"os"
	"strings"
)

// Serialize renders the table back to delimited text. Any cell containing
// a comma, double quote, or newline is wrapped in double quotes with
// internal quotes doubled. The BOM prefix is restored iff the parsed
// source carried one.
func Serialize(t *Table) string {
	var b strings.Builder

	if t.HasBOM {
		b.WriteString(bom)
	}

	for i, row := range t.Rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quoteCell(cell))
		}
	}
	b.WriteByte('\n')

	return b.String()
}

func quoteCell(cell string) string {
	if !strings.ContainsAny(cell, ",\"\n") {
		return cell
	}
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}

// SortFile rewrites the source file in place with its data rows in sorted
// key order. The whole file is read and written back in one operation.
func SortFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read source file: %w", err)
	}

	sorted := Sorted(Parse(string(raw)))

	if err := os.WriteFile(path, []byte(Serialize(sorted)), 0644); err != nil {
		return fmt.Errorf("write sorted file: %w", err)
	}

	return nil
}
