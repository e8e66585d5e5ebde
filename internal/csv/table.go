// Package csv parses and rewrites the delimited translation source table.
package csv

import "strings"

const bom = "\uFEFF"

// Table is a parsed source table. Row 0 is the header; every row is an
// ordered list of cell strings.
type Table struct {
	Rows [][]string
	// HasBOM records whether the source text carried a UTF-8 byte-order
	// mark, so serialization can restore it.
	HasBOM bool
}

// Parse splits raw text into rows of cells. Lines are separated by \n or
// \r\n; lines containing only whitespace are dropped entirely. Cells are
// comma-separated, optionally wrapped in double quotes; inside a quoted
// region a comma is literal and a doubled quote ("") is an escaped quote.
//
// Quoted cells spanning multiple physical lines are not supported; each
// line is parsed on its own.
func Parse(raw string) *Table {
	t := &Table{}

	if strings.HasPrefix(raw, bom) {
		t.HasBOM = true
		raw = strings.TrimPrefix(raw, bom)
	}

	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		t.Rows = append(t.Rows, splitLine(line))
	}

	return t
}

// splitLine breaks one physical line into cells, honoring quoting.
func splitLine(line string) []string {
	var cells []string
	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				cur.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			cells = append(cells, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	cells = append(cells, cur.String())

	return cells
}
