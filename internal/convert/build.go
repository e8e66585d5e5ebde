// Package convert validates a parsed source table and builds the
// per-language translation mapping from it.
package convert

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"translation-server/internal/csv"
)

// languagePattern is the accepted shape of a language identifier.
var languagePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidLanguage reports whether s is an acceptable language identifier.
func ValidLanguage(s string) bool {
	return languagePattern.MatchString(s)
}

// Languages extracts and validates the language identifiers from the
// header row. The first column is the key column; an unexpected label
// there is only a warning. Empty language columns are skipped with a
// warning; an invalid identifier is fatal.
func Languages(header []string) ([]string, error) {
	if len(header) < 2 {
		return nil, &ValidationError{Row: 1, Msg: "header needs a key column and at least one language column"}
	}

	label := strings.ToLower(strings.TrimSpace(header[0]))
	if label != "key" && label != "keys" {
		log.Warn().Str("label", header[0]).Msg("First header column is not \"key\" or \"keys\"")
	}

	var languages []string
	seen := map[string]int{}
	for i, cell := range header[1:] {
		column := i + 2 // 1-based position in the header row

		lang := strings.TrimSpace(cell)
		if lang == "" {
			log.Warn().Int("column", column).Msg("Empty language column skipped")
			continue
		}
		if !languagePattern.MatchString(lang) {
			return nil, &ValidationError{Row: 1, Column: column, Msg: "invalid language identifier " + strconv.Quote(lang)}
		}
		if first, dup := seen[lang]; dup {
			log.Warn().Str("language", lang).Int("column", column).Int("first_column", first).
				Msg("Duplicate language column, later values win")
		} else {
			seen[lang] = column
		}
		languages = append(languages, lang)
	}

	if len(languages) == 0 {
		return nil, &ValidationError{Row: 1, Msg: "no valid language columns in header"}
	}

	return languages, nil
}

// Build runs the full validation front half: header languages, then every
// data row into the translation mapping. Duplicate keys abort the run.
func Build(t *csv.Table) (*Translations, error) {
	if len(t.Rows) == 0 {
		return nil, &ValidationError{Msg: "source table is empty"}
	}

	languages, err := Languages(t.Rows[0])
	if err != nil {
		return nil, err
	}

	tr := newTranslations(languages)
	seenKeys := map[string]int{}

	for i, row := range t.Rows[1:] {
		rowNum := i + 2 // 1-based, counting the header

		key, ok := normalizeRow(tr, languages, row)
		if !ok {
			log.Warn().Int("row", rowNum).Msg("Row without key skipped")
			continue
		}

		if first, dup := seenKeys[key]; dup {
			return nil, &ValidationError{
				Row: rowNum,
				Msg: "duplicate key " + strconv.Quote(key) + ", first used in row " + strconv.Itoa(first),
			}
		}
		seenKeys[key] = rowNum
	}

	return tr, nil
}

// normalizeRow assigns one data row into the mapping and returns its key.
// A row whose trimmed first cell is empty is reported as unusable.
func normalizeRow(tr *Translations, languages []string, row []string) (string, bool) {
	if len(row) == 0 {
		return "", false
	}
	key := strings.TrimSpace(row[0])
	if key == "" {
		return "", false
	}

	for i, lang := range languages {
		cell := ""
		if i+1 < len(row) {
			cell = row[i+1]
		}
		tr.set(lang, key, strings.TrimSpace(cell))
	}

	return key, true
}
