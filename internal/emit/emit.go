// Package emit serializes the translation mapping into one JSON document
// per language.
package emit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"

	"translation-server/internal/convert"
	"translation-server/internal/version"
)

// VersionKey is the reserved property embedded as the first entry of every
// i18n-flavor document.
const VersionKey = "_version"

type entry struct {
	key, value string
}

// WriteFull writes the full-flavor document for every language into dir:
// translation keys sorted lexicographically, 2-space indent, no metadata.
func WriteFull(tr *convert.Translations, dir string) error {
	return write(tr, dir, nil)
}

// WriteI18n writes the i18n-flavor documents: identical to the full flavor
// except that the current i18n version is inserted as the first property.
func WriteI18n(tr *convert.Translations, dir string, ver version.Version) error {
	head := []entry{{key: VersionKey, value: ver.String()}}
	return write(tr, dir, head)
}

func write(tr *convert.Translations, dir string, head []entry) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, lang := range tr.Languages() {
		values, ok := tr.Language(lang)
		if !ok {
			continue
		}

		doc := encode(values, head)
		path := filepath.Join(dir, lang+".json")
		if err := os.WriteFile(path, doc, 0644); err != nil {
			return fmt.Errorf("write language file %s: %w", path, err)
		}

		log.Info().Str("language", lang).Str("path", path).Int("keys", len(values)).Msg("Language file written")
	}

	return nil
}

// encode renders a 2-space indented JSON object with the head entries
// first and the translation keys in sorted order after them. A translation
// key colliding with a head entry is overwritten by it.
func encode(values map[string]string, head []entry) []byte {
	reserved := map[string]bool{}
	for _, e := range head {
		reserved[e.key] = true
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		if reserved[k] {
			log.Warn().Str("key", k).Msg("Translation key collides with reserved property, overwritten")
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]entry, 0, len(head)+len(keys))
	entries = append(entries, head...)
	for _, k := range keys {
		entries = append(entries, entry{key: k, value: values[k]})
	}

	var buf bytes.Buffer
	if len(entries) == 0 {
		buf.WriteString("{}")
		return buf.Bytes()
	}

	buf.WriteString("{\n")
	for i, e := range entries {
		k, _ := json.Marshal(e.key)
		v, _ := json.Marshal(e.value)
		buf.WriteString("  ")
		buf.Write(k)
		buf.WriteString(": ")
		buf.Write(v)
		if i < len(entries)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}")

	return buf.Bytes()
}
