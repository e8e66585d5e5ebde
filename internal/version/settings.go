package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Field names a version counter inside the settings record.
type Field string

const (
	// FieldFull tracks the API-facing per-language documents.
	FieldFull Field = "version"
	// FieldI18n tracks the frontend-facing documents and is embedded in
	// each of them.
	FieldI18n Field = "i18nVersion"
)

// Store persists both version counters in a single JSON settings record.
type Store struct {
	path string
}

// NewStore creates a store backed by the settings file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Read returns the persisted counter for field. A missing or unreadable
// record, or an absent field, yields the default version; read failures
// are logged, never fatal.
func (s *Store) Read(field Field) Version {
	record, err := s.load()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("field", string(field)).Msg("Settings unreadable, using default version")
		}
		return Default
	}

	raw, ok := record[string(field)]
	if !ok || raw == "" {
		return Default
	}
	return Parse(raw)
}

// Write persists the counter for field, preserving every other field of
// the existing record.
func (s *Store) Write(field Field, v Version) error {
	record, err := s.load()
	if err != nil {
		record = map[string]string{}
	}
	record[string(field)] = v.String()

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create settings directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

func (s *Store) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	record := map[string]string{}
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return record, nil
}
