package server

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"translation-server/internal/config"
	"translation-server/internal/convert"
	"translation-server/internal/version"
)

// translationResponse is the success envelope for /api/translation.
type translationResponse struct {
	Version      string            `json:"version"`
	Language     string            `json:"language"`
	Key          string            `json:"key,omitempty"`
	Value        string            `json:"value,omitempty"`
	Translations map[string]string `json:"translations,omitempty"`
}

type languagesResponse struct {
	Version   string   `json:"version"`
	Languages []string `json:"languages"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// errorResponse is the structured error envelope; lookup failures list the
// currently available languages.
type errorResponse struct {
	Error     string   `json:"error"`
	Languages []string `json:"languages,omitempty"`
}

func (s *Server) handleTranslation(w http.ResponseWriter, r *http.Request) {
	lang := strings.TrimSpace(r.URL.Query().Get("lang"))
	if lang == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing required query parameter: lang"})
		return
	}

	if !convert.ValidLanguage(lang) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "language not found", Languages: s.languages()})
		return
	}

	values, err := s.loadLanguage(lang)
	if err != nil {
		if os.IsNotExist(err) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "language not found", Languages: s.languages()})
			return
		}
		log.Error().Err(err).Str("language", lang).Msg("Failed to read language file")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to read language file"})
		return
	}

	ver := s.settings.Read(version.FieldFull).String()

	key := strings.TrimSpace(r.URL.Query().Get("key"))
	if key == "" {
		writeJSON(w, http.StatusOK, translationResponse{
			Version:      ver,
			Language:     lang,
			Translations: values,
		})
		return
	}

	value, ok := values[key]
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "key not found", Languages: s.languages()})
		return
	}

	writeJSON(w, http.StatusOK, translationResponse{
		Version:  ver,
		Language: lang,
		Key:      key,
		Value:    value,
	})
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, languagesResponse{
		Version:   s.settings.Read(version.FieldFull).String(),
		Languages: s.languages(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: s.settings.Read(version.FieldFull).String(),
	})
}

// loadLanguage reads one language document whole from the output directory.
func (s *Server) loadLanguage(lang string) (map[string]string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, lang+".json"))
	if err != nil {
		return nil, err
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}

// languages lists the language codes currently available, derived from the
// output directory contents.
func (s *Server) languages() []string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		log.Warn().Err(err).Str("dir", s.dir).Msg("Failed to list output directory")
		return []string{}
	}

	langs := []string{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == s.settingsName || !strings.HasSuffix(name, ".json") {
			continue
		}
		langs = append(langs, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(langs)

	return langs
}

func settingsBase(cfg *config.Config) string {
	return filepath.Base(cfg.SettingsFile)
}

// writeJSON encodes v and writes it with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}
