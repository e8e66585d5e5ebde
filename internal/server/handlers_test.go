package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"translation-server/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"),
		[]byte(`{"bye":"Bye","hello":"Hello"}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "de.json"),
		[]byte(`{"bye":"Tschüss","hello":"Hallo"}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"),
		[]byte(`{"version":"v1.0.0.7","i18nVersion":"v1.0.0.2"}`), 0644))

	return New(&config.Config{
		OutputDir:    dir,
		SettingsFile: filepath.Join(dir, "settings.json"),
	})
}

func doRequest(t *testing.T, s *Server, target string) (int, map[string]any) {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, target, nil)
	s.Router().ServeHTTP(w, r)

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHandleTranslationWholeDocument(t *testing.T) {
	s := newTestServer(t)

	code, body := doRequest(t, s, "/api/translation?lang=en")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "v1.0.0.7", body["version"])
	assert.Equal(t, "en", body["language"])
	assert.Equal(t, map[string]any{"bye": "Bye", "hello": "Hello"}, body["translations"])
}

func TestHandleTranslationSingleKey(t *testing.T) {
	s := newTestServer(t)

	code, body := doRequest(t, s, "/api/translation?lang=de&key=bye")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "v1.0.0.7", body["version"])
	assert.Equal(t, "bye", body["key"])
	assert.Equal(t, "Tschüss", body["value"])
}

func TestHandleTranslationMissingLang(t *testing.T) {
	s := newTestServer(t)

	code, body := doRequest(t, s, "/api/translation")

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["error"], "lang")
}

func TestHandleTranslationUnknownLanguage(t *testing.T) {
	s := newTestServer(t)

	code, body := doRequest(t, s, "/api/translation?lang=fr")

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "language not found", body["error"])
	assert.Equal(t, []any{"de", "en"}, body["languages"])
}

func TestHandleTranslationInvalidLanguage(t *testing.T) {
	s := newTestServer(t)

	code, body := doRequest(t, s, "/api/translation?lang=..%2Fsettings")

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "language not found", body["error"])
}

func TestHandleTranslationUnknownKey(t *testing.T) {
	s := newTestServer(t)

	code, body := doRequest(t, s, "/api/translation?lang=en&key=missing")

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "key not found", body["error"])
	assert.Equal(t, []any{"de", "en"}, body["languages"])
}

func TestHandleLanguages(t *testing.T) {
	s := newTestServer(t)

	code, body := doRequest(t, s, "/api/languages")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "v1.0.0.7", body["version"])
	assert.Equal(t, []any{"de", "en"}, body["languages"])
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	code, body := doRequest(t, s, "/health")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "v1.0.0.7", body["version"])
}

func TestLanguagesEmptyDir(t *testing.T) {
	dir := t.TempDir()
	s := New(&config.Config{OutputDir: dir, SettingsFile: filepath.Join(dir, "settings.json")})

	code, body := doRequest(t, s, "/api/languages")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{}, body["languages"])
	assert.Equal(t, "v1.0.0.0", body["version"])
}
