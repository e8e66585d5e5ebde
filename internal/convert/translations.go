package convert

// Translations holds the per-language key→value assignments built from one
// source table. It is rebuilt from scratch on every conversion run.
type Translations struct {
	languages []string
	values    map[string]map[string]string
}

func newTranslations(languages []string) *Translations {
	values := make(map[string]map[string]string, len(languages))
	for _, lang := range languages {
		values[lang] = map[string]string{}
	}
	return &Translations{languages: languages, values: values}
}

// Languages returns the validated language identifiers in header order.
func (t *Translations) Languages() []string {
	return t.languages
}

// Language returns the key→value map for one language.
func (t *Translations) Language(lang string) (map[string]string, bool) {
	m, ok := t.values[lang]
	return m, ok
}

// Lookup returns the value stored for key under lang.
func (t *Translations) Lookup(lang, key string) (string, bool) {
	m, ok := t.values[lang]
	if !ok {
		return "", false
	}
	v, ok := m[key]
	return v, ok
}

// Has reports whether key is assigned under lang.
func (t *Translations) Has(lang, key string) bool {
	_, ok := t.Lookup(lang, key)
	return ok
}

func (t *Translations) set(lang, key, value string) {
	t.values[lang][key] = value
}
