package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"translation-server/internal/csv"
)

func TestLanguages(t *testing.T) {
	tests := []struct {
		name    string
		header  []string
		want    []string
		wantErr string
	}{
		{
			name:   "simple header",
			header: []string{"key", "en", "de"},
			want:   []string{"en", "de"},
		},
		{
			name:   "keys label accepted",
			header: []string{"Keys", "en"},
			want:   []string{"en"},
		},
		{
			name:   "unexpected label warns only",
			header: []string{"id", "en"},
			want:   []string{"en"},
		},
		{
			name:   "whitespace trimmed",
			header: []string{"key", "  en ", "de_DE", "pt-BR"},
			want:   []string{"en", "de_DE", "pt-BR"},
		},
		{
			name:   "empty column skipped",
			header: []string{"key", "en", "  ", "de"},
			want:   []string{"en", "de"},
		},
		{
			name:   "duplicate column kept with later wins",
			header: []string{"key", "en", "en"},
			want:   []string{"en", "en"},
		},
		{
			name:    "too few columns",
			header:  []string{"key"},
			wantErr: "at least one language column",
		},
		{
			name:    "invalid identifier names column and value",
			header:  []string{"key", "en", "de de"},
			wantErr: `column 3: invalid language identifier "de de"`,
		},
		{
			name:    "only empty language columns",
			header:  []string{"key", " ", ""},
			wantErr: "no valid language columns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Languages(tt.header)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild(t *testing.T) {
	table := csv.Parse("key,en,de\nhello,Hello,Hallo\nbye,Bye,Tschüss")

	tr, err := Build(table)
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "de"}, tr.Languages())

	v, ok := tr.Lookup("en", "hello")
	require.True(t, ok)
	assert.Equal(t, "Hello", v)

	v, ok = tr.Lookup("de", "bye")
	require.True(t, ok)
	assert.Equal(t, "Tschüss", v)
}

func TestBuildEmptyTable(t *testing.T) {
	_, err := Build(csv.Parse(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source table is empty")
}

func TestBuildMissingCellsBecomeEmpty(t *testing.T) {
	table := csv.Parse("key,en,de\nshort,OnlyEnglish")

	tr, err := Build(table)
	require.NoError(t, err)

	v, ok := tr.Lookup("de", "short")
	require.True(t, ok)
	assert.Equal(t, "", v)
}

func TestBuildTrimsValues(t *testing.T) {
	table := csv.Parse("key,en\n hello ,  Hello  ")

	tr, err := Build(table)
	require.NoError(t, err)

	v, ok := tr.Lookup("en", "hello")
	require.True(t, ok)
	assert.Equal(t, "Hello", v)
}

func TestBuildSkipsEmptyKeyRows(t *testing.T) {
	table := csv.Parse("key,en,de\n,Hello,Hallo\nbye,Bye,Tschüss\n,Hello,Hallo")

	tr, err := Build(table)
	require.NoError(t, err)

	m, ok := tr.Language("en")
	require.True(t, ok)
	assert.Len(t, m, 1)
	assert.True(t, tr.Has("en", "bye"))
}

func TestBuildDuplicateKeyFails(t *testing.T) {
	table := csv.Parse("key,en\nhello,Hello\nbye,Bye\nhello,Again")

	_, err := Build(table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate key "hello"`)
	assert.Contains(t, err.Error(), "row 4")
	assert.Contains(t, err.Error(), "row 2")
}

func TestBuildDuplicateLanguageColumnLaterWins(t *testing.T) {
	table := csv.Parse("key,en,en\nhello,First,Second")

	tr, err := Build(table)
	require.NoError(t, err)

	v, ok := tr.Lookup("en", "hello")
	require.True(t, ok)
	assert.Equal(t, "Second", v)
}

func TestValidLanguage(t *testing.T) {
	assert.True(t, ValidLanguage("en"))
	assert.True(t, ValidLanguage("pt-BR"))
	assert.True(t, ValidLanguage("zh_Hans"))
	assert.False(t, ValidLanguage(""))
	assert.False(t, ValidLanguage("de de"))
	assert.False(t, ValidLanguage("../etc"))
}
