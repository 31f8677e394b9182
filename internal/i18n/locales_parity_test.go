package i18n

import (
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shippedLocalesDir(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok, "runtime.Caller failed")
	return filepath.Join(filepath.Dir(thisFile), "locales")
}

func sortedKeys(messages map[string]string) []string {
	keys := make([]string, 0, len(messages))
	for key := range messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func TestShippedLocalesShareKeys(t *testing.T) {
	locales, err := readLocales(shippedLocalesDir(t))
	require.NoError(t, err)

	english := sortedKeys(locales[LangEN])
	require.NotEmpty(t, english)
	for _, language := range requiredLanguages {
		assert.Equal(t, english, sortedKeys(locales[language]), "locale %s keys differ from en", language)
	}
}

func TestShippedLocalesHaveNoBlankMessages(t *testing.T) {
	locales, err := readLocales(shippedLocalesDir(t))
	require.NoError(t, err)

	for language, messages := range locales {
		for key, value := range messages {
			assert.NotEmpty(t, strings.TrimSpace(value), "%s: %s is blank", language, key)
		}
	}
}

func TestShippedLocalesLoadIntoManager(t *testing.T) {
	manager, err := NewManager(LangNY, shippedLocalesDir(t))
	require.NoError(t, err)

	assert.Equal(t, []string{LangEN, LangNY}, manager.SupportedLanguages())
	assert.Equal(t, "Lowani", manager.Translate(LangNY, "login.heading"))
}
