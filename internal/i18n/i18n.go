package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const (
	LangEN = "en"
	LangNY = "ny"
)

var requiredLanguages = []string{LangEN, LangNY}

var languageNames = map[string]string{
	LangEN: "English",
	LangNY: "Chichewa",
}

// Manager holds one message catalog per language. Every catalog already
// contains the default language's messages for keys it does not translate.
type Manager struct {
	defaultLanguage string
	catalogs        map[string]map[string]string
	languages       []string
}

func NewManager(defaultLanguage string, localesDir string) (*Manager, error) {
	raw, err := readLocales(localesDir)
	if err != nil {
		return nil, err
	}
	for _, language := range requiredLanguages {
		if _, ok := raw[language]; !ok {
			return nil, fmt.Errorf("required locale %q missing in %s", language, localesDir)
		}
	}

	manager := &Manager{
		defaultLanguage: LangEN,
		catalogs:        make(map[string]map[string]string, len(raw)),
	}
	for language := range raw {
		manager.languages = append(manager.languages, language)
	}
	sort.Strings(manager.languages)

	if tag := normalizeLanguageTag(defaultLanguage); raw[tag] != nil {
		manager.defaultLanguage = tag
	}

	fallback := raw[manager.defaultLanguage]
	for language, messages := range raw {
		catalog := make(map[string]string, len(fallback)+len(messages))
		for key, value := range fallback {
			catalog[key] = value
		}
		for key, value := range messages {
			if strings.TrimSpace(value) != "" {
				catalog[key] = value
			}
		}
		manager.catalogs[language] = catalog
	}
	return manager, nil
}

func readLocales(localesDir string) (map[string]map[string]string, error) {
	paths, err := filepath.Glob(filepath.Join(localesDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locales found in %s", localesDir)
	}

	locales := make(map[string]map[string]string, len(paths))
	for _, path := range paths {
		language := strings.ToLower(strings.TrimSuffix(filepath.Base(path), ".json"))
		messages, err := readLocale(path)
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", language, err)
		}
		locales[language] = messages
	}
	return locales, nil
}

func readLocale(path string) (map[string]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	messages := map[string]string{}
	if err := json.Unmarshal(content, &messages); err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("no messages in %s", filepath.Base(path))
	}
	return messages, nil
}

func (manager *Manager) DefaultLanguage() string {
	return manager.defaultLanguage
}

func (manager *Manager) SupportedLanguages() []string {
	return append([]string(nil), manager.languages...)
}

// LanguageName is the label shown in the language switcher.
func LanguageName(language string) string {
	if name, ok := languageNames[language]; ok {
		return name
	}
	return language
}

// NormalizeLanguage maps any tag ("NY", "ny_MW", "en-GB") to a loaded
// language, or to the default one.
func (manager *Manager) NormalizeLanguage(raw string) string {
	if tag := normalizeLanguageTag(raw); manager.catalogs[tag] != nil {
		return tag
	}
	return manager.defaultLanguage
}

// DetectFromAcceptLanguage returns the loaded language with the highest
// quality weight in the header. Ties keep header order.
func (manager *Manager) DetectFromAcceptLanguage(header string) string {
	best := manager.defaultLanguage
	bestWeight := 0.0
	for _, part := range strings.Split(header, ",") {
		tag, weight := parseAcceptLanguagePart(part)
		if weight <= bestWeight || manager.catalogs[tag] == nil {
			continue
		}
		best, bestWeight = tag, weight
	}
	return best
}

func parseAcceptLanguagePart(part string) (string, float64) {
	fields := strings.Split(part, ";")
	tag := normalizeLanguageTag(fields[0])
	if tag == "" {
		return "", 0
	}

	weight := 1.0
	for _, param := range fields[1:] {
		name, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok || strings.TrimSpace(name) != "q" {
			continue
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || parsed < 0 || parsed > 1 {
			return tag, 0
		}
		weight = parsed
	}
	return tag, weight
}

// Messages returns the shared catalog for the language. Callers must not
// modify it.
func (manager *Manager) Messages(language string) map[string]string {
	return manager.catalogs[manager.NormalizeLanguage(language)]
}

// Translate looks the key up in the language's catalog and echoes the key
// when nothing matches.
func (manager *Manager) Translate(language string, key string) string {
	if value, ok := manager.Messages(language)[key]; ok {
		return value
	}
	return key
}

func normalizeLanguageTag(raw string) string {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if separator := strings.IndexAny(tag, "-_"); separator >= 0 {
		tag = tag[:separator]
	}
	return tag
}
