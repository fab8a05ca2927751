// File: i18n.go
// Title: Localized String Tables
// Description: Embedded TOML string tables for the two supported display
//              locales, with lookup and fallback to the baseline locale.
//              These cover the client's own labels; task field content is
//              translated separately by the translation overlay.

package i18n

import (
	"embed"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"

	"fieldtask/internal/util/stringx"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Locale identifies a display language
type Locale string

const (
	// LocaleEN is the baseline locale; no translation step required
	LocaleEN Locale = "en"

	// LocaleZH is the alternate locale
	LocaleZH Locale = "zh"
)

// Baseline returns the baseline locale
func Baseline() Locale {
	return LocaleEN
}

// IsValid returns true for a supported locale
func (l Locale) IsValid() bool {
	return l == LocaleEN || l == LocaleZH
}

// Other returns the opposite supported locale
func (l Locale) Other() Locale {
	if l == LocaleZH {
		return LocaleEN
	}
	return LocaleZH
}

var (
	loadOnce sync.Once
	tables   map[Locale]map[string]string
	loadErr  error
)

// load parses the embedded locale files once
func load() {
	tables = make(map[Locale]map[string]string)
	for _, locale := range []Locale{LocaleEN, LocaleZH} {
		data, err := localeFS.ReadFile(fmt.Sprintf("locales/%s.toml", locale))
		if err != nil {
			loadErr = fmt.Errorf("locale %s: %w", locale, err)
			return
		}
		table := make(map[string]string)
		if err := toml.Unmarshal(data, &table); err != nil {
			loadErr = fmt.Errorf("locale %s: %w", locale, err)
			return
		}
		tables[locale] = table
	}
}

// T looks up a string key for a locale, falling back to the baseline
// locale and finally to a bracketed key marker so a missing entry is
// visible rather than blank.
func T(key string, locale Locale) string {
	loadOnce.Do(load)
	if loadErr != nil {
		return fmt.Sprintf("[%s]", key)
	}

	if table, ok := tables[locale]; ok {
		if value, ok := table[key]; ok && stringx.IsNotBlank(value) {
			return value
		}
	}
	if locale != Baseline() {
		if value, ok := tables[Baseline()][key]; ok && stringx.IsNotBlank(value) {
			return value
		}
	}
	return fmt.Sprintf("[%s]", key)
}

// Has returns true if the key exists in the given locale's table
func Has(key string, locale Locale) bool {
	loadOnce.Do(load)
	if loadErr != nil {
		return false
	}
	_, ok := tables[locale][key]
	return ok
}

// Keys returns all keys of the baseline table; used by the table
// consistency test.
func Keys() []string {
	loadOnce.Do(load)
	if loadErr != nil {
		return nil
	}
	keys := make([]string, 0, len(tables[Baseline()]))
	for k := range tables[Baseline()] {
		keys = append(keys, k)
	}
	return keys
}
