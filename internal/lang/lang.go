// File: lang.go
// Title: Display Language Preference
// Description: Tracks the technician's display language. An explicit
//              choice (made by toggling) persists across sessions; an
//              automatic switch driven by the task record is transient
//              and never overrides a persisted choice.

package lang

import (
	"encoding/json"
	"os"
	"path/filepath"

	"fieldtask/internal/core/i18n"
)

// settings is the persisted shape
type settings struct {
	PreferredLang string `json:"preferred_lang"`
}

// Store holds the current display language and its persistence state
type Store struct {
	dir      string
	current  i18n.Locale
	explicit bool
}

// DefaultDir returns the settings directory
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fieldtask"
	}
	return filepath.Join(home, ".fieldtask")
}

// NewStore loads the persisted preference from dir. A missing or
// unreadable settings file yields the baseline language with no
// explicit preference.
func NewStore(dir string) *Store {
	store := &Store{dir: dir, current: i18n.Baseline()}

	data, err := os.ReadFile(store.settingsFile())
	if err != nil {
		return store
	}

	var saved settings
	if err := json.Unmarshal(data, &saved); err != nil {
		return store
	}

	locale := i18n.Locale(saved.PreferredLang)
	if locale.IsValid() {
		store.current = locale
		store.explicit = true
	}
	return store
}

func (s *Store) settingsFile() string {
	return filepath.Join(s.dir, "settings.json")
}

// Current returns the active display language
func (s *Store) Current() i18n.Locale {
	return s.current
}

// Explicit reports whether the technician has chosen a language
// themselves this session or a previous one.
func (s *Store) Explicit() bool {
	return s.explicit
}

// Toggle switches to the other language as an explicit choice and
// persists it. The switch takes effect even when persisting fails; the
// error is reported so the caller can log it.
func (s *Store) Toggle() (i18n.Locale, error) {
	s.current = s.current.Other()
	s.explicit = true
	return s.current, s.save()
}

// SetAuto switches the display language without marking it explicit and
// without persisting. It is a no-op once an explicit choice exists.
func (s *Store) SetAuto(locale i18n.Locale) {
	if s.explicit || !locale.IsValid() {
		return
	}
	s.current = locale
}

func (s *Store) save() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings{PreferredLang: string(s.current)}, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.settingsFile(), data, 0644)
}
