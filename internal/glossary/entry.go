// Package glossary holds the construction-site slang table and the two pure
// text passes built on it: slang standardization and the dictionary-based
// fallback translation used when no remote translator answers.
//
// Every function takes an explicit *Snapshot. There is no package-level
// mutable glossary; callers own loading, merging and persisting entries.
package glossary

import (
	"strings"
)

// MissingTranslation marks a language field the author left empty.
const MissingTranslation = "-"

// DefaultLanguage is used when an entry or dictionary lacks the requested language.
const DefaultLanguage = "en"

// Entry is one slang term with its standard Korean form and per-language renderings.
type Entry struct {
	Slang        string            `json:"slang" yaml:"slang"`
	Standard     string            `json:"standard" yaml:"standard"`
	Translations map[string]string `json:"translations" yaml:"translations"`
}

// PlainStandard returns the Korean part of the standard form, i.e. the text
// before any bracketed gloss: "비계 (Scaffolding)" -> "비계".
func (e Entry) PlainStandard() string {
	return plainStandard(e.Standard)
}

// Translation returns the rendering for lang, falling back to English when
// the field is absent, empty or "-". Returns "" when English is missing too.
func (e Entry) Translation(lang string) string {
	if t := usable(e.Translations[lang]); t != "" {
		return t
	}
	return usable(e.Translations[DefaultLanguage])
}

func (e Entry) clone() Entry {
	tr := make(map[string]string, len(e.Translations))
	for k, v := range e.Translations {
		tr[k] = v
	}
	e.Translations = tr
	return e
}

// Normalize trims fields and fills every known language with "-" when missing.
func (e Entry) Normalize() Entry {
	out := Entry{
		Slang:        strings.TrimSpace(e.Slang),
		Standard:     strings.TrimSpace(e.Standard),
		Translations: make(map[string]string, len(Languages)),
	}
	for k, v := range e.Translations {
		out.Translations[k] = strings.TrimSpace(v)
	}
	for _, lang := range Languages {
		if out.Translations[lang.Key] == "" {
			out.Translations[lang.Key] = MissingTranslation
		}
	}
	return out
}

func plainStandard(standard string) string {
	if idx := strings.Index(standard, "("); idx >= 0 {
		standard = standard[:idx]
	}
	return strings.TrimSpace(standard)
}

func usable(s string) string {
	s = strings.TrimSpace(s)
	if s == MissingTranslation {
		return ""
	}
	return s
}
