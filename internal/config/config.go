// Package config reads pydocgen settings from the [tool.docgen] table
// of pyproject.toml.
package config

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// PyprojectFile is the settings file consumed from the working directory.
const PyprojectFile = "pyproject.toml"

// Map is the raw [tool.docgen] table. Absent keys are the caller's
// problem: apply defaults per key, never assume presence.
type Map map[string]any

// pyprojectDoc models only the slice of pyproject.toml we consume.
type pyprojectDoc struct {
	Tool struct {
		Docgen map[string]any `toml:"docgen"`
	} `toml:"tool"`
}

// LoadPyproject reads [tool.docgen] from ./pyproject.toml and returns it
// as a fresh Map. Missing, unreadable, or malformed files all yield an
// empty map; this loader never fails.
func LoadPyproject() Map {
	content, err := os.ReadFile(PyprojectFile)
	if err != nil {
		return Map{}
	}

	var doc pyprojectDoc
	if err := toml.Unmarshal(content, &doc); err != nil {
		return Map{}
	}
	if doc.Tool.Docgen == nil {
		return Map{}
	}
	return Map(doc.Tool.Docgen)
}

// Settings are the recognized options with defaults applied.
type Settings struct {
	// Style is the docstring style name (Google, NumPy, or reST).
	Style string
	// Rewrite replaces existing docstrings instead of filling gaps.
	Rewrite bool
	// ModuleDoc inserts a module-level docstring when missing.
	ModuleDoc bool
	// CoverageMin is the docstring coverage threshold in percent.
	CoverageMin int
}

// DefaultSettings returns the documented defaults.
func DefaultSettings() Settings {
	return Settings{
		Style:       "Google",
		Rewrite:     false,
		ModuleDoc:   true,
		CoverageMin: 90,
	}
}

// SettingsFrom applies recognized keys from a raw map over the defaults.
// Unrecognized keys and mistyped values are ignored.
func SettingsFrom(m Map) Settings {
	s := DefaultSettings()
	if v, ok := asString(m["style"]); ok {
		s.Style = v
	}
	if v, ok := asBool(m["rewrite"]); ok {
		s.Rewrite = v
	}
	if v, ok := asBool(m["module_doc"]); ok {
		s.ModuleDoc = v
	}
	if v, ok := asInt(m["coverage_min"]); ok {
		s.CoverageMin = v
	}
	return s
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// asInt accepts the numeric types go-toml produces for integers.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int64:
		return int(n), true
	case int:
		return n, true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
