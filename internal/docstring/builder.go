// Package docstring renders template docstrings in the supported styles
// and splices them into Python source text.
package docstring

import (
	"fmt"
	"strings"
	"unicode"
)

// Style selects a docstring convention. Exactly three are recognized;
// anything else is an *UnsupportedStyleError.
type Style string

const (
	StyleGoogle Style = "Google"
	StyleNumPy  Style = "NumPy"
	StyleRest   Style = "reST"
)

// UnsupportedStyleError reports a style outside the recognized set.
type UnsupportedStyleError struct {
	Name string
}

func (e *UnsupportedStyleError) Error() string {
	return fmt.Sprintf("unsupported docstring style %q (want Google, NumPy, or reST)", e.Name)
}

// ParseStyle resolves a user-supplied style name, case-insensitively.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "google":
		return StyleGoogle, nil
	case "numpy":
		return StyleNumPy, nil
	case "rest", "restructuredtext":
		return StyleRest, nil
	default:
		return "", &UnsupportedStyleError{Name: name}
	}
}

// Build renders the docstring body for a named target: a capitalized
// one-line summary, the per-parameter section in the given style, and
// the style's return block. The parameter section is omitted entirely
// when params is empty. The result carries no quote delimiters; the
// splicer adds those.
func Build(style Style, name string, params []string) (string, error) {
	summary := summarize(name)
	switch style {
	case StyleGoogle:
		return buildGoogle(summary, params), nil
	case StyleNumPy:
		return buildNumPy(summary, params), nil
	case StyleRest:
		return buildRest(summary, params), nil
	default:
		return "", &UnsupportedStyleError{Name: string(style)}
	}
}

// summarize turns a definition name into a summary line: first letter
// uppercased, remainder unchanged, trailing period ensured.
func summarize(name string) string {
	if name == "" {
		return "."
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	s := string(runes)
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}

func buildGoogle(summary string, params []string) string {
	var b strings.Builder
	b.WriteString(summary)
	b.WriteString("\n\n")
	if len(params) > 0 {
		b.WriteString("Args:\n")
		for _, p := range params {
			fmt.Fprintf(&b, "    %s: Description.\n", p)
		}
	}
	b.WriteString("Returns:\n    Description.")
	return b.String()
}

func buildNumPy(summary string, params []string) string {
	var b strings.Builder
	b.WriteString(summary)
	b.WriteString("\n\n")
	if len(params) > 0 {
		b.WriteString("Parameters\n----------\n")
		for _, p := range params {
			fmt.Fprintf(&b, "%s : type\n    Description.\n", p)
		}
		b.WriteString("\n")
	}
	b.WriteString("Returns\n-------\ntype\n    Description.")
	return b.String()
}

func buildRest(summary string, params []string) string {
	var b strings.Builder
	b.WriteString(summary)
	b.WriteString("\n\n")
	for _, p := range params {
		fmt.Fprintf(&b, ":param %s: Description.\n", p)
	}
	if len(params) > 0 {
		b.WriteString("\n")
	}
	b.WriteString(":returns: Description.")
	return b.String()
}
