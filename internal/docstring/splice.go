package docstring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hchawla/pydocgen/internal/analyze"
	"github.com/hchawla/pydocgen/internal/pyast"
)

// Mode controls whether the splicer fills gaps or replaces everything.
type Mode string

const (
	// ModeMissing inserts docstrings only where none exist.
	ModeMissing Mode = "missing"
	// ModeRewrite replaces existing docstrings as well.
	ModeRewrite Mode = "rewrite"
)

const tripleQuote = `"""`

// moduleDocstring is the template inserted by AddModuleDocstring.
const moduleDocstring = `"""Module description."""` + "\n\n"

// target is one splice site flattened out of the catalog.
type target struct {
	name   string
	params []string
	hasDoc bool
	node   *pyast.Node
}

// Insert returns source with generated docstrings spliced into every
// cataloged function, class, and method. Targets are processed in
// descending source-line order so earlier insertions never invalidate
// later offsets, and all bytes outside the touched bodies are preserved
// exactly.
func Insert(source string, cat *analyze.Catalog, style Style, mode Mode) (string, error) {
	if mode != ModeMissing && mode != ModeRewrite {
		return "", fmt.Errorf("unsupported splice mode %q", mode)
	}

	targets := flatten(cat)
	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].node.StartLine > targets[j].node.StartLine
	})

	lines := strings.Split(source, "\n")
	for _, tgt := range targets {
		if mode == ModeMissing && tgt.hasDoc {
			continue
		}
		doc, err := Build(style, tgt.name, tgt.params)
		if err != nil {
			return "", err
		}
		lines = spliceTarget(lines, tgt, doc, mode)
	}
	return strings.Join(lines, "\n"), nil
}

func flatten(cat *analyze.Catalog) []target {
	var targets []target
	for _, fn := range cat.Functions {
		targets = append(targets, target{fn.Name, fn.Params, fn.HasDoc, fn.Node})
	}
	for _, cls := range cat.Classes {
		targets = append(targets, target{cls.Name, nil, cls.HasDoc, cls.Node})
		for _, m := range cls.Methods {
			targets = append(targets, target{m.Name, m.Params, m.HasDoc, m.Node})
		}
	}
	return targets
}

// spliceTarget inserts (or replaces) one docstring block in lines.
func spliceTarget(lines []string, tgt target, doc string, mode Mode) []string {
	node := tgt.node.Definition()
	body := node.Body()
	if body == nil {
		return lines
	}

	var insertAt int // 0-based index the block is inserted before
	var indent string

	if docNode := node.DocstringNode(); docNode != nil && mode == ModeRewrite {
		insertAt = docNode.StartLine - 1
		indent = leadingWhitespace(lines[insertAt])
		lines = append(lines[:insertAt], lines[docNode.EndLine:]...)
	} else if body.StartLine > node.StartLine {
		insertAt = body.StartLine - 1
		indent = leadingWhitespace(lines[insertAt])
	} else {
		// Single-line definition: body shares the def line. Insert below
		// it, one level deeper than the header.
		insertAt = node.StartLine
		indent = leadingWhitespace(lines[node.StartLine-1]) + "    "
	}

	return insertLines(lines, insertAt, docstringBlock(doc, indent))
}

// docstringBlock indents the generated docstring and wraps it in triple
// quotes. Blank lines stay empty rather than carrying trailing spaces.
func docstringBlock(doc, indent string) []string {
	docLines := strings.Split(doc, "\n")
	block := make([]string, 0, len(docLines)+1)
	block = append(block, indent+tripleQuote+docLines[0])
	for _, line := range docLines[1:] {
		if line == "" {
			block = append(block, "")
		} else {
			block = append(block, indent+line)
		}
	}
	return append(block, indent+tripleQuote)
}

// AddModuleDocstring inserts a module-level docstring before all other
// statements when the module's first statement is not already a string
// literal. Malformed source is an error.
func AddModuleDocstring(source string) (string, error) {
	tree, err := pyast.Parse([]byte(source))
	if err != nil {
		return "", err
	}
	if tree.Root.HasDocstring() {
		return source, nil
	}
	return moduleDocstring + source, nil
}

func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

func insertLines(lines []string, at int, block []string) []string {
	out := make([]string, 0, len(lines)+len(block))
	out = append(out, lines[:at]...)
	out = append(out, block...)
	return append(out, lines[at:]...)
}
