package docstring

import (
	"strings"
	"testing"

	"github.com/hchawla/pydocgen/internal/analyze"
	"github.com/hchawla/pydocgen/internal/pyast"
)

// catalogFor parses source and builds its catalog.
func catalogFor(t *testing.T, source string) *analyze.Catalog {
	t.Helper()
	tree, err := pyast.Parse([]byte(source))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	pyast.AttachParents(tree)
	cat, err := analyze.MapNodes(tree)
	if err != nil {
		t.Fatalf("MapNodes returned error: %v", err)
	}
	return cat
}

func insertMissing(t *testing.T, source string, style Style) string {
	t.Helper()
	out, err := Insert(source, catalogFor(t, source), style, ModeMissing)
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	return out
}

func TestInsertGoogleScenario(t *testing.T) {
	source := "def add(a, b):\n    return a + b\n"
	out := insertMissing(t, source, StyleGoogle)

	want := `def add(a, b):
    """Add.

    Args:
        a: Description.
        b: Description.
    Returns:
        Description.
    """
    return a + b
`
	if out != want {
		t.Errorf("Insert output:\n%s\nwant:\n%s", out, want)
	}
}

func TestInsertMissingSkipsDocumented(t *testing.T) {
	source := `def documented():
    """Kept as is."""
    return 1

def plain():
    return 2
`
	out := insertMissing(t, source, StyleGoogle)

	if !strings.Contains(out, `"""Kept as is."""`) {
		t.Error("existing docstring was modified in missing mode")
	}
	if !strings.Contains(out, `"""Plain.`) {
		t.Error("missing docstring was not inserted")
	}

	// Every catalog target reports documented afterwards.
	cat := catalogFor(t, out)
	for _, fn := range cat.Functions {
		if !fn.HasDoc {
			t.Errorf("function %s still undocumented after splice", fn.Name)
		}
	}
}

func TestInsertIdempotent(t *testing.T) {
	source := `def a(x):
    return x

class C:
    def m(self):
        pass
`
	once := insertMissing(t, source, StyleGoogle)
	twice := insertMissing(t, once, StyleGoogle)
	if once != twice {
		t.Errorf("second missing-mode pass changed output:\nfirst:\n%s\nsecond:\n%s", once, twice)
	}
}

func TestInsertPreservesOtherBytes(t *testing.T) {
	source := "import os\n\nX = 1   # spacing   kept\n\ndef f(a):\n    return a\n\nY = 'tail'\n"
	out := insertMissing(t, source, StyleRest)

	for _, line := range []string{"import os", "X = 1   # spacing   kept", "Y = 'tail'", "    return a"} {
		if !strings.Contains(out, line+"\n") {
			t.Errorf("line %q not preserved byte-identically", line)
		}
	}
	if got, want := strings.Count(out, "\n"), strings.Count(source, "\n"); got <= want {
		t.Errorf("no lines inserted: %d newlines before, %d after", want, got)
	}
}

func TestInsertClassAndMethod(t *testing.T) {
	source := `class Greeter:
    def greet(self, name):
        return "hi " + name
`
	out := insertMissing(t, source, StyleGoogle)

	if !strings.Contains(out, "    \"\"\"Greeter.") {
		t.Error("class docstring not inserted at class body indentation")
	}
	if !strings.Contains(out, "        \"\"\"Greet.") {
		t.Error("method docstring not inserted at method body indentation")
	}
	if !strings.Contains(out, "name: Description.") {
		t.Error("method parameter missing from docstring (self should be the only exclusion)")
	}
	if strings.Contains(out, "self: Description.") {
		t.Error("receiver parameter leaked into docstring")
	}
}

func TestInsertRewriteReplacesExisting(t *testing.T) {
	source := `def f(a):
    """Old text."""
    return a
`
	out, err := Insert(source, catalogFor(t, source), StyleGoogle, ModeRewrite)
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if strings.Contains(out, "Old text.") {
		t.Error("rewrite mode kept the old docstring")
	}
	if !strings.Contains(out, `"""F.`) {
		t.Error("rewrite mode did not insert the generated docstring")
	}
	if !strings.Contains(out, "    return a\n") {
		t.Error("function body damaged by rewrite")
	}
}

func TestInsertRewriteMultilineDocstring(t *testing.T) {
	source := `def f(a):
    """Old summary.

    Old details over
    several lines.
    """
    return a
`
	out, err := Insert(source, catalogFor(t, source), StyleNumPy, ModeRewrite)
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if strings.Contains(out, "Old details") {
		t.Error("multi-line docstring not fully removed")
	}
	if !strings.Contains(out, "Parameters\n") {
		t.Error("NumPy docstring not inserted")
	}
	if !strings.Contains(out, "    return a\n") {
		t.Error("function body damaged by rewrite")
	}
}

func TestInsertUnsupportedMode(t *testing.T) {
	source := "def f():\n    pass\n"
	if _, err := Insert(source, catalogFor(t, source), StyleGoogle, Mode("patch")); err == nil {
		t.Fatal("Insert accepted an unknown mode")
	}
}

func TestAddModuleDocstring(t *testing.T) {
	t.Run("inserted when missing", func(t *testing.T) {
		out, err := AddModuleDocstring("import os\n")
		if err != nil {
			t.Fatalf("AddModuleDocstring returned error: %v", err)
		}
		if !strings.HasPrefix(out, `"""Module description."""`) {
			t.Errorf("module docstring not prepended:\n%s", out)
		}
		if !strings.HasSuffix(out, "import os\n") {
			t.Errorf("original statements not preserved:\n%s", out)
		}
	})

	t.Run("unchanged when present", func(t *testing.T) {
		source := "\"\"\"Already documented.\"\"\"\n\nimport os\n"
		out, err := AddModuleDocstring(source)
		if err != nil {
			t.Fatalf("AddModuleDocstring returned error: %v", err)
		}
		if out != source {
			t.Errorf("documented module was modified:\n%s", out)
		}
	})

	t.Run("malformed source surfaces error", func(t *testing.T) {
		if _, err := AddModuleDocstring("def broken(:\n"); err == nil {
			t.Fatal("AddModuleDocstring accepted malformed source")
		}
	})
}
