package analyze

import (
	"errors"
	"reflect"
	"testing"
)

func TestDetectRaises(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name: "called and bare names in first-occurrence order",
			source: `def f(x):
    if x < 0:
        raise ValueError("negative")
    if x == 0:
        raise ZeroDivisionError
    raise ValueError("again")
`,
			want: []string{"ValueError", "ZeroDivisionError", "ValueError"},
		},
		{
			name: "bare re-raise skipped",
			source: `def f():
    try:
        pass
    except KeyError:
        raise
`,
			want: []string{},
		},
		{
			name: "dotted exception name",
			source: `def f():
    raise errors.TimeoutError()
`,
			want: []string{"errors.TimeoutError"},
		},
		{
			name: "nested definitions not attributed to outer",
			source: `def outer():
    def inner():
        raise KeyError("inner")
    raise RuntimeError("outer")
`,
			want: []string{"RuntimeError"},
		},
		{
			name: "no raises",
			source: `def f():
    return 1
`,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := parseDef(t, tt.source)
			got, err := DetectRaises(node)
			if err != nil {
				t.Fatalf("DetectRaises returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DetectRaises = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectRaisesInvalidNode(t *testing.T) {
	tree := annotatedTree(t, "x = 1\n")
	_, err := DetectRaises(tree.Root.Children[0])
	var invalid *InvalidNodeError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want *InvalidNodeError", err)
	}
}

func TestDetectYields(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   bool
	}{
		{
			name:   "plain yield",
			source: "def gen(n):\n    for i in range(n):\n        yield i\n",
			want:   true,
		},
		{
			name:   "yield from",
			source: "def gen(xs):\n    yield from xs\n",
			want:   true,
		},
		{
			name:   "no yield",
			source: "def f():\n    return 1\n",
			want:   false,
		},
		{
			name:   "yield only in nested function",
			source: "def outer():\n    def inner():\n        yield 1\n    return inner\n",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := parseDef(t, tt.source)
			got, err := DetectYields(node)
			if err != nil {
				t.Fatalf("DetectYields returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectYields = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectYieldsInvalidNode(t *testing.T) {
	node := parseDef(t, "class C:\n    pass\n")
	if _, err := DetectYields(node); err == nil {
		t.Fatal("DetectYields accepted a class node")
	}
}

func TestDetectAttributes(t *testing.T) {
	source := `class Config:
    retries = 3
    timeout: int = 30

    def __init__(self, name):
        self.name = name
        self.retries = 5
        local = name

    def reset(self):
        self.dirty = False
`
	node := parseDef(t, source)
	got, err := DetectAttributes(node)
	if err != nil {
		t.Fatalf("DetectAttributes returned error: %v", err)
	}
	want := []string{"dirty", "name", "retries", "timeout"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DetectAttributes = %v, want %v (deduplicated, sorted)", got, want)
	}
}

func TestDetectAttributesInvalidNode(t *testing.T) {
	node := parseDef(t, "def f():\n    pass\n")
	if _, err := DetectAttributes(node); err == nil {
		t.Fatal("DetectAttributes accepted a function node")
	}
}
