package pyast

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// Tree is an owned Python syntax tree. The root module node owns every
// descendant; parent links are annotation added by AttachParents.
type Tree struct {
	Root   *Node
	Source []byte

	annotated bool
}

// SyntaxError reports malformed input source.
type SyntaxError struct {
	Line int
	Col  int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d", e.Line, e.Col)
}

// Parse parses Python source into a Tree. Malformed input returns a
// *SyntaxError locating the first error node.
func Parse(source []byte) (*Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tsTree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing source: %w", err)
	}

	root := tsTree.RootNode()
	if root.HasError() {
		line, col := firstErrorLocation(root)
		return nil, &SyntaxError{Line: line, Col: col}
	}

	return &Tree{Root: convert(root, source), Source: source}, nil
}

// Annotated reports whether AttachParents has run on the tree.
func (t *Tree) Annotated() bool {
	return t.annotated
}

// firstErrorLocation finds the position of the first ERROR node, falling
// back to the root position when the error is a missing token.
func firstErrorLocation(root *sitter.Node) (line, col int) {
	line = int(root.StartPoint().Row) + 1
	col = int(root.StartPoint().Column)

	var find func(n *sitter.Node) bool
	find = func(n *sitter.Node) bool {
		if n.Type() == KindError {
			line = int(n.StartPoint().Row) + 1
			col = int(n.StartPoint().Column)
			return true
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			if find(n.Child(i)) {
				return true
			}
		}
		return false
	}
	find(root)
	return line, col
}

// convert copies a tree-sitter node and its named descendants into the
// owned representation.
func convert(ts *sitter.Node, source []byte) *Node {
	n := &Node{
		Type:      ts.Type(),
		StartLine: int(ts.StartPoint().Row) + 1,
		EndLine:   int(ts.EndPoint().Row) + 1,
		StartCol:  int(ts.StartPoint().Column),
		src:       source,
		startByte: int(ts.StartByte()),
		endByte:   int(ts.EndByte()),
	}
	count := int(ts.NamedChildCount())
	if count > 0 {
		n.Children = make([]*Node, 0, count)
		for i := 0; i < count; i++ {
			n.Children = append(n.Children, convert(ts.NamedChild(i), source))
		}
	}
	return n
}
