// Package pyast parses Python source with tree-sitter and exposes an
// owned syntax tree suitable for docstring analysis.
package pyast

// Node kind strings as emitted by the tree-sitter Python grammar.
const (
	KindModule       = "module"
	KindFunction     = "function_definition"
	KindClass        = "class_definition"
	KindDecorated    = "decorated_definition"
	KindBlock        = "block"
	KindExprStmt     = "expression_statement"
	KindString       = "string"
	KindIdentifier   = "identifier"
	KindParameters   = "parameters"
	KindAssignment   = "assignment"
	KindAttribute    = "attribute"
	KindCall         = "call"
	KindRaise        = "raise_statement"
	KindYield        = "yield"
	KindError        = "ERROR"
	KindTypedParam   = "typed_parameter"
	KindDefaultParam = "default_parameter"
	KindTypedDefault = "typed_default_parameter"
	KindListSplat    = "list_splat_pattern"
	KindDictSplat    = "dictionary_splat_pattern"
)

// Node is one syntax-tree node. The tree owns all nodes; Parent is a
// non-owning back-pointer set by AttachParents and is nil until then.
type Node struct {
	// Type is the tree-sitter node kind (e.g. "function_definition").
	Type string
	// StartLine and EndLine are 1-based source line numbers.
	StartLine int
	EndLine   int
	// StartCol is the 0-based column of the node's first character.
	StartCol int
	// Children holds the named children in source order.
	Children []*Node
	// Parent is the immediate structural parent, set by AttachParents.
	Parent *Node

	src       []byte
	startByte int
	endByte   int
}

// Text returns the source text covered by the node.
func (n *Node) Text() string {
	return string(n.src[n.startByte:n.endByte])
}

// IsFunction reports whether the node is a function definition.
func (n *Node) IsFunction() bool {
	return n.Type == KindFunction
}

// IsClass reports whether the node is a class definition.
func (n *Node) IsClass() bool {
	return n.Type == KindClass
}

// ChildByType returns the first named child of the given kind, or nil.
func (n *Node) ChildByType(kind string) *Node {
	for _, c := range n.Children {
		if c.Type == kind {
			return c
		}
	}
	return nil
}

// Definition unwraps a decorated_definition to the function or class it
// decorates. For any other node it returns the node itself.
func (n *Node) Definition() *Node {
	if n.Type != KindDecorated {
		return n
	}
	if d := n.ChildByType(KindFunction); d != nil {
		return d
	}
	if d := n.ChildByType(KindClass); d != nil {
		return d
	}
	return n
}

// Name returns the identifier of a function or class definition, or ""
// when the node has no identifier child.
func (n *Node) Name() string {
	d := n.Definition()
	if id := d.ChildByType(KindIdentifier); id != nil {
		return id.Text()
	}
	return ""
}

// Body returns the block node holding a definition's statements, or nil.
func (n *Node) Body() *Node {
	return n.Definition().ChildByType(KindBlock)
}

// statements returns the statement nodes of a module, function, or class.
func (n *Node) statements() []*Node {
	if n.Type == KindModule {
		return n.Children
	}
	if body := n.Body(); body != nil {
		return body.Children
	}
	return nil
}

// DocstringNode returns the expression statement holding the node's
// docstring, or nil when the first statement is not a string literal.
func (n *Node) DocstringNode() *Node {
	stmts := n.statements()
	if len(stmts) == 0 {
		return nil
	}
	first := stmts[0]
	if first.Type != KindExprStmt || len(first.Children) == 0 {
		return nil
	}
	if first.Children[0].Type == KindString {
		return first
	}
	return nil
}

// HasDocstring reports whether the node's first body statement is a
// string literal.
func (n *Node) HasDocstring() bool {
	return n.DocstringNode() != nil
}

// walk visits n and its descendants depth-first in source order. The
// visitor returns false to stop the traversal.
func (n *Node) walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

// Walk visits n and its descendants depth-first in source order until
// the visitor returns false.
func (n *Node) Walk(fn func(*Node) bool) {
	n.walk(fn)
}
