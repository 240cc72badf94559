package analyze

import (
	"sort"

	"github.com/hchawla/pydocgen/internal/pyast"
)

// DetectRaises collects the exception names referenced by raise
// statements in a function or class body, in first-occurrence order with
// duplicates kept. Bare re-raises are skipped, and the walk does not
// cross into nested function or class definitions.
func DetectRaises(n *pyast.Node) ([]string, error) {
	def := n.Definition()
	if !def.IsFunction() && !def.IsClass() {
		return nil, &InvalidNodeError{Want: "function or class", Got: n.Type}
	}

	raises := []string{}
	body := def.Body()
	if body == nil {
		return raises, nil
	}
	walkScoped(body, func(sn *pyast.Node) {
		if sn.Type != pyast.KindRaise || len(sn.Children) == 0 {
			return
		}
		if name := exceptionName(sn.Children[0]); name != "" {
			raises = append(raises, name)
		}
	})
	return raises, nil
}

// exceptionName resolves the exception reference of a raise statement:
// the callee of a call, or a bare (possibly dotted) name.
func exceptionName(expr *pyast.Node) string {
	switch expr.Type {
	case pyast.KindCall:
		if len(expr.Children) > 0 {
			return exceptionName(expr.Children[0])
		}
	case pyast.KindIdentifier, pyast.KindAttribute:
		return expr.Text()
	}
	return ""
}

// DetectYields reports whether a function body contains a yield or
// delegated-yield expression, excluding any nested definitions. It stops
// at the first match.
func DetectYields(n *pyast.Node) (bool, error) {
	def := n.Definition()
	if !def.IsFunction() {
		return false, &InvalidNodeError{Want: pyast.KindFunction, Got: n.Type}
	}

	body := def.Body()
	if body == nil {
		return false, nil
	}
	found := false
	walkScopedUntil(body, func(sn *pyast.Node) bool {
		if sn.Type == pyast.KindYield {
			found = true
			return false
		}
		return true
	})
	return found, nil
}

// DetectAttributes collects a class's attribute names: bindings made
// directly in the class body plus names assigned through the instance
// receiver inside its direct method bodies. The result is deduplicated
// and sorted.
func DetectAttributes(n *pyast.Node) ([]string, error) {
	def := n.Definition()
	if !def.IsClass() {
		return nil, &InvalidNodeError{Want: pyast.KindClass, Got: n.Type}
	}

	seen := map[string]bool{}
	body := def.Body()
	if body == nil {
		return []string{}, nil
	}

	for _, stmt := range body.Children {
		switch stmt.Type {
		case pyast.KindExprStmt:
			if name := classVarName(stmt); name != "" {
				seen[name] = true
			}
		case pyast.KindFunction, pyast.KindDecorated:
			method := stmt.Definition()
			if !method.IsFunction() {
				continue
			}
			if mb := method.Body(); mb != nil {
				walkScoped(mb, func(sn *pyast.Node) {
					if name := selfAttrName(sn); name != "" {
						seen[name] = true
					}
				})
			}
		}
	}

	attrs := make([]string, 0, len(seen))
	for name := range seen {
		attrs = append(attrs, name)
	}
	sort.Strings(attrs)
	return attrs, nil
}

// classVarName returns the target of a class-level binding like
// "x = 10" or "x: int = 10", or "".
func classVarName(stmt *pyast.Node) string {
	if len(stmt.Children) == 0 {
		return ""
	}
	assign := stmt.Children[0]
	if assign.Type != pyast.KindAssignment || len(assign.Children) == 0 {
		return ""
	}
	if lhs := assign.Children[0]; lhs.Type == pyast.KindIdentifier {
		return lhs.Text()
	}
	return ""
}

// selfAttrName returns "x" for an assignment of the form "self.x = ...",
// or "".
func selfAttrName(sn *pyast.Node) string {
	if sn.Type != pyast.KindAssignment || len(sn.Children) == 0 {
		return ""
	}
	lhs := sn.Children[0]
	if lhs.Type != pyast.KindAttribute || len(lhs.Children) < 2 {
		return ""
	}
	obj, attr := lhs.Children[0], lhs.Children[1]
	if obj.Type == pyast.KindIdentifier && obj.Text() == "self" && attr.Type == pyast.KindIdentifier {
		return attr.Text()
	}
	return ""
}

// walkScoped visits every node under root in source order without
// descending into nested function or class definitions.
func walkScoped(root *pyast.Node, visit func(*pyast.Node)) {
	walkScopedUntil(root, func(n *pyast.Node) bool {
		visit(n)
		return true
	})
}

// walkScopedUntil is walkScoped with early termination: the visitor
// returns false to stop.
func walkScopedUntil(root *pyast.Node, visit func(*pyast.Node) bool) bool {
	for _, c := range root.Children {
		switch c.Type {
		case pyast.KindFunction, pyast.KindClass, pyast.KindDecorated:
			continue
		}
		if !visit(c) {
			return false
		}
		if !walkScopedUntil(c, visit) {
			return false
		}
	}
	return true
}
