package analyze

import "github.com/hchawla/pydocgen/internal/pyast"

// receiverNames are the conventional instance/class receiver names whose
// leading occurrence is excluded from parameter lists. Detection is
// name-based: decorators are not consulted.
var receiverNames = map[string]bool{
	"self": true,
	"cls":  true,
}

// ExtractParameters returns the parameter names of a function definition
// in declaration order, excluding a leading receiver name. Defaulted,
// keyword-only, and variadic parameters appear by bare name with no
// default or annotation metadata. A non-function node is an
// *InvalidNodeError.
func ExtractParameters(n *pyast.Node) ([]string, error) {
	def := n.Definition()
	if !def.IsFunction() {
		return nil, &InvalidNodeError{Want: pyast.KindFunction, Got: n.Type}
	}

	params := []string{}
	paramsNode := def.ChildByType(pyast.KindParameters)
	if paramsNode == nil {
		return params, nil
	}

	for _, child := range paramsNode.Children {
		if name := parameterName(child); name != "" {
			params = append(params, name)
		}
	}

	if len(params) > 0 && receiverNames[params[0]] {
		params = params[1:]
	}
	return params, nil
}

// parameterName extracts the bare name from one parameters-list child,
// or "" for separators ("/", "*") and unrecognized patterns.
func parameterName(n *pyast.Node) string {
	switch n.Type {
	case pyast.KindIdentifier:
		return n.Text()
	case pyast.KindTypedParam, pyast.KindDefaultParam, pyast.KindTypedDefault:
		// The name is the first named child; defaults and annotations follow.
		if id := n.ChildByType(pyast.KindIdentifier); id != nil {
			return id.Text()
		}
	case pyast.KindListSplat, pyast.KindDictSplat:
		// *args / **kwargs: record the inner identifier.
		if id := n.ChildByType(pyast.KindIdentifier); id != nil {
			return id.Text()
		}
	}
	return ""
}
