package analyze

import "github.com/hchawla/pydocgen/internal/pyast"

// MapNodes builds the documentation catalog for an annotated tree.
// Functions are cataloged when their nearest enclosing definition is the
// module itself; classes are cataloged at any depth, each with the
// function definitions appearing directly in its body as methods.
// Ordering follows source order.
func MapNodes(t *pyast.Tree) (*Catalog, error) {
	if !t.Annotated() {
		return nil, ErrNotAnnotated
	}

	cat := &Catalog{}
	t.Root.Walk(func(n *pyast.Node) bool {
		switch n.Type {
		case pyast.KindFunction:
			if enclosingDefinition(n).Type == pyast.KindModule {
				rec, err := functionRecord(n)
				if err == nil {
					cat.Functions = append(cat.Functions, rec)
				}
			}
		case pyast.KindClass:
			cat.Classes = append(cat.Classes, classRecord(n))
		}
		return true
	})
	return cat, nil
}

func functionRecord(n *pyast.Node) (FunctionRecord, error) {
	params, err := ExtractParameters(n)
	if err != nil {
		return FunctionRecord{}, err
	}
	return FunctionRecord{
		Name:   n.Name(),
		Params: params,
		HasDoc: n.HasDocstring(),
		Node:   n.Definition(),
	}, nil
}

func classRecord(n *pyast.Node) ClassRecord {
	rec := ClassRecord{
		Name:   n.Name(),
		HasDoc: n.HasDocstring(),
		Node:   n,
	}
	if body := n.Body(); body != nil {
		for _, stmt := range body.Children {
			def := stmt.Definition()
			if stmt.Type != pyast.KindFunction && stmt.Type != pyast.KindDecorated {
				continue
			}
			if !def.IsFunction() {
				continue // decorated nested class; cataloged by the walk
			}
			if m, err := functionRecord(stmt); err == nil {
				rec.Methods = append(rec.Methods, m)
			}
		}
	}
	return rec
}

// enclosingDefinition walks parent links to the nearest function or
// class definition, or the module node when the target is top-level.
func enclosingDefinition(n *pyast.Node) *pyast.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		switch p.Type {
		case pyast.KindFunction, pyast.KindClass, pyast.KindModule:
			return p
		}
	}
	// Unannotated subtree; treat as module-level.
	return &pyast.Node{Type: pyast.KindModule}
}
