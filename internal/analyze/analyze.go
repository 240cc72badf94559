// Package analyze extracts documentation metadata from parsed Python
// trees: the function/class catalog, parameter lists, and the raise,
// yield, and attribute detectors.
package analyze

import (
	"errors"
	"fmt"

	"github.com/hchawla/pydocgen/internal/pyast"
)

// ErrNotAnnotated is returned by MapNodes when the tree has not been
// through pyast.AttachParents.
var ErrNotAnnotated = errors.New("tree has no parent annotations; call pyast.AttachParents first")

// InvalidNodeError reports a detector or extractor invoked on a node of
// the wrong kind, so callers can tell "nothing found" from "wrong node".
type InvalidNodeError struct {
	Want string
	Got  string
}

func (e *InvalidNodeError) Error() string {
	return fmt.Sprintf("expected %s node, got %s", e.Want, e.Got)
}

// FunctionRecord describes one function or method and its docstring state.
type FunctionRecord struct {
	Name   string
	Params []string
	HasDoc bool
	Node   *pyast.Node
}

// ClassRecord describes one class, its docstring state, and its methods
// in source order.
type ClassRecord struct {
	Name    string
	HasDoc  bool
	Node    *pyast.Node
	Methods []FunctionRecord
}

// Catalog lists every documentable target found in a module: functions
// whose enclosing definition is the module itself, and classes (at any
// depth) with their direct methods.
type Catalog struct {
	Functions []FunctionRecord
	Classes   []ClassRecord
}
