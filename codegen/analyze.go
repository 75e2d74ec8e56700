package codegen

import (
	"fmt"

	"github.com/ztrue/tracerr"

	"github.com/CoherentNonsense/sil-lang/ast"
	"github.com/CoherentNonsense/sil-lang/errors"
)

// FunctionTable maps every top-level name to its declaring node. Iteration
// follows declaration order in source.
type FunctionTable struct {
	decls map[string]ast.TopLevel
	names []string
}

func (t *FunctionTable) Len() int {
	return len(t.names)
}

func (t *FunctionTable) Lookup(name string) (ast.TopLevel, bool) {
	decl, ok := t.decls[name]
	return decl, ok
}

// Names returns the registered names in declaration order.
func (t *FunctionTable) Names() []string {
	return t.names
}

func (t *FunctionTable) insert(name string, decl ast.TopLevel) {
	if _, ok := t.decls[name]; ok {
		panic(errors.DuplicateDefinitionError{Name: name})
	}
	t.decls[name] = decl
	t.names = append(t.names, name)
}

// BuildFunctionTable registers every top-level declaration by name, in
// source order. The first occurrence of a name wins; a second occurrence of
// any kind fails the build.
func BuildFunctionTable(root *ast.Root) (table *FunctionTable, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if ok {
				table = nil
				err = tracerr.Wrap(rerr)
			} else {
				panic(r)
			}
		}
	}()

	return buildFunctionTable(root), nil
}

func buildFunctionTable(root *ast.Root) *FunctionTable {
	table := &FunctionTable{decls: make(map[string]ast.TopLevel)}

	for _, tl := range root.Toplevels {
		switch decl := tl.(type) {
		case ast.Fn:
			table.insert(decl.Proto.Name, decl)
		case ast.ExternFn:
			table.insert(decl.Proto.Name, decl)
		default:
			panic(errors.InternalInvariantError{
				Reason: fmt.Sprintf("cannot analyze top level declaration %T", tl),
			})
		}
	}

	return table
}
