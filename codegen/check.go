package codegen

import (
	"github.com/ztrue/tracerr"

	"github.com/CoherentNonsense/sil-lang/ast"
	"github.com/CoherentNonsense/sil-lang/errors"
)

// Validate runs after table-building and before any lowering. Parameter
// names must be unique within a prototype; a repeated name would declare two
// identically named IR parameters. Bodies are lowered into a single basic
// block, so a full function with a non-void return type must end its body
// with a return statement; anything else would fall off the end and produce
// invalid IR.
func Validate(table *FunctionTable) (err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if ok {
				err = tracerr.Wrap(rerr)
			} else {
				panic(r)
			}
		}
	}()

	validate(table)
	return nil
}

func validate(table *FunctionTable) {
	for _, name := range table.names {
		decl := table.decls[name]

		seen := make(map[string]bool)
		for _, param := range protoOf(decl).Params {
			if seen[param.Name] {
				panic(errors.DuplicateParameterError{Fn: name, Name: param.Name})
			}
			seen[param.Name] = true
		}

		fn, ok := decl.(ast.Fn)
		if !ok {
			continue
		}
		if voidLike(fn.Proto.Return) {
			continue
		}

		statements := fn.Body.Statements
		if len(statements) == 0 {
			panic(errors.MissingReturnError{Name: name})
		}
		if _, ok := statements[len(statements)-1].(ast.Return); !ok {
			panic(errors.MissingReturnError{Name: name})
		}
	}
}

func voidLike(t ast.TypeName) bool {
	prim, ok := t.(ast.Primitive)
	return ok && (prim == ast.Void || prim == ast.Unreachable)
}
