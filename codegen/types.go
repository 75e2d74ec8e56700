package codegen

import (
	"fmt"

	"github.com/llir/llvm/ir/types"

	"github.com/CoherentNonsense/sil-lang/ast"
	"github.com/CoherentNonsense/sil-lang/errors"
)

// lowerType maps a source type to its IR representation. unreachable shares
// the void lowering; i8 and u8 both lower to the 8-bit integer type.
func lowerType(t ast.TypeName) types.Type {
	switch kind := t.(type) {
	case ast.Primitive:
		switch kind {
		case ast.I8, ast.U8:
			return types.I8
		case ast.I32:
			return types.I32
		case ast.Void, ast.Unreachable:
			return types.Void
		}
		panic(errors.InternalInvariantError{
			Reason: fmt.Sprintf("cannot convert type %s", kind),
		})
	case ast.Pointer:
		return types.NewPointer(lowerType(kind.To))
	default:
		panic(errors.InternalInvariantError{
			Reason: fmt.Sprintf("cannot convert type %T", t),
		})
	}
}
