package codegen

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
	"github.com/ztrue/tracerr"

	"github.com/CoherentNonsense/sil-lang/ast"
	"github.com/CoherentNonsense/sil-lang/errors"
)

// ctx carries lowering state across the two passes: the function table, the
// declared IR handles consulted at call sites, the interned string globals,
// and the parameter scope of the body currently being lowered.
type ctx struct {
	table           *FunctionTable
	fns             map[string]*ir.Func
	stringConstants map[string]value.Value
	params          map[string]value.Value
}

func hash(s string) string {
	return strconv.FormatUint(xxhash.Sum64String(s), 10)
}

// Generate lowers a parsed compilation unit into an IR module. Every
// prototype is declared before any body is lowered, so calls resolve
// regardless of declaration order. The first error aborts generation.
func Generate(root *ast.Root) (m *ir.Module, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if ok {
				m = nil
				err = tracerr.Wrap(rerr)
			} else {
				panic(r)
			}
		}
	}()

	table := buildFunctionTable(root)
	validate(table)

	c := &ctx{
		table:           table,
		fns:             make(map[string]*ir.Func),
		stringConstants: make(map[string]value.Value),
	}

	modu := ir.NewModule()

	for _, name := range table.names {
		codegenPrototype(c, table.decls[name], modu)
	}
	for _, name := range table.names {
		if fn, ok := table.decls[name].(ast.Fn); ok {
			codegenBody(c, fn)
		}
	}

	return modu, nil
}

func codegenPrototype(c *ctx, t ast.TopLevel, m *ir.Module) {
	switch tl := t.(type) {
	case ast.Fn:
		c.fns[tl.Proto.Name] = declareFunc(tl.Proto, m)
	case ast.ExternFn:
		fn := declareFunc(tl.Proto, m)
		fn.Linkage = enum.LinkageExternal
		fn.CallingConv = enum.CallingConvC
		c.fns[tl.Proto.Name] = fn
	default:
		panic(errors.InternalInvariantError{
			Reason: fmt.Sprintf("cannot declare top level %T", t),
		})
	}
}

func declareFunc(proto ast.FnProto, m *ir.Module) *ir.Func {
	var params []*ir.Param
	for _, param := range proto.Params {
		params = append(params, ir.NewParam(param.Name, lowerType(param.Type)))
	}
	return m.NewFunc(proto.Name, lowerType(proto.Return), params...)
}

func codegenBody(c *ctx, tl ast.Fn) {
	fn := c.fns[tl.Proto.Name]
	bloc := fn.NewBlock("entry")

	c.params = make(map[string]value.Value)
	for i := range tl.Proto.Params {
		c.params[tl.Proto.Params[i].Name] = fn.Params[i]
	}

	for _, statement := range tl.Body.Statements {
		// The entry block holds one terminator; statements after a
		// return are unreachable and are not lowered.
		if bloc.Term != nil {
			break
		}
		codegenStatement(c, statement, bloc)
	}

	if bloc.Term == nil {
		bloc.NewRet(nil)
	}
}

func codegenStatement(c *ctx, s ast.Statement, b *ir.Block) {
	switch stmt := s.(type) {
	case ast.Return:
		b.NewRet(codegenExpression(c, stmt.Value, b))
	case ast.ExprStmt:
		codegenExpression(c, stmt.Expr, b)
	case ast.If:
		codegenExpression(c, stmt, b)
	default:
		panic(errors.InternalInvariantError{
			Reason: fmt.Sprintf("cannot lower statement %T", s),
		})
	}
}

func codegenExpression(c *ctx, e ast.Expression, b *ir.Block) value.Value {
	switch expr := e.(type) {
	case ast.NumberLit:
		// The lexer only produces digit runs; values wider than 32
		// bits wrap modulo 2^32.
		v, ok := new(big.Int).SetString(expr.Value, 10)
		if !ok {
			panic(errors.InternalInvariantError{
				Reason: fmt.Sprintf("malformed integer literal %q", expr.Value),
			})
		}
		v.And(v, big.NewInt(0xFFFFFFFF))
		return constant.NewInt(types.I32, int64(int32(v.Uint64())))

	case ast.StringLit:
		rawdata, ok := c.stringConstants[expr.Value]
		if !ok {
			rawdata = b.Parent.Parent.NewGlobalDef("_str_"+hash(expr.Value), constant.NewCharArrayFromString(expr.Value+"\x00"))
			c.stringConstants[expr.Value] = rawdata
		}

		return b.NewBitCast(rawdata, types.NewPointer(types.I8))

	case ast.Symbol:
		val, ok := c.params[expr.Name]
		if !ok {
			panic(errors.UndefinedSymbolError{Name: expr.Name})
		}
		return val

	case ast.Call:
		decl, ok := c.table.Lookup(expr.Name)
		if !ok {
			panic(errors.UndefinedFunctionError{Name: expr.Name})
		}

		proto := protoOf(decl)
		if len(expr.Args) != len(proto.Params) {
			panic(errors.ArityMismatchError{
				Name: expr.Name,
				Want: len(proto.Params),
				Got:  len(expr.Args),
			})
		}

		var args []value.Value
		for _, arg := range expr.Args {
			args = append(args, codegenExpression(c, arg, b))
		}
		return b.NewCall(c.fns[expr.Name], args...)

	case ast.Infix:
		left := codegenExpression(c, expr.Left, b)
		right := codegenExpression(c, expr.Right, b)

		switch expr.Op {
		case ast.Add:
			return b.NewAdd(left, right)
		case ast.Sub:
			return b.NewSub(left, right)
		case ast.Mul:
			return b.NewMul(left, right)
		case ast.Div:
			return b.NewSDiv(left, right)
		}
		panic(errors.InternalInvariantError{
			Reason: fmt.Sprintf("unhandled operator %s", expr.Op),
		})

	case ast.If:
		panic(errors.InternalInvariantError{
			Reason: "if expressions cannot be lowered",
		})

	default:
		panic(errors.InternalInvariantError{
			Reason: fmt.Sprintf("cannot lower expression %T", e),
		})
	}
}

func protoOf(t ast.TopLevel) ast.FnProto {
	switch tl := t.(type) {
	case ast.Fn:
		return tl.Proto
	case ast.ExternFn:
		return tl.Proto
	}
	panic(errors.InternalInvariantError{
		Reason: fmt.Sprintf("top level %T has no prototype", t),
	})
}
