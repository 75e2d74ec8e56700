package ast

// Root is one compilation unit: the ordered top-level declarations of a
// single source file.
type Root struct {
	Toplevels []TopLevel
}

type TopLevel interface {
	is_TopLevel()
}

type Fn struct {
	Proto FnProto
	Body  Block
}

func (v Fn) is_TopLevel() {}

type ExternFn struct {
	Proto FnProto
}

func (v ExternFn) is_TopLevel() {}

// FnProto is a function's signature independent of its body.
type FnProto struct {
	Name   string
	Params []Pattern
	Return TypeName
}

type Pattern struct {
	Name string
	Type TypeName
}

type TypeName interface {
	is_TypeName()
}

type Primitive int

const (
	I8 Primitive = iota
	U8
	I32
	Void
	Unreachable
)

func (v Primitive) is_TypeName() {}

type Pointer struct {
	To TypeName
}

func (v Pointer) is_TypeName() {}

type Block struct {
	Statements []Statement
}

type Statement interface {
	is_Statement()
}

type Return struct {
	Value Expression
}

func (v Return) is_Statement() {}

type ExprStmt struct {
	Expr Expression
}

func (v ExprStmt) is_Statement() {}

type Expression interface {
	is_Expression()
}

type Call struct {
	Name string
	Args []Expression
}

func (v Call) is_Expression() {}

type StringLit struct {
	Value string
}

func (v StringLit) is_Expression() {}

// NumberLit holds the literal's source text; it is parsed into a constant
// only during lowering.
type NumberLit struct {
	Value string
}

func (v NumberLit) is_Expression() {}

// Symbol references a parameter of the enclosing function.
type Symbol struct {
	Name string
}

func (v Symbol) is_Expression() {}

type Operator int

const (
	Add Operator = iota
	Sub
	Mul
	Div
)

type Infix struct {
	Op    Operator
	Left  Expression
	Right Expression
}

func (v Infix) is_Expression() {}

// If parses in statement position and is carried through the tree, but no
// lowering is defined for it.
type If struct {
	Cond Expression
	Then Block
	Else *Block
}

func (v If) is_Expression() {}
func (v If) is_Statement()  {}
