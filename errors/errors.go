package errors

import (
	"fmt"

	"github.com/CoherentNonsense/sil-lang/types"
)

// SyntaxError reports an unexpected token kind at a source position.
type SyntaxError struct {
	Expected []types.TokenKind
	Got      types.TokenKind
	Pos      types.Position
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("got a %s, expected one of %s. %s", e.Got, e.Expected, e.Pos)
}

type DuplicateDefinitionError struct {
	Name string
}

func (e DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("multiple definitions of function %s", e.Name)
}

type DuplicateParameterError struct {
	Fn   string
	Name string
}

func (e DuplicateParameterError) Error() string {
	return fmt.Sprintf("multiple parameters named %s in function %s", e.Name, e.Fn)
}

type UndefinedFunctionError struct {
	Name string
}

func (e UndefinedFunctionError) Error() string {
	return fmt.Sprintf("function %s is not defined", e.Name)
}

type ArityMismatchError struct {
	Name string
	Want int
	Got  int
}

func (e ArityMismatchError) Error() string {
	return fmt.Sprintf("wrong number of arguments to %s: want %d, got %d", e.Name, e.Want, e.Got)
}

type UnknownTypeError struct {
	Name string
	Pos  types.Position
}

func (e UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown primitive type %s. %s", e.Name, e.Pos)
}

type UndefinedSymbolError struct {
	Name string
}

func (e UndefinedSymbolError) Error() string {
	return fmt.Sprintf("symbol %s is not defined", e.Name)
}

type MissingReturnError struct {
	Name string
}

func (e MissingReturnError) Error() string {
	return fmt.Sprintf("function %s does not end in a return statement", e.Name)
}

// InternalInvariantError marks a node of unexpected kind reaching a stage
// that only handles specific kinds. It is a defect in the pipeline, not in
// user input.
type InternalInvariantError struct {
	Reason string
}

func (e InternalInvariantError) Error() string {
	return fmt.Sprintf("internal invariant violated: %s", e.Reason)
}
