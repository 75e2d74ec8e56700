package parser

import (
	"github.com/ztrue/tracerr"

	"github.com/CoherentNonsense/sil-lang/ast"
	"github.com/CoherentNonsense/sil-lang/errors"
	"github.com/CoherentNonsense/sil-lang/types"
)

// Parser consumes a pre-produced token sequence by index with one token of
// lookahead and no backtracking. The source text is kept to materialize
// identifier and literal text from token spans.
type Parser struct {
	source string
	tokens []types.Token
	index  int
}

func New(source string, tokens []types.Token) *Parser {
	return &Parser{source: source, tokens: tokens}
}

func (p *Parser) current() types.Token {
	if p.index >= len(p.tokens) {
		return types.Token{
			Kind: types.EOF,
			Span: types.Span{Start: len(p.source), End: len(p.source)},
		}
	}
	return p.tokens[p.index]
}

func (p *Parser) advance() types.Token {
	tok := p.current()
	if p.index < len(p.tokens) {
		p.index++
	}
	return tok
}

func (p *Parser) currentIs(kinds ...types.TokenKind) bool {
	for _, kind := range kinds {
		if p.current().Kind == kind {
			return true
		}
	}
	return false
}

func (p *Parser) expect(kinds ...types.TokenKind) types.Token {
	if !p.currentIs(kinds...) {
		tok := p.current()
		panic(errors.SyntaxError{
			Expected: kinds,
			Got:      tok.Kind,
			Pos:      tok.Pos,
		})
	}
	return p.advance()
}

func (p *Parser) text(tok types.Token) string {
	return tok.Text(p.source)
}

// Parse produces the root node for the whole token sequence, or fails on the
// first syntactic mismatch. No partial tree is returned.
func (p *Parser) Parse() (root *ast.Root, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if ok {
				root = nil
				err = tracerr.Wrap(rerr)
			} else {
				panic(r)
			}
		}
	}()

	root = &ast.Root{}
	for {
		switch p.current().Kind {
		case types.EOF:
			return root, nil
		case types.EXTERN:
			p.advance()
			proto := p.parseFnProto()
			p.expect(types.SEMICOLON)
			root.Toplevels = append(root.Toplevels, ast.ExternFn{Proto: proto})
		case types.FN:
			proto := p.parseFnProto()
			body := p.parseBlock()
			root.Toplevels = append(root.Toplevels, ast.Fn{Proto: proto, Body: body})
		default:
			tok := p.current()
			panic(errors.SyntaxError{
				Expected: []types.TokenKind{types.FN, types.EXTERN, types.EOF},
				Got:      tok.Kind,
				Pos:      tok.Pos,
			})
		}
	}
}

func (p *Parser) parseFnProto() ast.FnProto {
	p.expect(types.FN)
	name := p.text(p.expect(types.SYMBOL))

	p.expect(types.LPAREN)
	var params []ast.Pattern
	if !p.currentIs(types.RPAREN) {
		for {
			params = append(params, p.parsePattern())
			if !p.currentIs(types.COMMA) {
				break
			}
			p.advance()
		}
	}
	p.expect(types.RPAREN)

	// The return type defaults to void when no arrow follows.
	var ret ast.TypeName = ast.Void
	if p.currentIs(types.ARROW) {
		p.advance()
		ret = p.parseTypeName()
	}

	return ast.FnProto{Name: name, Params: params, Return: ret}
}

func (p *Parser) parsePattern() ast.Pattern {
	name := p.text(p.expect(types.SYMBOL))
	p.expect(types.COLON)
	return ast.Pattern{Name: name, Type: p.parseTypeName()}
}

var primitives = map[string]ast.Primitive{
	"i8":          ast.I8,
	"u8":          ast.U8,
	"i32":         ast.I32,
	"unreachable": ast.Unreachable,
}

func (p *Parser) parseTypeName() ast.TypeName {
	if p.currentIs(types.STAR) {
		p.advance()
		return ast.Pointer{To: p.parseTypeName()}
	}

	tok := p.expect(types.SYMBOL)
	name := p.text(tok)
	prim, ok := primitives[name]
	if !ok {
		panic(errors.UnknownTypeError{Name: name, Pos: tok.Pos})
	}
	return prim
}

func (p *Parser) parseBlock() ast.Block {
	p.expect(types.LBRACE)
	var statements []ast.Statement
	for !p.currentIs(types.RBRACE) {
		statements = append(statements, p.parseStatement())
	}
	p.expect(types.RBRACE)
	return ast.Block{Statements: statements}
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.current().Kind {
	case types.RETURN:
		p.advance()
		value := p.parseExpression()
		p.expect(types.SEMICOLON)
		return ast.Return{Value: value}
	case types.IF:
		// An if expression in statement position takes no semicolon.
		return p.parseIf()
	default:
		expr := p.parseExpression()
		p.expect(types.SEMICOLON)
		return ast.ExprStmt{Expr: expr}
	}
}

func (p *Parser) parseIf() ast.If {
	p.expect(types.IF)
	p.expect(types.LPAREN)
	cond := p.parseExpression()
	p.expect(types.RPAREN)
	then := p.parseBlock()

	var els *ast.Block
	if p.currentIs(types.ELSE) {
		p.advance()
		block := p.parseBlock()
		els = &block
	}

	return ast.If{Cond: cond, Then: then, Else: els}
}

func precedence(kind types.TokenKind) int {
	switch kind {
	case types.STAR, types.SLASH:
		return 13
	case types.PLUS, types.MINUS:
		return 12
	}
	return -1
}

var operators = map[types.TokenKind]ast.Operator{
	types.PLUS:  ast.Add,
	types.MINUS: ast.Sub,
	types.STAR:  ast.Mul,
	types.SLASH: ast.Div,
}

func (p *Parser) parseExpression() ast.Expression {
	return p.parseInfix(0)
}

func (p *Parser) parseInfix(minPrec int) ast.Expression {
	left := p.parsePrimary()

	for {
		prec := precedence(p.current().Kind)
		if prec < minPrec {
			return left
		}

		op := operators[p.advance().Kind]
		right := p.parseInfix(prec + 1)
		left = ast.Infix{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.expect(types.NUMBER, types.STRING, types.SYMBOL, types.LPAREN)

	switch tok.Kind {
	case types.NUMBER:
		return ast.NumberLit{Value: p.text(tok)}
	case types.STRING:
		return ast.StringLit{Value: p.text(tok)}
	case types.LPAREN:
		expr := p.parseExpression()
		p.expect(types.RPAREN)
		return expr
	}

	// A symbol is a call when a parenthesized argument list follows, a
	// parameter reference otherwise.
	name := p.text(tok)
	if !p.currentIs(types.LPAREN) {
		return ast.Symbol{Name: name}
	}

	p.advance()
	var args []ast.Expression
	if !p.currentIs(types.RPAREN) {
		for {
			args = append(args, p.parseExpression())
			if !p.currentIs(types.COMMA) {
				break
			}
			p.advance()
		}
	}
	p.expect(types.RPAREN)

	return ast.Call{Name: name, Args: args}
}
