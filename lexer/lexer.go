package lexer

import (
	"github.com/CoherentNonsense/sil-lang/types"
)

// Lexer walks a source string byte by byte and produces tokens carrying
// half-open byte spans into it.
type Lexer struct {
	source string
	offset int
	pos    types.Position
}

func New(source, filename string) *Lexer {
	return &Lexer{
		source: source,
		pos:    types.Position{Line: 1, Column: 1, Filename: filename},
	}
}

var keywords = map[string]types.TokenKind{
	"fn":     types.FN,
	"extern": types.EXTERN,
	"return": types.RETURN,
	"if":     types.IF,
	"else":   types.ELSE,
}

var punctuation = map[byte]types.TokenKind{
	'(': types.LPAREN,
	')': types.RPAREN,
	'{': types.LBRACE,
	'}': types.RBRACE,
	':': types.COLON,
	';': types.SEMICOLON,
	',': types.COMMA,
	'*': types.STAR,
	'+': types.PLUS,
	'/': types.SLASH,
}

func firstChar(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func otherChar(c byte) bool {
	return firstChar(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func (l *Lexer) advance() {
	if l.source[l.offset] == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}
	l.offset++
}

func (l *Lexer) token(kind types.TokenKind, start int, pos types.Position) types.Token {
	return types.Token{
		Kind: kind,
		Span: types.Span{Start: start, End: l.offset},
		Pos:  pos,
	}
}

// Lex returns the next token. Once the source is exhausted it returns EOF
// tokens forever.
func (l *Lexer) Lex() types.Token {
	for l.offset < len(l.source) && isSpace(l.source[l.offset]) {
		l.advance()
	}

	start := l.offset
	pos := l.pos

	if l.offset >= len(l.source) {
		return l.token(types.EOF, start, pos)
	}

	c := l.source[l.offset]

	if kind, ok := punctuation[c]; ok {
		l.advance()
		return l.token(kind, start, pos)
	}

	switch {
	case c == '-':
		l.advance()
		if l.offset < len(l.source) && l.source[l.offset] == '>' {
			l.advance()
			return l.token(types.ARROW, start, pos)
		}
		return l.token(types.MINUS, start, pos)

	case c == '"':
		return l.lexString(start, pos)

	case isDigit(c):
		for l.offset < len(l.source) && isDigit(l.source[l.offset]) {
			l.advance()
		}
		return l.token(types.NUMBER, start, pos)

	case firstChar(c):
		for l.offset < len(l.source) && otherChar(l.source[l.offset]) {
			l.advance()
		}
		if kind, ok := keywords[l.source[start:l.offset]]; ok {
			return l.token(kind, start, pos)
		}
		return l.token(types.SYMBOL, start, pos)
	}

	l.advance()
	return l.token(types.ILLEGAL, start, pos)
}

// lexString scans a double-quoted literal. The produced span covers the text
// between the quotes; there are no escape sequences. An unterminated literal
// yields ILLEGAL up to the end of the line.
func (l *Lexer) lexString(start int, pos types.Position) types.Token {
	l.advance()
	inner := l.offset

	for l.offset < len(l.source) {
		switch l.source[l.offset] {
		case '"':
			tok := types.Token{
				Kind: types.STRING,
				Span: types.Span{Start: inner, End: l.offset},
				Pos:  pos,
			}
			l.advance()
			return tok
		case '\n':
			return l.token(types.ILLEGAL, start, pos)
		}
		l.advance()
	}

	return l.token(types.ILLEGAL, start, pos)
}

// Tokenize runs the lexer to completion. The final token is always EOF.
func (l *Lexer) Tokenize() []types.Token {
	var tokens []types.Token
	for {
		tok := l.Lex()
		tokens = append(tokens, tok)
		if tok.Kind == types.EOF {
			return tokens
		}
	}
}
