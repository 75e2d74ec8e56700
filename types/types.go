package types

import (
	"fmt"
)

type Position struct {
	Line     int
	Column   int
	Filename string
}

func (p Position) String() string {
	if p.Filename == "" {
		p.Filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

type TokenKind int

const (
	EOF TokenKind = iota
	ILLEGAL

	SYMBOL
	NUMBER
	STRING

	FN
	EXTERN
	RETURN
	IF
	ELSE

	LPAREN
	RPAREN
	LBRACE
	RBRACE
	COLON
	SEMICOLON
	COMMA
	ARROW
	STAR
	PLUS
	MINUS
	SLASH
)

func (t TokenKind) String() string {
	data := map[TokenKind]string{
		EOF:       "EOF",
		ILLEGAL:   "ILLEGAL",
		SYMBOL:    "SYMBOL",
		NUMBER:    "NUMBER",
		STRING:    "STRING",
		FN:        "FN",
		EXTERN:    "EXTERN",
		RETURN:    "RETURN",
		IF:        "IF",
		ELSE:      "ELSE",
		LPAREN:    "LPAREN",
		RPAREN:    "RPAREN",
		LBRACE:    "LBRACE",
		RBRACE:    "RBRACE",
		COLON:     "COLON",
		SEMICOLON: "SEMICOLON",
		COMMA:     "COMMA",
		ARROW:     "ARROW",
		STAR:      "STAR",
		PLUS:      "PLUS",
		MINUS:     "MINUS",
		SLASH:     "SLASH",
	}
	return data[t]
}

type Token struct {
	Kind TokenKind
	Span Span
	Pos  Position
}

// Text materializes the token's lexeme from the source it was produced from.
func (t Token) Text(source string) string {
	return source[t.Span.Start:t.Span.End]
}
