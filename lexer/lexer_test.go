package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/CoherentNonsense/sil-lang/types"
)

func kindsOf(tokens []types.Token) []types.TokenKind {
	kinds := make([]types.TokenKind, 0, len(tokens))
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func TestTokenizeKinds(t *testing.T) {
	src := `fn add(a: i32, b: i32) -> i32 { return a + b; }`
	tokens := New(src, "add.sil").Tokenize()

	want := []types.TokenKind{
		types.FN, types.SYMBOL, types.LPAREN,
		types.SYMBOL, types.COLON, types.SYMBOL, types.COMMA,
		types.SYMBOL, types.COLON, types.SYMBOL, types.RPAREN,
		types.ARROW, types.SYMBOL, types.LBRACE,
		types.RETURN, types.SYMBOL, types.PLUS, types.SYMBOL, types.SEMICOLON,
		types.RBRACE, types.EOF,
	}

	if diff := cmp.Diff(want, kindsOf(tokens)); diff != "" {
		t.Fatalf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeSpans(t *testing.T) {
	src := `fn add(x: i32) -> i32 { return x; }`
	tokens := New(src, "add.sil").Tokenize()

	texts := []struct {
		index int
		want  string
	}{
		{0, "fn"},
		{1, "add"},
		{3, "x"},
		{5, "i32"},
	}

	for _, tc := range texts {
		if got := tokens[tc.index].Text(src); got != tc.want {
			t.Errorf("token %d: got %q, want %q", tc.index, got, tc.want)
		}
	}

	last := tokens[len(tokens)-1]
	if last.Kind != types.EOF {
		t.Fatalf("last token is %s, want EOF", last.Kind)
	}
	if last.Span.Start != len(src) || last.Span.End != len(src) {
		t.Errorf("EOF span is %s, want [%d,%d)", last.Span, len(src), len(src))
	}
}

func TestTokenizePositions(t *testing.T) {
	src := "fn main() {\n    foo();\n}\n"
	tokens := New(src, "main.sil").Tokenize()

	// fn main ( ) { foo ( ) ; } EOF
	positions := []struct {
		index  int
		line   int
		column int
	}{
		{0, 1, 1},  // fn
		{1, 1, 4},  // main
		{4, 1, 11}, // {
		{5, 2, 5},  // foo
		{9, 3, 1},  // }
	}

	for _, tc := range positions {
		pos := tokens[tc.index].Pos
		if pos.Line != tc.line || pos.Column != tc.column {
			t.Errorf("token %d at %d:%d, want %d:%d", tc.index, pos.Line, pos.Column, tc.line, tc.column)
		}
		if pos.Filename != "main.sil" {
			t.Errorf("token %d filename %q, want %q", tc.index, pos.Filename, "main.sil")
		}
	}
}

func TestTokenizeKeywordsAndSymbols(t *testing.T) {
	src := "fn extern return if else i32 unreachable fnord externs"
	tokens := New(src, "kw.sil").Tokenize()

	want := []types.TokenKind{
		types.FN, types.EXTERN, types.RETURN, types.IF, types.ELSE,
		types.SYMBOL, types.SYMBOL, types.SYMBOL, types.SYMBOL,
		types.EOF,
	}

	if diff := cmp.Diff(want, kindsOf(tokens)); diff != "" {
		t.Fatalf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeArrowAndMinus(t *testing.T) {
	src := "a -> b - c"
	tokens := New(src, "arrow.sil").Tokenize()

	want := []types.TokenKind{
		types.SYMBOL, types.ARROW, types.SYMBOL, types.MINUS, types.SYMBOL, types.EOF,
	}

	if diff := cmp.Diff(want, kindsOf(tokens)); diff != "" {
		t.Fatalf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeString(t *testing.T) {
	src := `puts("hello world");`
	tokens := New(src, "str.sil").Tokenize()

	str := tokens[2]
	if str.Kind != types.STRING {
		t.Fatalf("token 2 is %s, want STRING", str.Kind)
	}
	if got := str.Text(src); got != "hello world" {
		t.Errorf("string text %q, want %q (span must exclude the quotes)", got, "hello world")
	}
	if str.Pos.Column != 6 {
		t.Errorf("string starts at column %d, want 6", str.Pos.Column)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	src := "puts(\"oops\nfn"
	tokens := New(src, "str.sil").Tokenize()

	want := []types.TokenKind{
		types.SYMBOL, types.LPAREN, types.ILLEGAL, types.FN, types.EOF,
	}

	if diff := cmp.Diff(want, kindsOf(tokens)); diff != "" {
		t.Fatalf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeIllegal(t *testing.T) {
	src := "a @ b"
	tokens := New(src, "bad.sil").Tokenize()

	want := []types.TokenKind{
		types.SYMBOL, types.ILLEGAL, types.SYMBOL, types.EOF,
	}

	if diff := cmp.Diff(want, kindsOf(tokens)); diff != "" {
		t.Fatalf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestLexPastEOF(t *testing.T) {
	l := New("x", "eof.sil")

	if tok := l.Lex(); tok.Kind != types.SYMBOL {
		t.Fatalf("first token is %s, want SYMBOL", tok.Kind)
	}
	for i := 0; i < 3; i++ {
		if tok := l.Lex(); tok.Kind != types.EOF {
			t.Fatalf("token after end is %s, want EOF", tok.Kind)
		}
	}
}
