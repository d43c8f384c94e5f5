package parser

import (
	"testing"
)

func TestLexer(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"", []TokenKind{TokenEOF}},
		{"   ", []TokenKind{TokenWhitespace, TokenEOF}},
		{"foo", []TokenKind{TokenIdent, TokenEOF}},
		{"_bar23", []TokenKind{TokenIdent, TokenEOF}},
		{"void foo", []TokenKind{TokenKwVoid, TokenWhitespace, TokenIdent, TokenEOF}},
		{"bool float int void", []TokenKind{TokenKwBool, TokenWhitespace, TokenKwFloat, TokenWhitespace, TokenKwInt, TokenWhitespace, TokenKwVoid, TokenEOF}},
		{"if return printf", []TokenKind{TokenKwIf, TokenWhitespace, TokenKwReturn, TokenWhitespace, TokenKwPrintf, TokenEOF}},
		{"true false", []TokenKind{TokenBoolConst, TokenWhitespace, TokenBoolConst, TokenEOF}},
		{"123", []TokenKind{TokenIntConst, TokenEOF}},
		{"3.14", []TokenKind{TokenFloatConst, TokenEOF}},
		{"1e9", []TokenKind{TokenFloatConst, TokenEOF}},
		{"2.5e-3", []TokenKind{TokenFloatConst, TokenEOF}},
		{"1.", []TokenKind{TokenIntConst, TokenError, TokenEOF}},
		{"// comment\nfoo", []TokenKind{TokenLineComment, TokenWhitespace, TokenIdent, TokenEOF}},
		{"/* block */ foo", []TokenKind{TokenComment, TokenWhitespace, TokenIdent, TokenEOF}},
		{"(){};,", []TokenKind{TokenLParen, TokenRParen, TokenLBrace, TokenRBrace, TokenSemicolon, TokenComma, TokenEOF}},
		{"+ - * /", []TokenKind{TokenPlus, TokenWhitespace, TokenMinus, TokenWhitespace, TokenStar, TokenWhitespace, TokenSlash, TokenEOF}},
		{"== != < <= > >=", []TokenKind{TokenEQ, TokenWhitespace, TokenNE, TokenWhitespace, TokenLT, TokenWhitespace, TokenLE, TokenWhitespace, TokenGT, TokenWhitespace, TokenGE, TokenEOF}},
		{"&& ||", []TokenKind{TokenAnd, TokenWhitespace, TokenOr, TokenEOF}},
		{"=x", []TokenKind{TokenAssign, TokenIdent, TokenEOF}},
		{"x==y", []TokenKind{TokenIdent, TokenEQ, TokenIdent, TokenEOF}},
		{"!", []TokenKind{TokenError, TokenEOF}},
		{"&", []TokenKind{TokenError, TokenEOF}},
		{"|", []TokenKind{TokenError, TokenEOF}},
		{"#", []TokenKind{TokenError, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexer := NewLexer([]byte(tt.input), "test.c1")
			var got []TokenKind
			for {
				tok := lexer.NextToken()
				got = append(got, tok.Kind)
				if tok.Kind == TokenEOF {
					break
				}
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d tokens %v, want %d", len(got), got, len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLexerPositions(t *testing.T) {
	lexer := NewLexer([]byte("void foo\nbar"), "test.c1")

	tok := lexer.NextToken()
	if tok.Span.Start.Line != 1 || tok.Span.Start.Column != 1 {
		t.Errorf("void at %d:%d, want 1:1", tok.Span.Start.Line, tok.Span.Start.Column)
	}

	lexer.NextToken() // whitespace
	tok = lexer.NextToken()
	if tok.Span.Start.Line != 1 || tok.Span.Start.Column != 6 {
		t.Errorf("foo at %d:%d, want 1:6", tok.Span.Start.Line, tok.Span.Start.Column)
	}

	lexer.NextToken() // newline
	tok = lexer.NextToken()
	if tok.Span.Start.Line != 2 || tok.Span.Start.Column != 1 {
		t.Errorf("bar at %d:%d, want 2:1", tok.Span.Start.Line, tok.Span.Start.Column)
	}
	if tok.Literal != "bar" {
		t.Errorf("Literal = %q, want %q", tok.Literal, "bar")
	}
}

func TestLexerUnterminatedBlockComment(t *testing.T) {
	lexer := NewLexer([]byte("/* no end"), "test.c1")
	tok := lexer.NextToken()
	if tok.Kind != TokenComment {
		t.Errorf("Kind = %v, want %v", tok.Kind, TokenComment)
	}
	if next := lexer.NextToken(); next.Kind != TokenEOF {
		t.Errorf("Kind = %v, want %v", next.Kind, TokenEOF)
	}
}
