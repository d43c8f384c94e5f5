package parser

// Tokenize runs the lexer over source and returns the significant tokens in
// order. Whitespace, comments and the trailing EOF sentinel are stripped.
func Tokenize(source, file string) []Token {
	lexer := NewLexer([]byte(source), file)
	var tokens []Token
	for {
		tok := lexer.NextToken()
		switch tok.Kind {
		case TokenEOF:
			return tokens
		case TokenWhitespace, TokenComment, TokenLineComment:
			continue
		}
		tokens = append(tokens, tok)
	}
}

// TokenStream is a read-once cursor over a token sequence. The cursor only
// moves forward; Current and Peek never consume, and Advance past the last
// token is a no-op. The comma-ok result is false once the input is exhausted.
type TokenStream struct {
	tokens []Token
	pos    int
}

func NewTokenStream(source string) *TokenStream {
	return &TokenStream{tokens: Tokenize(source, "")}
}

func (s *TokenStream) Current() (Token, bool) {
	if s.pos >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[s.pos], true
}

func (s *TokenStream) Peek() (Token, bool) {
	if s.pos+1 >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[s.pos+1], true
}

func (s *TokenStream) Advance() {
	if s.pos < len(s.tokens) {
		s.pos++
	}
}

func (s *TokenStream) CurrentLine() (int, bool) {
	tok, ok := s.Current()
	if !ok {
		return 0, false
	}
	return tok.Span.Start.Line, true
}

func (s *TokenStream) CurrentText() (string, bool) {
	tok, ok := s.Current()
	if !ok {
		return "", false
	}
	return tok.Literal, true
}
