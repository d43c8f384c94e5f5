package parser

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError
	TokenWhitespace
	TokenComment
	TokenLineComment

	// Literals
	TokenIdent
	TokenIntConst
	TokenFloatConst
	TokenBoolConst

	// Keywords
	TokenKwBool
	TokenKwFloat
	TokenKwIf
	TokenKwInt
	TokenKwPrintf
	TokenKwReturn
	TokenKwVoid

	// Punctuation
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenSemicolon
	TokenComma

	// Operators
	TokenAssign
	TokenEQ
	TokenNE
	TokenLT
	TokenLE
	TokenGT
	TokenGE
	TokenAnd
	TokenOr
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:         "EOF",
	TokenError:       "Error",
	TokenWhitespace:  "Whitespace",
	TokenComment:     "Comment",
	TokenLineComment: "LineComment",
	TokenIdent:       "Identifier",
	TokenIntConst:    "IntConst",
	TokenFloatConst:  "FloatConst",
	TokenBoolConst:   "BoolConst",
	TokenKwBool:      "bool",
	TokenKwFloat:     "float",
	TokenKwIf:        "if",
	TokenKwInt:       "int",
	TokenKwPrintf:    "printf",
	TokenKwReturn:    "return",
	TokenKwVoid:      "void",
	TokenLParen:      "(",
	TokenRParen:      ")",
	TokenLBrace:      "{",
	TokenRBrace:      "}",
	TokenSemicolon:   ";",
	TokenComma:       ",",
	TokenAssign:      "=",
	TokenEQ:          "==",
	TokenNE:          "!=",
	TokenLT:          "<",
	TokenLE:          "<=",
	TokenGT:          ">",
	TokenGE:          ">=",
	TokenAnd:         "&&",
	TokenOr:          "||",
	TokenPlus:        "+",
	TokenMinus:       "-",
	TokenStar:        "*",
	TokenSlash:       "/",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

var keywords = map[string]TokenKind{
	"bool":   TokenKwBool,
	"float":  TokenKwFloat,
	"if":     TokenKwIf,
	"int":    TokenKwInt,
	"printf": TokenKwPrintf,
	"return": TokenKwReturn,
	"void":   TokenKwVoid,

	// true and false lex as boolean literals, not keywords.
	"true":  TokenBoolConst,
	"false": TokenBoolConst,
}

func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdent
}
