package parser

import "fmt"

// The closed set of rejection reasons. Every diagnostic the parser can emit
// names one of these.
const (
	reasonExpectedEOF           = "Expected EOF"
	reasonExpectedTypeKeyword   = "Expected type keyword"
	reasonExpectedFunctionName  = "Expected function name"
	reasonExpectedLParen        = "Expected '('"
	reasonExpectedRParen        = "Expected ')'"
	reasonExpectedLBrace        = "Expected '{'"
	reasonExpectedRBrace        = "Expected '}'"
	reasonExpectedStatement     = "Expected statement"
	reasonExpectedIfKeyword     = "Expected 'if' keyword"
	reasonExpectedReturnKeyword = "Expected 'return' keyword"
	reasonExpectedPrintfKeyword = "Expected 'printf' keyword"
	reasonExpectedIdentifier    = "Expected identifier"
	reasonExpectedAssign        = "Expected '='"
	reasonExpectedFactor        = "Expected factor"
	reasonSemicolonAfterReturn  = "Expected ';' after return statement"
	reasonSemicolonAfterPrintf  = "Expected ';' after printf statement"
	reasonSemicolonAfterAssign  = "Expected ';' after assignment"
	reasonSemicolonAfterCall    = "Expected ';' after function call"
)

// SyntaxError is the only error kind the parser produces. Line and Text
// describe the offending token; AtEOF is set when the input ended before the
// expected construct.
type SyntaxError struct {
	Reason string
	Line   int
	Text   string
	AtEOF  bool
}

func (e *SyntaxError) Error() string {
	if e.AtEOF {
		return fmt.Sprintf("%s. Reached EOF", e.Reason)
	}
	return fmt.Sprintf("%s at line %d, got '%s' instead.", e.Reason, e.Line, e.Text)
}
