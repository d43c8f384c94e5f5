package parser

// Parser checks token sequences against the C1 grammar. It builds no syntax
// tree: each rule either consumes the tokens of one alternative or stops at
// the first token that fits none.
//
// Grammar
//
//	program         ::= ( functiondefinition )* <EOF>
//	functiondefinition
//	                ::= returntype <ID> "(" ")" "{" statementlist "}"
//	returntype      ::= "bool" | "float" | "int" | "void"
//	functioncall    ::= <ID> "(" ")"
//	statementlist   ::= ( block )*
//	block           ::= "{" statementlist "}" | statement
//	statement       ::= ifstatement
//	                  | returnstatement ";"
//	                  | printf ";"
//	                  | statassignment ";"
//	                  | functioncall ";"
//	ifstatement     ::= "if" "(" assignment ")" block
//	returnstatement ::= "return" ( assignment )?
//	printf          ::= "printf" "(" assignment ")"
//	statassignment  ::= <ID> "=" assignment
//	assignment      ::= ( <ID> "=" assignment ) | expr
//	expr            ::= simpexpr ( ( "==" | "!=" | "<=" | ">=" | "<" | ">" ) simpexpr )?
//	simpexpr        ::= ( "-" )? term ( ( "+" | "-" | "||" ) term )*
//	term            ::= factor ( ( "*" | "/" | "&&" ) factor )*
//	factor          ::= <INT> | <FLOAT> | <BOOL>
//	                  | functioncall | <ID> | "(" assignment ")"
//
// The grammar is LL(1) except for the two alternatives starting with an
// identifier (assignment vs. function call), which are told apart by the
// token after the identifier. No rule ever looks further ahead than that,
// and consumed tokens are never revisited.
type Parser struct {
	stream *TokenStream
}

func newParser(source string) *Parser {
	return &Parser{stream: NewTokenStream(source)}
}

// Parse reports whether source is a syntactically valid C1 program. It
// returns nil on acceptance and a *SyntaxError describing the first grammar
// violation on rejection.
func Parse(source string) error {
	return newParser(source).program()
}

// program ::= ( functiondefinition )* <EOF>
func (p *Parser) program() error {
	for p.hasCurrent() {
		if err := p.functionDefinition(); err != nil {
			return err
		}
	}
	if p.hasCurrent() {
		return p.syntaxError(reasonExpectedEOF)
	}
	return nil
}

// functiondefinition ::= returntype <ID> "(" ")" "{" statementlist "}"
func (p *Parser) functionDefinition() error {
	if err := p.returnType(); err != nil {
		return err
	}
	if err := p.expect(TokenIdent, reasonExpectedFunctionName); err != nil {
		return err
	}
	if err := p.expect(TokenLParen, reasonExpectedLParen); err != nil {
		return err
	}
	if err := p.expect(TokenRParen, reasonExpectedRParen); err != nil {
		return err
	}
	if err := p.expect(TokenLBrace, reasonExpectedLBrace); err != nil {
		return err
	}
	if err := p.statementList(); err != nil {
		return err
	}
	return p.expect(TokenRBrace, reasonExpectedRBrace)
}

// returntype ::= "bool" | "float" | "int" | "void"
func (p *Parser) returnType() error {
	if p.anyMatchCurrent(TokenKwBool, TokenKwFloat, TokenKwInt, TokenKwVoid) {
		p.stream.Advance()
		return nil
	}
	return p.syntaxError(reasonExpectedTypeKeyword)
}

// functioncall ::= <ID> "(" ")"
func (p *Parser) functionCall() error {
	if err := p.expect(TokenIdent, reasonExpectedFunctionName); err != nil {
		return err
	}
	if err := p.expect(TokenLParen, reasonExpectedLParen); err != nil {
		return err
	}
	return p.expect(TokenRParen, reasonExpectedRParen)
}

// statementlist ::= ( block )*
func (p *Parser) statementList() error {
	for p.nextCanBeBlock() {
		if err := p.block(); err != nil {
			return err
		}
	}
	return nil
}

// block ::= "{" statementlist "}" | statement
func (p *Parser) block() error {
	if p.currentMatches(TokenLBrace) {
		p.stream.Advance()
		if err := p.statementList(); err != nil {
			return err
		}
		return p.expect(TokenRBrace, reasonExpectedRBrace)
	}
	return p.statement()
}

// statement ::= ifstatement | returnstatement ";" | printf ";" | statassignment ";" | functioncall ";"
func (p *Parser) statement() error {
	switch {
	case p.currentMatches(TokenKwIf):
		return p.ifStatement()
	case p.currentMatches(TokenKwReturn):
		if err := p.returnStatement(); err != nil {
			return err
		}
		return p.expect(TokenSemicolon, reasonSemicolonAfterReturn)
	case p.currentMatches(TokenKwPrintf):
		if err := p.printf(); err != nil {
			return err
		}
		return p.expect(TokenSemicolon, reasonSemicolonAfterPrintf)
	case p.currentMatches(TokenIdent) && p.nextMatches(TokenAssign):
		if err := p.statAssignment(); err != nil {
			return err
		}
		return p.expect(TokenSemicolon, reasonSemicolonAfterAssign)
	case p.currentMatches(TokenIdent) && p.nextMatches(TokenLParen):
		if err := p.functionCall(); err != nil {
			return err
		}
		return p.expect(TokenSemicolon, reasonSemicolonAfterCall)
	default:
		return p.syntaxError(reasonExpectedStatement)
	}
}

// ifstatement ::= "if" "(" assignment ")" block
func (p *Parser) ifStatement() error {
	if err := p.expect(TokenKwIf, reasonExpectedIfKeyword); err != nil {
		return err
	}
	if err := p.expect(TokenLParen, reasonExpectedLParen); err != nil {
		return err
	}
	if err := p.assignment(); err != nil {
		return err
	}
	if err := p.expect(TokenRParen, reasonExpectedRParen); err != nil {
		return err
	}
	return p.block()
}

// returnstatement ::= "return" ( assignment )?
//
// A bare "return" is accepted here even at end of input; the semicolon
// demand lives one level up in statement.
func (p *Parser) returnStatement() error {
	if err := p.expect(TokenKwReturn, reasonExpectedReturnKeyword); err != nil {
		return err
	}
	if p.hasCurrent() && !p.currentMatches(TokenSemicolon) {
		return p.assignment()
	}
	return nil
}

// printf ::= "printf" "(" assignment ")"
func (p *Parser) printf() error {
	if err := p.expect(TokenKwPrintf, reasonExpectedPrintfKeyword); err != nil {
		return err
	}
	if err := p.expect(TokenLParen, reasonExpectedLParen); err != nil {
		return err
	}
	if err := p.assignment(); err != nil {
		return err
	}
	return p.expect(TokenRParen, reasonExpectedRParen)
}

// statassignment ::= <ID> "=" assignment
func (p *Parser) statAssignment() error {
	if err := p.expect(TokenIdent, reasonExpectedIdentifier); err != nil {
		return err
	}
	if err := p.expect(TokenAssign, reasonExpectedAssign); err != nil {
		return err
	}
	return p.assignment()
}

// assignment ::= ( <ID> "=" assignment ) | expr
func (p *Parser) assignment() error {
	if p.currentMatches(TokenIdent) && p.nextMatches(TokenAssign) {
		if err := p.expect(TokenIdent, reasonExpectedIdentifier); err != nil {
			return err
		}
		if err := p.expect(TokenAssign, reasonExpectedAssign); err != nil {
			return err
		}
		return p.assignment()
	}
	return p.expr()
}

// expr ::= simpexpr ( ( "==" | "!=" | "<=" | ">=" | "<" | ">" ) simpexpr )?
func (p *Parser) expr() error {
	if err := p.simpexpr(); err != nil {
		return err
	}
	if p.anyMatchCurrent(TokenEQ, TokenNE, TokenLE, TokenGE, TokenLT, TokenGT) {
		p.stream.Advance()
		return p.simpexpr()
	}
	return nil
}

// simpexpr ::= ( "-" )? term ( ( "+" | "-" | "||" ) term )*
func (p *Parser) simpexpr() error {
	if p.currentMatches(TokenMinus) {
		p.stream.Advance()
	}
	if err := p.term(); err != nil {
		return err
	}
	for p.anyMatchCurrent(TokenPlus, TokenMinus, TokenOr) {
		p.stream.Advance()
		if err := p.term(); err != nil {
			return err
		}
	}
	return nil
}

// term ::= factor ( ( "*" | "/" | "&&" ) factor )*
func (p *Parser) term() error {
	if err := p.factor(); err != nil {
		return err
	}
	for p.anyMatchCurrent(TokenStar, TokenSlash, TokenAnd) {
		p.stream.Advance()
		if err := p.factor(); err != nil {
			return err
		}
	}
	return nil
}

// factor ::= <INT> | <FLOAT> | <BOOL> | functioncall | <ID> | "(" assignment ")"
func (p *Parser) factor() error {
	switch {
	case p.anyMatchCurrent(TokenIntConst, TokenFloatConst, TokenBoolConst):
		p.stream.Advance()
		return nil
	case p.nextCanBeFunctionCall():
		return p.functionCall()
	case p.currentMatches(TokenIdent):
		p.stream.Advance()
		return nil
	case p.currentMatches(TokenLParen):
		p.stream.Advance()
		if err := p.assignment(); err != nil {
			return err
		}
		return p.expect(TokenRParen, reasonExpectedRParen)
	default:
		return p.syntaxError(reasonExpectedFactor)
	}
}

// expect consumes the current token when it has the given kind, and otherwise
// reports reason against the current token without consuming anything.
func (p *Parser) expect(kind TokenKind, reason string) error {
	if p.currentMatches(kind) {
		p.stream.Advance()
		return nil
	}
	return p.syntaxError(reason)
}

func (p *Parser) hasCurrent() bool {
	_, ok := p.stream.Current()
	return ok
}

func (p *Parser) currentMatches(kind TokenKind) bool {
	tok, ok := p.stream.Current()
	return ok && tok.Kind == kind
}

func (p *Parser) nextMatches(kind TokenKind) bool {
	tok, ok := p.stream.Peek()
	return ok && tok.Kind == kind
}

func (p *Parser) anyMatchCurrent(kinds ...TokenKind) bool {
	for _, kind := range kinds {
		if p.currentMatches(kind) {
			return true
		}
	}
	return false
}

func (p *Parser) nextCanBeFunctionCall() bool {
	return p.currentMatches(TokenIdent) && p.nextMatches(TokenLParen)
}

func (p *Parser) nextCanBeStatement() bool {
	return p.currentMatches(TokenKwIf) ||
		p.currentMatches(TokenKwReturn) ||
		p.currentMatches(TokenKwPrintf) ||
		(p.currentMatches(TokenIdent) && p.nextMatches(TokenAssign)) ||
		(p.currentMatches(TokenIdent) && p.nextMatches(TokenLParen))
}

func (p *Parser) nextCanBeBlock() bool {
	return p.currentMatches(TokenLBrace) || p.nextCanBeStatement()
}

func (p *Parser) syntaxError(reason string) *SyntaxError {
	if line, ok := p.stream.CurrentLine(); ok {
		text, _ := p.stream.CurrentText()
		return &SyntaxError{Reason: reason, Line: line, Text: text}
	}
	return &SyntaxError{Reason: reason, AtEOF: true}
}
