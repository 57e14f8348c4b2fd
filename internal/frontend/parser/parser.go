package parser

import (
	"monkey/internal/diagnostics"
	"monkey/internal/frontend/ast"
	"monkey/internal/frontend/lexer"
	"monkey/internal/source"
	"monkey/internal/tokens"
)

// DefaultSourceName names sources parsed without an explicit name.
const DefaultSourceName = "<input>"

// Parser builds an AST from the tokens of one lexer.
// It keeps two tokens of lookahead and never panics on malformed input;
// every problem is recorded in its diagnostic bag and parsing moves on.
type Parser struct {
	lex         *lexer.Lexer
	filepath    string
	diagnostics *diagnostics.DiagnosticBag

	curToken  tokens.Token
	peekToken tokens.Token
}

// New creates a parser reading from l.
func New(l *lexer.Lexer) *Parser {
	return NewNamed(DefaultSourceName, l)
}

// NewNamed creates a parser whose diagnostics point at filepath.
func NewNamed(filepath string, l *lexer.Lexer) *Parser {
	p := &Parser{
		lex:         l,
		filepath:    filepath,
		diagnostics: diagnostics.NewDiagnosticBag(filepath),
	}
	p.diagnostics.AddSourceContent(filepath, l.Input())

	// fill curToken and peekToken
	p.nextToken()
	p.nextToken()

	return p
}

// Parse parses src and returns the program with the error messages, in the order found.
func Parse(src string) (*ast.Program, []string) {
	p := New(lexer.New(src))
	program := p.ParseProgram()
	return program, p.Errors()
}

// ParseProgram parses statements until end of input.
// Statements that fail to parse are left out of the program.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for !p.curTokenIs(tokens.EOF_TOKEN) {
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

// Errors returns the messages of every error found so far.
func (p *Parser) Errors() []string {
	return p.diagnostics.Messages()
}

// Diagnostics returns the bag holding the full error records.
func (p *Parser) Diagnostics() *diagnostics.DiagnosticBag {
	return p.diagnostics
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

func (p *Parser) curTokenIs(kind tokens.TOKEN) bool {
	return p.curToken.Is(kind)
}

func (p *Parser) peekTokenIs(kind tokens.TOKEN) bool {
	return p.peekToken.Is(kind)
}

// expectPeek advances when the next token has the given kind,
// and records an error otherwise.
func (p *Parser) expectPeek(kind tokens.TOKEN) bool {
	if p.peekTokenIs(kind) {
		p.nextToken()
		return true
	}
	p.peekError(kind)
	return false
}

func (p *Parser) location(tok tokens.Token) *source.Location {
	return tok.Location(p.filepath)
}

func (p *Parser) peekError(kind tokens.TOKEN) {
	p.diagnostics.Add(
		diagnostics.UnexpectedToken(p.location(p.peekToken), kind.Literal(), p.peekToken.Literal()),
	)
}

func (p *Parser) noPrefixParseFnError(tok tokens.Token) {
	p.diagnostics.Add(diagnostics.NoPrefixParseFn(p.location(tok), tok.Literal()))
}
