package parser

import (
	"monkey/internal/diagnostics"
	"monkey/internal/frontend/ast"
	"monkey/internal/tokens"
)

// parseBlockStatement parses the statements between curToken '{' and its '}'.
// A block cut off by end of input is reported and yields nil.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{
		Token:      p.curToken,
		Statements: []ast.Statement{},
	}
	p.nextToken()

	for !p.curTokenIs(tokens.CLOSE_CURLY) && !p.curTokenIs(tokens.EOF_TOKEN) {
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	if p.curTokenIs(tokens.EOF_TOKEN) {
		p.diagnostics.Add(diagnostics.UnterminatedBlock(p.location(p.curToken), p.location(block.Token)))
		return nil
	}

	block.Rbrace = p.curToken
	return block
}
