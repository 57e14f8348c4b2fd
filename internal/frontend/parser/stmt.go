package parser

import (
	"monkey/internal/frontend/ast"
	"monkey/internal/tokens"
)

// parseStatement parses the statement starting at curToken and leaves
// curToken on its last token. It returns nil when the statement is malformed.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Kind {
	case tokens.LET_TOKEN:
		return p.parseLetStatement()
	case tokens.RETURN_TOKEN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.curToken}

	if !p.expectPeek(tokens.IDENTIFIER_TOKEN) {
		return nil
	}
	stmt.Name = ast.NewIdentifier(p.curToken)

	if !p.expectPeek(tokens.EQUALS_TOKEN) {
		return nil
	}
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)
	p.skipSemicolon()
	if stmt.Value == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	p.nextToken()

	stmt.ReturnValue = p.parseExpression(LOWEST)
	p.skipSemicolon()
	if stmt.ReturnValue == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	stmt.Expression = p.parseExpression(LOWEST)
	p.skipSemicolon()
	if stmt.Expression == nil {
		return nil
	}
	return stmt
}

// skipSemicolon consumes an optional statement terminator.
func (p *Parser) skipSemicolon() {
	if p.peekTokenIs(tokens.SEMICOLON_TOKEN) {
		p.nextToken()
	}
}
