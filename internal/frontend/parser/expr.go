package parser

import (
	"strconv"

	"monkey/internal/diagnostics"
	"monkey/internal/frontend/ast"
	"monkey/internal/tokens"
)

// parseExpression parses an expression whose operators bind tighter than precedence.
// On return curToken is the last token of the expression.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for !p.peekTokenIs(tokens.SEMICOLON_TOKEN) && precedence < p.peekPrecedence() {
		p.nextToken()
		left = p.parseInfix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

// parsePrefix dispatches on the token that starts an expression.
func (p *Parser) parsePrefix() ast.Expression {
	switch p.curToken.Kind {
	case tokens.IDENTIFIER_TOKEN:
		return ast.NewIdentifier(p.curToken)
	case tokens.INT_TOKEN:
		return p.parseIntegerLiteral()
	case tokens.TRUE_TOKEN, tokens.FALSE_TOKEN:
		return &ast.Boolean{Token: p.curToken, Value: p.curTokenIs(tokens.TRUE_TOKEN)}
	case tokens.NOT_TOKEN, tokens.MINUS_TOKEN:
		return p.parsePrefixExpression()
	case tokens.OPEN_PAREN:
		return p.parseGroupedExpression()
	case tokens.IF_TOKEN:
		return p.parseIfExpression()
	case tokens.FUNCTION_TOKEN:
		return p.parseFunctionLiteral()
	default:
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
}

// parseInfix extends left with the operator or call at curToken.
// Only kinds with a precedence above LOWEST reach here.
func (p *Parser) parseInfix(left ast.Expression) ast.Expression {
	if p.curTokenIs(tokens.OPEN_PAREN) {
		return p.parseCallExpression(left)
	}
	return p.parseInfixExpression(left)
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, err := strconv.ParseInt(p.curToken.Literal(), 10, 32)
	if err != nil {
		p.diagnostics.Add(diagnostics.InvalidInteger(p.location(p.curToken), p.curToken.Literal()))
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: int32(value)}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal(),
	}
	p.nextToken()

	expr.Right = p.parseExpression(PREFIX)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal(),
		Left:     left,
	}

	precedence := p.curPrecedence()
	p.nextToken()

	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()

	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(tokens.CLOSE_PAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: p.curToken}

	if !p.expectPeek(tokens.OPEN_PAREN) {
		return nil
	}
	p.nextToken()

	expr.Condition = p.parseExpression(LOWEST)
	if expr.Condition == nil {
		return nil
	}
	if !p.expectPeek(tokens.CLOSE_PAREN) || !p.expectPeek(tokens.OPEN_CURLY) {
		return nil
	}

	expr.Consequence = p.parseBlockStatement()
	if expr.Consequence == nil {
		return nil
	}

	if p.peekTokenIs(tokens.ELSE_TOKEN) {
		p.nextToken()
		if !p.expectPeek(tokens.OPEN_CURLY) {
			return nil
		}
		expr.Alternative = p.parseBlockStatement()
		if expr.Alternative == nil {
			return nil
		}
	}

	return expr
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	fn := &ast.FunctionLiteral{Token: p.curToken}

	if !p.expectPeek(tokens.OPEN_PAREN) {
		return nil
	}

	params, ok := p.parseFunctionParameters()
	if !ok {
		return nil
	}
	fn.Parameters = params

	if !p.expectPeek(tokens.OPEN_CURLY) {
		return nil
	}

	fn.Body = p.parseBlockStatement()
	if fn.Body == nil {
		return nil
	}
	return fn
}

// parseFunctionParameters parses "(a, b)" with curToken on '('.
func (p *Parser) parseFunctionParameters() ([]*ast.Identifier, bool) {
	params := []*ast.Identifier{}

	if p.peekTokenIs(tokens.CLOSE_PAREN) {
		p.nextToken()
		return params, true
	}

	if !p.expectPeek(tokens.IDENTIFIER_TOKEN) {
		return nil, false
	}
	params = append(params, ast.NewIdentifier(p.curToken))

	for p.peekTokenIs(tokens.COMMA_TOKEN) {
		p.nextToken()
		if !p.expectPeek(tokens.IDENTIFIER_TOKEN) {
			return nil, false
		}
		params = append(params, ast.NewIdentifier(p.curToken))
	}

	if !p.expectPeek(tokens.CLOSE_PAREN) {
		return nil, false
	}
	return params, true
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	call := &ast.CallExpression{Token: p.curToken, Function: function}

	args, ok := p.parseCallArguments()
	if !ok {
		return nil
	}
	call.Arguments = args
	call.Rparen = p.curToken

	return call
}

// parseCallArguments parses "(x, y + 1)" with curToken on '('.
func (p *Parser) parseCallArguments() ([]ast.Expression, bool) {
	args := []ast.Expression{}

	if p.peekTokenIs(tokens.CLOSE_PAREN) {
		p.nextToken()
		return args, true
	}

	p.nextToken()
	arg := p.parseExpression(LOWEST)
	if arg == nil {
		return nil, false
	}
	args = append(args, arg)

	for p.peekTokenIs(tokens.COMMA_TOKEN) {
		p.nextToken()
		p.nextToken()
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil, false
		}
		args = append(args, arg)
	}

	if !p.expectPeek(tokens.CLOSE_PAREN) {
		return nil, false
	}
	return args, true
}
