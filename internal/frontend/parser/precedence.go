package parser

import "monkey/internal/tokens"

// Binding power of operators, weakest first.
const (
	_ int = iota
	LOWEST
	EQUALS      // ==
	LESSGREATER // > or <
	SUM         // +
	PRODUCT     // *
	PREFIX      // -X or !X
	CALL        // myFunction(X)
)

var precedences = map[tokens.TOKEN]int{
	tokens.DOUBLE_EQUAL_TOKEN: EQUALS,
	tokens.NOT_EQUAL_TOKEN:    EQUALS,
	tokens.LESS_TOKEN:         LESSGREATER,
	tokens.GREATER_TOKEN:      LESSGREATER,
	tokens.PLUS_TOKEN:         SUM,
	tokens.MINUS_TOKEN:        SUM,
	tokens.MUL_TOKEN:          PRODUCT,
	tokens.DIV_TOKEN:          PRODUCT,
	tokens.OPEN_PAREN:         CALL,
}

func precedenceOf(kind tokens.TOKEN) int {
	if p, ok := precedences[kind]; ok {
		return p
	}
	return LOWEST
}

func (p *Parser) peekPrecedence() int {
	return precedenceOf(p.peekToken.Kind)
}

func (p *Parser) curPrecedence() int {
	return precedenceOf(p.curToken.Kind)
}
