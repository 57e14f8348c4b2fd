package ast

import (
	"strings"

	"monkey/internal/source"
	"monkey/internal/tokens"
)

// Node is the base interface for all AST nodes
type Node interface {
	TokenLiteral() string
	String() string
	Loc() *source.Location
}

// Statement is implemented only by the statement nodes of this package.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented only by the expression nodes of this package.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of every parse: the statements of a source text in order.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	parts := make([]string, len(p.Statements))
	for i, stmt := range p.Statements {
		parts[i] = stmt.String()
	}
	return strings.Join(parts, "\n")
}

// Loc spans from the first to the last statement; an empty program has no location.
func (p *Program) Loc() *source.Location {
	if len(p.Statements) == 0 {
		return nil
	}
	first := p.Statements[0].Loc()
	last := p.Statements[len(p.Statements)-1].Loc()
	return source.NewLocation(first.Filename, first.Start, last.End)
}

// span builds a location from the start of one token to the end of another.
func span(from, to tokens.Token) *source.Location {
	return source.NewLocation("", from.Start, to.End)
}

// spanNodes is span for child nodes whose extent is already known.
func spanNodes(from *source.Location, to Node) *source.Location {
	if to == nil {
		return from
	}
	return source.NewLocation("", from.Start, to.Loc().End)
}
