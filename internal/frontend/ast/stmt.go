package ast

import (
	"strings"

	"monkey/internal/source"
	"monkey/internal/tokens"
)

// LetStatement binds a name: let <Name> = <Value>;
type LetStatement struct {
	Token tokens.Token // the 'let' token
	Name  *Identifier
	Value Expression
}

func (ls *LetStatement) statementNode()       {}
func (ls *LetStatement) TokenLiteral() string { return ls.Token.Literal() }
func (ls *LetStatement) Loc() *source.Location {
	return spanNodes(ls.Token.Location(""), ls.Value)
}

func (ls *LetStatement) String() string {
	var out strings.Builder

	out.WriteString(ls.TokenLiteral() + " ")
	out.WriteString(ls.Name.String())
	out.WriteString(" = ")
	if ls.Value != nil {
		out.WriteString(ls.Value.String())
	}
	out.WriteString(";")

	return out.String()
}

// ReturnStatement represents return <ReturnValue>;
type ReturnStatement struct {
	Token       tokens.Token // the 'return' token
	ReturnValue Expression
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal() }
func (rs *ReturnStatement) Loc() *source.Location {
	return spanNodes(rs.Token.Location(""), rs.ReturnValue)
}

func (rs *ReturnStatement) String() string {
	var out strings.Builder

	out.WriteString(rs.TokenLiteral() + " ")
	if rs.ReturnValue != nil {
		out.WriteString(rs.ReturnValue.String())
	}
	out.WriteString(";")

	return out.String()
}

// ExpressionStatement is an expression used as a statement, e.g. x + 10;
type ExpressionStatement struct {
	Token      tokens.Token // first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal() }
func (es *ExpressionStatement) Loc() *source.Location {
	if es.Expression == nil {
		return es.Token.Location("")
	}
	return es.Expression.Loc()
}

func (es *ExpressionStatement) String() string {
	if es.Expression != nil {
		return es.Expression.String()
	}
	return ""
}
