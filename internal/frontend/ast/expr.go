package ast

import (
	"strings"

	"monkey/internal/source"
	"monkey/internal/tokens"
)

// Identifier is a name. Value is the identifier text.
type Identifier struct {
	Token tokens.Token
	Value string
}

func (i *Identifier) expressionNode()       {}
func (i *Identifier) TokenLiteral() string  { return i.Token.Literal() }
func (i *Identifier) String() string        { return i.Value }
func (i *Identifier) Loc() *source.Location { return i.Token.Location("") }

// NewIdentifier builds an identifier from its token.
func NewIdentifier(tok tokens.Token) *Identifier {
	return &Identifier{Token: tok, Value: tok.Literal()}
}

// PrefixExpression represents a unary operator application, e.g. !ok or -5
type PrefixExpression struct {
	Token    tokens.Token // the operator token
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) expressionNode()      {}
func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Literal() }
func (pe *PrefixExpression) Loc() *source.Location {
	return spanNodes(pe.Token.Location(""), pe.Right)
}

func (pe *PrefixExpression) String() string {
	return "(" + pe.Operator + pe.Right.String() + ")"
}

// InfixExpression represents a binary operator application
type InfixExpression struct {
	Token    tokens.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) expressionNode()      {}
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Literal() }
func (ie *InfixExpression) Loc() *source.Location {
	return spanNodes(ie.Left.Loc(), ie.Right)
}

func (ie *InfixExpression) String() string {
	return "(" + ie.Left.String() + " " + ie.Operator + " " + ie.Right.String() + ")"
}

// IfExpression is if (<Condition>) <Consequence> else <Alternative>.
// Alternative is nil when there is no else branch.
type IfExpression struct {
	Token       tokens.Token // the 'if' token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
}

func (ie *IfExpression) expressionNode()      {}
func (ie *IfExpression) TokenLiteral() string { return ie.Token.Literal() }
func (ie *IfExpression) Loc() *source.Location {
	if ie.Alternative != nil {
		return spanNodes(ie.Token.Location(""), ie.Alternative)
	}
	return spanNodes(ie.Token.Location(""), ie.Consequence)
}

func (ie *IfExpression) String() string {
	var out strings.Builder

	out.WriteString("if (")
	out.WriteString(ie.Condition.String())
	out.WriteString(") ")
	out.WriteString(ie.Consequence.String())
	if ie.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(ie.Alternative.String())
	}

	return out.String()
}

// CallExpression is <Function>(<Arguments>)
type CallExpression struct {
	Token     tokens.Token // the '(' token
	Function  Expression   // Identifier or FunctionLiteral, or any expression yielding one
	Arguments []Expression
	Rparen    tokens.Token
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal() }
func (ce *CallExpression) Loc() *source.Location {
	return source.NewLocation("", ce.Function.Loc().Start, ce.Rparen.End)
}

// String writes every argument followed by ", ", so add(a, b) renders as add(a, b, ).
func (ce *CallExpression) String() string {
	var out strings.Builder

	out.WriteString(ce.Function.String())
	out.WriteString("(")
	for _, arg := range ce.Arguments {
		out.WriteString(arg.String())
		out.WriteString(", ")
	}
	out.WriteString(")")

	return out.String()
}
