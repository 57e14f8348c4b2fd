package ast

import (
	"strings"

	"monkey/internal/source"
	"monkey/internal/tokens"
)

// IntegerLiteral is a decimal integer that fits in 32 bits.
type IntegerLiteral struct {
	Token tokens.Token
	Value int32
}

func (il *IntegerLiteral) expressionNode()       {}
func (il *IntegerLiteral) TokenLiteral() string  { return il.Token.Literal() }
func (il *IntegerLiteral) String() string        { return il.Token.Literal() }
func (il *IntegerLiteral) Loc() *source.Location { return il.Token.Location("") }

// Boolean is true or false.
type Boolean struct {
	Token tokens.Token
	Value bool
}

func (b *Boolean) expressionNode()       {}
func (b *Boolean) TokenLiteral() string  { return b.Token.Literal() }
func (b *Boolean) String() string        { return b.Token.Literal() }
func (b *Boolean) Loc() *source.Location { return b.Token.Location("") }

// FunctionLiteral is fn(<Parameters>) <Body>
type FunctionLiteral struct {
	Token      tokens.Token // the 'fn' token
	Parameters []*Identifier
	Body       *BlockStatement
}

func (fl *FunctionLiteral) expressionNode()      {}
func (fl *FunctionLiteral) TokenLiteral() string { return fl.Token.Literal() }
func (fl *FunctionLiteral) Loc() *source.Location {
	return spanNodes(fl.Token.Location(""), fl.Body)
}

func (fl *FunctionLiteral) String() string {
	params := make([]string, len(fl.Parameters))
	for i, p := range fl.Parameters {
		params[i] = p.String()
	}

	var out strings.Builder
	out.WriteString(fl.TokenLiteral())
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	out.WriteString(fl.Body.String())

	return out.String()
}
