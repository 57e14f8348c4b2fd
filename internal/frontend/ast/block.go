package ast

import (
	"strings"

	"monkey/internal/source"
	"monkey/internal/tokens"
)

// BlockStatement is the braced body of an if or fn.
type BlockStatement struct {
	Token      tokens.Token // the '{' token
	Statements []Statement
	Rbrace     tokens.Token // the '}' token
}

func (bs *BlockStatement) TokenLiteral() string  { return bs.Token.Literal() }
func (bs *BlockStatement) Loc() *source.Location { return span(bs.Token, bs.Rbrace) }

// String renders the block with braces. Expression statements get a ';' so
// that adjacent statements cannot be mistaken for a call when re-read.
func (bs *BlockStatement) String() string {
	if len(bs.Statements) == 0 {
		return "{ }"
	}

	var out strings.Builder
	out.WriteString("{ ")
	for i, stmt := range bs.Statements {
		if i > 0 {
			out.WriteString(" ")
		}
		out.WriteString(stmt.String())
		if _, ok := stmt.(*ExpressionStatement); ok {
			out.WriteString(";")
		}
	}
	out.WriteString(" }")

	return out.String()
}
