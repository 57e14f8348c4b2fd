package tokens

import (
	"bytes"
	"testing"

	"monkey/colors"
	"monkey/internal/source"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		word     string
		expected TOKEN
	}{
		{"fn", FUNCTION_TOKEN},
		{"let", LET_TOKEN},
		{"true", TRUE_TOKEN},
		{"false", FALSE_TOKEN},
		{"if", IF_TOKEN},
		{"else", ELSE_TOKEN},
		{"return", RETURN_TOKEN},
		{"lets", IDENTIFIER_TOKEN},
		{"Fn", IDENTIFIER_TOKEN},
		{"_", IDENTIFIER_TOKEN},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.expected, LookupIdent(tt.word))
			assert.Equal(t, tt.expected != IDENTIFIER_TOKEN, IsKeyword(tt.word))
		})
	}
}

func TestKeywordLiteralRelexes(t *testing.T) {
	for word, kind := range keyWordsMap {
		tok := NewToken(kind, word, source.Position{}, source.Position{})
		assert.Equal(t, word, tok.Literal())
		assert.Equal(t, kind, LookupIdent(tok.Literal()))
	}
}

func TestTokenLiteral(t *testing.T) {
	tests := []struct {
		name     string
		token    Token
		expected string
	}{
		{"identifier", Token{Kind: IDENTIFIER_TOKEN, Value: "foo"}, "foo"},
		{"integer", Token{Kind: INT_TOKEN, Value: "0042"}, "0042"},
		{"illegal", Token{Kind: ILLEGAL_TOKEN, Value: "@"}, "@"},
		{"operator", Token{Kind: NOT_EQUAL_TOKEN, Value: "!="}, "!="},
		{"keyword", Token{Kind: RETURN_TOKEN, Value: "return"}, "return"},
		{"eof", Token{Kind: EOF_TOKEN}, "EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.token.Literal())
		})
	}
}

func TestTokenSame(t *testing.T) {
	a := NewToken(IDENTIFIER_TOKEN, "x", source.Position{Line: 1, Column: 1}, source.Position{Line: 1, Column: 2})
	b := NewToken(IDENTIFIER_TOKEN, "x", source.Position{Line: 4, Column: 9}, source.Position{Line: 4, Column: 10})
	c := NewToken(IDENTIFIER_TOKEN, "y", source.Position{}, source.Position{})
	d := NewToken(INT_TOKEN, "x", source.Position{}, source.Position{})

	assert.True(t, a.Same(b))
	assert.False(t, a.Same(c))
	assert.False(t, a.Same(d))
	assert.NotEqual(t, a, b, "positions still take part in ==")
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "identifier(add)", Token{Kind: IDENTIFIER_TOKEN, Value: "add"}.String())
	assert.Equal(t, "(", Token{Kind: OPEN_PAREN, Value: "("}.String())
	assert.Equal(t, "EOF", Token{Kind: EOF_TOKEN}.String())
}

func TestTokenDebug(t *testing.T) {
	colors.SetEnabled(false)
	t.Cleanup(func() { colors.SetEnabled(true) })

	var buf bytes.Buffer
	Token{Kind: INT_TOKEN, Value: "5", Start: source.Position{Line: 2, Column: 3}}.Debug(&buf, "repl")
	Token{Kind: SEMICOLON_TOKEN, Value: ";", Start: source.Position{Line: 2, Column: 4}}.Debug(&buf, "repl")

	assert.Equal(t, "repl:2:3 \"5\" ('integer literal')\nrepl:2:4 \";\"\n", buf.String())
}
