package lexer

import (
	"testing"

	"monkey/internal/source"
	"monkey/internal/tokens"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type expectedToken struct {
	kind  tokens.TOKEN
	value string
}

func TestNextToken(t *testing.T) {
	input := `let five = 5;
let ten = 10;
let add = fn(x, y) {
  x + y;
};
let result = add(five, ten);
!-/*5;
5 < 10 > 5;

if (5 < 10) {
	return true;
} else {
	return false;
}

10 == 10;
10 != 9;
`

	expected := []expectedToken{
		{tokens.LET_TOKEN, "let"},
		{tokens.IDENTIFIER_TOKEN, "five"},
		{tokens.EQUALS_TOKEN, "="},
		{tokens.INT_TOKEN, "5"},
		{tokens.SEMICOLON_TOKEN, ";"},
		{tokens.LET_TOKEN, "let"},
		{tokens.IDENTIFIER_TOKEN, "ten"},
		{tokens.EQUALS_TOKEN, "="},
		{tokens.INT_TOKEN, "10"},
		{tokens.SEMICOLON_TOKEN, ";"},
		{tokens.LET_TOKEN, "let"},
		{tokens.IDENTIFIER_TOKEN, "add"},
		{tokens.EQUALS_TOKEN, "="},
		{tokens.FUNCTION_TOKEN, "fn"},
		{tokens.OPEN_PAREN, "("},
		{tokens.IDENTIFIER_TOKEN, "x"},
		{tokens.COMMA_TOKEN, ","},
		{tokens.IDENTIFIER_TOKEN, "y"},
		{tokens.CLOSE_PAREN, ")"},
		{tokens.OPEN_CURLY, "{"},
		{tokens.IDENTIFIER_TOKEN, "x"},
		{tokens.PLUS_TOKEN, "+"},
		{tokens.IDENTIFIER_TOKEN, "y"},
		{tokens.SEMICOLON_TOKEN, ";"},
		{tokens.CLOSE_CURLY, "}"},
		{tokens.SEMICOLON_TOKEN, ";"},
		{tokens.LET_TOKEN, "let"},
		{tokens.IDENTIFIER_TOKEN, "result"},
		{tokens.EQUALS_TOKEN, "="},
		{tokens.IDENTIFIER_TOKEN, "add"},
		{tokens.OPEN_PAREN, "("},
		{tokens.IDENTIFIER_TOKEN, "five"},
		{tokens.COMMA_TOKEN, ","},
		{tokens.IDENTIFIER_TOKEN, "ten"},
		{tokens.CLOSE_PAREN, ")"},
		{tokens.SEMICOLON_TOKEN, ";"},
		{tokens.NOT_TOKEN, "!"},
		{tokens.MINUS_TOKEN, "-"},
		{tokens.DIV_TOKEN, "/"},
		{tokens.MUL_TOKEN, "*"},
		{tokens.INT_TOKEN, "5"},
		{tokens.SEMICOLON_TOKEN, ";"},
		{tokens.INT_TOKEN, "5"},
		{tokens.LESS_TOKEN, "<"},
		{tokens.INT_TOKEN, "10"},
		{tokens.GREATER_TOKEN, ">"},
		{tokens.INT_TOKEN, "5"},
		{tokens.SEMICOLON_TOKEN, ";"},
		{tokens.IF_TOKEN, "if"},
		{tokens.OPEN_PAREN, "("},
		{tokens.INT_TOKEN, "5"},
		{tokens.LESS_TOKEN, "<"},
		{tokens.INT_TOKEN, "10"},
		{tokens.CLOSE_PAREN, ")"},
		{tokens.OPEN_CURLY, "{"},
		{tokens.RETURN_TOKEN, "return"},
		{tokens.TRUE_TOKEN, "true"},
		{tokens.SEMICOLON_TOKEN, ";"},
		{tokens.CLOSE_CURLY, "}"},
		{tokens.ELSE_TOKEN, "else"},
		{tokens.OPEN_CURLY, "{"},
		{tokens.RETURN_TOKEN, "return"},
		{tokens.FALSE_TOKEN, "false"},
		{tokens.SEMICOLON_TOKEN, ";"},
		{tokens.CLOSE_CURLY, "}"},
		{tokens.INT_TOKEN, "10"},
		{tokens.DOUBLE_EQUAL_TOKEN, "=="},
		{tokens.INT_TOKEN, "10"},
		{tokens.SEMICOLON_TOKEN, ";"},
		{tokens.INT_TOKEN, "10"},
		{tokens.NOT_EQUAL_TOKEN, "!="},
		{tokens.INT_TOKEN, "9"},
		{tokens.SEMICOLON_TOKEN, ";"},
		{tokens.EOF_TOKEN, ""},
	}

	lex := New(input)
	for i, want := range expected {
		tok := lex.NextToken()
		require.Equalf(t, want.kind, tok.Kind, "token %d: wrong kind (value %q)", i, tok.Value)
		require.Equalf(t, want.value, tok.Value, "token %d: wrong value", i)
	}
}

func TestNextTokenEOFIsSticky(t *testing.T) {
	lex := New("x")
	assert.Equal(t, tokens.IDENTIFIER_TOKEN, lex.NextToken().Kind)
	for i := 0; i < 3; i++ {
		assert.Equal(t, tokens.EOF_TOKEN, lex.NextToken().Kind)
	}
}

func TestEmptyAndBlankInput(t *testing.T) {
	for _, input := range []string{"", " \t\r\n  "} {
		toks := New(input).Tokenize()
		require.Len(t, toks, 1)
		assert.Equal(t, tokens.EOF_TOKEN, toks[0].Kind)
	}
}

func TestIllegalCharactersDoNotStopScanning(t *testing.T) {
	toks := New("a @ b # é 1").Tokenize()

	expected := []expectedToken{
		{tokens.IDENTIFIER_TOKEN, "a"},
		{tokens.ILLEGAL_TOKEN, "@"},
		{tokens.IDENTIFIER_TOKEN, "b"},
		{tokens.ILLEGAL_TOKEN, "#"},
		{tokens.ILLEGAL_TOKEN, "é"},
		{tokens.INT_TOKEN, "1"},
		{tokens.EOF_TOKEN, ""},
	}

	require.Len(t, toks, len(expected))
	for i, want := range expected {
		assert.Equal(t, want.kind, toks[i].Kind)
		assert.Equal(t, want.value, toks[i].Value)
	}
}

func TestMaximalMunch(t *testing.T) {
	tests := []struct {
		input    string
		expected []expectedToken
	}{
		{"foo_bar99", []expectedToken{{tokens.IDENTIFIER_TOKEN, "foo_bar"}, {tokens.INT_TOKEN, "99"}}},
		{"123abc", []expectedToken{{tokens.INT_TOKEN, "123"}, {tokens.IDENTIFIER_TOKEN, "abc"}}},
		{"letx", []expectedToken{{tokens.IDENTIFIER_TOKEN, "letx"}}},
		{"===", []expectedToken{{tokens.DOUBLE_EQUAL_TOKEN, "=="}, {tokens.EQUALS_TOKEN, "="}}},
		{"!!=", []expectedToken{{tokens.NOT_TOKEN, "!"}, {tokens.NOT_EQUAL_TOKEN, "!="}}},
		{"= =", []expectedToken{{tokens.EQUALS_TOKEN, "="}, {tokens.EQUALS_TOKEN, "="}}},
		{"99999999999999999999", []expectedToken{{tokens.INT_TOKEN, "99999999999999999999"}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := New(tt.input).Tokenize()
			require.Len(t, toks, len(tt.expected)+1)
			for i, want := range tt.expected {
				assert.Equal(t, want.kind, toks[i].Kind)
				assert.Equal(t, want.value, toks[i].Value)
			}
		})
	}
}

func TestTokenPositions(t *testing.T) {
	toks := New("let x\n  == y").Tokenize()
	require.Len(t, toks, 5)

	assert.Equal(t, source.Position{Line: 1, Column: 1, Index: 0}, toks[0].Start)
	assert.Equal(t, source.Position{Line: 1, Column: 4, Index: 3}, toks[0].End)
	assert.Equal(t, source.Position{Line: 1, Column: 5, Index: 4}, toks[1].Start)
	assert.Equal(t, source.Position{Line: 2, Column: 3, Index: 8}, toks[2].Start)
	assert.Equal(t, source.Position{Line: 2, Column: 5, Index: 10}, toks[2].End)
	assert.Equal(t, source.Position{Line: 2, Column: 6, Index: 11}, toks[3].Start)
	assert.Equal(t, toks[4].Start, toks[4].End)
}
