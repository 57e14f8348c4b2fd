package lexer

import (
	"unicode/utf8"

	"monkey/internal/source"
	"monkey/internal/tokens"
)

const eof rune = 0

// Lexer turns source text into tokens on demand.
// It never fails: characters it cannot classify become ILLEGAL tokens.
type Lexer struct {
	input        string
	position     source.Position // position of ch
	readPosition int             // byte offset of the rune after ch
	ch           rune
	width        int
}

func New(input string) *Lexer {
	lex := &Lexer{
		input:    input,
		position: source.Start(),
	}
	lex.decode()
	return lex
}

// Input returns the full source text being scanned.
func (lex *Lexer) Input() string {
	return lex.input
}

// decode loads the rune at the current position without moving.
func (lex *Lexer) decode() {
	if lex.position.Index >= len(lex.input) {
		lex.ch = eof
		lex.width = 0
		lex.readPosition = len(lex.input)
		return
	}
	lex.ch, lex.width = utf8.DecodeRuneInString(lex.input[lex.position.Index:])
	lex.readPosition = lex.position.Index + lex.width
}

func (lex *Lexer) readChar() {
	if lex.atEOF() {
		return
	}
	lex.position.Advance(lex.ch, lex.width)
	lex.decode()
}

func (lex *Lexer) peekChar() rune {
	if lex.readPosition >= len(lex.input) {
		return eof
	}
	ch, _ := utf8.DecodeRuneInString(lex.input[lex.readPosition:])
	return ch
}

func (lex *Lexer) atEOF() bool {
	return lex.position.Index >= len(lex.input)
}

func (lex *Lexer) skipWhitespace() {
	for !lex.atEOF() && isWhitespace(lex.ch) {
		lex.readChar()
	}
}

// NextToken returns the next token and advances past it.
// Once the input is exhausted it keeps returning EOF.
func (lex *Lexer) NextToken() tokens.Token {
	lex.skipWhitespace()

	start := lex.position
	if lex.atEOF() {
		return tokens.NewToken(tokens.EOF_TOKEN, "", start, start)
	}

	switch {
	case isLetter(lex.ch):
		word := lex.readWhile(isLetter)
		return tokens.NewToken(tokens.LookupIdent(word), word, start, lex.position)
	case isDigit(lex.ch):
		digits := lex.readWhile(isDigit)
		return tokens.NewToken(tokens.INT_TOKEN, digits, start, lex.position)
	}

	var kind tokens.TOKEN
	switch lex.ch {
	case '=':
		kind = lex.either('=', tokens.DOUBLE_EQUAL_TOKEN, tokens.EQUALS_TOKEN)
	case '!':
		kind = lex.either('=', tokens.NOT_EQUAL_TOKEN, tokens.NOT_TOKEN)
	case '+':
		kind = tokens.PLUS_TOKEN
	case '-':
		kind = tokens.MINUS_TOKEN
	case '*':
		kind = tokens.MUL_TOKEN
	case '/':
		kind = tokens.DIV_TOKEN
	case '<':
		kind = tokens.LESS_TOKEN
	case '>':
		kind = tokens.GREATER_TOKEN
	case ',':
		kind = tokens.COMMA_TOKEN
	case ';':
		kind = tokens.SEMICOLON_TOKEN
	case '(':
		kind = tokens.OPEN_PAREN
	case ')':
		kind = tokens.CLOSE_PAREN
	case '{':
		kind = tokens.OPEN_CURLY
	case '}':
		kind = tokens.CLOSE_CURLY
	default:
		kind = tokens.ILLEGAL_TOKEN
	}

	lex.readChar()
	return tokens.NewToken(kind, lex.input[start.Index:lex.position.Index], start, lex.position)
}

// either consumes the current character and, if the next one is second, that one too.
// The cursor is left on the last character of the operator.
func (lex *Lexer) either(second rune, double, single tokens.TOKEN) tokens.TOKEN {
	if lex.peekChar() == second {
		lex.readChar()
		return double
	}
	return single
}

func (lex *Lexer) readWhile(accept func(rune) bool) string {
	start := lex.position.Index
	for !lex.atEOF() && accept(lex.ch) {
		lex.readChar()
	}
	return lex.input[start:lex.position.Index]
}

// Tokenize drains the lexer. The returned slice always ends with the EOF token.
func (lex *Lexer) Tokenize() []tokens.Token {
	toks := make([]tokens.Token, 0)
	for {
		tok := lex.NextToken()
		toks = append(toks, tok)
		if tok.Kind == tokens.EOF_TOKEN {
			return toks
		}
	}
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
