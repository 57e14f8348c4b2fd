package tokens

import (
	"fmt"
	"io"

	"monkey/colors"
	"monkey/internal/source"
)

type TOKEN string

const (
	ILLEGAL_TOKEN TOKEN = "illegal"
	EOF_TOKEN     TOKEN = "end_of_file"

	//payload carrying
	IDENTIFIER_TOKEN TOKEN = "identifier"
	INT_TOKEN        TOKEN = "integer literal"

	//keywords
	LET_TOKEN      TOKEN = "let"
	FUNCTION_TOKEN TOKEN = "fn"
	TRUE_TOKEN     TOKEN = "true"
	FALSE_TOKEN    TOKEN = "false"
	IF_TOKEN       TOKEN = "if"
	ELSE_TOKEN     TOKEN = "else"
	RETURN_TOKEN   TOKEN = "return"

	//assignment
	EQUALS_TOKEN TOKEN = "="
	//unary operators
	NOT_TOKEN TOKEN = "!"
	//arithmetic operators
	PLUS_TOKEN  TOKEN = "+"
	MINUS_TOKEN TOKEN = "-"
	MUL_TOKEN   TOKEN = "*"
	DIV_TOKEN   TOKEN = "/"
	//comparison operators
	LESS_TOKEN         TOKEN = "<"
	GREATER_TOKEN      TOKEN = ">"
	DOUBLE_EQUAL_TOKEN TOKEN = "=="
	NOT_EQUAL_TOKEN    TOKEN = "!="
	//delimiters
	COMMA_TOKEN     TOKEN = ","
	SEMICOLON_TOKEN TOKEN = ";"
	OPEN_PAREN      TOKEN = "("
	CLOSE_PAREN     TOKEN = ")"
	OPEN_CURLY      TOKEN = "{"
	CLOSE_CURLY     TOKEN = "}"
)

var keyWordsMap = map[string]TOKEN{
	"fn":     FUNCTION_TOKEN,
	"let":    LET_TOKEN,
	"true":   TRUE_TOKEN,
	"false":  FALSE_TOKEN,
	"if":     IF_TOKEN,
	"else":   ELSE_TOKEN,
	"return": RETURN_TOKEN,
}

func IsKeyword(word string) bool {
	_, ok := keyWordsMap[word]
	return ok
}

// LookupIdent returns the keyword kind for word, or IDENTIFIER_TOKEN when word is not reserved.
func LookupIdent(word string) TOKEN {
	if kind, ok := keyWordsMap[word]; ok {
		return kind
	}
	return IDENTIFIER_TOKEN
}

// HasPayload reports whether tokens of this kind carry their own text.
func (k TOKEN) HasPayload() bool {
	return k == IDENTIFIER_TOKEN || k == INT_TOKEN || k == ILLEGAL_TOKEN
}

// Literal is the canonical text for a kind without a payload.
// Payload kinds have no fixed text, so their descriptive name is returned.
func (k TOKEN) Literal() string {
	if k == EOF_TOKEN {
		return "EOF"
	}
	return string(k)
}

type Token struct {
	Kind  TOKEN
	Value string
	Start source.Position
	End   source.Position
}

// Literal returns the text this token stands for: the source text for identifiers,
// integers and illegal characters, the fixed spelling for everything else.
func (t Token) Literal() string {
	if t.Kind.HasPayload() {
		return t.Value
	}
	return t.Kind.Literal()
}

// Same compares kind and payload, ignoring where the tokens were found.
func (t Token) Same(other Token) bool {
	return t.Kind == other.Kind && t.Literal() == other.Literal()
}

// Is reports whether the token has the given kind.
func (t Token) Is(kind TOKEN) bool {
	return t.Kind == kind
}

func (t Token) String() string {
	if t.Kind.HasPayload() {
		return fmt.Sprintf("%s(%s)", t.Kind, t.Value)
	}
	return t.Kind.Literal()
}

// Location returns the span this token covers in the named source.
func (t Token) Location(filename string) *source.Location {
	return source.NewLocation(filename, t.Start, t.End)
}

func (t Token) Debug(w io.Writer, filename string) {
	colors.GREY.Fprintf(w, "%s:%d:%d ", filename, t.Start.Line, t.Start.Column)
	if t.Kind.HasPayload() {
		fmt.Fprintf(w, "%q ('%v')\n", t.Value, t.Kind)
	} else {
		fmt.Fprintf(w, "%q\n", t.Literal())
	}
}

func NewToken(kind TOKEN, value string, start source.Position, end source.Position) Token {
	return Token{
		Kind:  kind,
		Value: value,
		Start: start,
		End:   end,
	}
}
