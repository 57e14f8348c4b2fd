package diagnostics

import (
	"fmt"

	"monkey/internal/source"
)

// Common diagnostic builders for the parser

// UnexpectedToken reports a token that does not fit the construct being parsed
func UnexpectedToken(loc *source.Location, expected, got string) *Diagnostic {
	return NewError(fmt.Sprintf("expected next token to be %s, got %s instead", expected, got)).
		WithCode(ErrUnexpectedToken).
		WithPrimaryLabel(loc, "expected "+expected)
}

// UnterminatedBlock reports a block that ran into end of input before its closing brace
func UnterminatedBlock(loc, open *source.Location) *Diagnostic {
	d := NewError("expected next token to be }, got EOF instead").
		WithCode(ErrUnexpectedToken).
		WithPrimaryLabel(loc, "input ends here")
	if open != nil {
		d.WithSecondaryLabel(open, "block opened here")
	}
	return d.WithHelp("add the missing }")
}

// NoPrefixParseFn reports a token that cannot start an expression
func NoPrefixParseFn(loc *source.Location, literal string) *Diagnostic {
	return NewError(fmt.Sprintf("no prefix parse function for %s found", literal)).
		WithCode(ErrNoPrefixParseFn).
		WithPrimaryLabel(loc, "expected an expression")
}

// InvalidInteger reports an integer literal that does not fit in 32 bits
func InvalidInteger(loc *source.Location, literal string) *Diagnostic {
	return NewError(fmt.Sprintf("could not parse %q as integer", literal)).
		WithCode(ErrInvalidIntegerLit).
		WithPrimaryLabel(loc, "not a valid 32-bit integer").
		WithNote("integer literals must be between 0 and 2147483647")
}
