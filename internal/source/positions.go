package source

import "fmt"

// Position represents a specific location in the source code with line, column, and index information.
type Position struct {
	Line   int // Line number in the source code, 1-based.
	Column int // Column number in the source code, 1-based, counted in runes.
	Index  int // Byte offset in the source code.
}

// Start returns the position of the first byte of a source text.
func Start() Position {
	return Position{Line: 1, Column: 1, Index: 0}
}

// Advance moves the position past a single rune of the given byte width.
// A newline starts the next line; every other rune, including tabs, takes one column.
func (p *Position) Advance(ch rune, width int) *Position {
	if ch == '\n' {
		p.Line++
		p.Column = 1
	} else {
		p.Column++
	}
	p.Index += width
	return p
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
