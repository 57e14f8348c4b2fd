package source

import (
	"fmt"
	"strings"
)

// Location represents a span of source code with start and end positions.
// End is exclusive.
type Location struct {
	Start    Position
	End      Position
	Filename string
}

// NewLocation creates a new Location with the given start and end positions
func NewLocation(filename string, start, end Position) *Location {
	return &Location{
		Filename: filename,
		Start:    start,
		End:      end,
	}
}

// Contains checks if the given position is within this location
func (l *Location) Contains(pos Position) bool {
	return pos.Index >= l.Start.Index && pos.Index < l.End.Index
}

func (l *Location) String() string {
	if l.Filename == "" {
		return fmt.Sprintf("location(%d:%d - %d:%d)", l.Start.Line, l.Start.Column, l.End.Line, l.End.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.Filename, l.Start.Line, l.Start.Column)
}

// Text extracts the text covered by this location from src.
// Returns empty string if the location does not fit inside src.
func (l *Location) Text(src string) string {
	if l.Start.Index < 0 || l.End.Index > len(src) || l.Start.Index > l.End.Index {
		return ""
	}
	return src[l.Start.Index:l.End.Index]
}

// Lines splits source text into lines without their terminators.
// A trailing newline does not produce an extra empty line.
func Lines(src string) []string {
	if src == "" {
		return []string{}
	}
	lines := strings.Split(src, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
