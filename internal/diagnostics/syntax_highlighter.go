package diagnostics

import (
	"io"
	"strings"

	"monkey/colors"
	"monkey/internal/frontend/lexer"
	"monkey/internal/tokens"
)

// SyntaxHighlighter colors Monkey source lines in diagnostic excerpts
type SyntaxHighlighter struct {
	enabled bool
}

// NewSyntaxHighlighter creates a new syntax highlighter
func NewSyntaxHighlighter(enabled bool) *SyntaxHighlighter {
	return &SyntaxHighlighter{enabled: enabled}
}

// Enable turns on syntax highlighting
func (sh *SyntaxHighlighter) Enable() {
	sh.enabled = true
}

// Disable turns off syntax highlighting
func (sh *SyntaxHighlighter) Disable() {
	sh.enabled = false
}

// IsEnabled returns whether syntax highlighting is enabled
func (sh *SyntaxHighlighter) IsEnabled() bool {
	return sh.enabled
}

// Span is a piece of a highlighted line with the color it is printed in.
// An empty Color means the text is printed as is.
type Span struct {
	Text  string
	Color colors.COLOR
}

func tokenColor(kind tokens.TOKEN) colors.COLOR {
	switch {
	case kind == tokens.INT_TOKEN:
		return colors.YELLOW
	case kind == tokens.ILLEGAL_TOKEN:
		return colors.RED
	case kind == tokens.TRUE_TOKEN || kind == tokens.FALSE_TOKEN:
		return colors.ORANGE
	case tokens.IsKeyword(string(kind)):
		return colors.PURPLE
	default:
		return ""
	}
}

// Highlight splits a line into spans using the lexer, so the coloring always
// agrees with how the parser sees the line. The spans concatenate back to line.
func (sh *SyntaxHighlighter) Highlight(line string) []Span {
	if !sh.enabled {
		return []Span{{Text: line}}
	}

	var spans []Span
	last := 0
	for _, tok := range lexer.New(line).Tokenize() {
		if tok.Is(tokens.EOF_TOKEN) {
			break
		}
		if tok.Start.Index > last {
			spans = append(spans, Span{Text: line[last:tok.Start.Index]})
		}
		spans = append(spans, Span{Text: line[tok.Start.Index:tok.End.Index], Color: tokenColor(tok.Kind)})
		last = tok.End.Index
	}
	if last < len(line) {
		spans = append(spans, Span{Text: line[last:]})
	}
	return spans
}

// HighlightLine returns a highlighted line as a string ready for printing
func (sh *SyntaxHighlighter) HighlightLine(line string) string {
	var result strings.Builder
	sh.HighlightWithColor(line, &result)
	return result.String()
}

// HighlightWithColor writes the highlighted line to writer
func (sh *SyntaxHighlighter) HighlightWithColor(line string, writer io.Writer) {
	for _, span := range sh.Highlight(line) {
		if span.Color == "" {
			io.WriteString(writer, span.Text)
			continue
		}
		span.Color.Fprint(writer, span.Text)
	}
}
