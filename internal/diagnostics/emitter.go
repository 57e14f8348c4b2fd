package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strings"

	"monkey/colors"
	"monkey/internal/source"
)

const (
	STR_MULTIPLIER = "%*d | "
	LINE_POS       = "%s--> %s:%d:%d\n"
)

// SourceCache caches source contents for error reporting
type SourceCache struct {
	files map[string][]string
}

func NewSourceCache() *SourceCache {
	return &SourceCache{
		files: make(map[string][]string),
	}
}

// AddSource registers in-memory content for a source name
func (sc *SourceCache) AddSource(filepath, content string) {
	sc.files[filepath] = source.Lines(content)
}

// GetLine retrieves a specific line from a source, reading the file on first use
// when no in-memory content was registered
func (sc *SourceCache) GetLine(filepath string, line int) (string, error) {
	lines, ok := sc.files[filepath]
	if !ok {
		data, err := os.ReadFile(filepath)
		if err != nil {
			return "", err
		}
		lines = source.Lines(string(data))
		sc.files[filepath] = lines
	}

	if line > 0 && line <= len(lines) {
		return lines[line-1], nil
	}
	// end of input sits one past the last line
	if line == len(lines)+1 {
		return "", nil
	}
	return "", fmt.Errorf("line %d out of range", line)
}

// Emitter handles the rendering and output of diagnostics
type Emitter struct {
	cache       *SourceCache
	writer      io.Writer
	highlighter *SyntaxHighlighter
	gutterWidth int // line number width for the current diagnostic
}

// NewEmitter creates an emitter that writes to a specific writer
func NewEmitter(w io.Writer, cache *SourceCache) *Emitter {
	if cache == nil {
		cache = NewSourceCache()
	}
	return &Emitter{
		cache:  cache,
		writer: w,
	}
}

func (e *Emitter) syntax() *SyntaxHighlighter {
	if e.highlighter == nil {
		e.highlighter = NewSyntaxHighlighter(colors.Enabled())
	}
	return e.highlighter
}

func (e *Emitter) lineNumWidth(diag *Diagnostic) int {
	maxLine := 1
	for _, label := range diag.Labels {
		if label.Location != nil && label.Location.Start.Line > maxLine {
			maxLine = label.Location.Start.Line
		}
	}
	return len(fmt.Sprintf("%d", maxLine))
}

// Emit renders one diagnostic
func (e *Emitter) Emit(diag *Diagnostic) {
	e.gutterWidth = e.lineNumWidth(diag)

	e.printHeader(diag)

	if primary := diag.Primary(); primary != nil && primary.Location != nil {
		loc := primary.Location
		colors.BLUE.Fprintf(e.writer, LINE_POS, strings.Repeat(" ", e.gutterWidth), e.filename(diag, loc), loc.Start.Line, loc.Start.Column)
		e.printEmptyGutter()
		fmt.Fprintln(e.writer)
	}

	for _, label := range diag.Labels {
		if label.Style == Secondary {
			continue
		}
		e.printLabel(diag, label)
	}
	for _, label := range diag.Labels {
		if label.Style == Secondary {
			e.printLabel(diag, label)
		}
	}

	for _, note := range diag.Notes {
		e.printNote(note)
	}

	if diag.Help != "" {
		e.printHelp(diag.Help)
	}

	fmt.Fprintln(e.writer)
}

func (e *Emitter) filename(diag *Diagnostic, loc *source.Location) string {
	if loc.Filename != "" {
		return loc.Filename
	}
	return diag.FilePath
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	color := severityColor(diag.Severity)
	if diag.Code != "" {
		color.Fprintf(e.writer, "%s[%s]", diag.Severity, diag.Code)
	} else {
		color.Fprint(e.writer, diag.Severity.String())
	}
	colors.BOLD.Fprintf(e.writer, ": %s\n", diag.Message)
}

func severityColor(s Severity) colors.COLOR {
	switch s {
	case Error:
		return colors.BOLD_RED
	case Warning:
		return colors.ORANGE
	case Info:
		return colors.BOLD_BLUE
	default:
		return colors.BOLD_GREEN
	}
}

func (e *Emitter) printEmptyGutter() {
	colors.BLUE.Fprintf(e.writer, "%s |", strings.Repeat(" ", e.gutterWidth))
}

func (e *Emitter) printLabel(diag *Diagnostic, label Label) {
	loc := label.Location
	if loc == nil {
		return
	}

	line, err := e.cache.GetLine(e.filename(diag, loc), loc.Start.Line)
	if err != nil {
		return
	}

	colors.BLUE.Fprintf(e.writer, STR_MULTIPLIER, e.gutterWidth, loc.Start.Line)
	e.syntax().HighlightWithColor(line, e.writer)
	fmt.Fprintln(e.writer)

	marker, color := "^", severityColor(diag.Severity)
	if label.Style == Secondary {
		marker, color = "-", colors.BLUE
	}

	e.printEmptyGutter()
	fmt.Fprint(e.writer, " ", underlinePadding(line, loc.Start.Column))
	color.Fprint(e.writer, strings.Repeat(marker, underlineWidth(loc)))
	if label.Message != "" {
		color.Fprint(e.writer, " "+label.Message)
	}
	fmt.Fprintln(e.writer)
}

// underlinePadding reproduces the whitespace before column so tabs line up.
func underlinePadding(line string, column int) string {
	var sb strings.Builder
	col := 1
	for _, r := range line {
		if col >= column {
			break
		}
		if r == '\t' {
			sb.WriteRune('\t')
		} else {
			sb.WriteRune(' ')
		}
		col++
	}
	for ; col < column; col++ {
		sb.WriteRune(' ')
	}
	return sb.String()
}

func underlineWidth(loc *source.Location) int {
	if loc.End.Line != loc.Start.Line || loc.End.Column <= loc.Start.Column {
		return 1
	}
	return loc.End.Column - loc.Start.Column
}

func (e *Emitter) printNote(note Note) {
	e.printEmptyGutter()
	fmt.Fprintln(e.writer)
	colors.BLUE.Fprintf(e.writer, "%s = ", strings.Repeat(" ", e.gutterWidth))
	colors.BOLD.Fprint(e.writer, "note")
	fmt.Fprintf(e.writer, ": %s\n", note.Message)
}

func (e *Emitter) printHelp(help string) {
	colors.BLUE.Fprintf(e.writer, "%s = ", strings.Repeat(" ", e.gutterWidth))
	colors.BOLD_GREEN.Fprint(e.writer, "help")
	fmt.Fprintf(e.writer, ": %s\n", help)
}
