package diagnostics

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"monkey/colors"
)

const (
	parseFailedMsg          = "\nParsing failed with %d error(s)"
	andWarningMsg           = " and %d warning(s)"
	parseSuccessWithWarning = "\nParsing succeeded with %d warning(s)\n"
)

// DiagnosticBag collects diagnostics while a source is lexed and parsed
type DiagnosticBag struct {
	filepath    string
	diagnostics []*Diagnostic
	mu          sync.Mutex
	errorCount  int
	warnCount   int
	sourceCache *SourceCache
}

// NewDiagnosticBag creates a new diagnostic bag for a named source
func NewDiagnosticBag(filepath string) *DiagnosticBag {
	return &DiagnosticBag{
		filepath:    filepath,
		diagnostics: make([]*Diagnostic, 0),
		sourceCache: NewSourceCache(),
	}
}

// FilePath is the source name diagnostics in this bag point at.
func (db *DiagnosticBag) FilePath() string {
	return db.filepath
}

// AddSourceContent registers in-memory source text so excerpts can be rendered
func (db *DiagnosticBag) AddSourceContent(filepath, content string) {
	db.sourceCache.AddSource(filepath, content)
}

// Add adds a diagnostic to the bag
func (db *DiagnosticBag) Add(diag *Diagnostic) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if diag.FilePath == "" {
		diag.FilePath = db.filepath
	}
	db.diagnostics = append(db.diagnostics, diag)

	switch diag.Severity {
	case Error:
		db.errorCount++
	case Warning:
		db.warnCount++
	}
}

// HasErrors returns true if there are any errors
func (db *DiagnosticBag) HasErrors() bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount > 0
}

// ErrorCount returns the number of errors
func (db *DiagnosticBag) ErrorCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount
}

// WarningCount returns the number of warnings
func (db *DiagnosticBag) WarningCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.warnCount
}

// Diagnostics returns a copy of all diagnostics (thread-safe)
func (db *DiagnosticBag) Diagnostics() []*Diagnostic {
	db.mu.Lock()
	defer db.mu.Unlock()
	result := make([]*Diagnostic, len(db.diagnostics))
	copy(result, db.diagnostics)
	return result
}

// Messages returns the plain error messages in the order they were added.
func (db *DiagnosticBag) Messages() []string {
	db.mu.Lock()
	defer db.mu.Unlock()
	msgs := make([]string, 0, db.errorCount)
	for _, d := range db.diagnostics {
		if d.Severity == Error {
			msgs = append(msgs, d.Message)
		}
	}
	return msgs
}

// Emit renders every diagnostic followed by a summary line
func (db *DiagnosticBag) Emit(w io.Writer) {
	emitter := &Emitter{
		cache:  db.sourceCache,
		writer: w,
	}

	// copy diagnostics to avoid holding lock during emit
	diagnostics := db.Diagnostics()
	for _, diag := range diagnostics {
		emitter.Emit(diag)
	}

	db.printSummary(w)
}

// EmitAllToString emits all diagnostics to a string with ANSI codes
func (db *DiagnosticBag) EmitAllToString() string {
	var buf bytes.Buffer
	db.Emit(&buf)
	return buf.String()
}

func (db *DiagnosticBag) printSummary(w io.Writer) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.errorCount > 0 {
		colors.RED.Fprintf(w, parseFailedMsg, db.errorCount)
		if db.warnCount > 0 {
			colors.RED.Fprintf(w, andWarningMsg, db.warnCount)
		}
		fmt.Fprintln(w)
	} else if db.warnCount > 0 {
		colors.ORANGE.Fprintf(w, parseSuccessWithWarning, db.warnCount)
	}
}

// Clear removes all diagnostics
func (db *DiagnosticBag) Clear() {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.diagnostics = make([]*Diagnostic, 0)
	db.errorCount = 0
	db.warnCount = 0
}
