package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"monkey/internal/diagnostics"
	"monkey/internal/frontend/ast"
	"monkey/internal/phase"

	"github.com/google/uuid"
)

// Result is everything one parse run produced for a single source.
type Result struct {
	ID          uuid.UUID
	Name        string
	Source      string
	Program     *ast.Program
	Diagnostics *diagnostics.DiagnosticBag
	Phase       phase.SourcePhase
	Err         error // set when the source could not be loaded
}

// HasErrors reports whether the source failed to load or parsed with errors.
func (r *Result) HasErrors() bool {
	return r.Err != nil || (r.Diagnostics != nil && r.Diagnostics.HasErrors())
}

// Errors returns the parse error messages of this result.
func (r *Result) Errors() []string {
	if r.Diagnostics == nil {
		return nil
	}
	return r.Diagnostics.Messages()
}

// Pipeline coordinates loading and parsing of sources
type Pipeline struct {
	logger *slog.Logger
}

// New creates a pipeline logging to logger; nil means slog.Default().
func New(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{logger: logger}
}

// Parse runs the lexer and parser over an in-memory source.
func Parse(name, src string) *Result {
	return New(nil).Parse(name, src)
}

// ParseAll reads and parses files concurrently. Results come back in the order
// of files; a path named twice is parsed once and shares its result.
// The returned error joins every load failure and the context error, if any.
func (p *Pipeline) ParseAll(ctx context.Context, files []string) ([]*Result, error) {
	var (
		// seen ensures each path is scheduled exactly once
		seen sync.Map // map[string]*Result
		wg   sync.WaitGroup
	)

	results := make([]*Result, len(files))
	scheduled := make([]*Result, 0, len(files))
	for i, path := range files {
		res := &Result{ID: uuid.New(), Name: path, Phase: phase.PhaseNotStarted}
		if existing, loaded := seen.LoadOrStore(path, res); loaded {
			results[i] = existing.(*Result)
			continue
		}
		results[i] = res
		scheduled = append(scheduled, res)

		wg.Add(1)
		go func() {
			defer wg.Done()
			p.parseFile(ctx, res)
		}()
	}

	wg.Wait()

	var errs []error
	for _, res := range scheduled {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}
	return results, errors.Join(errs...)
}

// parseFile loads res.Name from disk and parses it into res.
func (p *Pipeline) parseFile(ctx context.Context, res *Result) {
	if err := ctx.Err(); err != nil {
		res.Err = fmt.Errorf("skipped %s: %w", res.Name, err)
		return
	}

	content, err := os.ReadFile(res.Name)
	if err != nil {
		res.Err = fmt.Errorf("cannot read file %s: %w", res.Name, err)
		p.logger.Warn("load failed", "run", res.ID, "source", res.Name, "error", err)
		return
	}

	p.run(res, string(content))
}
