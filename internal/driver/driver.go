package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"monkey/internal/config"
	"monkey/internal/frontend/ast"
	"monkey/internal/frontend/lexer"
	"monkey/internal/pipeline"

	"gopkg.in/yaml.v3"
)

// Options for an in-memory run
type Options struct {
	Name   string // source name used in diagnostics
	Code   string
	Mode   string // config.ModeParse or config.ModeTokens
	Format string // config.FormatText, FormatJSON or FormatYAML
}

// Result of a run
type Result struct {
	Success     bool
	Output      string
	Diagnostics string
}

// Run parses (or tokenizes) opts.Code and returns everything as text.
func Run(opts *Options) Result {
	name := opts.Name
	if name == "" {
		name = "main"
	}

	var out bytes.Buffer
	if opts.Mode == config.ModeTokens {
		WriteTokens(&out, name, opts.Code)
		return Result{Success: true, Output: out.String()}
	}

	res := pipeline.Parse(name, opts.Code)
	if res.HasErrors() {
		return Result{Success: false, Diagnostics: res.Diagnostics.EmitAllToString()}
	}

	if err := WriteProgram(&out, res.Program, opts.Format); err != nil {
		return Result{Success: false, Diagnostics: err.Error()}
	}
	return Result{Success: true, Output: out.String()}
}

// WriteProgram writes program in the given format: its rendering for text,
// or its AST dump for json and yaml.
func WriteProgram(w io.Writer, program *ast.Program, format string) error {
	switch format {
	case config.FormatText, "":
		if len(program.Statements) == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w, program.String())
		return err
	case config.FormatJSON:
		data, err := json.MarshalIndent(ast.Dump(program), "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ast.Dump(program)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// WriteTokens writes one line per token of src, ending with EOF.
func WriteTokens(w io.Writer, name, src string) {
	for _, tok := range lexer.New(src).Tokenize() {
		tok.Debug(w, name)
	}
}
