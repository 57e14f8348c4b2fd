package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/user"
	"strings"

	"monkey/internal/config"
	"monkey/internal/frontend/lexer"
	"monkey/internal/pipeline"

	"github.com/chzyer/readline"
)

// SourceName is the name diagnostics and token positions use for REPL input.
const SourceName = "repl"

const MONKEY_FACE = `            __,__
   .--.  .-"     "-.  .--.
  / .. \/  .-. .-.  \/ .. \
 | |  '|  /   Y   \  |'  | |
 | \   \  \ 0 | 0 /  /   / |
  \ '- ,\.-"""""""-./, -' /
   ''-' /_   ^ ^   _\ '-''
       |  \._   _./  |
       \   \ '~' /   /
        '._ '-=-' _.'
           '-----'
`

// LineReader yields one line of input per call.
// io.EOF and readline.ErrInterrupt end the session.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

// REPL reads lines, parses each one and prints the result.
type REPL struct {
	reader   LineReader
	out      io.Writer
	cfg      *config.Config
	pipeline *pipeline.Pipeline
}

// New creates a REPL reading from reader and writing to out.
func New(reader LineReader, out io.Writer, cfg *config.Config, logger *slog.Logger) *REPL {
	if cfg == nil {
		cfg = config.Default()
	}
	return &REPL{
		reader:   reader,
		out:      out,
		cfg:      cfg,
		pipeline: pipeline.New(logger),
	}
}

// Start runs an interactive session on the terminal until EOF or interrupt.
func Start(ctx context.Context, out io.Writer, cfg *config.Config, logger *slog.Logger) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.Prompt,
		HistoryFile: cfg.HistoryFile,
	})
	if err != nil {
		return fmt.Errorf("start line editor: %w", err)
	}

	return New(rl, out, cfg, logger).Run(ctx)
}

// Run greets the user and evaluates lines until the input ends or ctx is done.
func (r *REPL) Run(ctx context.Context) error {
	defer r.reader.Close()

	if r.cfg.Banner {
		fmt.Fprintln(r.out, Banner(r.cfg.Color))
	}
	fmt.Fprint(r.out, Greeting(currentUsername()))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := r.reader.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		r.Eval(line)
	}
}

// Eval handles one line of input.
func (r *REPL) Eval(line string) {
	if r.cfg.Mode == config.ModeTokens {
		for _, tok := range lexer.New(line).Tokenize() {
			tok.Debug(r.out, SourceName)
		}
		return
	}

	res := r.pipeline.Parse(SourceName, line)
	if res.HasErrors() {
		printParserErrors(r.out, res.Errors())
		return
	}
	fmt.Fprintln(r.out, res.Program.String())
}

func printParserErrors(out io.Writer, errs []string) {
	io.WriteString(out, MONKEY_FACE)
	fmt.Fprintln(out, "Whoops! We ran into some monkey business here! :)")
	for _, msg := range errs {
		fmt.Fprintln(out, msg)
	}
}

// Greeting is the welcome text shown when a session starts.
func Greeting(username string) string {
	var sb strings.Builder
	if username != "" {
		fmt.Fprintf(&sb, "Hey %s! This is the monkey programming language\n", username)
	} else {
		sb.WriteString("Hey there! This is the monkey programming language\n")
	}
	sb.WriteString("Feel free to type in commands!\n")
	return sb.String()
}

func currentUsername() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	return u.Username
}
