package pipeline

import (
	"monkey/internal/frontend/lexer"
	"monkey/internal/frontend/parser"
	"monkey/internal/phase"

	"github.com/google/uuid"
)

// Parse runs the lexer and parser over an in-memory source.
func (p *Pipeline) Parse(name, src string) *Result {
	res := &Result{ID: uuid.New(), Name: name, Phase: phase.PhaseNotStarted}
	p.run(res, src)
	return res
}

// run parses src into res, advancing its phase as it goes.
func (p *Pipeline) run(res *Result, src string) {
	res.Source = src
	p.advance(res, phase.PhaseLoaded)

	ps := parser.NewNamed(res.Name, lexer.New(src))
	res.Program = ps.ParseProgram()
	res.Diagnostics = ps.Diagnostics()
	p.advance(res, phase.PhaseParsed)

	p.logger.Debug("parse finished",
		"run", res.ID,
		"source", res.Name,
		"statements", len(res.Program.Statements),
		"errors", res.Diagnostics.ErrorCount(),
	)
}

func (p *Pipeline) advance(res *Result, to phase.SourcePhase) {
	if !phase.CanAdvance(res.Phase, to) {
		p.logger.Error("invalid phase transition", "source", res.Name, "from", res.Phase, "to", to)
		return
	}
	res.Phase = to
}
