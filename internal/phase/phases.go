package phase

// SourcePhase tracks how far an individual source got through the pipeline
//
// Phase progression is sequential:
// - NotStarted -> Loaded -> Parsed
//
// A source that cannot be read stays at NotStarted. A source that parsed
// with errors still reaches Parsed; its diagnostics tell the rest.
type SourcePhase int

const (
	PhaseNotStarted SourcePhase = iota // Source named but not processed
	PhaseLoaded                        // Content read into memory
	PhaseParsed                        // AST built
)

// PhasePrerequisites maps each phase to its required predecessor phase
var PhasePrerequisites = map[SourcePhase]SourcePhase{
	PhaseLoaded: PhaseNotStarted,
	PhaseParsed: PhaseLoaded,
}

// CanAdvance reports whether a source at from may move to to.
func CanAdvance(from, to SourcePhase) bool {
	prev, ok := PhasePrerequisites[to]
	return ok && prev == from
}

func (p SourcePhase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseLoaded:
		return "Loaded"
	case PhaseParsed:
		return "Parsed"
	default:
		return "Unknown"
	}
}
