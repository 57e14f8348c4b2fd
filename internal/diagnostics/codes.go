package diagnostics

// Error codes reported by the front-end
const (
	// Parser errors (P prefix)
	ErrUnexpectedToken   = "P0001"
	ErrNoPrefixParseFn   = "P0002"
	ErrInvalidIntegerLit = "P0003"
)
