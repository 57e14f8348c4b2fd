package colors

import "sync/atomic"

// COLOR is an ANSI escape sequence selecting a terminal color.
type COLOR string

const (
	RESET COLOR = "\033[0m"

	RED    COLOR = "\033[31m"
	GREEN  COLOR = "\033[32m"
	YELLOW COLOR = "\033[33m"
	BLUE   COLOR = "\033[34m"
	PURPLE COLOR = "\033[35m"
	CYAN   COLOR = "\033[36m"
	GREY   COLOR = "\033[90m"
	ORANGE COLOR = "\033[38;5;208m"

	BOLD       COLOR = "\033[1m"
	BOLD_RED   COLOR = "\033[1;31m"
	BOLD_BLUE  COLOR = "\033[1;34m"
	BOLD_GREEN COLOR = "\033[1;32m"
)

var enabled atomic.Bool

func init() {
	enabled.Store(true)
}

// SetEnabled turns ANSI output on or off for every COLOR method.
func SetEnabled(on bool) {
	enabled.Store(on)
}

// Enabled reports whether ANSI output is on.
func Enabled() bool {
	return enabled.Load()
}

func (c COLOR) wrap(s string) string {
	if !enabled.Load() {
		return s
	}
	return string(c) + s + string(RESET)
}
