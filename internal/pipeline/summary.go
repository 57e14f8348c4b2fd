package pipeline

import (
	"fmt"
	"io"

	"monkey/colors"
	str "monkey/internal/utils/strings"
)

// PrintSummary writes one line per result followed by the totals.
func PrintSummary(w io.Writer, results []*Result) {
	fmt.Fprintln(w)
	colors.CYAN.Fprintln(w, "═══════════════════════════════════════")
	colors.CYAN.Fprintln(w, "           PARSE SUMMARY")
	colors.CYAN.Fprintln(w, "═══════════════════════════════════════")

	failed := 0
	for _, res := range results {
		switch {
		case res.Err != nil:
			failed++
			colors.RED.Fprintf(w, " ✗ %s: %v\n", res.Name, res.Err)
		case res.HasErrors():
			failed++
			colors.RED.Fprintf(w, " ✗ %s (%s)\n", res.Name, str.Count(res.Diagnostics.ErrorCount(), "error", "errors"))
		default:
			colors.GREEN.Fprintf(w, " ✓ %s (%s)\n", res.Name, str.Count(len(res.Program.Statements), "statement", "statements"))
		}
	}

	fmt.Fprintf(w, "\nSources: %d, failed: %d\n", len(results), failed)
}
