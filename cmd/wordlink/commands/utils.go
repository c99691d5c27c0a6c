// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: State labels, truncation, validation and the warning summary
package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/harper/wordlink/internal/diag"
)

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// stateLabel makes the empty row state visible in tables
func stateLabel(state string) string {
	if state == "" {
		return "(empty)"
	}
	return state
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}

// printWarningSummary writes one line per warning kind, sorted by kind
func printWarningSummary(w io.Writer, c *diag.Collector) {
	summary := c.Summary()
	if len(summary) == 0 {
		return
	}
	kinds := make([]string, 0, len(summary))
	for k := range summary {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)

	fmt.Fprintf(w, "\nWarnings:\n")
	for _, k := range kinds {
		fmt.Fprintf(w, "  %s: %d\n", k, summary[diag.Kind(k)])
	}
}
