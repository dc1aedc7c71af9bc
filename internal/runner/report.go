package runner

import (
	"fmt"
	"strings"
)

// FormatReport renders one invocation outcome into the report returned
// to the caller. Section order and labels are stable; clients and tests
// match on them verbatim.
func FormatReport(target string, outcome Outcome) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Test Results for: %s\n\n", target)
	fmt.Fprintf(&b, "Exit Code: %d\n\n", outcome.ExitCode)
	fmt.Fprintf(&b, "Standard Output:\n%s\n\n", outcome.Stdout)
	fmt.Fprintf(&b, "Standard Error:\n%s\n", outcome.Stderr)
	return b.String()
}
