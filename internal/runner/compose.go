package runner

import (
	"strconv"
	"strings"
)

// formatArgs selects rspec's progress output so the captured text has a
// machine-stable shape across runner versions.
var formatArgs = []string{"--format", "progress"}

// CommandSpec is the configured base command for the test runner. It is
// built once at startup and shared read-only by every invocation.
type CommandSpec struct {
	Executable string
	BaseArgs   []string
}

// Argument renders the positional argument handed to the runner: the
// file alone, or file:37:87 when line selectors are present.
func (t Target) Argument() string {
	if len(t.Lines) == 0 {
		return t.File
	}
	parts := make([]string, 0, len(t.Lines)+1)
	parts = append(parts, t.File)
	for _, n := range t.Lines {
		parts = append(parts, strconv.Itoa(n))
	}
	return strings.Join(parts, ":")
}

// Compose builds the full argument vector for one invocation: the
// configured base arguments, the fixed format flags, then the target as
// a single positional argument. The spec is never mutated.
func Compose(spec CommandSpec, target Target) []string {
	args := make([]string, 0, len(spec.BaseArgs)+len(formatArgs)+1)
	args = append(args, spec.BaseArgs...)
	args = append(args, formatArgs...)
	args = append(args, target.Argument())
	return args
}
