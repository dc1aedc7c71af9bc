// Package runner implements the test invocation engine: validating a
// caller-supplied test file target, composing the runner's argument
// vector, executing the runner as a child process, and formatting the
// captured outcome into a report.
package runner

import (
	"context"

	"github.com/google/uuid"

	"rspecmcp/pkg/logging"
)

// Engine runs one test invocation end to end: validate the target,
// compose the argument vector, execute the runner, format the report.
// An Engine is safe for concurrent use; each invocation owns its own
// child process and shares only the read-only command spec.
type Engine struct {
	spec CommandSpec
	exec Executor
}

// NewEngine creates an engine for the given base command and execution
// capability.
func NewEngine(spec CommandSpec, exec Executor) *Engine {
	return &Engine{spec: spec, exec: exec}
}

// Run executes the test file named by file, optionally narrowed to the
// given line numbers. A failing test run is a successful Run: the
// non-zero exit code is part of the report. Run only returns an error
// when the input is invalid or the runner could not be started.
func (e *Engine) Run(ctx context.Context, file string, lines []int) (string, error) {
	target, err := NewTarget(file, lines)
	if err != nil {
		return "", err
	}

	args := Compose(e.spec, target)
	id := uuid.NewString()
	logging.Debug("Runner", "[%s] executing %s %v", id, e.spec.Executable, args)

	outcome, err := e.exec.Execute(ctx, e.spec.Executable, args)
	if err != nil {
		logging.Error("Runner", err, "[%s] runner could not be started", id)
		return "", err
	}
	logging.Debug("Runner", "[%s] runner exited with code %d", id, outcome.ExitCode)

	return FormatReport(target.Argument(), outcome), nil
}
