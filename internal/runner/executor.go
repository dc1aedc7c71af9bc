package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// Outcome is what a finished runner process produced. ExitCode is -1
// when the process was terminated by a signal instead of exiting.
type Outcome struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Executor is the capability to run the test runner as a child process.
// It is an interface so tests can substitute canned outcomes without
// spawning anything.
type Executor interface {
	Execute(ctx context.Context, executable string, args []string) (Outcome, error)
}

// ExecExecutor runs commands with os/exec. Arguments are passed as a
// vector, never through a shell, and the child gets no stdin.
// Cancelling ctx kills the child process.
type ExecExecutor struct{}

// NewExecExecutor returns an Executor backed by real subprocesses.
func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{}
}

func (e *ExecExecutor) Execute(ctx context.Context, executable string, args []string) (Outcome, error) {
	cmd := exec.CommandContext(ctx, executable, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Outcome{}, &SpawnError{Executable: executable, Err: err}
		}
		// Non-zero exit or signal: the process ran, so this is a
		// result, not an error.
	}

	// ProcessState.ExitCode() is -1 when the process was signaled,
	// which doubles as the sentinel for abnormal termination.
	return Outcome{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   lossyString(stdout.Bytes()),
		Stderr:   lossyString(stderr.Bytes()),
	}, nil
}

// lossyString decodes bytes as UTF-8, replacing invalid sequences so a
// runner that emits non-text bytes cannot fail the invocation.
func lossyString(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}

// StaticExecutor returns the same canned outcome for every call and
// records the argument vectors it was given. It is the test double for
// Executor.
type StaticExecutor struct {
	Outcome Outcome
	Err     error

	// Calls holds one entry per Execute call: the executable followed
	// by its arguments.
	Calls [][]string
}

func (s *StaticExecutor) Execute(ctx context.Context, executable string, args []string) (Outcome, error) {
	call := append([]string{executable}, args...)
	s.Calls = append(s.Calls, call)
	if s.Err != nil {
		return Outcome{}, s.Err
	}
	return s.Outcome, nil
}
