package runner

import "fmt"

// ValidationKind identifies which validation rule rejected the input.
type ValidationKind string

const (
	KindEmptyPath       ValidationKind = "empty_path"
	KindIllegalChars    ValidationKind = "illegal_characters"
	KindPathTraversal   ValidationKind = "path_traversal"
	KindBadExtension    ValidationKind = "bad_extension"
	KindMalformedName   ValidationKind = "malformed_name"
	KindNonPositiveLine ValidationKind = "non_positive_line_number"
)

// ValidationError reports invalid caller input. It is surfaced to the
// caller as a rejected invocation; no process is spawned for it.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SpawnError reports that the runner command could not be started at
// all, e.g. the binary is missing from PATH or is not executable. It is
// distinct from a failing test run: a non-zero exit code from a runner
// that did start is normal data, not an error.
type SpawnError struct {
	Executable string
	Err        error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to execute %s: %v", e.Executable, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}
