package runner

import (
	"fmt"
	"strings"
)

// specSuffix is the only file naming convention run_test accepts.
const specSuffix = "_spec.rb"

// Target is a validated test file plus optional line selectors. The
// file path is kept exactly as the caller wrote it, including a leading
// "./", so the composed argument matches the caller's working tree.
type Target struct {
	File  string
	Lines []int
}

// NewTarget validates a caller-supplied file path and line numbers.
// Rules are applied in order and the first failure wins. This is the
// security boundary in front of the spawned runner: it rejects path
// traversal and control characters before they can reach the child
// process argument vector.
func NewTarget(file string, lines []int) (Target, error) {
	if file == "" {
		return Target{}, &ValidationError{Kind: KindEmptyPath, Message: "file path cannot be empty"}
	}
	if strings.ContainsAny(file, "\x00\n") {
		return Target{}, &ValidationError{Kind: KindIllegalChars, Message: "file path contains illegal characters"}
	}
	if strings.Contains(file, "../") {
		return Target{}, &ValidationError{Kind: KindPathTraversal, Message: "file path must not contain path traversal"}
	}

	name := strings.TrimPrefix(file, "./")
	if !strings.HasSuffix(name, specSuffix) {
		return Target{}, &ValidationError{Kind: KindBadExtension, Message: fmt.Sprintf("file path must end with %s", specSuffix)}
	}
	if name == specSuffix {
		return Target{}, &ValidationError{Kind: KindMalformedName, Message: fmt.Sprintf("file path must have a name before %s", specSuffix)}
	}

	for _, n := range lines {
		if n <= 0 {
			return Target{}, &ValidationError{Kind: KindNonPositiveLine, Message: fmt.Sprintf("line numbers must be positive, got %d", n)}
		}
	}

	return Target{File: file, Lines: lines}, nil
}
