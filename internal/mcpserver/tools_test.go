package mcpserver

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rspecmcp/internal/runner"
)

func newCallToolRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: struct {
			Name      string    `json:"name"`
			Arguments any       `json:"arguments,omitempty"`
			Meta      *mcp.Meta `json:"_meta,omitempty"`
		}{
			Name:      name,
			Arguments: args,
		},
	}
}

func newTestServer(exec runner.Executor) *Server {
	spec := runner.CommandSpec{Executable: "bundle", BaseArgs: []string{"exec", "rspec"}}
	return New(Config{}, runner.NewEngine(spec, exec))
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent")
	return text.Text
}

func TestRunTestToolDefinition(t *testing.T) {
	tool := runTestTool()

	assert.Equal(t, "run_test", tool.Name)
	assert.NotEmpty(t, tool.Description)
	assert.Contains(t, tool.InputSchema.Properties, "file")
	assert.Contains(t, tool.InputSchema.Properties, "line_numbers")
	assert.Equal(t, []string{"file"}, tool.InputSchema.Required)
}

func TestHandleRunTestSuccess(t *testing.T) {
	exec := &runner.StaticExecutor{Outcome: runner.Outcome{ExitCode: 0, Stdout: "3 examples, 0 failures"}}
	s := newTestServer(exec)

	result, err := s.handleRunTest(context.Background(), newCallToolRequest("run_test", map[string]any{
		"file": "spec/models/user_spec.rb",
	}))

	require.NoError(t, err)
	assert.False(t, result.IsError)
	text := resultText(t, result)
	assert.Contains(t, text, "Exit Code: 0")
	assert.Contains(t, text, "3 examples, 0 failures")
}

func TestHandleRunTestFailingRunIsStillAResult(t *testing.T) {
	exec := &runner.StaticExecutor{Outcome: runner.Outcome{ExitCode: 1, Stderr: "boom"}}
	s := newTestServer(exec)

	result, err := s.handleRunTest(context.Background(), newCallToolRequest("run_test", map[string]any{
		"file": "spec/models/user_spec.rb",
	}))

	require.NoError(t, err)
	assert.False(t, result.IsError, "a non-zero exit code is a result, not a tool error")
	text := resultText(t, result)
	assert.Contains(t, text, "Exit Code: 1")
	assert.Contains(t, text, "boom")
}

func TestHandleRunTestLineNumbers(t *testing.T) {
	exec := &runner.StaticExecutor{Outcome: runner.Outcome{ExitCode: 0}}
	s := newTestServer(exec)

	// JSON numbers decode as float64.
	result, err := s.handleRunTest(context.Background(), newCallToolRequest("run_test", map[string]any{
		"file":         "spec/models/user_spec.rb",
		"line_numbers": []any{float64(37), float64(87)},
	}))

	require.NoError(t, err)
	assert.False(t, result.IsError)
	require.Len(t, exec.Calls, 1)
	assert.Equal(t,
		[]string{"bundle", "exec", "rspec", "--format", "progress", "spec/models/user_spec.rb:37:87"},
		exec.Calls[0])
}

func TestHandleRunTestValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]any
		wantMsg string
	}{
		{
			name:    "missing file",
			args:    map[string]any{},
			wantMsg: "file parameter is required",
		},
		{
			name:    "wrong extension",
			args:    map[string]any{"file": "spec/models/user.rb"},
			wantMsg: "_spec.rb",
		},
		{
			name:    "path traversal",
			args:    map[string]any{"file": "../../etc/passwd_spec.rb"},
			wantMsg: "traversal",
		},
		{
			name:    "non-positive line number",
			args:    map[string]any{"file": "spec/x_spec.rb", "line_numbers": []any{float64(-1)}},
			wantMsg: "positive",
		},
		{
			name:    "fractional line number",
			args:    map[string]any{"file": "spec/x_spec.rb", "line_numbers": []any{1.5}},
			wantMsg: "integer",
		},
		{
			name:    "line_numbers not an array",
			args:    map[string]any{"file": "spec/x_spec.rb", "line_numbers": "12"},
			wantMsg: "array",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &runner.StaticExecutor{}
			s := newTestServer(exec)

			result, err := s.handleRunTest(context.Background(), newCallToolRequest("run_test", tt.args))

			// Caller faults are tool error results, not transport errors.
			require.NoError(t, err)
			assert.True(t, result.IsError)
			assert.Contains(t, resultText(t, result), tt.wantMsg)
			assert.Empty(t, exec.Calls, "no process may be spawned for invalid input")
		})
	}
}

func TestHandleRunTestSpawnErrorIsInternal(t *testing.T) {
	exec := &runner.StaticExecutor{Err: &runner.SpawnError{
		Executable: "bundle",
		Err:        errors.New("executable file not found in $PATH"),
	}}
	s := newTestServer(exec)

	result, err := s.handleRunTest(context.Background(), newCallToolRequest("run_test", map[string]any{
		"file": "spec/models/user_spec.rb",
	}))

	require.Error(t, err)
	assert.Nil(t, result)

	var spawnErr *runner.SpawnError
	assert.ErrorAs(t, err, &spawnErr)
}

func TestParseLineNumbers(t *testing.T) {
	lines, err := parseLineNumbers(nil)
	require.NoError(t, err)
	assert.Nil(t, lines)

	lines, err = parseLineNumbers([]any{float64(3), float64(14)})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 14}, lines)

	_, err = parseLineNumbers([]any{"12"})
	assert.Error(t, err)
}
