package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"rspecmcp/internal/runner"
	"rspecmcp/pkg/logging"
)

func runTestTool() mcp.Tool {
	return mcp.NewTool("run_test",
		mcp.WithDescription("Run an RSpec test file and return the results. Optionally restrict the run to specific line numbers."),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Path to the test file, relative to the project root. Must end in _spec.rb."),
		),
		mcp.WithArray("line_numbers",
			mcp.Description("Optional line numbers to run. Each must be a positive integer."),
			mcp.Items(map[string]any{"type": "integer"}),
		),
	)
}

// handleRunTest runs one test invocation. Invalid input becomes a tool
// error result carrying the validation message; a failing test run is a
// normal text result; only inability to start the runner at all is
// returned as an error.
func (s *Server) handleRunTest(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	file, ok := args["file"].(string)
	if !ok || file == "" {
		return mcp.NewToolResultError("file parameter is required"), nil
	}

	lines, err := parseLineNumbers(args["line_numbers"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report, err := s.engine.Run(ctx, file, lines)
	if err != nil {
		var verr *runner.ValidationError
		if errors.As(err, &verr) {
			logging.Debug("MCPServer", "run_test rejected: %s", verr.Error())
			return mcp.NewToolResultError(verr.Error()), nil
		}
		return nil, err
	}

	return mcp.NewToolResultText(report), nil
}

// parseLineNumbers converts the JSON-decoded line_numbers argument into
// ints. JSON numbers arrive as float64; values with a fractional part
// are rejected rather than truncated.
func parseLineNumbers(raw any) ([]int, error) {
	if raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("line_numbers must be an array of integers")
	}
	lines := make([]int, 0, len(items))
	for _, item := range items {
		f, ok := item.(float64)
		if !ok || f != float64(int(f)) {
			return nil, fmt.Errorf("line_numbers must contain only integers, got %v", item)
		}
		lines = append(lines, int(f))
	}
	return lines, nil
}
