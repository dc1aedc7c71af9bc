// Package mcpserver exposes the test invocation engine as an MCP
// server over an SSE transport.
package mcpserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"rspecmcp/internal/runner"
	"rspecmcp/pkg/logging"
)

// Config holds the listen address for the SSE transport.
type Config struct {
	Host string
	Port int
}

// Server wraps an MCP server that offers the run_test tool.
type Server struct {
	config Config
	engine *runner.Engine

	mu        sync.Mutex
	server    *server.MCPServer
	sseServer *server.SSEServer
}

// New creates a server for the given listen address and engine.
func New(config Config, engine *runner.Engine) *Server {
	if config.Host == "" {
		config.Host = "127.0.0.1"
	}
	if config.Port == 0 {
		config.Port = 30301
	}
	return &Server{config: config, engine: engine}
}

// BaseURL returns the HTTP base URL clients connect to.
func (s *Server) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", s.config.Host, s.config.Port)
}

// Start registers the tools and begins serving SSE in the background.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		return fmt.Errorf("server already started")
	}

	mcpServer := server.NewMCPServer(
		"rspecmcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)
	mcpServer.AddTool(runTestTool(), s.handleRunTest)
	s.server = mcpServer

	s.sseServer = server.NewSSEServer(
		s.server,
		server.WithBaseURL(s.BaseURL()),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(30*time.Second),
	)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	logging.Info("MCPServer", "Starting MCP server on %s", addr)

	sseServer := s.sseServer
	go func() {
		if err := sseServer.Start(addr); err != nil && err != http.ErrServerClosed {
			logging.Error("MCPServer", err, "SSE server error")
		}
	}()

	return nil
}

// Stop shuts the SSE server down, allowing in-flight requests a short
// grace period.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	sseServer := s.sseServer
	s.server = nil
	s.sseServer = nil
	s.mu.Unlock()

	if sseServer == nil {
		return fmt.Errorf("server not started")
	}

	logging.Info("MCPServer", "Stopping MCP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return sseServer.Shutdown(shutdownCtx)
}
