package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"rspecmcp/internal/runner"
)

const (
	DefaultHost          = "127.0.0.1"
	DefaultPort          = 30301
	DefaultRunnerCommand = "bundle exec rspec"
)

// Environment variable names, kept compatible with the original server.
const (
	EnvHostname      = "MCP_RSPEC_HOSTNAME"
	EnvPort          = "MCP_RSPEC_PORT"
	EnvRunnerCommand = "RSPEC_RUNNER_CMD"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Host:          DefaultHost,
		Port:          DefaultPort,
		RunnerCommand: DefaultRunnerCommand,
	}
}

// Load resolves the configuration: defaults, then the YAML file at path
// (skipped when path is empty or the file does not exist), then
// environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
			}
		} else {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvHostname); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvPort, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv(EnvRunnerCommand); v != "" {
		cfg.RunnerCommand = v
	}
	return nil
}

// Validate checks the resolved configuration for values the server
// cannot start with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.RunnerCommand) == "" {
		return fmt.Errorf("runner command cannot be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.Host == "" {
		return fmt.Errorf("host cannot be empty")
	}
	return nil
}

// SplitCommand splits the configured runner command on whitespace into
// an executable and its base arguments. The split is purely whitespace
// based; quoted arguments containing spaces are not supported.
func SplitCommand(command string) (runner.CommandSpec, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return runner.CommandSpec{}, fmt.Errorf("runner command cannot be empty")
	}
	return runner.CommandSpec{Executable: fields[0], BaseArgs: fields[1:]}, nil
}
