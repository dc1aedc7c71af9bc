// Package config holds the process-wide configuration for the server.
// Configuration is resolved once at startup, from defaults, an optional
// YAML file, and environment variables, in that order, and is read-only
// afterwards.
package config

// Config is the top-level configuration for the server.
type Config struct {
	// Host and Port form the SSE listen address.
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// RunnerCommand is the base command used to launch the test
	// runner, e.g. "bundle exec rspec". It is split on whitespace into
	// executable and base arguments.
	RunnerCommand string `yaml:"runnerCommand"`

	// Debug enables verbose logging.
	Debug bool `yaml:"debug"`
}
