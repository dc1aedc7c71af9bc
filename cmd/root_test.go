package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetVersion(t *testing.T) {
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()

	testVersion := "1.2.3-test"
	SetVersion(testVersion)

	if rootCmd.Version != testVersion {
		t.Errorf("Expected version to be %s, got %s", testVersion, rootCmd.Version)
	}
}

func TestRootCommandHelp(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--help"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Error executing root help: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"rspecmcp", "serve", "version", "self-update"} {
		if !strings.Contains(output, want) {
			t.Errorf("Help output should contain %q. Got: %q", want, output)
		}
	}
}

func TestRootCommandSilencesUsage(t *testing.T) {
	if !rootCmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be set")
	}
}
