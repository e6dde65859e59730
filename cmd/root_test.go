package cmd

import (
	"testing"
)

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "veneer" {
		t.Errorf("Expected Use to be 'veneer', got %s", rootCmd.Use)
	}

	if !rootCmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be true")
	}

	subcommands := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		subcommands[c.Name()] = true
	}
	for _, want := range []string{"connect", "version", "self-update"} {
		if !subcommands[want] {
			t.Errorf("Expected subcommand %q to be registered", want)
		}
	}
}

func TestSetVersion(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()

	SetVersion("v1.2.3")
	if rootCmd.Version != "v1.2.3" {
		t.Errorf("Expected version v1.2.3, got %s", rootCmd.Version)
	}
}
