package cli

import (
	"bytes"
	"context"
	"testing"

	"velo/internal/common"
	"velo/internal/config"
	"velo/internal/doctor"
	"velo/internal/platform"
)

// CommandResult is the captured output of one in-process CLI invocation.
type CommandResult struct {
	Stdout string
	Stderr string
	Err    error
}

// ExecuteForTest runs the root command with args and captured output. Flag
// variables are reset first because cobra keeps them between invocations.
func ExecuteForTest(t *testing.T, args ...string) CommandResult {
	t.Helper()
	resetFlags()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return CommandResult{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// StubHostEnvironment makes doctor run against the given probes and locator
// for the rest of the test.
func StubHostEnvironment(t *testing.T, probes doctor.Probes, locator platform.CommandLocator) {
	t.Helper()
	previous := hostEnvironment
	hostEnvironment = func(*config.Config, *common.Logger) (doctor.Probes, platform.CommandLocator) {
		return probes, locator
	}
	t.Cleanup(func() { hostEnvironment = previous })
}

func resetFlags() {
	configPath = ""
	doctorVerbose = false
	doctorFix = false
	doctorJSON = false
	VersionJSON = false
}
