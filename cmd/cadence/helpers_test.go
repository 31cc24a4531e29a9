package main

import (
	"bytes"
	"testing"
)

// executeCommand runs the root command with a pinned environment: full motion
// on a wide viewport, errors-only JSON logs.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeCommandWithEnv(t, nil, args...)
}

func executeCommandWithEnv(t *testing.T, env map[string]string, args ...string) (string, string, error) {
	t.Helper()

	pinned := map[string]string{
		"CADENCE_REDUCED_MOTION": "false",
		"CADENCE_TIER":           "full",
		"CADENCE_LOG_LEVEL":      "error",
		"CADENCE_LOG_FORMAT":     "json",
	}
	for k, v := range env {
		pinned[k] = v
	}
	for k, v := range pinned {
		t.Setenv(k, v)
	}

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
