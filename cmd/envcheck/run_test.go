package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"envcheck/internal/logging"
)

// execCall records one invocation of the swapped-in exec function.
type execCall struct {
	target  string
	args    []string
	environ []string
}

// stubExec replaces execFn for the duration of the test and returns a
// pointer that is filled in when the stub runs.
func stubExec(t *testing.T, ret error) *execCall {
	t.Helper()
	var call execCall
	prev := execFn
	execFn = func(target string, args, environ []string) error {
		call = execCall{target: target, args: args, environ: environ}
		return ret
	}
	t.Cleanup(func() { execFn = prev })
	return &call
}

func testRunOptions(schemaPath string) runOptions {
	return runOptions{
		schemaPath: schemaPath,
		profile:    termenv.Ascii,
		logger:     logging.NewNop(),
	}
}

func TestRunRun_ValidEnvExecsCommand(t *testing.T) {
	dir := t.TempDir()
	envPath := writeTestFile(t, dir, ".env", "SERVICE_PORT=9000\n")
	schemaPath := writeTestFile(t, dir, "schema.yaml", "SERVICE_PORT:\n  required: true\n  type: int\n")

	call := stubExec(t, nil)

	var stderr bytes.Buffer
	code := runRun(envPath, "server", []string{"--port", "9000"}, testRunOptions(schemaPath), &stderr)

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String())
	assert.Equal(t, "server", call.target)
	assert.Equal(t, []string{"--port", "9000"}, call.args)
	assert.Contains(t, call.environ, "SERVICE_PORT=9000")
}

// The env file wins over the inherited environment on name conflicts.
func TestRunRun_EnvFileOverridesProcessEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := writeTestFile(t, dir, ".env", "CONFLICT=fromfile\n")
	schemaPath := writeTestFile(t, dir, "schema.yaml", "CONFLICT:\n  required: true\n")

	t.Setenv("CONFLICT", "fromprocess")
	call := stubExec(t, nil)

	var stderr bytes.Buffer
	code := runRun(envPath, "true", nil, testRunOptions(schemaPath), &stderr)

	require.Equal(t, 0, code)
	assert.Contains(t, call.environ, "CONFLICT=fromfile")
	assert.NotContains(t, call.environ, "CONFLICT=fromprocess")
}

func TestRunRun_InvalidEnvBlocksExec(t *testing.T) {
	dir := t.TempDir()
	envPath := writeTestFile(t, dir, ".env", "")
	schemaPath := writeTestFile(t, dir, "schema.yaml", "API_KEY:\n  required: true\n")

	call := stubExec(t, nil)

	var stderr bytes.Buffer
	code := runRun(envPath, "server", nil, testRunOptions(schemaPath), &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Missing required variable: API_KEY")
	assert.Empty(t, call.target, "command must not run when validation fails")
}

func TestRunRun_MissingEnvFileBlocksExec(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTestFile(t, dir, "schema.yaml", "FOO:\n")
	envPath := filepath.Join(dir, "missing.env")

	call := stubExec(t, nil)

	var stderr bytes.Buffer
	code := runRun(envPath, "server", nil, testRunOptions(schemaPath), &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "not found")
	assert.Empty(t, call.target)
}

func TestRunRun_CommandNotFound(t *testing.T) {
	dir := t.TempDir()
	envPath := writeTestFile(t, dir, ".env", "FOO=bar\n")
	schemaPath := writeTestFile(t, dir, "schema.yaml", "FOO:\n")

	stubExec(t, exec.ErrNotFound)

	var stderr bytes.Buffer
	code := runRun(envPath, "no-such-command", nil, testRunOptions(schemaPath), &stderr)

	assert.Equal(t, 127, code)
	assert.Contains(t, stderr.String(), "command not found: no-such-command")
}

func TestRunRun_PermissionDenied(t *testing.T) {
	dir := t.TempDir()
	envPath := writeTestFile(t, dir, ".env", "FOO=bar\n")
	schemaPath := writeTestFile(t, dir, "schema.yaml", "FOO:\n")

	stubExec(t, os.ErrPermission)

	var stderr bytes.Buffer
	code := runRun(envPath, "./locked", nil, testRunOptions(schemaPath), &stderr)

	assert.Equal(t, 126, code)
	assert.Contains(t, stderr.String(), "permission denied: ./locked")
}

func TestRunRun_OtherExecErrors(t *testing.T) {
	dir := t.TempDir()
	envPath := writeTestFile(t, dir, ".env", "FOO=bar\n")
	schemaPath := writeTestFile(t, dir, "schema.yaml", "FOO:\n")

	stubExec(t, assert.AnError)

	var stderr bytes.Buffer
	code := runRun(envPath, "server", nil, testRunOptions(schemaPath), &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error:")
}
