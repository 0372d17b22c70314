package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview_code/internal/script"
)

// runCommand executes the root command with args and returns stdout and
// stderr.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	verbose, jsonOut, variant = false, false, ""
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDemoCommand(t *testing.T) {
	assert := assert.New(t)
	out, _, err := runCommand(t, "demo", "multistack")
	require.NoError(t, err)
	assert.Contains(out, "== multistack (multistack)")
	assert.Contains(out, "error: multistack: stack empty")
	assert.Contains(out, "0 0 0 | 1 2 3 | 3 0")
	assert.Contains(out, "final: 0 0 0 | 1 2 0 | 3 0")
}

func TestDemoAllJSON(t *testing.T) {
	assert := assert.New(t)
	out, _, err := runCommand(t, "demo", "--json", "--variant", "cheap-dequeue")
	require.NoError(t, err)

	var transcripts []script.Transcript
	require.NoError(t, json.Unmarshal([]byte(out), &transcripts))
	require.Len(t, transcripts, 3)
	assert.Equal("queue", transcripts[1].Kind)
	assert.Equal("A", transcripts[1].Steps[6].Result)
}

func TestDemoUnknown(t *testing.T) {
	_, _, err := runCommand(t, "demo", "heap")
	assert.ErrorContains(t, err, "no builtin scenario")
}

func TestRunCommand(t *testing.T) {
	assert := assert.New(t)
	file := filepath.Join(t.TempDir(), "q.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
name: mine
kind: queue
variant: cheap-dequeue
ops:
  - {op: enqueue, value: x}
  - {op: enqueue, value: y}
  - {op: dequeue}
  - {op: len}
`), 0o600))

	out, stderr, err := runCommand(t, "run", "--verbose", file)
	require.NoError(t, err)
	assert.Contains(out, "== mine (queue)")
	assert.Contains(out, "dequeue()")
	assert.Contains(stderr, `"script":"mine"`)

	_, _, err = runCommand(t, "run", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(err)
}

func TestListAndVersion(t *testing.T) {
	out, _, err := runCommand(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "multistack\nqueue\nshelter\n", out)

	out, _, err = runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "stackdemo dev")
}
