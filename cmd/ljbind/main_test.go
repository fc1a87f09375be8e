// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/ljbind/pairing"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// execute runs a fresh root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRoot_Text(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "d.txt", "4.1e-10\n2e-10\n3.41e-10\n")

	out, err := execute(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, "Pairing check passed: 3 pairings imply 3 objects")
	assert.Contains(t, out, "There are 3 pairings in this list")
	assert.Contains(t, out, "results can be trusted")
}

func TestRoot_InvalidGeometryFails(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "d.txt", "4.1e-10\n2e-10\n")

	out, err := execute(t, path)
	require.ErrorIs(t, err, pairing.ErrInvalidGeometry)
	assert.Contains(t, out, "Pairing check failed: 2 pairings")
}

func TestRoot_ConfigAndYAML(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "d.txt", "6.82e-10\n")
	cfg := writeFile(t, dir, "c.yaml", "input: "+data+"\nselfcheck:\n  tolerance: 1e-30\n")

	out, err := execute(t, "--config", cfg, "--format", "yaml")
	require.NoError(t, err, "an untrusted self-check must not fail the command")
	assert.Contains(t, out, "pairings: 1")
	assert.Contains(t, out, "trusted: false")
}

func TestRoot_BadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "c.yaml", "potential:\n  sigma: -1\n")

	_, err := execute(t, "--config", cfg, filepath.Join(dir, "unused.txt"))
	assert.Error(t, err)
}

func TestRoot_TooManyArgs(t *testing.T) {
	_, err := execute(t, "a.txt", "b.txt")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "ljbind dev\n", out)
}
