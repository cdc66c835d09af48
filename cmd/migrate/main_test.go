package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMigrateCLIWalksHistory(t *testing.T) {
	t.Setenv("LOG_MODE", "test")
	dsn := "sqlite:///" + filepath.Join(t.TempDir(), "cli.db")

	out, err := runCLI(t, "current", "--dsn", dsn)
	require.NoError(t, err)
	assert.Equal(t, "<base>\n", out)

	out, err = runCLI(t, "upgrade", "ac9cd4f97c8d", "--dsn", dsn)
	require.NoError(t, err)
	assert.Equal(t, "ac9cd4f97c8d\n", out)

	out, err = runCLI(t, "downgrade", "--dsn", dsn, "--", "-1")
	require.NoError(t, err)
	assert.Equal(t, "2ce5e439764d\n", out)

	out, err = runCLI(t, "upgrade", "--dsn", dsn)
	require.NoError(t, err)
	assert.Equal(t, "8e4b2a6c9f13\n", out)

	out, err = runCLI(t, "heads", "--dsn", dsn)
	require.NoError(t, err)
	assert.Equal(t, "8e4b2a6c9f13 (head)\n", out)

	out, err = runCLI(t, "history", "--dsn", dsn)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("history: want=5 lines got=%d (%q)", len(lines), out)
	}
	assert.True(t, strings.HasPrefix(lines[0], "<base> -> b0296817b493"))
}

func TestMigrateCLIRejectsUnknownTarget(t *testing.T) {
	t.Setenv("LOG_MODE", "test")
	dsn := "sqlite:///" + filepath.Join(t.TempDir(), "cli.db")

	_, err := runCLI(t, "upgrade", "deadbeef0000", "--dsn", dsn)
	require.Error(t, err)

	_, err = runCLI(t, "downgrade", "--dsn", dsn)
	require.Error(t, err)
}
