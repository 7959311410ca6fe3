package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "statespace version ")
}

func TestEvalCommand(t *testing.T) {
	out, err := execute(t, "eval", "tictactoe", "--board", "...|.X.|...", "--player", "X")
	require.NoError(t, err)
	assert.Contains(t, out, "open lines: X=8 O=4")
	assert.Contains(t, out, "evaluation: 4")
}

func TestSolveCommand_RequiresProblem(t *testing.T) {
	_, err := execute(t, "solve")
	assert.Error(t, err)
}

func TestListCommand_BadLogLevel(t *testing.T) {
	_, err := execute(t, "list", "--log-level", "loud")
	assert.Error(t, err)
}
