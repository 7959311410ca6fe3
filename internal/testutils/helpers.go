// Package testutils holds fixtures shared by tests that need a problem catalog on disk.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
	"github.com/stretchr/testify/require"
)

// SetupTestRepo creates a temporary directory and initializes a Loam repository in it.
// It returns the absolute path to the temp dir and the initialized repository.
// It fails the test immediately on error.
func SetupTestRepo(t *testing.T, opts ...loam.Option) (string, core.Repository) {
	t.Helper()

	absPath, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	repo, err := loam.Init(absPath, append([]loam.Option{loam.WithVersioning(false)}, opts...)...)
	require.NoError(t, err, "Failed to init loam repo")

	return absPath, repo
}

// WriteFiles seeds dir with files, keyed by relative path.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// EightPuzzleDoc is a catalog document for the three-move 8-puzzle example.
const EightPuzzleDoc = `---
name: eight
kind: puzzle
algorithm: astar
heuristic: manhattan
initial: "123|405|786"
---
Slide the blank right, then down.`

// JugsDoc is a catalog document for the classic 4 and 3 litre jugs.
const JugsDoc = `{
  "name": "jugs",
  "kind": "waterjug",
  "initial": [4, 0],
  "goal": {"a": 2, "b": 0}
}`
