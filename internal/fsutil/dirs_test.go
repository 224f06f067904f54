package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesMissingParents(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "a", "b", "c")

	require.NoError(t, EnsureDir(target))

	info, err := os.Stat(target)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestEnsureDir_Idempotent(t *testing.T) {
	target := filepath.Join(t.TempDir(), "logs")

	require.NoError(t, EnsureDir(target))
	require.NoError(t, EnsureDir(target), "second call must not fail on an existing directory")
}

func TestEnsureDir_Errors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		err := EnsureDir("")
		require.ErrorIs(t, err, ErrCreateDir)
	})

	t.Run("path is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "occupied")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

		err := EnsureDir(filepath.Join(file, "sub"))
		require.ErrorIs(t, err, ErrCreateDir)
		require.Contains(t, err.Error(), "occupied")
	})
}
