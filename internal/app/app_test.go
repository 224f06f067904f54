package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vk/trainboot/internal/hcl"
)

var fixedNow = time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// writeConfig writes content as config.json in a fresh directory.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "failed to set up config file")
	return path
}

// newTestConfig returns a validated Config rooted in a temporary directory.
func newTestConfig(t *testing.T, configPath string) *Config {
	t.Helper()
	root := t.TempDir()
	cfg, err := NewConfig(Config{
		LogDir:     filepath.Join(root, "logs"),
		ConfigPath: configPath,
		ResultsDir: filepath.Join(root, "results"),
	})
	require.NoError(t, err)
	return cfg
}

// newTestApp builds an App logging into a buffer, closed at test cleanup.
func newTestApp(t *testing.T, cfg *Config, opts ...Option) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	opts = append([]Option{WithClock(fixedClock)}, opts...)
	a, err := NewApp(context.Background(), out, cfg, hcl.NewLoader(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a, out
}
