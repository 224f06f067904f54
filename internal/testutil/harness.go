// Package testutil provides shared helpers for tests that drive a complete
// run through app.App.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vk/trainboot/internal/app"
	"github.com/vk/trainboot/internal/hcl"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Now is the fixed clock used by the harness.
var Now = time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)

// HarnessResult holds the outcomes of a harness run.
type HarnessResult struct {
	LogOutput  string
	Err        error
	Config     *app.Config
	LogPath    string
	LogDir     string
	ResultsDir string
}

// RunApp writes configContent to a temporary config file, builds a run
// rooted in a temporary directory, lets mutate adjust the arguments, and
// executes it.
func RunApp(t *testing.T, configContent string, mutate func(*app.Config), opts ...app.Option) *HarnessResult {
	t.Helper()

	root := t.TempDir()
	configPath := filepath.Join(root, "input", "config.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0o755))
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	cfg := app.Config{
		LogDir:     filepath.Join(root, "logs"),
		ConfigPath: configPath,
		ResultsDir: filepath.Join(root, "results"),
	}
	if mutate != nil {
		mutate(&cfg)
	}
	validated, err := app.NewConfig(cfg)
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}
	opts = append([]app.Option{app.WithClock(func() time.Time { return Now })}, opts...)
	testApp, err := app.NewApp(context.Background(), logBuffer, validated, hcl.NewLoader(), opts...)
	require.NoError(t, err)

	runErr := testApp.Run(context.Background())
	require.NoError(t, testApp.Close())

	if os.Getenv("TRAINBOOT_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput:  logBuffer.String(),
		Err:        runErr,
		Config:     validated,
		LogPath:    testApp.LogPath(),
		LogDir:     validated.LogDir,
		ResultsDir: validated.OutputDir(),
	}
}
