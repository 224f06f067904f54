package system

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/trainboot/internal/app"
	"github.com/vk/trainboot/internal/testutil"
)

// Test for: a missing nested log directory is created with one dated log file.
func TestPipeline_CreatesLogDirectoryAndFile(t *testing.T) {
	var logDir string
	result := testutil.RunApp(t, `{"param1": 1}`, func(c *app.Config) {
		c.LogDir = filepath.Join(c.LogDir, "nested", "tmp")
		logDir = c.LogDir
	})
	require.NoError(t, result.Err)

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	var logFiles []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "training_") {
			logFiles = append(logFiles, e.Name())
		}
	}
	require.Equal(t, []string{"training_20261019.log"}, logFiles)

	data, err := os.ReadFile(result.LogPath)
	require.NoError(t, err)
	require.Equal(t, result.LogOutput, string(data), "file sink must receive the same records as the console")
}

// Test for: the copy lands in the log directory when no results dir is given.
func TestPipeline_SavesConfigIntoLogDir(t *testing.T) {
	cfg := `{"param1": "x", "layers": [1, 2]}`
	result := testutil.RunApp(t, cfg, func(c *app.Config) { c.ResultsDir = "" })

	require.NoError(t, result.Err)
	require.Equal(t, result.LogDir, result.ResultsDir)
	testutil.AssertSavedConfig(t, result.LogDir, cfg)
}
