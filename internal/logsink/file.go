package logsink

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vk/trainboot/internal/fsutil"
)

// FileName returns the log file name for the day of t.
func FileName(t time.Time) string {
	return "training_" + t.Format("20060102") + ".log"
}

// OpenFile ensures dir exists and opens the dated log file inside it for
// appending. It returns the open file and its path.
func OpenFile(dir string, now time.Time) (*os.File, string, error) {
	if err := fsutil.EnsureDir(dir); err != nil {
		return nil, "", err
	}
	path := filepath.Join(dir, FileName(now))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, path, nil
}
