package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/trainboot/internal/fsutil"
)

// FileName is the name of the configuration copy written by Save.
const FileName = "config.json"

// Save writes doc as indented JSON to FileName inside dir, creating dir if
// needed and overwriting any previous copy. It returns the written path.
// The write is not atomic.
func Save(dir string, doc *Document) (string, error) {
	if err := fsutil.EnsureDir(dir); err != nil {
		return "", err
	}

	raw, err := doc.MarshalJSON()
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return "", fmt.Errorf("failed to format configuration: %w", err)
	}
	out.WriteByte('\n')

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write configuration %s: %w", path, err)
	}
	return path, nil
}
