package hcl

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/trainboot/internal/config"
	"github.com/vk/trainboot/internal/ctxlog"
)

// Loader is the HCL-backed implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration file at path and translates its top-level
// attributes into a config.Document.
func (l *Loader) Load(ctx context.Context, path string) (*config.Document, error) {
	ctx = ctxlog.With(ctx, "config_path", path)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Configuration loader started.")

	src, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", config.ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read configuration %s: %w", path, err)
	}

	var doc *config.Document
	var diags hcl.Diagnostics
	if isNativeSyntax(path) {
		doc, diags = l.loadHCL(ctx, src, path)
	} else {
		doc, diags = l.loadJSON(ctx, src, path)
	}
	if diags.HasErrors() {
		return nil, &config.ParseError{Path: path, Diags: diags}
	}

	logger.Debug("Configuration loaded.", "keys", doc.Keys())
	return doc, nil
}

// loadHCL parses native HCL syntax; every attribute must be a literal.
func (l *Loader) loadHCL(ctx context.Context, src []byte, path string) (*config.Document, hcl.Diagnostics) {
	ctxlog.FromContext(ctx).Debug("Parsing native HCL syntax.")
	file, diags := hclparse.NewParser().ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, diags
	}
	return translateBody(file.Body)
}

// loadJSON decodes JSON with encoding/json so values are kept exactly as
// written. The HCL JSON parser only supplies positioned diagnostics for
// content that fails to decode.
func (l *Loader) loadJSON(ctx context.Context, src []byte, path string) (*config.Document, hcl.Diagnostics) {
	ctxlog.FromContext(ctx).Debug("Parsing JSON syntax.")
	doc, err := decodeObject(src)
	if err == nil {
		return doc, nil
	}

	if !errors.Is(err, errRootNotObject) {
		if _, diags := hclparse.NewParser().ParseJSON(src, path); diags.HasErrors() {
			return nil, diags
		}
	}
	return nil, hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Invalid JSON configuration",
		Detail:   err.Error(),
		Subject:  &hcl.Range{Filename: path},
	}}
}

func isNativeSyntax(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".hcl")
}
