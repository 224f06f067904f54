package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the configuration file at path and returns its top-level
	// attributes as a Document. A missing file yields an error wrapping
	// ErrNotFound; malformed content yields a *ParseError.
	Load(ctx context.Context, path string) (*Document, error)
}
