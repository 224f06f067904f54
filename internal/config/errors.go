package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

var (
	// ErrNotFound reports that the configuration file does not exist.
	ErrNotFound = errors.New("configuration file not found")
	// ErrParse reports that the configuration file could not be parsed.
	ErrParse = errors.New("configuration file is malformed")
)

// ParseError carries the diagnostics produced while parsing a configuration
// file. It matches ErrParse with errors.Is.
type ParseError struct {
	Path  string
	Diags hcl.Diagnostics
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse configuration %s: %s", e.Path, e.Diags.Error())
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// MissingKeyError is returned when a required top-level key is absent.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing configuration key %q", e.Key)
}
