package app

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config holds the parsed command-line arguments of a run. It is built once
// by NewConfig and treated as read-only afterwards.
type Config struct {
	LogDir     string
	ConfigPath string
	ResultsDir string // empty means LogDir
	DataPath   string
	Flag       bool
	Value      int

	LogLevel  string
	LogFormat string
	LogSocket string
	Strict    bool

	LogSocketNamespace string
	LogSocketTimeout   time.Duration // zero means socketsink.DefaultConnectTimeout
	LogSocketInsecure  bool
}

// NewConfig validates cfg, fills in logging defaults and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogDir == "" {
		return nil, errors.New("logdir is a required configuration field and cannot be empty")
	}
	if cfg.ConfigPath == "" {
		return nil, errors.New("config is a required configuration field and cannot be empty")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if cfg.LogSocketNamespace != "" && !strings.HasPrefix(cfg.LogSocketNamespace, "/") {
		return nil, fmt.Errorf("invalid log-socket-namespace %q: must start with '/'", cfg.LogSocketNamespace)
	}

	if cfg.LogSocketTimeout < 0 {
		return nil, fmt.Errorf("invalid log-socket-timeout %s: must not be negative", cfg.LogSocketTimeout)
	}

	return &cfg, nil
}

// OutputDir is the directory receiving the configuration copy.
func (c *Config) OutputDir() string {
	if c.ResultsDir != "" {
		return c.ResultsDir
	}
	return c.LogDir
}

type field struct {
	name  string
	value any
}

// fields lists the arguments in the order they are logged at startup.
func (c *Config) fields() []field {
	return []field{
		{"logdir", c.LogDir},
		{"config", c.ConfigPath},
		{"results_dir", c.ResultsDir},
		{"data_path", c.DataPath},
		{"flag", c.Flag},
		{"value", c.Value},
		{"log_level", c.LogLevel},
		{"log_format", c.LogFormat},
		{"log_socket", c.LogSocket},
		{"log_socket_namespace", c.LogSocketNamespace},
		{"log_socket_timeout", c.LogSocketTimeout},
		{"log_socket_insecure", c.LogSocketInsecure},
		{"strict", c.Strict},
	}
}
