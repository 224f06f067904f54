package cli

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, shouldExit, err := Parse(nil, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)

	assert.Equal(t, "./logs/", cfg.LogDir)
	assert.Equal(t, "./config.json", cfg.ConfigPath)
	assert.Equal(t, "./results/", cfg.ResultsDir)
	assert.Equal(t, "", cfg.DataPath)
	assert.False(t, cfg.Flag)
	assert.Equal(t, 0, cfg.Value)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.Strict)
	assert.Equal(t, "", cfg.LogSocketNamespace)
	assert.False(t, cfg.LogSocketInsecure)
	assert.Equal(t, 15*time.Second, cfg.LogSocketTimeout)
}

func TestParse_AllFlags(t *testing.T) {
	args := []string{
		"--logdir", "/tmp/logs/tmp/",
		"--config", "a.json",
		"--results-dir", "/tmp/results",
		"--data-path", "/data/train.csv",
		"--flag",
		"--value", "5",
		"--log-level", "DEBUG",
		"--log-format", "json",
		"--log-socket", "https://logs.example:9000",
		"--log-socket-namespace", "/training",
		"--log-socket-timeout", "2s",
		"--log-socket-insecure",
		"--strict",
	}

	cfg, shouldExit, err := Parse(args, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)

	assert.Equal(t, "/tmp/logs/tmp/", cfg.LogDir)
	assert.Equal(t, "a.json", cfg.ConfigPath)
	assert.Equal(t, "/tmp/results", cfg.ResultsDir)
	assert.Equal(t, "/data/train.csv", cfg.DataPath)
	assert.True(t, cfg.Flag)
	assert.Equal(t, 5, cfg.Value)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "https://logs.example:9000", cfg.LogSocket)
	assert.Equal(t, "/training", cfg.LogSocketNamespace)
	assert.Equal(t, 2*time.Second, cfg.LogSocketTimeout)
	assert.True(t, cfg.LogSocketInsecure)
	assert.True(t, cfg.Strict)
}

func TestParse_ConfigPathAliasWins(t *testing.T) {
	cfg, _, err := Parse([]string{"--config", "a.json", "--config-path", "b.json"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "b.json", cfg.ConfigPath)
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "-results-dir")
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"unknown flag", []string{"--epochs", "3"}, "flag provided but not defined: -epochs"},
		{"malformed int", []string{"--value", "five"}, `invalid value "five" for flag -value`},
		{"positional token", []string{"--flag", "extra"}, "unexpected arguments: extra"},
		{"bad log level", []string{"--log-level", "loud"}, "invalid log-level"},
		{"bad log format", []string{"--log-format", "xml"}, "invalid log-format"},
		{"namespace without slash", []string{"--log-socket-namespace", "training"}, "invalid log-socket-namespace"},
		{"negative timeout", []string{"--log-socket-timeout", "-1s"}, "invalid log-socket-timeout"},
		{"empty logdir", []string{"--logdir", ""}, "logdir is a required"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, shouldExit, err := Parse(tc.args, &bytes.Buffer{})
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.False(t, shouldExit)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
