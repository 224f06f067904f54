package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/trainboot/internal/config"
)

// Messages returns the message part of every text-format log line.
func Messages(logOutput string) []string {
	var msgs []string
	for _, line := range strings.Split(strings.TrimSpace(logOutput), "\n") {
		if _, msg, ok := strings.Cut(line, " : "); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

// AssertSavedConfig checks that the configuration copy in dir holds the same
// JSON value as want.
func AssertSavedConfig(t *testing.T, dir, want string) {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, config.FileName))
	require.NoError(t, err, "configuration copy was not written")

	var got, expected any
	require.NoError(t, json.Unmarshal(data, &got))
	require.NoError(t, json.Unmarshal([]byte(want), &expected))
	require.Equal(t, expected, got)
}

// AssertInOrder checks that want appears as a subsequence of msgs.
func AssertInOrder(t *testing.T, msgs []string, want ...string) {
	t.Helper()

	i := 0
	for _, m := range msgs {
		if i < len(want) && m == want[i] {
			i++
		}
	}
	require.Equal(t, len(want), i, "expected messages in order %q, got %q", want, msgs)
}
