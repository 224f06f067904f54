package system

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/trainboot/internal/app"
	"github.com/vk/trainboot/internal/testutil"
)

// Test for: the flag selects exactly one of the two branch messages.
func TestPipeline_FlagSelectsBranch(t *testing.T) {
	for _, flag := range []bool{true, false} {
		result := testutil.RunApp(t, `{"param1": 1}`, func(c *app.Config) { c.Flag = flag })
		require.NoError(t, result.Err)

		msgs := testutil.Messages(result.LogOutput)
		if flag {
			require.Contains(t, msgs, "True process")
			require.NotContains(t, msgs, "False process")
		} else {
			require.Contains(t, msgs, "False process")
			require.NotContains(t, msgs, "True process")
		}
	}
}
