package socketsink

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedEvent struct {
	name    string
	payload map[string]any
}

type fakeEmitter struct {
	mu     sync.Mutex
	events []recordedEvent
	err    error
}

func (f *fakeEmitter) Emit(event string, payload map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{name: event, payload: payload})
	return f.err
}

func TestHandler_EmitsRecord(t *testing.T) {
	emitter := &fakeEmitter{}
	logger := slog.New(NewHandler(emitter, nil))

	logger.Info("Param1 = 42", "step", 7, "err", errors.New("boom"))

	require.Len(t, emitter.events, 1)
	ev := emitter.events[0]
	assert.Equal(t, EventName, ev.name)
	assert.Equal(t, "INFO", ev.payload["level"])
	assert.Equal(t, "Param1 = 42", ev.payload["message"])
	assert.Equal(t, "socketsink.TestHandler_EmitsRecord", ev.payload["source"])
	assert.NotEmpty(t, ev.payload["time"])
	assert.Equal(t, map[string]any{"step": int64(7), "err": "boom"}, ev.payload["attrs"])
}

func TestHandler_LevelThreshold(t *testing.T) {
	emitter := &fakeEmitter{}
	logger := slog.New(NewHandler(emitter, &slog.HandlerOptions{Level: slog.LevelWarn}))

	logger.Info("skipped")
	logger.Warn("kept")

	require.Len(t, emitter.events, 1)
	assert.Equal(t, "kept", emitter.events[0].payload["message"])
}

func TestHandler_WithAttrsDoesNotLeak(t *testing.T) {
	emitter := &fakeEmitter{}
	base := slog.New(NewHandler(emitter, nil))
	derived := base.With("run", "a").WithGroup("cfg")

	derived.Info("one", "key", true)
	base.Info("two")

	require.Len(t, emitter.events, 2)
	assert.Equal(t, map[string]any{"run": "a", "cfg.key": true}, emitter.events[0].payload["attrs"])
	assert.Equal(t, map[string]any{}, emitter.events[1].payload["attrs"])
}

func TestHandler_ReturnsEmitError(t *testing.T) {
	emitter := &fakeEmitter{err: errors.New("transport closed")}
	h := NewHandler(emitter, nil)

	err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "lost", 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transport closed")
}

func TestDial_RejectsInvalidURL(t *testing.T) {
	_, err := Dial(context.Background(), "not-a-url", DialOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheme and host are required")
}
