package socketsink

import (
	"context"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/vk/trainboot/internal/logsink"
)

// EventName is the socket.io event carrying a log record.
const EventName = "log"

// Emitter delivers one named event. *Client implements it.
type Emitter interface {
	Emit(event string, payload map[string]any) error
}

// Handler is a slog.Handler that turns each record into an EventName event
// with the payload fields time, level, source, message and attrs.
type Handler struct {
	emitter Emitter
	mu      *sync.Mutex
	level   slog.Leveler
	prefix  string
	attrs   map[string]any
}

// NewHandler creates a Handler emitting through e. Only opts.Level is
// honored; the default threshold is slog.LevelInfo.
func NewHandler(e Emitter, opts *slog.HandlerOptions) *Handler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &Handler{emitter: e, mu: &sync.Mutex{}, level: level, attrs: map[string]any{}}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	attrs := maps.Clone(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		collect(attrs, h.prefix, a)
		return true
	})

	payload := map[string]any{
		"time":    r.Time.Format(time.RFC3339Nano),
		"level":   r.Level.String(),
		"source":  logsink.Origin(r.PC),
		"message": r.Message,
		"attrs":   attrs,
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.emitter.Emit(EventName, payload)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = maps.Clone(h.attrs)
	for _, a := range attrs {
		collect(next.attrs, h.prefix, a)
	}
	return &next
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

// collect flattens a into dst using dotted keys for groups.
func collect(dst map[string]any, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p = prefix + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			collect(dst, p, ga)
		}
		return
	}
	dst[prefix+a.Key] = plain(a.Value)
}

func plain(v slog.Value) any {
	switch v.Kind() {
	case slog.KindString:
		return v.String()
	case slog.KindInt64:
		return v.Int64()
	case slog.KindUint64:
		return v.Uint64()
	case slog.KindFloat64:
		return v.Float64()
	case slog.KindBool:
		return v.Bool()
	case slog.KindTime:
		return v.Time().Format(time.RFC3339Nano)
	default:
		return v.String()
	}
}
