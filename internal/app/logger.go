package app

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/vk/trainboot/internal/logsink"
	"github.com/vk/trainboot/internal/socketsink"
)

// parseLevel maps a validated level name to its slog level.
func parseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newSinkHandler builds one sink in the requested format.
func newSinkHandler(formatStr string, w io.Writer, level slog.Level) slog.Handler {
	if formatStr == "json" {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level, AddSource: true})
	}
	return logsink.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

// loggerSetup is the result of newLogger.
type loggerSetup struct {
	logger  *slog.Logger
	logPath string
	closers []io.Closer
	// remoteErr is set when the optional remote sink could not connect.
	remoteErr error
}

// newLogger creates an isolated slog.Logger writing to the console writer
// and to the dated log file in cfg.LogDir. It does not set the global
// logger, so repeated calls never share or duplicate sinks.
func newLogger(ctx context.Context, cfg *Config, console io.Writer, now time.Time) (*loggerSetup, error) {
	level := parseLevel(cfg.LogLevel)

	file, logPath, err := logsink.OpenFile(cfg.LogDir, now)
	if err != nil {
		return nil, err
	}

	setup := &loggerSetup{logPath: logPath, closers: []io.Closer{file}}
	handlers := []slog.Handler{
		newSinkHandler(cfg.LogFormat, console, level),
		newSinkHandler(cfg.LogFormat, file, level),
	}

	if cfg.LogSocket != "" {
		client, err := socketsink.Dial(ctx, cfg.LogSocket, socketsink.DialOptions{
			Namespace:          cfg.LogSocketNamespace,
			Timeout:            cfg.LogSocketTimeout,
			InsecureSkipVerify: cfg.LogSocketInsecure,
		})
		if err != nil {
			setup.remoteErr = err
		} else {
			handlers = append(handlers, socketsink.NewHandler(client, &slog.HandlerOptions{Level: level}))
			setup.closers = append(setup.closers, client)
		}
	}

	setup.logger = slog.New(logsink.NewFanout(handlers...))
	return setup, nil
}
