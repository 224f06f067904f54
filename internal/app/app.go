package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/vk/trainboot/internal/config"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	config   *Config
	logger   *slog.Logger
	logPath  string
	loader   config.Loader
	workload Workload
	now      func() time.Time
	closers  []io.Closer
}

// Option customizes an App.
type Option func(*App)

// WithClock replaces the clock used to name the log file.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithWorkload replaces the default TrainingStub workload.
func WithWorkload(w Workload) Option {
	return func(a *App) { a.workload = w }
}

// NewApp is the constructor for the main application. It creates the log
// directory and an isolated logger writing to outW and the dated log file.
// The caller must Close the App to release the log file.
func NewApp(ctx context.Context, outW io.Writer, cfg *Config, loader config.Loader, opts ...Option) (*App, error) {
	a := &App{
		outW:     outW,
		config:   cfg,
		loader:   loader,
		workload: TrainingStub,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	setup, err := newLogger(ctx, cfg, outW, a.now())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = setup.logger
	a.logPath = setup.logPath
	a.closers = setup.closers

	a.logger.Debug("Logger configured successfully.", "log_file", a.logPath)
	if setup.remoteErr != nil {
		a.logger.Warn("Remote log sink unavailable, continuing with local sinks.", "url", cfg.LogSocket, "error", setup.remoteErr)
	}
	return a, nil
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// LogPath returns the path of the log file written by this App.
func (a *App) LogPath() string {
	return a.logPath
}

// Close releases the log file and any remote sink.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
