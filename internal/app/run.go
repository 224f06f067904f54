package app

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/vk/trainboot/internal/config"
	"github.com/vk/trainboot/internal/ctxlog"
)

// WorkloadError wraps a workload failure surfaced by a strict run.
type WorkloadError struct {
	Err error
}

func (e *WorkloadError) Error() string {
	return fmt.Sprintf("workload failed: %v", e.Err)
}

func (e *WorkloadError) Unwrap() error {
	return e.Err
}

// Run loads the configuration, saves a copy of it and executes the
// workload. Workload failures are logged and swallowed unless the run is
// strict; configuration failures are returned.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	doc, err := a.loader.Load(ctx, a.config.ConfigPath)
	if err != nil {
		a.logger.Error("Failed to load configuration.", "path", a.config.ConfigPath, "error", err)
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	saved, err := config.Save(a.config.OutputDir(), doc)
	if err != nil {
		a.logger.Error("Failed to save configuration.", "dir", a.config.OutputDir(), "error", err)
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	a.logger.Debug("Configuration copy saved.", "path", saved)

	for _, f := range a.config.fields() {
		a.logger.Info(fmt.Sprintf("%s = %v", f.name, f.value))
	}

	workErr := a.runWorkload(ctx, doc)
	a.logger.Info("End logger")

	if workErr != nil && a.config.Strict {
		return &WorkloadError{Err: workErr}
	}
	return nil
}

// runWorkload invokes the workload, converting a panic into an error. Any
// failure is logged at error level before it is returned.
func (a *App) runWorkload(ctx context.Context, doc *config.Document) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("workload panicked: %v", r)
			a.logger.Error(fmt.Sprintf("Main function error: %v", err), "error", err, "stack", string(debug.Stack()))
		}
	}()

	if err = a.workload(ctx, a.logger, doc, a.config); err != nil {
		a.logger.Error(fmt.Sprintf("Main function error: %v", err), "error", err)
	}
	return err
}
