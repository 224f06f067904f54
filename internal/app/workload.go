package app

import (
	"context"
	"log/slog"

	"github.com/vk/trainboot/internal/config"
)

// Workload is the unit of work a run executes once the configuration is in
// place. A real training loop replaces TrainingStub with its own Workload.
type Workload func(ctx context.Context, logger *slog.Logger, doc *config.Document, cfg *Config) error

// TrainingStub is the placeholder workload. It only shows how the arguments
// and the configuration are consulted. Its sole failure is a
// *config.MissingKeyError when "param1" is absent.
func TrainingStub(_ context.Context, logger *slog.Logger, doc *config.Document, cfg *Config) error {
	logger.Info("Start run function")

	if cfg.Flag {
		logger.Info("True process")
	} else {
		logger.Info("False process")
	}

	param1, err := doc.Lookup("param1")
	if err != nil {
		return err
	}
	logger.Info("Param1 = " + config.Display(param1))

	logger.Info("End run function")
	return nil
}
