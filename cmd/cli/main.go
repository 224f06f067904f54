package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/trainboot/internal/app"
	"github.com/vk/trainboot/internal/cli"
	"github.com/vk/trainboot/internal/hcl"
)

// main is the entrypoint for the trainboot application.
func main() {
	// Use a minimal logger until the run's own logger is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Usage text goes to outW, log records to logW.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	trainApp, err := app.NewApp(ctx, logW, appConfig, hcl.NewLoader())
	if err != nil {
		return err
	}
	defer trainApp.Close()

	return trainApp.Run(ctx)
}
