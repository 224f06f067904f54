package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/trainboot/internal/app"
	"github.com/vk/trainboot/internal/socketsink"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("trainboot", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
trainboot - bootstrap for a configuration-driven training run.

Usage:
  trainboot [options]

Reads the JSON (or .hcl) configuration file, logs to the console and to
<logdir>/training_YYYYMMDD.log, saves a copy of the configuration as
config.json in the results directory, then runs the workload.

Options:
`)
		flagSet.PrintDefaults()
	}

	logDirFlag := flagSet.String("logdir", "./logs/", "Log directory.")
	configFlag := flagSet.String("config", "./config.json", "Configuration file (JSON, or HCL when ending in .hcl).")
	configPathFlag := flagSet.String("config-path", "", "Alias of -config; takes precedence when set.")
	resultsDirFlag := flagSet.String("results-dir", "./results/", "Directory receiving the configuration copy. Empty means the log directory.")
	dataPathFlag := flagSet.String("data-path", "", "Path to the training data.")
	flagFlag := flagSet.Bool("flag", false, "Some flag.")
	valueFlag := flagSet.Int("value", 0, "Some value.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logSocketFlag := flagSet.String("log-socket", "", "Optional socket.io server URL receiving log records.")
	logSocketNamespaceFlag := flagSet.String("log-socket-namespace", "", "socket.io namespace for -log-socket (default \"/\").")
	logSocketTimeoutFlag := flagSet.Duration("log-socket-timeout", socketsink.DefaultConnectTimeout, "How long to wait for -log-socket to connect.")
	logSocketInsecureFlag := flagSet.Bool("log-socket-insecure", false, "Skip TLS certificate verification for -log-socket.")
	strictFlag := flagSet.Bool("strict", false, "Exit with a non-zero code when the workload fails.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))}
	}

	configPath := *configFlag
	if *configPathFlag != "" {
		configPath = *configPathFlag
	}
	slog.Debug("Config path determined.", "path", configPath)

	config, err := app.NewConfig(app.Config{
		LogDir:     *logDirFlag,
		ConfigPath: configPath,
		ResultsDir: *resultsDirFlag,
		DataPath:   *dataPathFlag,
		Flag:       *flagFlag,
		Value:      *valueFlag,
		LogLevel:   *logLevelFlag,
		LogFormat:  *logFormatFlag,
		LogSocket:  *logSocketFlag,
		Strict:     *strictFlag,

		LogSocketNamespace: *logSocketNamespaceFlag,
		LogSocketTimeout:   *logSocketTimeoutFlag,
		LogSocketInsecure:  *logSocketInsecureFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
