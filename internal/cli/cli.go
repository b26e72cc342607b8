package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/specialistvlad/modehooks/internal/app"
)

// EnvPrefix is the prefix of every environment variable the CLI reads.
const EnvPrefix = "MODEHOOKS_"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// envConfig holds the defaults read from the environment. Flags override them.
type envConfig struct {
	ModesPath          string        `env:"MODES_PATH"`
	LogFormat          string        `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
	HealthcheckPort    int           `env:"HEALTHCHECK_PORT" envDefault:"0"`
	TickInterval       time.Duration `env:"TICK_INTERVAL" envDefault:"0s"`
	SpectatorURL       string        `env:"SPECTATOR_URL"`
	SpectatorNamespace string        `env:"SPECTATOR_NAMESPACE" envDefault:"/"`
	SpectatorInsecure  bool          `env:"SPECTATOR_INSECURE" envDefault:"false"`
}

// Parse processes command-line arguments against the process environment.
// It returns a populated Config, a boolean indicating if the program should
// exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	return ParseEnv(args, output, env.ToMap(os.Environ()))
}

// ParseEnv is Parse with an explicit environment.
func ParseEnv(args []string, output io.Writer, environ map[string]string) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var defaults envConfig
	if err := env.ParseWithOptions(&defaults, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid environment: %v", err)}
	}

	flagSet := flag.NewFlagSet("modehooks", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
modehooks - Named lifecycle hooks and typed settings for game modes.

Usage:
  modehooks [options] [MODES_PATH]

Arguments:
  MODES_PATH
    Path to a single .hcl file or a directory containing .hcl mode files.

Every option can also be set through a MODEHOOKS_* environment variable,
e.g. MODEHOOKS_LOG_LEVEL=debug. Flags take precedence.

Options:
`)
		flagSet.PrintDefaults()
	}

	modesFlag := flagSet.String("modes", defaults.ModesPath, "Path to the mode file or directory.")
	mFlag := flagSet.String("m", "", "Path to the mode file or directory (shorthand).")
	healthPortFlag := flagSet.Int("healthcheck-port", defaults.HealthcheckPort, "Port for the HTTP health check server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	tickFlag := flagSet.Duration("tick", defaults.TickInterval, "Time between scheduler steps. 0 runs steps back to back.")
	spectatorFlag := flagSet.String("spectator-url", defaults.SpectatorURL, "socket.io server that receives hook events. Empty is disabled.")
	namespaceFlag := flagSet.String("spectator-namespace", defaults.SpectatorNamespace, "socket.io namespace of the spectator feed.")
	insecureFlag := flagSet.Bool("spectator-insecure", defaults.SpectatorInsecure, "Skip TLS verification for the spectator feed.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *mFlag != "" {
		path = *mFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	} else if *modesFlag != "" {
		path = *modesFlag
	}
	slog.Debug("Modes path determined.", "path", path)

	if path == "" {
		slog.Debug("No modes path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ModesPath:          path,
		LogFormat:          logFormat,
		LogLevel:           logLevel,
		HealthcheckPort:    *healthPortFlag,
		TickInterval:       *tickFlag,
		SpectatorURL:       *spectatorFlag,
		SpectatorNamespace: *namespaceFlag,
		SpectatorInsecure:  *insecureFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
