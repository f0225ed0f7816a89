package main

import (
	"strconv"

	"github.com/atlanticdynamic/app1/internal/config"
	"github.com/urfave/cli/v3"
)

// configFlags are declared on the root command and inherited by every subcommand.
// Values are kept as strings so config.Load applies the same parsing to flags and
// environment variables.
func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Usage:   "TCP port for the HTTP listener",
			Value:   strconv.Itoa(config.DefaultPort),
			Sources: cli.EnvVars(config.EnvPort),
		},
		&cli.StringFlag{
			Name:    "debug",
			Aliases: []string{"d"},
			Usage:   `Enable debug mode when set to "true" (case-insensitive)`,
			Sources: cli.EnvVars(config.EnvDebug),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level (trace, debug, info, warn, error)",
			Value:   config.DefaultLogLevel,
			Sources: cli.EnvVars(config.EnvLogLevel),
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "Log format (text or json)",
			Value:   config.DefaultLogFormat,
			Sources: cli.EnvVars(config.EnvLogFormat),
		},
		&cli.StringFlag{
			Name:    "log-output",
			Usage:   "Log destination: stderr, stdout, or a file path",
			Value:   config.DefaultLogOutput,
			Sources: cli.EnvVars(config.EnvLogOutput),
		},
		&cli.StringFlag{
			Name:    "metrics-port",
			Usage:   "TCP port for the Prometheus listener, disabled when empty",
			Sources: cli.EnvVars(config.EnvMetricsPort),
		},
	}
}

func rawFromCommand(cmd *cli.Command) config.Raw {
	return config.Raw{
		Port:        cmd.String("port"),
		Debug:       cmd.String("debug"),
		LogLevel:    cmd.String("log-level"),
		LogFormat:   cmd.String("log-format"),
		LogOutput:   cmd.String("log-output"),
		MetricsPort: cmd.String("metrics-port"),
	}
}
