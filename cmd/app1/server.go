package main

import (
	"context"
	"fmt"

	"github.com/atlanticdynamic/app1/internal/config"
	"github.com/atlanticdynamic/app1/internal/logging"
	"github.com/atlanticdynamic/app1/internal/server"
	"github.com/urfave/cli/v3"
)

func newServerCmd() *cli.Command {
	return &cli.Command{
		Name:    "server",
		Aliases: []string{"serve"},
		Usage:   "Start the App1 HTTP server",
		Action:  serverAction,
	}
}

func serverAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(rawFromCommand(cmd))
	if err != nil {
		return cli.Exit(err, 1)
	}

	logger, logCloser, err := logging.SetupLogger(cfg.LogLevel, cfg.LogFormat, cfg.LogOutput)
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to set up logging: %w", err), 1)
	}
	defer func() { _ = logCloser.Close() }()

	if err := server.Run(ctx, logger, cfg); err != nil {
		return cli.Exit(err, 1)
	}

	logger.Info("Server shutdown complete")
	return nil
}
