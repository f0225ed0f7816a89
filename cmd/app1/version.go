package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func newVersionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the version information",
		Action: func(_ context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintf(output(cmd), "app1 version %s\n", cmd.Root().Version)
			return err
		},
	}
}
