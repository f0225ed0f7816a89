package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

// Version is set during build using ldflags
var Version = "dev"

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "app1",
		Version: Version,
		Usage:   "Serve the App1 greeting, health and metrics endpoints",
		Flags:   configFlags(),
		Action:  serverAction,
		Commands: []*cli.Command{
			newServerCmd(),
			newConfigCmd(),
			newVersionCmd(),
		},
	}
}

// output returns the root command's writer, or stdout when none is set.
func output(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
