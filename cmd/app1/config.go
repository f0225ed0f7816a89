package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/atlanticdynamic/app1/internal/config"
	"github.com/atlanticdynamic/app1/internal/fancy"
	"github.com/atlanticdynamic/app1/internal/server/handlers"
	"github.com/atlanticdynamic/app1/internal/server/metrics"
	"github.com/urfave/cli/v3"
)

func newConfigCmd() *cli.Command {
	return &cli.Command{
		Name:    "config",
		Aliases: []string{"show"},
		Usage:   "Print the resolved configuration and route table",
		Action:  configAction,
	}
}

func configAction(_ context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(rawFromCommand(cmd))
	if err != nil {
		return cli.Exit(err, 1)
	}

	w := output(cmd)
	fmt.Fprintln(w, cfg)
	fmt.Fprintln(w, routesTree(cfg))
	return nil
}

// routesTree renders the route table of every listener cfg enables.
func routesTree(cfg *config.Config) string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render("Routes"))

	table := handlers.New(cfg.Environment).Routes()
	app := listenerTree(cfg.ListenAddr(), len(table))
	for _, r := range table {
		app.AddChild(routeLine(r.Method, r.Path, r.Name))
	}
	t.Child(app.Tree())

	if cfg.MetricsEnabled() {
		prom := listenerTree(cfg.MetricsListenAddr(), 1)
		prom.AddChild(routeLine(http.MethodGet, metrics.ExpositionPath, "prometheus"))
		t.Child(prom.Tree())
	}

	return t.String()
}

func listenerTree(addr string, routes int) *fancy.ComponentTree {
	return fancy.NewComponentTree(
		fancy.ListenerText(addr) + " " + fancy.InfoStyle.Render(fmt.Sprintf("(%d)", routes)),
	)
}

func routeLine(method, path, name string) string {
	return fmt.Sprintf("%s %s %s",
		fancy.MethodText(method),
		fancy.RouteText(path),
		fancy.InfoStyle.Render(name),
	)
}
