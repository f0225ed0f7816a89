package config

import (
	"strconv"

	"github.com/atlanticdynamic/app1/internal/fancy"
)

// String returns a pretty-printed tree representation of the config.
func (c *Config) String() string {
	return ConfigTree(c)
}

// ConfigTree renders the resolved settings as a styled tree.
func ConfigTree(cfg *Config) string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render("App1 Config"))

	listener := fancy.BranchNode("Listener", "")
	listener.Child(fancy.KeyValue("Address", fancy.ListenerText(cfg.ListenAddr())))
	listener.Child(fancy.KeyValue("Debug", strconv.FormatBool(cfg.Debug)))
	listener.Child(fancy.KeyValue("Environment", cfg.Environment()))
	t.Child(listener)

	logging := fancy.BranchNode("Logging", "")
	logging.Child(fancy.KeyValue("Level", cfg.LogLevel))
	logging.Child(fancy.KeyValue("Format", cfg.LogFormat))
	logging.Child(fancy.KeyValue("Output", cfg.LogOutput))
	t.Child(logging)

	metrics := fancy.BranchNode("Prometheus", fancy.ToggleText(cfg.MetricsEnabled()))
	if cfg.MetricsEnabled() {
		metrics.Child(fancy.KeyValue("Address", fancy.ListenerText(cfg.MetricsListenAddr())))
	}
	t.Child(metrics)

	return t.String()
}
