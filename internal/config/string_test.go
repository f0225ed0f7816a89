package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigTree(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := Load(Raw{}, WithLookup(lookupFrom(map[string]string{EnvEnvironment: "staging"})))
		require.NoError(t, err)

		out := cfg.String()
		assert.Contains(t, out, "App1 Config")
		assert.Contains(t, out, "0.0.0.0:8000")
		assert.Contains(t, out, "Debug: false")
		assert.Contains(t, out, "Environment: staging")
		assert.Contains(t, out, "Level: info")
		assert.Contains(t, out, "Format: text")
		assert.Contains(t, out, "Output: stderr")
		assert.Contains(t, out, "disabled")
		assert.NotContains(t, out, "0.0.0.0:0")
	})

	t.Run("metrics enabled", func(t *testing.T) {
		t.Parallel()
		cfg, err := Load(Raw{Port: "8080", Debug: "true", MetricsPort: "9100"})
		require.NoError(t, err)

		out := ConfigTree(cfg)
		assert.Contains(t, out, "0.0.0.0:8080")
		assert.Contains(t, out, "Debug: true")
		assert.Contains(t, out, "enabled")
		assert.Contains(t, out, "0.0.0.0:9100")
	})
}
