package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupHandlerText(t *testing.T) {
	tests := []struct {
		name          string
		logLevel      string
		expectedLevel log.Level
		expectCaller  bool
	}{
		{name: "trace level", logLevel: "trace", expectedLevel: log.DebugLevel, expectCaller: true},
		{name: "debug level", logLevel: "debug", expectedLevel: log.DebugLevel},
		{name: "info level", logLevel: "info", expectedLevel: log.InfoLevel},
		{name: "warning level", logLevel: "warning", expectedLevel: log.WarnLevel},
		{name: "error level", logLevel: "ERROR", expectedLevel: log.ErrorLevel},
		{name: "unknown defaults to info", logLevel: "chatty", expectedLevel: log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			handler := SetupHandlerText(tt.logLevel, buf)
			require.NotNil(t, handler)

			logger, ok := handler.(*log.Logger)
			require.True(t, ok, "expected *log.Logger, got %T", handler)
			assert.Equal(t, tt.expectedLevel, logger.GetLevel())

			slog.New(handler).Error("test message", "key", "value")
			output := buf.String()
			assert.Contains(t, output, "test message")
			assert.Contains(t, output, "key")
			assert.Contains(t, output, "value")
			if tt.expectCaller {
				assert.Contains(t, output, ".go:")
			}
		})
	}
}

func TestSetupHandlerText_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(SetupHandlerText("warn", buf))

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
}

func TestSetupHandlerJSON(t *testing.T) {
	t.Run("writes json at the configured level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := slog.New(SetupHandlerJSON("info", buf))

		logger.Debug("hidden")
		logger.Info("test message", "key", "value")

		output := buf.String()
		assert.NotContains(t, output, "hidden")
		assert.Contains(t, output, `"msg":"test message"`)
		assert.Contains(t, output, `"key":"value"`)
		assert.Contains(t, output, `"level":"INFO"`)
	})

	t.Run("trace includes source", func(t *testing.T) {
		buf := &bytes.Buffer{}
		slog.New(SetupHandlerJSON("trace", buf)).Debug("traced")
		assert.Contains(t, buf.String(), `"source"`)
	})
}

func TestSetupHandler(t *testing.T) {
	buf := &bytes.Buffer{}

	assert.IsType(t, &slog.JSONHandler{}, SetupHandler("info", "json", buf))
	assert.IsType(t, &slog.JSONHandler{}, SetupHandler("info", "JSON", buf))
	assert.IsType(t, &log.Logger{}, SetupHandler("info", "text", buf))
	assert.IsType(t, &log.Logger{}, SetupHandler("info", "", buf))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("trace"))
	assert.Equal(t, slog.LevelDebug, ParseLevel("Debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
}

func TestSetupLogger(t *testing.T) {
	originalDefault := slog.Default()
	defer slog.SetDefault(originalDefault)

	t.Run("installs default logger writing to a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "app1.log")

		logger, closer, err := SetupLogger("info", "json", path)
		require.NoError(t, err)
		require.NotNil(t, logger)
		require.NotNil(t, closer)
		assert.Same(t, logger, slog.Default())

		slog.Info("hello from default logger")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "hello from default logger")

		require.NoError(t, closer.Close())
		file, ok := closer.(*os.File)
		require.True(t, ok, "file output should be closed through the returned closer")
		_, err = file.Write([]byte("late"))
		assert.ErrorIs(t, err, os.ErrClosed)
	})

	t.Run("standard streams are left open", func(t *testing.T) {
		_, closer, err := SetupLogger("info", "text", "stderr")
		require.NoError(t, err)
		require.NoError(t, closer.Close())
		_, err = os.Stderr.Write(nil)
		assert.NoError(t, err)
	})

	t.Run("rejects unsupported output", func(t *testing.T) {
		logger, closer, err := SetupLogger("info", "text", "syslog://localhost")
		require.Error(t, err)
		assert.Nil(t, logger)
		assert.Nil(t, closer)
		assert.Contains(t, err.Error(), "failed to create log writer")
	})
}
