// Package logging builds the slog handlers used by app1.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/atlanticdynamic/app1/internal/logging/writers"
	"github.com/charmbracelet/log"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// SetupHandlerText returns a charmbracelet/log handler writing to writer (os.Stderr when nil).
// Debug and trace levels add timestamps, trace also reports the caller.
func SetupHandlerText(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	reportCaller := false
	reportTimestamp := false
	lvl := log.InfoLevel
	switch strings.ToLower(logLevel) {
	case "trace":
		reportCaller = true
		reportTimestamp = true
		lvl = log.DebugLevel
	case "debug":
		reportTimestamp = true
		lvl = log.DebugLevel
	case "warn", "warning":
		lvl = log.WarnLevel
	case "error":
		lvl = log.ErrorLevel
	}

	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: reportTimestamp,
		ReportCaller:    reportCaller,
		Level:           lvl,
	})
}

// SetupHandlerJSON returns a JSON slog handler writing to writer (os.Stdout when nil).
func SetupHandlerJSON(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level:     ParseLevel(logLevel),
		AddSource: strings.EqualFold(logLevel, "trace"),
	}
	return slog.NewJSONHandler(writer, opts)
}

// SetupHandler picks the text or JSON handler by format name.
func SetupHandler(logLevel, format string, writer io.Writer) slog.Handler {
	if strings.EqualFold(format, FormatJSON) {
		return SetupHandlerJSON(logLevel, writer)
	}
	return SetupHandlerText(logLevel, writer)
}

// SetupLogger resolves output into a writer and installs the resulting logger as
// slog's default. The returned closer releases a log file opened for output and
// is a no-op for stdout and stderr.
func SetupLogger(logLevel, format, output string) (*slog.Logger, io.Closer, error) {
	writer, err := writers.CreateWriter(output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log writer: %w", err)
	}

	logger := slog.New(SetupHandler(logLevel, format, writer))
	slog.SetDefault(logger)
	return logger, writers.Closer(writer), nil
}

// ParseLevel maps a level name onto slog levels. Trace is treated as debug,
// unknown names as info.
func ParseLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "trace", "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
