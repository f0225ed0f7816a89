package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Validate checks the settings that cannot be rejected by parsing alone.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel))
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat))
	}

	if c.MetricsEnabled() && c.MetricsPort == c.Port {
		errs = append(errs, fmt.Errorf("%w: %d", ErrPortConflict, c.Port))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrFailedToValidateConfig, errors.Join(errs...))
	}
	return nil
}
