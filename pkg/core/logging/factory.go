// ============================================================================
// textkit - Text Normalization Toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating per invocation loggers
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/textkit/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format (text, json, console; default: text)
	Format string

	// Verbose forces the debug level unless Level is more detailed
	Verbose bool

	// Output defaults to stderr
	Output io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// NewLogger creates a foundation logger. Unknown levels and formats fall
// back to the defaults; their names are returned as problems so that the
// caller can report them once a logger exists.
func NewLogger(cfg LoggerConfig) (*mdwlog.Logger, []string) {
	var problems []string

	level := mdwlog.DefaultLevel()
	if strings.TrimSpace(cfg.Level) != "" {
		parsed, err := mdwlog.ParseLevel(cfg.Level)
		if err != nil {
			problems = append(problems, err.Error())
		} else {
			level = parsed
		}
	}
	if cfg.Verbose && level > mdwlog.LevelDebug {
		level = mdwlog.LevelDebug
	}

	format := mdwlog.FormatText
	if strings.TrimSpace(cfg.Format) != "" {
		parsed, err := mdwlog.ParseFormat(cfg.Format)
		if err != nil {
			problems = append(problems, err.Error())
		} else {
			format = parsed
		}
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	}), problems
}

// NewRequestID returns a fresh identifier for one invocation
func NewRequestID() string {
	return uuid.NewString()
}

// ForCommand tags logger with a new request ID and the command name
func ForCommand(logger *mdwlog.Logger, command string) (*mdwlog.Logger, string) {
	id := NewRequestID()
	return logger.WithRequestID(id).WithCommand(command), id
}
