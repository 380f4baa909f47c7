// SPDX-License-Identifier: EPL-2.0

// Package logger configures the process-wide structured logger. It is a
// thin wrapper over zerolog with console and JSON output modes.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger wraps zerolog.Logger so callers depend on this package rather
// than on zerolog directly.
type Logger struct {
	logger zerolog.Logger
}

// Config selects the log level, output format and destination.
type Config struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // console, json
	Output string `yaml:"output" mapstructure:"output"` // stderr, stdout, or a file path
}

// DefaultConfig returns the stock logger configuration: info-level console
// output on stderr.
func DefaultConfig() *Config {
	return &Config{
		Level:  "info",
		Format: "console",
		Output: "stderr",
	}
}

var globalLogger *Logger

// Initialize sets up the global logger from config. A nil config uses the
// defaults.
func Initialize(config *Config) error {
	if config == nil {
		config = DefaultConfig()
	}

	level, err := zerolog.ParseLevel(config.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var output io.Writer
	switch strings.ToLower(config.Output) {
	case "stderr", "":
		output = os.Stderr
	case "stdout":
		output = os.Stdout
	default:
		if err := os.MkdirAll(filepath.Dir(config.Output), 0o755); err != nil {
			return err
		}
		file, err := os.OpenFile(config.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return err
		}
		output = file
	}

	var logger zerolog.Logger
	if config.Format == "json" {
		logger = zerolog.New(output)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		})
	}
	logger = logger.With().Timestamp().Logger()

	globalLogger = &Logger{logger: logger}
	log.Logger = logger
	return nil
}

// Get returns the global logger, initializing it with defaults on first
// use.
func Get() *Logger {
	if globalLogger == nil {
		_ = Initialize(nil)
	}
	return globalLogger
}

// WithComponent adds a component field to the logger.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{logger: l.logger.With().Str("component", component).Logger()}
}

// WithField adds a field to the logger.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{logger: l.logger.With().Interface(key, value).Logger()}
}

// Debug logs a debug message.
func (l *Logger) Debug() *zerolog.Event { return l.logger.Debug() }

// Info logs an info message.
func (l *Logger) Info() *zerolog.Event { return l.logger.Info() }

// Warn logs a warning message.
func (l *Logger) Warn() *zerolog.Event { return l.logger.Warn() }

// Error logs an error message.
func (l *Logger) Error() *zerolog.Event { return l.logger.Error() }

// Fatal logs a fatal message and exits.
func (l *Logger) Fatal() *zerolog.Event { return l.logger.Fatal() }

// Global convenience functions.

// Debug logs a debug message using the global logger.
func Debug() *zerolog.Event { return Get().Debug() }

// Info logs an info message using the global logger.
func Info() *zerolog.Event { return Get().Info() }

// Warn logs a warning message using the global logger.
func Warn() *zerolog.Event { return Get().Warn() }

// Error logs an error message using the global logger.
func Error() *zerolog.Event { return Get().Error() }

// Fatal logs a fatal message and exits using the global logger.
func Fatal() *zerolog.Event { return Get().Fatal() }

// WithComponent returns a logger with a component field using the global
// logger.
func WithComponent(component string) *Logger {
	return Get().WithComponent(component)
}
