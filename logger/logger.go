// Package logger wraps zerolog with application conventions: structured
// fields, console or JSON output, and automatic trace-ID enrichment from the
// request context.
package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kbukum/apibase/trace"
)

// Field names used across the application.
const (
	FieldTraceID   = "trace_id"
	FieldComponent = "component"
)

// Logger wraps zerolog.Logger with additional context.
type Logger struct {
	logger zerolog.Logger
}

// New creates a new logger instance from configuration.
func New(cfg *Config) *Logger {
	cfg.ApplyDefaults()

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var zl zerolog.Logger
	if strings.ToLower(cfg.Format) == "console" {
		zl = newConsoleLogger(cfg)
	} else {
		zl = zerolog.New(outputWriter(cfg.Output))
	}
	zl = zl.With().Timestamp().Logger()

	return &Logger{logger: zl}
}

// NewDefault creates a logger with default configuration.
func NewDefault() *Logger {
	return New(&Config{})
}

// WithContext returns a logger that tags every event with the trace ID
// carried by the context. Requests without a trace ID log "-" to keep the
// log shape stable.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	id := trace.ID(ctx)
	if id == "" {
		id = "-"
	}
	return &Logger{logger: l.logger.With().Str(FieldTraceID, id).Logger()}
}

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{logger: l.logger.With().Str(FieldComponent, name).Logger()}
}

// WithError returns a logger with an error field.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{logger: l.logger.With().Err(err).Logger()}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	event := l.logger.Debug()
	addFields(event, fields...)
	event.Msg(msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	event := l.logger.Info()
	addFields(event, fields...)
	event.Msg(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	event := l.logger.Warn()
	addFields(event, fields...)
	event.Msg(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...map[string]interface{}) {
	event := l.logger.Error()
	addFields(event, fields...)
	event.Msg(msg)
}

// Fatal logs a fatal message and exits.
func (l *Logger) Fatal(msg string, fields ...map[string]interface{}) {
	event := l.logger.Fatal()
	addFields(event, fields...)
	event.Msg(msg)
}

func addFields(event *zerolog.Event, fields ...map[string]interface{}) {
	for _, fm := range fields {
		for k, v := range fm {
			event.Interface(k, v)
		}
	}
}

func outputWriter(output string) *os.File {
	if strings.ToLower(output) == "stderr" {
		return os.Stderr
	}
	return os.Stdout
}

func newConsoleLogger(cfg *Config) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        outputWriter(cfg.Output),
		TimeFormat: "15:04:05",
		NoColor:    cfg.NoColor,
		FormatLevel: func(i interface{}) string {
			lvl := strings.ToUpper(fmt.Sprintf("%s", i))
			tag := map[string]string{
				"DEBUG": "[DBG]", "INFO": "[INF]", "WARN": "[WRN]",
				"ERROR": "[ERR]", "FATAL": "[FTL]",
			}[lvl]
			if tag == "" {
				tag = fmt.Sprintf("[%s]", lvl)
			}
			if cfg.NoColor {
				return tag
			}
			colour := map[string]string{
				"[DBG]": "\033[36m", "[INF]": "\033[32m", "[WRN]": "\033[33m",
				"[ERR]": "\033[31m", "[FTL]": "\033[35m",
			}[tag]
			if colour == "" {
				return tag
			}
			return colour + tag + "\033[0m"
		},
	})
}
