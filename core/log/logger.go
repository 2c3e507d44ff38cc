// File: logger.go
// Title: Structured Logger
// Description: Implements the Logger type on top of zerolog. Loggers are
//              immutable: every With* call returns a derived logger.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation backed by zerolog

package log

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Fields holds structured key/value pairs attached to a log entry
type Fields map[string]interface{}

// Field creates a single-entry Fields map
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates a Fields map carrying err under the "error" key
func Err(err error) Fields {
	if err == nil {
		return Fields{}
	}
	return Fields{zerolog.ErrorFieldName: err.Error()}
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// Logger is a structured logger with contextual fields
type Logger struct {
	zl     zerolog.Logger
	level  Level
	format Format
	output io.Writer
	name   string
	fields Fields
}

// New creates a logger writing JSON at info level to stderr
func New() *Logger {
	return NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON})
}

// NewWithConfig creates a logger from config. A nil Output means stderr.
func NewWithConfig(config Config) *Logger {
	l := &Logger{
		level:  config.Level,
		format: config.Format,
		output: config.Output,
		name:   config.Name,
		fields: Fields{},
	}
	if l.output == nil {
		l.output = os.Stderr
	}
	l.rebuild()
	return l
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return NewWithConfig(Config{Level: LevelDisabled, Output: io.Discard})
}

func (l *Logger) rebuild() {
	var w io.Writer = l.output
	if l.format == FormatText {
		w = zerolog.ConsoleWriter{Out: l.output, NoColor: true, TimeFormat: "15:04:05"}
	}
	ctx := zerolog.New(w).Level(l.level.zerolog()).With().Timestamp()
	if l.name != "" {
		ctx = ctx.Str("logger", l.name)
	}
	if len(l.fields) > 0 {
		ctx = ctx.Fields(map[string]interface{}(l.fields))
	}
	l.zl = ctx.Logger()
}

func (l *Logger) clone() *Logger {
	c := &Logger{
		level:  l.level,
		format: l.format,
		output: l.output,
		name:   l.name,
		fields: make(Fields, len(l.fields)),
	}
	for k, v := range l.fields {
		c.fields[k] = v
	}
	return c
}

// WithLevel returns a copy logging at level and above
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	c.rebuild()
	return c
}

// WithFormat returns a copy using format
func (l *Logger) WithFormat(format Format) *Logger {
	c := l.clone()
	c.format = format
	c.rebuild()
	return c
}

// WithOutput returns a copy writing to output
func (l *Logger) WithOutput(output io.Writer) *Logger {
	c := l.clone()
	c.output = output
	c.rebuild()
	return c
}

// WithName returns a copy tagged with a logger name
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	c.rebuild()
	return c
}

// WithField returns a copy that adds key=value to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Fields{key: value})
}

// WithFields returns a copy that adds fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	for k, v := range fields {
		c.fields[k] = v
	}
	c.rebuild()
	return c
}

// Level returns the minimum level this logger emits
func (l *Logger) Level() Level {
	return l.level
}

// IsLevelEnabled reports whether messages at level would be written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return l.level != LevelDisabled && level >= l.level
}

// Trace logs at trace level
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(l.zl.Trace(), message, fields)
}

// Debug logs at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(l.zl.Debug(), message, fields)
}

// Info logs at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(l.zl.Info(), message, fields)
}

// Warn logs at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(l.zl.Warn(), message, fields)
}

// Error logs at error level
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(l.zl.Error(), message, fields)
}

// ErrorWithErr logs message at error level with err attached
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(l.zl.Error().Err(err), message, fields)
}

// WarnWithErr logs message at warn level with err attached
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(l.zl.Warn().Err(err), message, fields)
}

func (l *Logger) log(ev *zerolog.Event, message string, fields []Fields) {
	if ev == nil {
		return
	}
	for _, f := range fields {
		ev = ev.Fields(map[string]interface{}(f))
	}
	ev.Msg(message)
}

var (
	defaultLogger = New()
	defaultMu     sync.RWMutex
)

// GetDefault returns the package-level logger
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level logger
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}

// Debug logs at debug level using the default logger
func Debug(message string, fields ...Fields) { GetDefault().Debug(message, fields...) }

// Info logs at info level using the default logger
func Info(message string, fields ...Fields) { GetDefault().Info(message, fields...) }

// Warn logs at warn level using the default logger
func Warn(message string, fields ...Fields) { GetDefault().Warn(message, fields...) }

// Error logs at error level using the default logger
func Error(message string, fields ...Fields) { GetDefault().Error(message, fields...) }
