// File: logger.go
// Title: Structured Logger
// Description: Implements the logger with level filtering, immutable
//              clone-based field chaining, pluggable formatting and the
//              package-wide default instance.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-13
// Modified: 2025-09-13
//
// Change History:
// - 2025-09-13 v0.1.0: Initial implementation

package log

import (
	"io"
	"os"
	"sync"
)

// Logger writes structured log entries. With* methods return clones, so a
// derived logger never mutates its parent and loggers are safe to share
// across goroutines.
type Logger struct {
	mu        *sync.Mutex
	level     Level
	formatter Formatter
	output    io.Writer
	name      string
	fields    Fields
}

// Config configures a logger instance
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a logger with defaults: info level, text format, stderr
func New() *Logger {
	return NewWithConfig(Config{})
}

// NewWithConfig creates a logger from a config, filling zero values with
// defaults
func NewWithConfig(config Config) *Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}
	return &Logger{
		mu:        &sync.Mutex{},
		level:     config.Level,
		formatter: GetFormatter(config.Format),
		output:    config.Output,
		name:      config.Name,
		fields:    make(Fields),
	}
}

// clone returns a copy sharing the output mutex so derived loggers still
// serialize writes against each other
func (l *Logger) clone() *Logger {
	return &Logger{
		mu:        l.mu,
		level:     l.level,
		formatter: l.formatter,
		output:    l.output,
		name:      l.name,
		fields:    l.fields.Clone(),
	}
}

// WithLevel returns a clone with the given minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	return c
}

// WithFormat returns a clone with the given output format
func (l *Logger) WithFormat(format Format) *Logger {
	c := l.clone()
	c.formatter = GetFormatter(format)
	return c
}

// WithOutput returns a clone writing to the given writer
func (l *Logger) WithOutput(output io.Writer) *Logger {
	c := l.clone()
	c.output = output
	return c
}

// WithName returns a clone carrying a logger name shown in every entry
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	return c
}

// WithField returns a clone with one additional persistent field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	c := l.clone()
	c.fields[key] = value
	return c
}

// WithFields returns a clone with additional persistent fields
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	for k, v := range fields {
		c.fields[k] = v
	}
	return c
}

// Level returns the logger's minimum level
func (l *Logger) Level() Level {
	return l.level
}

// Trace logs at trace level
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, fields...)
}

// Debug logs at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, fields...)
}

// Info logs at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, fields...)
}

// Warn logs at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, fields...)
}

// Error logs at error level
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, fields...)
}

// Fatal logs at fatal level and terminates the process
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, fields...)
	os.Exit(1)
}

// Audit logs an audit trail record; audit records bypass level filtering
func (l *Logger) Audit(message string, fields ...Fields) {
	l.log(LevelAudit, message, fields...)
}

// ErrorWithErr logs an error message with the error attached as a field
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	combined := Err(err)
	for _, f := range fields {
		combined = combined.Merge(f)
	}
	l.log(LevelError, message, combined)
}

// WarnWithErr logs a warning with the error attached as a field
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	combined := Err(err)
	for _, f := range fields {
		combined = combined.Merge(f)
	}
	l.log(LevelWarn, message, combined)
}

// StartTimer starts a performance timer that logs on Stop
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// log assembles and writes one entry
func (l *Logger) log(level Level, message string, fields ...Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.Fields = l.fields.Clone()
	for _, f := range fields {
		for k, v := range f {
			entry.Fields[k] = v
		}
	}

	line, err := l.formatter.Format(entry)
	if err != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.output.Write(line)
}

// Default logger management

var (
	defaultLogger   = New()
	defaultLoggerMu sync.RWMutex
)

// GetDefault returns the package default logger
func GetDefault() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package default logger
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = logger
}

// Package-level convenience functions using the default logger

// Debug logs at debug level on the default logger
func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

// Info logs at info level on the default logger
func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

// Warn logs at warn level on the default logger
func Warn(message string, fields ...Fields) {
	GetDefault().Warn(message, fields...)
}

// Error logs at error level on the default logger
func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}

// Audit logs an audit record on the default logger
func Audit(message string, fields ...Fields) {
	GetDefault().Audit(message, fields...)
}
