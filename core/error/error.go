// File: error.go
// Title: Structured Error Type
// Description: Implements the structured console error with fluent builders
//              for codes, severities, details and operations, plus stack
//              capture and helpers for code-based error inspection.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-12
// Modified: 2025-09-12
//
// Change History:
// - 2025-09-12 v0.1.0: Initial implementation

package error

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"time"
)

// MaxStackFrames limits how many frames are captured per error
const MaxStackFrames = 16

// Error is a structured error with a code, severity and optional context.
// All builder methods return the receiver so calls can be chained.
type Error struct {
	message   string
	code      Code
	severity  Severity
	details   map[string]interface{}
	operation string
	requestID string
	timestamp time.Time
	cause     error
	stack     []StackFrame
}

// StackFrame describes one captured call site
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// New creates a new error with the given message.
// Code defaults to CodeUnknown until set via WithCode.
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityLow,
		details:   make(map[string]interface{}),
		timestamp: time.Now(),
		stack:     captureStack(2),
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	e := New(fmt.Sprintf(format, args...))
	e.stack = captureStack(2)
	return e
}

// Wrap wraps an existing error with an additional message.
// Returns nil when err is nil. When err is itself an *Error, its code and
// severity carry over so classification survives wrapping.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	e := &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityLow,
		details:   make(map[string]interface{}),
		timestamp: time.Now(),
		cause:     err,
		stack:     captureStack(2),
	}
	var inner *Error
	if errors.As(err, &inner) {
		e.code = inner.code
		e.severity = inner.severity
	}
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code and adjusts the severity to the code's
// default unless a severity was set explicitly before
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	e.severity = SeverityFromCode(code)
	return e
}

// WithSeverity sets the severity level
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail attaches one key/value detail
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails attaches multiple details at once
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// WithOperation records the logical operation that failed
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithRequestID records the dispatch request the error belongs to
func (e *Error) WithRequestID(requestID string) *Error {
	e.requestID = requestID
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the severity level
func (e *Error) Severity() Severity {
	return e.severity
}

// Timestamp returns when the error was created
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Operation returns the recorded operation, if any
func (e *Error) Operation() string {
	return e.operation
}

// RequestID returns the recorded request ID, if any
func (e *Error) RequestID() string {
	return e.requestID
}

// Details returns a copy of the attached details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// StackTrace returns a copy of the captured stack frames
func (e *Error) StackTrace() []StackFrame {
	result := make([]StackFrame, len(e.stack))
	copy(result, e.stack)
	return result
}

// RootCause walks the cause chain to its end
func (e *Error) RootCause() error {
	var current error = e
	for {
		next := errors.Unwrap(current)
		if next == nil {
			return current
		}
		current = next
	}
}

// String returns a verbose single-line rendering including code, severity
// and sorted details, for logs and debugging
func (e *Error) String() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(string(e.code))
	b.WriteString("/")
	b.WriteString(e.severity.String())
	b.WriteString("] ")
	b.WriteString(e.Error())
	if e.operation != "" {
		b.WriteString(" op=")
		b.WriteString(e.operation)
	}
	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, e.details[k])
		}
	}
	return b.String()
}

// captureStack records up to MaxStackFrames call sites, skipping the
// constructor itself
func captureStack(skip int) []StackFrame {
	pcs := make([]uintptr, MaxStackFrames)
	n := runtime.Callers(skip+1, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	stack := make([]StackFrame, 0, n)
	for {
		frame, more := frames.Next()
		stack = append(stack, StackFrame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})
		if !more {
			break
		}
	}
	return stack
}

// HasCode reports whether err carries the given code anywhere in its chain
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.code == code
	}
	return false
}

// GetCode returns the code of err, or CodeUnknown for foreign errors
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}

// GetSeverity returns the severity of err, or SeverityLow for foreign errors
func GetSeverity(err error) Severity {
	var e *Error
	if errors.As(err, &e) {
		return e.severity
	}
	return SeverityLow
}
