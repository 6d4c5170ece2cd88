// File: level.go
// Title: Log Level Definitions
// Description: Defines the log levels used to filter log output, including
//              the always-on Audit level used for the command audit trail.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-13
// Modified: 2025-09-13
//
// Change History:
// - 2025-09-13 v0.1.0: Initial implementation

package log

import (
	"strings"
)

// Level represents the importance of a log message
type Level int

const (
	// LevelTrace is the most verbose level, for development only
	LevelTrace Level = iota

	// LevelDebug provides detailed information for debugging
	LevelDebug

	// LevelInfo is the standard level for normal operation
	LevelInfo

	// LevelWarn indicates situations that deserve attention
	LevelWarn

	// LevelError indicates failed operations
	LevelError

	// LevelFatal indicates unrecoverable failures; logging at this level
	// terminates the process
	LevelFatal

	// LevelAudit marks audit trail records; audit messages bypass the
	// minimum-level filter
	LevelAudit
)

// String returns the lowercase name of the level
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	case LevelAudit:
		return "audit"
	default:
		return "unknown"
	}
}

// ShortString returns the three-letter tag used by the text formatter
func (l Level) ShortString() string {
	switch l {
	case LevelTrace:
		return "TRC"
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	case LevelFatal:
		return "FTL"
	case LevelAudit:
		return "AUD"
	default:
		return "???"
	}
}

// ShouldLog reports whether a message at this level passes the given
// minimum level. Audit messages always pass.
func (l Level) ShouldLog(minLevel Level) bool {
	if l == LevelAudit {
		return true
	}
	return l >= minLevel
}

// ParseLevel parses a level name, accepting long and short forms
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "fatal", "ftl":
		return LevelFatal, nil
	case "audit", "aud":
		return LevelAudit, nil
	default:
		return LevelInfo, &ParseError{Input: level, Type: "level"}
	}
}

// ParseError represents an invalid level or format name
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}
