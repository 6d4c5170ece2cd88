// File: entry.go
// Title: Log Entry and Fields
// Description: Defines the log entry record passed to formatters and the
//              Fields map type with its merge and clone helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-13
// Modified: 2025-09-13
//
// Change History:
// - 2025-09-13 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Fields carries structured key/value pairs attached to a log message
type Fields map[string]interface{}

// Err builds a Fields map holding an error message
func Err(err error) Fields {
	if err == nil {
		return Fields{}
	}
	return Fields{"error": err.Error()}
}

// Duration builds a Fields map holding a duration in both human and
// millisecond form
func Duration(key string, d time.Duration) Fields {
	return Fields{
		key:         d.String(),
		key + "_ms": float64(d.Nanoseconds()) / 1e6,
	}
}

// Merge returns a new Fields map containing the receiver's pairs
// overlaid with other's pairs
func (f Fields) Merge(other Fields) Fields {
	result := make(Fields, len(f)+len(other))
	for k, v := range f {
		result[k] = v
	}
	for k, v := range other {
		result[k] = v
	}
	return result
}

// Clone returns a shallow copy of the map
func (f Fields) Clone() Fields {
	result := make(Fields, len(f))
	for k, v := range f {
		result[k] = v
	}
	return result
}

// Entry is one log record handed to a formatter
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	Fields    Fields
}

// NewEntry creates an entry stamped with the current time
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}
