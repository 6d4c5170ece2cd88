// File: format.go
// Title: Log Output Formatters
// Description: Provides the text and JSON formatters that render log entries
//              into bytes, plus format parsing for configuration values.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-13
// Modified: 2025-09-13
//
// Change History:
// - 2025-09-13 v0.1.0: Initial implementation with text and JSON output

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Format selects the output encoding of a logger
type Format int

const (
	// FormatText renders human-readable single lines
	FormatText Format = iota

	// FormatJSON renders one JSON object per line
	FormatJSON
)

// String returns the name of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "console":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, &ParseError{Input: format, Type: "format"}
	}
}

// Formatter renders an entry into a line of output (including the
// trailing newline)
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// TextFormatter renders entries as
// "2006-01-02T15:04:05.000Z07:00 INF [name] message key=value ..."
type TextFormatter struct {
	TimestampFormat string
}

// NewTextFormatter creates a text formatter with the default timestamp layout
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	}
}

// Format implements the Formatter interface
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder
	b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
	b.WriteString(" ")
	b.WriteString(entry.Level.ShortString())
	if entry.Logger != "" {
		b.WriteString(" [")
		b.WriteString(entry.Logger)
		b.WriteString("]")
	}
	b.WriteString(" ")
	b.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, entry.Fields[k])
		}
	}
	b.WriteString("\n")
	return []byte(b.String()), nil
}

// JSONFormatter renders entries as one JSON object per line
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a JSON formatter with RFC3339 timestamps
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	}
}

// Format implements the Formatter interface
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+4)
	for k, v := range entry.Fields {
		data[k] = v
	}
	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message
	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}

	line, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(line, '\n'), nil
}

// GetFormatter returns the formatter for a format value
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	default:
		return NewTextFormatter()
	}
}
