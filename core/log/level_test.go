// File: level_test.go
// Title: Log Level Unit Tests
// Description: Tests for level names, filtering behavior and level parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-13
// Modified: 2025-09-13
//
// Change History:
// - 2025-09-13 v0.1.0: Initial test suite

package log

import (
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{LevelFatal, "fatal"},
		{LevelAudit, "audit"},
		{Level(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("String() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestLevel_ShouldLog(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		minLevel Level
		expected bool
	}{
		{"Debug below info threshold", LevelDebug, LevelInfo, false},
		{"Info at info threshold", LevelInfo, LevelInfo, true},
		{"Error above info threshold", LevelError, LevelInfo, true},
		{"Audit bypasses fatal threshold", LevelAudit, LevelFatal, true},
		{"Trace at trace threshold", LevelTrace, LevelTrace, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.ShouldLog(tt.minLevel); got != tt.expected {
				t.Errorf("ShouldLog(%s) = %v, want %v", tt.minLevel, got, tt.expected)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"DEBUG", LevelDebug, false},
		{"  info  ", LevelInfo, false},
		{"wrn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"audit", LevelAudit, false},
		{"loud", LevelInfo, true},
		{"", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if level != tt.expected {
				t.Errorf("ParseLevel(%q) = %s, want %s", tt.input, level, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"text", FormatText, false},
		{"console", FormatText, false},
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"xml", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, err := ParseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if format != tt.expected {
				t.Errorf("ParseFormat(%q) = %s, want %s", tt.input, format, tt.expected)
			}
		})
	}
}
