// File: stringx_test.go
// Title: String Utility Unit Tests
// Description: Tests for blank checks, truncation and prefix matching.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-14
// Modified: 2025-09-14
//
// Change History:
// - 2025-09-14 v0.1.0: Initial test suite

package stringx

import (
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n ", true},
		{"a", false},
		{"  a  ", false},
		{" ", true}, // non-breaking space
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.expected {
				t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.expected)
			}
			if got := IsNotBlank(tt.input); got == tt.expected {
				t.Errorf("IsNotBlank(%q) = %v, want %v", tt.input, got, !tt.expected)
			}
		})
	}
}

func TestIsEmpty(t *testing.T) {
	if !IsEmpty("") {
		t.Error("Expected empty string to be empty")
	}
	if IsEmpty(" ") {
		t.Error("Expected whitespace to not be empty")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		expected string
	}{
		{"Fits untouched", "hello", 10, "...", "hello"},
		{"Exact length untouched", "hello", 5, "...", "hello"},
		{"Truncated with ellipsis", "hello world", 8, "...", "hello..."},
		{"Zero length", "hello", 0, "...", ""},
		{"Ellipsis longer than limit", "hello", 2, "...", "he"},
		{"Unicode not split", "héllo wörld", 7, "…", "héllo …"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.expected {
				t.Errorf("Truncate(%q, %d, %q) = %q, want %q",
					tt.input, tt.maxLen, tt.ellipsis, got, tt.expected)
			}
		})
	}
}

func TestHasPrefixFold(t *testing.T) {
	tests := []struct {
		s        string
		prefix   string
		expected bool
	}{
		{"console.prompt", "con", true},
		{"console.prompt", "CON", true},
		{"Console.Prompt", "console.", true},
		{"console", "console.prompt", false},
		{"help", "he", true},
		{"help", "", true},
		{"add", "help", false},
	}

	for _, tt := range tests {
		t.Run(tt.s+"/"+tt.prefix, func(t *testing.T) {
			if got := HasPrefixFold(tt.s, tt.prefix); got != tt.expected {
				t.Errorf("HasPrefixFold(%q, %q) = %v, want %v",
					tt.s, tt.prefix, got, tt.expected)
			}
		})
	}
}
