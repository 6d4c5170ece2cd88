// Package error provides structured error handling for the mConsole library.
//
// Package: error
// Title: mConsole Error Handling
// Description: This package implements a structured error type with error
//              codes, severity levels, contextual details and stack traces.
//              It gives the console core and its hosts one consistent way to
//              classify and inspect failures (parse errors, lookup misses,
//              rejected writes) without string matching.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-12
// Modified: 2025-09-12
//
// Change History:
// - 2025-09-12 v0.1.0: Initial implementation with codes and severities
//
// Usage:
//
//	import mconerror "github.com/msto63/mConsole/core/error"
//
//	// Create a new error with context
//	err := mconerror.New("variable is read-only").
//	    WithCode(mconerror.CodeReadOnly).
//	    WithDetail("name", "engine.fps")
//
//	// Wrap an existing error
//	wrapped := mconerror.Wrap(err, "command rejected").
//	    WithOperation("dispatch")
//
//	// Check for a specific code
//	if mconerror.HasCode(err, mconerror.CodeReadOnly) {
//	    // handle rejected write
//	}
package error
