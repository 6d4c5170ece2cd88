// Package log provides structured, leveled logging for the mConsole library.
//
// Package: log
// Title: mConsole Logging
// Description: This package implements a lightweight structured logger with
//              log levels, field maps, pluggable text/JSON formatting and
//              performance timers. Console components log through it under a
//              "component" field; hosts may replace the default logger or
//              inject their own instance per console.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-13
// Modified: 2025-09-13
//
// Change History:
// - 2025-09-13 v0.1.0: Initial implementation
//
// Usage:
//
//	import mconlog "github.com/msto63/mConsole/core/log"
//
//	logger := mconlog.New().WithField("component", "dispatch")
//	logger.Info("command executed", mconlog.Fields{
//	    "target": "engine.fps",
//	    "argc":   1,
//	})
//
//	timer := logger.StartTimer("dispatch")
//	defer timer.Stop()
package log
