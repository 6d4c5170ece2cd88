// File: timer.go
// Title: Performance Timer
// Description: Provides operation timing that logs elapsed durations through
//              the logger, with intermediate checkpoints for multi-stage
//              operations such as dispatch.
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

// Timer measures the duration of one operation
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	stopped   bool
}

// NewTimer creates a running timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
	}
}

// WithField adds a field logged on completion
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Checkpoint logs an intermediate elapsed time at debug level
func (t *Timer) Checkpoint(name string, fields ...Fields) {
	if t.stopped || t.logger == nil {
		return
	}
	elapsed := t.Elapsed()
	combined := t.fields.Merge(Fields{
		"operation":  t.operation,
		"checkpoint": name,
		"elapsed":    elapsed.String(),
		"elapsed_ms": float64(elapsed.Nanoseconds()) / 1e6,
	})
	for _, f := range fields {
		combined = combined.Merge(f)
	}
	t.logger.Debug(t.operation+" checkpoint: "+name, combined)
}

// Stop stops the timer and logs the total duration at debug level.
// Returns the elapsed time; subsequent calls are no-ops returning zero.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger != nil {
		t.logger.Debug(t.operation+" completed", t.fields.Merge(Fields{
			"operation":   t.operation,
			"duration":    elapsed.String(),
			"duration_ms": float64(elapsed.Nanoseconds()) / 1e6,
		}))
	}
	return elapsed
}

// StopWithError stops the timer and logs the failure with the duration
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger != nil {
		t.logger.ErrorWithErr(t.operation+" failed", err, t.fields.Merge(Fields{
			"operation":   t.operation,
			"duration":    elapsed.String(),
			"duration_ms": float64(elapsed.Nanoseconds()) / 1e6,
		}))
	}
	return elapsed
}

// Cancel stops the timer without logging
func (t *Timer) Cancel() {
	t.stopped = true
}

// IsRunning reports whether the timer is still running
func (t *Timer) IsRunning() bool {
	return !t.stopped
}
