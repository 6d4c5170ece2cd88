// File: default.go
// Title: Default Console
// Description: The process-wide default console for hosts that register
//              targets from scattered packages.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-17
// Modified: 2025-09-17
//
// Change History:
// - 2025-09-17 v0.1.0: Initial implementation

package console

import (
	"context"
	"sync"

	"github.com/msto63/mConsole/console/registry"
)

var (
	defaultMu      sync.RWMutex
	defaultConsole *Console
)

// Default returns the process-wide console, creating it with default
// options on first use.
func Default() *Console {
	defaultMu.RLock()
	c := defaultConsole
	defaultMu.RUnlock()
	if c != nil {
		return c
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultConsole == nil {
		defaultConsole = New(Options{})
	}
	return defaultConsole
}

// SetDefault replaces the process-wide console. A nil console is
// ignored. Registrations already made on the previous default do not
// carry over.
func SetDefault(c *Console) {
	if c == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultConsole = c
}

// Execute runs one command line on the default console.
func Execute(ctx context.Context, line string) (string, error) {
	return Default().Execute(ctx, line)
}

// RegisterMethod binds a named method on the default console.
func RegisterMethod(name string, handler registry.Handler, description string) error {
	return Default().RegisterMethod(name, handler, description)
}
