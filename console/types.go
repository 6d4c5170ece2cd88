// File: types.go
// Title: Re-exported Types
// Description: Aliases for the parser and registry types that make up
//              the public console surface, so typical hosts import only
//              this package.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-17
// Modified: 2025-09-17
//
// Change History:
// - 2025-09-17 v0.1.0: Initial implementation

package console

import (
	"github.com/msto63/mConsole/console/parser"
	"github.com/msto63/mConsole/console/registry"
)

// Command is the parsed form of one command line, handed to method
// handlers.
type Command = parser.Command

// Token is one classified command argument.
type Token = parser.Token

// Handler is a registered console method.
type Handler = registry.Handler

// Accessor binds a variable to host storage.
type Accessor = registry.Accessor

// Flags control variable registration behavior.
type Flags = registry.Flags

// HelpEntry pairs a registered name with its description.
type HelpEntry = registry.HelpEntry

// Variable registration flags.
const (
	FlagDefault      = registry.FlagDefault
	FlagDeveloper    = registry.FlagDeveloper
	FlagReadOnly     = registry.FlagReadOnly
	FlagUnregistered = registry.FlagUnregistered
)
