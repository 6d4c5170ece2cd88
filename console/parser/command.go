// File: command.go
// Title: Parsed Command
// Description: Defines the Command produced by the tokenizer and consumed
//              by the dispatcher and by registered method handlers.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-15
// Modified: 2025-09-15
//
// Change History:
// - 2025-09-15 v0.1.0: Initial implementation

package parser

import (
	"strings"
)

// Command is one tokenized command line. It is created fresh per dispatch
// and discarded afterwards; no state survives between commands. Method
// handlers receive the command and may set ReturnText.
type Command struct {
	// Target is the first word of the line, resolved against the
	// variable and method registries. Never classified.
	Target string

	// Tokens are the classified arguments following the target.
	Tokens []Token

	// ReturnText is the display result of the command, set by the
	// dispatcher for variable operations and by handlers for methods.
	ReturnText string

	// RequestID identifies this dispatch in audit logs.
	RequestID string
}

// Argc returns the number of argument tokens
func (c *Command) Argc() int {
	return len(c.Tokens)
}

// String renders the command for logs and debugging
func (c *Command) String() string {
	var b strings.Builder
	b.WriteString(c.Target)
	for _, t := range c.Tokens {
		b.WriteString(" ")
		b.WriteString(t.String())
	}
	return b.String()
}
