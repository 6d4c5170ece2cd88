// File: builtin.go
// Title: Built-in Console Methods
// Description: Methods every console carries unless disabled, currently
//              the help listing.
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
	"strings"

	"github.com/msto63/mConsole/console/parser"
)

const helpHeader = "Method/variable list:"

func (c *Console) registerBuiltins() {
	_ = c.RegisterMethod("help", c.helpMethod,
		"Returns a list of variables/methods and their descriptions")
}

// helpMethod renders every registered name with its description, one
// per line, sorted by name.
func (c *Console) helpMethod(ctx context.Context, cmd *parser.Command) error {
	var sb strings.Builder
	sb.WriteString(helpHeader)
	sb.WriteByte('\n')
	for _, entry := range c.registry.ListHelp() {
		sb.WriteString(entry.Name)
		sb.WriteString("\t\t")
		sb.WriteString(entry.Description)
		sb.WriteByte('\n')
	}
	cmd.ReturnText = sb.String()
	return nil
}
