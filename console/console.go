// File: console.go
// Title: Console Core
// Description: The Console type tying the tokenizer and the registry
//              together: command execution, variable read/write dispatch,
//              and method invocation.
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
	"errors"

	"github.com/google/uuid"

	"github.com/msto63/mConsole/console/parser"
	"github.com/msto63/mConsole/console/registry"
	mconerror "github.com/msto63/mConsole/core/error"
	"github.com/msto63/mConsole/core/log"
	"github.com/msto63/mConsole/utils/stringx"
)

// Options configures a Console.
type Options struct {
	// Logger receives dispatch diagnostics and the audit trail.
	// Defaults to the package default logger.
	Logger *log.Logger

	// Registry supplies the variable and method tables. A fresh
	// registry is created when nil. Passing a shared registry lets
	// several consoles dispatch against the same targets.
	Registry *registry.Registry

	// DisableBuiltins skips registration of the built-in methods
	// (currently just "help").
	DisableBuiltins bool
}

// Console dispatches command lines against a registry of variables and
// methods. Safe for concurrent use; commands from concurrent callers
// are individually atomic with respect to the registry, not each other.
type Console struct {
	registry *registry.Registry
	logger   *log.Logger
}

// New creates a console ready for registrations.
func New(opts Options) *Console {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault()
	}
	reg := opts.Registry
	if reg == nil {
		reg = registry.New(registry.Options{Logger: logger})
	}
	c := &Console{
		registry: reg,
		logger:   logger.WithField("component", "console"),
	}
	if !opts.DisableBuiltins {
		c.registerBuiltins()
	}
	return c
}

// Registry exposes the underlying registry for direct use.
func (c *Console) Registry() *registry.Registry {
	return c.registry
}

// RegisterAccessor binds a named variable through a host-implemented
// accessor. Most hosts with plain scalar storage use RegisterVar
// instead.
func (c *Console) RegisterAccessor(name string, accessor registry.Accessor, description string, flags registry.Flags, onUpdate func(value any)) error {
	return c.registry.RegisterVariable(name, accessor, description, flags, onUpdate)
}

// RegisterMethod binds a named method.
func (c *Console) RegisterMethod(name string, handler registry.Handler, description string) error {
	return c.registry.RegisterMethod(name, handler, description)
}

// VariableExists reports whether a variable is registered under name.
func (c *Console) VariableExists(name string) bool {
	return c.registry.VariableExists(name)
}

// MethodExists reports whether a method is registered under name.
func (c *Console) MethodExists(name string) bool {
	return c.registry.MethodExists(name)
}

// Help returns the description registered for name.
func (c *Console) Help(name string) (string, bool) {
	return c.registry.Help(name)
}

// ListHelp returns all registered names with descriptions, sorted.
func (c *Console) ListHelp() []registry.HelpEntry {
	return c.registry.ListHelp()
}

// Execute runs one command line and returns its textual result: the
// value after a variable read or write, or whatever a method put into
// the command's return text.
func (c *Console) Execute(ctx context.Context, line string) (string, error) {
	cmd, err := c.run(ctx, line)
	if err != nil {
		return "", err
	}
	return cmd.ReturnText, nil
}

// run executes one command line with the surrounding observability:
// request ID assignment, timing, and the audit trail.
func (c *Console) run(ctx context.Context, line string) (*parser.Command, error) {
	requestID := uuid.New().String()
	logger := c.logger.WithField("request_id", requestID)
	logger.Debug("command received", log.Fields{
		"line": stringx.Truncate(line, 64, "..."),
	})
	timer := logger.StartTimer("command")

	cmd, err := c.dispatch(ctx, requestID, line)

	fields := log.Fields{"success": err == nil}
	if cmd != nil {
		fields["target"] = cmd.Target
		fields["argc"] = cmd.Argc()
	}
	if err != nil {
		fields["error_code"] = string(mconerror.GetCode(err))
		fields["duration_ms"] = float64(timer.StopWithError(err).Nanoseconds()) / 1e6
		logger.Audit("command processed", fields)
		return nil, err
	}
	fields["duration_ms"] = float64(timer.Stop().Nanoseconds()) / 1e6
	logger.Audit("command processed", fields)
	return cmd, nil
}

// dispatch tokenizes the line and routes it. Target resolution order:
// a variable read for zero arguments, a variable write for one, and a
// method invocation otherwise. A method under the same name as a
// variable only runs when the argument count rules the variable out.
func (c *Console) dispatch(ctx context.Context, requestID, line string) (*parser.Command, error) {
	cmd, err := parser.Tokenize(line)
	if err != nil {
		return nil, withRequestID(err, requestID)
	}
	cmd.RequestID = requestID

	methodKnown := c.registry.MethodExists(cmd.Target)

	if v, ok := c.registry.Variable(cmd.Target); ok {
		switch {
		case cmd.Argc() == 0: // read
			cmd.ReturnText = v.Accessor.String()
			return cmd, nil

		case cmd.Argc() == 1: // write
			if err := c.writeVariable(cmd, v); err != nil {
				return cmd, withRequestID(err, requestID)
			}
			cmd.ReturnText = v.Accessor.String()
			return cmd, nil

		case !methodKnown:
			return cmd, mconerror.New("too many arguments for variable").
				WithCode(mconerror.CodeTooManyArguments).
				WithOperation("dispatch").
				WithDetail("target", cmd.Target).
				WithDetail("argc", cmd.Argc()).
				WithRequestID(requestID)
		}
		// More than one argument and a method shares the name: the
		// method takes the command.
	}

	if methodKnown {
		handler, _ := c.registry.Method(cmd.Target)
		if err := handler(ctx, cmd); err != nil {
			return cmd, withRequestID(err, requestID)
		}
		return cmd, nil
	}

	return cmd, mconerror.New("no variable or method found").
		WithCode(mconerror.CodeTargetNotFound).
		WithOperation("dispatch").
		WithDetail("target", cmd.Target).
		WithRequestID(requestID)
}

// writeVariable applies the single argument of cmd to the variable,
// routing by token kind, then fires the update hook with the fresh
// value.
func (c *Console) writeVariable(cmd *parser.Command, v registry.Variable) error {
	if v.Flags.IsReadOnly() {
		return mconerror.New("cannot write to a read-only variable").
			WithCode(mconerror.CodeReadOnly).
			WithOperation("write-variable").
			WithDetail("target", cmd.Target)
	}

	tok := cmd.Tokens[0]
	var err error
	switch tok.Kind {
	case parser.KindString:
		err = v.Accessor.Write(tok.Text)
	case parser.KindInteger:
		err = v.Accessor.WriteIntegerText(tok.Text)
	case parser.KindDecimal:
		err = v.Accessor.WriteDecimalText(tok.Text)
	case parser.KindBoolTrue, parser.KindBoolFalse:
		err = v.Accessor.WriteIntegerText(tok.Text)
	default:
		err = mconerror.New("unhandled token kind").
			WithCode(mconerror.CodeInternal).
			WithOperation("write-variable").
			WithDetail("kind", tok.Kind.String())
	}
	if err != nil {
		return err
	}

	if v.OnUpdate != nil {
		v.OnUpdate(v.Accessor.Read())
	}
	return nil
}

// withRequestID stamps the request ID onto structured errors that do
// not carry one yet. Foreign errors from method handlers pass through
// untouched.
func withRequestID(err error, requestID string) error {
	var me *mconerror.Error
	if errors.As(err, &me) && me.RequestID() == "" {
		me.WithRequestID(requestID)
	}
	return err
}
