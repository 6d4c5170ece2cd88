// File: registry.go
// Title: Variable and Method Registry
// Description: Thread-safe storage for console variables, methods, and
//              their help texts, with first-registration-wins semantics.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-16
// Modified: 2025-09-16
//
// Change History:
// - 2025-09-16 v0.1.0: Initial implementation

package registry

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/msto63/mConsole/console/parser"
	mconerror "github.com/msto63/mConsole/core/error"
	"github.com/msto63/mConsole/core/log"
	"github.com/msto63/mConsole/utils/stringx"
)

// Handler is a registered console method. It receives the parsed command
// and reports results by setting cmd.ReturnText. A returned error is
// surfaced to the caller of the console unchanged.
type Handler func(ctx context.Context, cmd *parser.Command) error

// Variable is a registered console variable: the accessor over host
// storage, the registration flags, and an optional update hook fired
// after every successful command-driven write with the fresh value.
type Variable struct {
	Accessor Accessor
	Flags    Flags
	OnUpdate func(value any)
}

// HelpEntry pairs a registered name with its description.
type HelpEntry struct {
	Name        string
	Description string
}

// Options configures a Registry.
type Options struct {
	// Logger receives registration diagnostics. Defaults to the
	// package default logger.
	Logger *log.Logger
}

// Registry holds the named targets of a console. Variables and methods
// live in separate namespaces; dispatch decides which one wins when a
// name exists in both. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	vars    map[string]Variable
	methods map[string]Handler
	help    map[string]string
	logger  *log.Logger
}

// New creates an empty registry.
func New(opts Options) *Registry {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault()
	}
	return &Registry{
		vars:    make(map[string]Variable),
		methods: make(map[string]Handler),
		help:    make(map[string]string),
		logger:  logger.WithField("component", "registry"),
	}
}

// RegisterVariable binds a named variable to the given accessor. The
// first registration of a name wins; repeats are logged and ignored.
// A FlagUnregistered registration is a no-op. The same name may also
// carry a method; dispatch resolves between them by argument count.
func (r *Registry) RegisterVariable(name string, accessor Accessor, description string, flags Flags, onUpdate func(value any)) error {
	if err := validateName(name, "variable"); err != nil {
		return err
	}
	if accessor == nil {
		return mconerror.New("variable accessor is nil").
			WithCode(mconerror.CodeInvalidInput).
			WithOperation("register-variable").
			WithDetail("name", name)
	}
	if flags.IsUnregistered() {
		r.logger.Debug("variable registration skipped", log.Fields{
			"name":  name,
			"flags": flags.String(),
		})
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.vars[name]; exists {
		r.logger.Warn("variable already registered, keeping first binding", log.Fields{
			"name": name,
		})
		return nil
	}

	r.vars[name] = Variable{
		Accessor: accessor,
		Flags:    flags,
		OnUpdate: onUpdate,
	}
	// A method under the same name keeps its help text.
	if _, exists := r.help[name]; !exists {
		r.help[name] = description
	}

	r.logger.Debug("variable registered", log.Fields{
		"name":  name,
		"flags": flags.String(),
	})
	return nil
}

// RegisterMethod binds a named method. The first registration of a name
// wins; repeats are logged and ignored.
func (r *Registry) RegisterMethod(name string, handler Handler, description string) error {
	if err := validateName(name, "method"); err != nil {
		return err
	}
	if handler == nil {
		return mconerror.New("method handler is nil").
			WithCode(mconerror.CodeInvalidInput).
			WithOperation("register-method").
			WithDetail("name", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.methods[name]; exists {
		r.logger.Warn("method already registered, keeping first binding", log.Fields{
			"name": name,
		})
		return nil
	}

	r.methods[name] = handler
	// A variable under the same name keeps its help text.
	if _, exists := r.help[name]; !exists {
		r.help[name] = description
	}

	r.logger.Debug("method registered", log.Fields{
		"name": name,
	})
	return nil
}

// Variable returns the registered variable for name.
func (r *Registry) Variable(name string) (Variable, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.vars[name]
	return v, ok
}

// Method returns the registered handler for name.
func (r *Registry) Method(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.methods[name]
	return h, ok
}

// VariableExists reports whether a variable is registered under name.
func (r *Registry) VariableExists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.vars[name]
	return ok
}

// MethodExists reports whether a method is registered under name.
func (r *Registry) MethodExists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.methods[name]
	return ok
}

// Help returns the description registered for name.
func (r *Registry) Help(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.help[name]
	return h, ok
}

// ListHelp returns all registered names with their descriptions,
// sorted by name.
func (r *Registry) ListHelp() []HelpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]HelpEntry, 0, len(r.help))
	for name, description := range r.help {
		entries = append(entries, HelpEntry{Name: name, Description: description})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// VariableCount returns the number of registered variables.
func (r *Registry) VariableCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.vars)
}

// MethodCount returns the number of registered methods.
func (r *Registry) MethodCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.methods)
}

// validateName rejects names the tokenizer could never produce as a
// command target.
func validateName(name, kind string) error {
	if stringx.IsBlank(name) {
		return mconerror.New(kind + " name is empty").
			WithCode(mconerror.CodeInvalidInput).
			WithOperation("register-" + kind)
	}
	if strings.ContainsAny(name, " \t\n\r") {
		return mconerror.New(kind + " name contains whitespace").
			WithCode(mconerror.CodeInvalidInput).
			WithOperation("register-" + kind).
			WithDetail("name", name)
	}
	return nil
}
