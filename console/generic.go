// File: generic.go
// Title: Typed Console Access
// Description: Generic registration and typed read paths over the scalar
//              accessors: RegisterVar, GetVar, and ExecuteAs.
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
	"fmt"

	"github.com/msto63/mConsole/console/registry"
	mconerror "github.com/msto63/mConsole/core/error"
)

// Scalar enumerates the storage types the built-in accessors cover.
// Named types with scalar underlying types register through
// RegisterAccessor with a host-implemented accessor instead.
type Scalar interface {
	string | bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// RegisterVar binds a named variable to the host's storage. The update
// hook, when non-nil, fires after every successful command-driven write
// with the fresh value.
func RegisterVar[T Scalar](c *Console, name string, target *T, description string, flags registry.Flags, onUpdate func(value T)) error {
	if target == nil {
		return mconerror.New("variable storage is nil").
			WithCode(mconerror.CodeInvalidInput).
			WithOperation("register-var").
			WithDetail("name", name)
	}
	accessor, err := registry.NewScalarAccessor(target)
	if err != nil {
		return err
	}
	var hook func(any)
	if onUpdate != nil {
		hook = func(value any) {
			if v, ok := value.(T); ok {
				onUpdate(v)
			}
		}
	}
	return c.registry.RegisterVariable(name, accessor, description, flags, hook)
}

// GetVar reads a registered variable's current value with its Go type.
func GetVar[T Scalar](c *Console, name string) (T, error) {
	var zero T
	v, ok := c.registry.Variable(name)
	if !ok {
		return zero, mconerror.New("no variable found").
			WithCode(mconerror.CodeTargetNotFound).
			WithOperation("get-var").
			WithDetail("name", name)
	}
	value := v.Accessor.Read()
	t, ok := value.(T)
	if !ok {
		return zero, errTypedMismatch(name, zero, value)
	}
	return t, nil
}

// ExecuteAs runs one command line and returns the typed result. For a
// variable read or write this is the variable's value after the
// command; method invocations have textual results only and yield the
// zero value.
func ExecuteAs[T Scalar](ctx context.Context, c *Console, line string) (T, error) {
	var zero T
	cmd, err := c.run(ctx, line)
	if err != nil {
		return zero, err
	}
	v, ok := c.registry.Variable(cmd.Target)
	if !ok || cmd.Argc() > 1 {
		return zero, nil
	}
	value := v.Accessor.Read()
	t, ok := value.(T)
	if !ok {
		return zero, errTypedMismatch(cmd.Target, zero, value)
	}
	return t, nil
}

func errTypedMismatch(name string, want, got any) error {
	return mconerror.New("variable value does not match requested type").
		WithCode(mconerror.CodeTypeMismatch).
		WithDetail("name", name).
		WithDetail("want", fmt.Sprintf("%T", want)).
		WithDetail("got", fmt.Sprintf("%T", got))
}
