// File: registry_test.go
// Title: Registry Tests
// Description: Tests for variable and method registration, first-wins
//              semantics, lookups, help listings, and concurrent access.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-16
// Modified: 2025-09-16
//
// Change History:
// - 2025-09-16 v0.1.0: Initial implementation

package registry

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/msto63/mConsole/console/parser"
	mconerror "github.com/msto63/mConsole/core/error"
	"github.com/msto63/mConsole/core/log"
)

func newTestRegistry() *Registry {
	logger := log.NewWithConfig(log.Config{
		Level:  log.LevelError,
		Output: io.Discard,
	})
	return New(Options{Logger: logger})
}

func TestRegisterVariable(t *testing.T) {
	r := newTestRegistry()

	n := 10
	acc, err := NewScalarAccessor(&n)
	if err != nil {
		t.Fatalf("NewScalarAccessor: %v", err)
	}
	if err := r.RegisterVariable("test.integer", acc, "test integer", FlagDefault, nil); err != nil {
		t.Fatalf("RegisterVariable: %v", err)
	}

	if !r.VariableExists("test.integer") {
		t.Error("VariableExists = false after registration")
	}
	if r.MethodExists("test.integer") {
		t.Error("MethodExists = true for a variable")
	}

	v, ok := r.Variable("test.integer")
	if !ok {
		t.Fatal("Variable lookup failed")
	}
	if got := v.Accessor.Read(); got != 10 {
		t.Errorf("Read() = %v, want 10", got)
	}
	if v.Flags != FlagDefault {
		t.Errorf("Flags = %v, want default", v.Flags)
	}

	help, ok := r.Help("test.integer")
	if !ok || help != "test integer" {
		t.Errorf("Help = %q, %v; want %q, true", help, ok, "test integer")
	}
}

func TestRegisterVariableValidation(t *testing.T) {
	r := newTestRegistry()
	n := 0
	acc, _ := NewScalarAccessor(&n)

	tests := []struct {
		name    string
		varName string
		acc     Accessor
	}{
		{"empty name", "", acc},
		{"blank name", "   ", acc},
		{"name with space", "foo bar", acc},
		{"name with tab", "foo\tbar", acc},
		{"nil accessor", "ok.name", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.RegisterVariable(tt.varName, tt.acc, "", FlagDefault, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !mconerror.HasCode(err, mconerror.CodeInvalidInput) {
				t.Errorf("error code = %v, want %v", mconerror.GetCode(err), mconerror.CodeInvalidInput)
			}
		})
	}
}

func TestRegisterVariableFirstWins(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithConfig(log.Config{
		Level:  log.LevelWarn,
		Output: &buf,
	})
	r := New(Options{Logger: logger})

	first := 1
	second := 2
	firstAcc, _ := NewScalarAccessor(&first)
	secondAcc, _ := NewScalarAccessor(&second)

	if err := r.RegisterVariable("dup", firstAcc, "first", FlagDefault, nil); err != nil {
		t.Fatalf("first RegisterVariable: %v", err)
	}
	if err := r.RegisterVariable("dup", secondAcc, "second", FlagDefault, nil); err != nil {
		t.Fatalf("repeat RegisterVariable should not error: %v", err)
	}

	v, _ := r.Variable("dup")
	if got := v.Accessor.Read(); got != 1 {
		t.Errorf("repeat registration replaced binding: Read() = %v, want 1", got)
	}
	if help, _ := r.Help("dup"); help != "first" {
		t.Errorf("repeat registration replaced help: %q, want %q", help, "first")
	}
	if !strings.Contains(buf.String(), "already registered") {
		t.Errorf("expected warning about repeat registration, log output: %q", buf.String())
	}
}

func TestRegisterVariableUnregistered(t *testing.T) {
	r := newTestRegistry()
	n := 0
	acc, _ := NewScalarAccessor(&n)

	if err := r.RegisterVariable("hidden", acc, "", FlagUnregistered, nil); err != nil {
		t.Fatalf("RegisterVariable: %v", err)
	}
	if r.VariableExists("hidden") {
		t.Error("FlagUnregistered variable should not be registered")
	}
	if _, ok := r.Help("hidden"); ok {
		t.Error("FlagUnregistered variable should not have help")
	}
}

func TestRegisterMethod(t *testing.T) {
	r := newTestRegistry()

	called := false
	handler := func(ctx context.Context, cmd *parser.Command) error {
		called = true
		cmd.ReturnText = "done"
		return nil
	}
	if err := r.RegisterMethod("run", handler, "runs a thing"); err != nil {
		t.Fatalf("RegisterMethod: %v", err)
	}

	if !r.MethodExists("run") {
		t.Error("MethodExists = false after registration")
	}
	if r.VariableExists("run") {
		t.Error("VariableExists = true for a method")
	}

	h, ok := r.Method("run")
	if !ok {
		t.Fatal("Method lookup failed")
	}
	cmd := &parser.Command{Target: "run"}
	if err := h(context.Background(), cmd); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !called || cmd.ReturnText != "done" {
		t.Errorf("handler not invoked correctly: called=%v text=%q", called, cmd.ReturnText)
	}
}

func TestRegisterMethodValidation(t *testing.T) {
	r := newTestRegistry()

	if err := r.RegisterMethod("", func(context.Context, *parser.Command) error { return nil }, ""); err == nil {
		t.Error("empty name should fail")
	}
	if err := r.RegisterMethod("ok", nil, ""); err == nil {
		t.Error("nil handler should fail")
	}
}

func TestRegisterMethodFirstWins(t *testing.T) {
	r := newTestRegistry()

	got := ""
	first := func(ctx context.Context, cmd *parser.Command) error { got = "first"; return nil }
	second := func(ctx context.Context, cmd *parser.Command) error { got = "second"; return nil }

	if err := r.RegisterMethod("dup", first, "first"); err != nil {
		t.Fatalf("first RegisterMethod: %v", err)
	}
	if err := r.RegisterMethod("dup", second, "second"); err != nil {
		t.Fatalf("repeat RegisterMethod should not error: %v", err)
	}

	h, _ := r.Method("dup")
	if err := h(context.Background(), &parser.Command{}); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if got != "first" {
		t.Errorf("repeat registration replaced handler, invoked %q", got)
	}
}

func TestSharedNameKeepsFirstHelp(t *testing.T) {
	r := newTestRegistry()

	n := 0
	acc, _ := NewScalarAccessor(&n)
	if err := r.RegisterVariable("both", acc, "variable help", FlagDefault, nil); err != nil {
		t.Fatalf("RegisterVariable: %v", err)
	}
	if err := r.RegisterMethod("both", func(context.Context, *parser.Command) error { return nil }, "method help"); err != nil {
		t.Fatalf("RegisterMethod: %v", err)
	}

	if !r.VariableExists("both") || !r.MethodExists("both") {
		t.Fatal("name should exist in both namespaces")
	}
	if help, _ := r.Help("both"); help != "variable help" {
		t.Errorf("Help = %q, want the first registration's text", help)
	}
}

func TestListHelp(t *testing.T) {
	r := newTestRegistry()

	n := 0
	acc, _ := NewScalarAccessor(&n)
	_ = r.RegisterVariable("zeta", acc, "last", FlagDefault, nil)
	_ = r.RegisterMethod("alpha", func(context.Context, *parser.Command) error { return nil }, "first")
	_ = r.RegisterMethod("mid", func(context.Context, *parser.Command) error { return nil }, "middle")

	entries := r.ListHelp()
	if len(entries) != 3 {
		t.Fatalf("ListHelp returned %d entries, want 3", len(entries))
	}
	wantOrder := []string{"alpha", "mid", "zeta"}
	for i, want := range wantOrder {
		if entries[i].Name != want {
			t.Errorf("entries[%d].Name = %q, want %q", i, entries[i].Name, want)
		}
	}

	if r.VariableCount() != 1 {
		t.Errorf("VariableCount = %d, want 1", r.VariableCount())
	}
	if r.MethodCount() != 2 {
		t.Errorf("MethodCount = %d, want 2", r.MethodCount())
	}
}

func TestRegistryConcurrency(t *testing.T) {
	r := newTestRegistry()

	var wg sync.WaitGroup
	storage := make([]int, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			acc, err := NewScalarAccessor(&storage[i])
			if err != nil {
				t.Errorf("NewScalarAccessor: %v", err)
				return
			}
			name := fmt.Sprintf("var.%02d", i)
			if err := r.RegisterVariable(name, acc, "concurrent", FlagDefault, nil); err != nil {
				t.Errorf("RegisterVariable(%s): %v", name, err)
			}
			r.VariableExists(name)
			r.ListHelp()
		}(i)
	}
	wg.Wait()

	if r.VariableCount() != 50 {
		t.Errorf("VariableCount = %d, want 50", r.VariableCount())
	}
}

func BenchmarkRegistryLookup(b *testing.B) {
	r := newTestRegistry()
	n := 0
	acc, _ := NewScalarAccessor(&n)
	_ = r.RegisterVariable("bench.var", acc, "", FlagDefault, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Variable("bench.var")
	}
}
