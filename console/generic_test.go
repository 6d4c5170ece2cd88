// File: generic_test.go
// Title: Typed Access Tests
// Description: Tests for RegisterVar, GetVar, and ExecuteAs covering the
//              typed read paths and type mismatch handling.
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
	"testing"

	"github.com/msto63/mConsole/console/parser"
	mconerror "github.com/msto63/mConsole/core/error"
)

func TestGetVar(t *testing.T) {
	c := newTestConsole(t)

	s := "hello cpp"
	u := uint8(200)
	f := float32(3.142)
	b := true
	if err := RegisterVar(c, "test.string", &s, "", FlagDefault, nil); err != nil {
		t.Fatalf("RegisterVar: %v", err)
	}
	if err := RegisterVar(c, "test.uint", &u, "", FlagDefault, nil); err != nil {
		t.Fatalf("RegisterVar: %v", err)
	}
	if err := RegisterVar(c, "test.float", &f, "", FlagDefault, nil); err != nil {
		t.Fatalf("RegisterVar: %v", err)
	}
	if err := RegisterVar(c, "test.bool", &b, "", FlagDefault, nil); err != nil {
		t.Fatalf("RegisterVar: %v", err)
	}

	if got, err := GetVar[string](c, "test.string"); err != nil || got != "hello cpp" {
		t.Errorf("GetVar[string] = %q, %v", got, err)
	}
	if got, err := GetVar[uint8](c, "test.uint"); err != nil || got != 200 {
		t.Errorf("GetVar[uint8] = %d, %v", got, err)
	}
	if got, err := GetVar[float32](c, "test.float"); err != nil || got != 3.142 {
		t.Errorf("GetVar[float32] = %v, %v", got, err)
	}
	if got, err := GetVar[bool](c, "test.bool"); err != nil || got != true {
		t.Errorf("GetVar[bool] = %v, %v", got, err)
	}

	t.Run("missing variable", func(t *testing.T) {
		_, err := GetVar[uint8](c, "this.doesnt.exist")
		if err == nil {
			t.Fatal("expected error")
		}
		if !mconerror.HasCode(err, mconerror.CodeTargetNotFound) {
			t.Errorf("error code = %v, want %v", mconerror.GetCode(err), mconerror.CodeTargetNotFound)
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := GetVar[int](c, "test.uint")
		if err == nil {
			t.Fatal("expected error")
		}
		if !mconerror.HasCode(err, mconerror.CodeTypeMismatch) {
			t.Errorf("error code = %v, want %v", mconerror.GetCode(err), mconerror.CodeTypeMismatch)
		}
	})

	t.Run("host mutation visible", func(t *testing.T) {
		u = 17
		if got, err := GetVar[uint8](c, "test.uint"); err != nil || got != 17 {
			t.Errorf("GetVar[uint8] after host write = %d, %v", got, err)
		}
	})
}

func TestExecuteAs(t *testing.T) {
	c := newTestConsole(t)
	ctx := context.Background()

	u := uint8(200)
	s := "hello cpp"
	f := float32(3.142)
	n := 123
	if err := RegisterVar(c, "test.uint", &u, "", FlagDefault, nil); err != nil {
		t.Fatalf("RegisterVar: %v", err)
	}
	if err := RegisterVar(c, "test.string", &s, "", FlagDefault, nil); err != nil {
		t.Fatalf("RegisterVar: %v", err)
	}
	if err := RegisterVar(c, "test.float", &f, "", FlagDefault, nil); err != nil {
		t.Fatalf("RegisterVar: %v", err)
	}
	if err := RegisterVar(c, "test.integer", &n, "", FlagDefault, nil); err != nil {
		t.Fatalf("RegisterVar: %v", err)
	}

	t.Run("typed reads", func(t *testing.T) {
		if got, err := ExecuteAs[uint8](ctx, c, "test.uint"); err != nil || got != 200 {
			t.Errorf("ExecuteAs[uint8] = %d, %v", got, err)
		}
		if got, err := ExecuteAs[string](ctx, c, "test.string"); err != nil || got != "hello cpp" {
			t.Errorf("ExecuteAs[string] = %q, %v", got, err)
		}
		if got, err := ExecuteAs[float32](ctx, c, "test.float"); err != nil || got != 3.142 {
			t.Errorf("ExecuteAs[float32] = %v, %v", got, err)
		}
	})

	t.Run("typed write returns fresh value", func(t *testing.T) {
		got, err := ExecuteAs[int](ctx, c, "test.integer 42")
		if err != nil {
			t.Fatalf("ExecuteAs: %v", err)
		}
		if got != 42 || n != 42 {
			t.Errorf("ExecuteAs = %d, storage = %d, want 42", got, n)
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := ExecuteAs[int](ctx, c, "test.uint")
		if err == nil {
			t.Fatal("expected error")
		}
		if !mconerror.HasCode(err, mconerror.CodeTypeMismatch) {
			t.Errorf("error code = %v, want %v", mconerror.GetCode(err), mconerror.CodeTypeMismatch)
		}
	})

	t.Run("method yields zero value", func(t *testing.T) {
		err := c.RegisterMethod("answer", func(ctx context.Context, cmd *parser.Command) error {
			cmd.ReturnText = "42"
			return nil
		}, "")
		if err != nil {
			t.Fatalf("RegisterMethod: %v", err)
		}
		got, err := ExecuteAs[int](ctx, c, "answer")
		if err != nil {
			t.Fatalf("ExecuteAs: %v", err)
		}
		if got != 0 {
			t.Errorf("ExecuteAs on method = %d, want zero value", got)
		}
	})

	t.Run("errors propagate", func(t *testing.T) {
		_, err := ExecuteAs[int](ctx, c, "this.doesnt.exist")
		if err == nil {
			t.Fatal("expected error")
		}
		if !mconerror.HasCode(err, mconerror.CodeTargetNotFound) {
			t.Errorf("error code = %v, want %v", mconerror.GetCode(err), mconerror.CodeTargetNotFound)
		}
	})
}

func TestRegisterVarNilStorage(t *testing.T) {
	c := newTestConsole(t)

	err := RegisterVar(c, "broken", (*int)(nil), "", FlagDefault, nil)
	if err == nil {
		t.Fatal("nil storage should fail")
	}
	if !mconerror.HasCode(err, mconerror.CodeInvalidInput) {
		t.Errorf("error code = %v, want %v", mconerror.GetCode(err), mconerror.CodeInvalidInput)
	}
}
