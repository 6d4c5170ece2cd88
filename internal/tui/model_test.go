package tui

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/msto63/mConsole/console"
	"github.com/msto63/mConsole/core/log"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	logger := log.NewWithConfig(log.Config{
		Level:  log.LevelError,
		Output: io.Discard,
	})
	c := console.New(console.Options{Logger: logger})
	return NewModel(Options{
		Console: c,
		Logger:  logger,
		Version: "v0.1.0-test",
		Echo:    true,
	})
}

func TestNewModelRegistersReplTargets(t *testing.T) {
	m := newTestModel(t)

	for _, name := range []string{"console.prompt", "console.echo", "console.history", "console.version"} {
		if !m.console.VariableExists(name) {
			t.Errorf("variable %q not registered", name)
		}
	}
	if !m.console.MethodExists("clear") {
		t.Error("clear method not registered")
	}

	out, err := m.console.Execute(context.Background(), "console.version")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out != "v0.1.0-test" {
		t.Errorf("console.version = %q, want %q", out, "v0.1.0-test")
	}
	if _, err := m.console.Execute(context.Background(), "console.version v2"); err == nil {
		t.Error("console.version should be read-only")
	}
}

func TestRunLineTranscript(t *testing.T) {
	m := newTestModel(t)

	n := 7
	if err := console.RegisterVar(m.console, "n", &n, "", console.FlagDefault, nil); err != nil {
		t.Fatalf("RegisterVar: %v", err)
	}

	m.runLine("n")
	if len(m.transcript) != 2 {
		t.Fatalf("transcript length = %d, want echo plus output", len(m.transcript))
	}
	if !strings.Contains(m.transcript[0], "n") {
		t.Errorf("echo line = %q", m.transcript[0])
	}
	if !strings.Contains(m.transcript[1], "7") {
		t.Errorf("output line = %q", m.transcript[1])
	}

	m.runLine("does.not.exist")
	last := m.transcript[len(m.transcript)-1]
	if !strings.Contains(last, "ERROR: ") {
		t.Errorf("error line = %q, want ERROR prefix", last)
	}
}

func TestRunLineEchoToggle(t *testing.T) {
	m := newTestModel(t)

	m.runLine("console.echo false")
	if !strings.Contains(m.transcript[len(m.transcript)-1], "0") {
		t.Fatalf("write echo missing: %v", m.transcript)
	}

	before := len(m.transcript)
	m.runLine("console.echo")
	// Only the output line lands; the echo line is suppressed.
	if len(m.transcript) != before+1 {
		t.Errorf("transcript grew by %d lines, want 1", len(m.transcript)-before)
	}
}

func TestRunLineClear(t *testing.T) {
	m := newTestModel(t)

	m.runLine("help")
	if len(m.transcript) == 0 {
		t.Fatal("transcript empty after help")
	}
	m.runLine("clear")
	if len(m.transcript) != 0 {
		t.Errorf("transcript not cleared: %v", m.transcript)
	}
}

func TestHistoryRecall(t *testing.T) {
	m := newTestModel(t)

	m.runLine("help")
	m.runLine("console.echo")
	m.runLine("console.history")

	m.recallPrevious()
	if got := m.input.Value(); got != "console.history" {
		t.Errorf("first recall = %q", got)
	}
	m.recallPrevious()
	if got := m.input.Value(); got != "console.echo" {
		t.Errorf("second recall = %q", got)
	}
	m.recallNext()
	if got := m.input.Value(); got != "console.history" {
		t.Errorf("forward recall = %q", got)
	}

	// Consecutive duplicates collapse into one history entry.
	before := len(m.history)
	m.runLine("help")
	m.runLine("help")
	if len(m.history) != before+1 {
		t.Errorf("history grew by %d, want 1", len(m.history)-before)
	}
}

func TestHistoryLimit(t *testing.T) {
	m := newTestModel(t)

	m.runLine("console.history 3")
	m.runLine("help")
	m.runLine("console.echo")
	m.runLine("console.prompt")
	if len(m.history) != 3 {
		t.Errorf("history length = %d, want 3", len(m.history))
	}
	if m.history[0] == "console.history 3" {
		t.Error("oldest entry not dropped")
	}
}

func TestCompleteTarget(t *testing.T) {
	m := newTestModel(t)

	m.input.SetValue("console.e")
	m.completeTarget()
	if got := m.input.Value(); got != "console.echo " {
		t.Errorf("completion = %q, want %q", got, "console.echo ")
	}

	// Several candidates list instead of completing.
	m.input.SetValue("console.")
	m.completeTarget()
	if got := m.input.Value(); got != "console." {
		t.Errorf("ambiguous completion changed input to %q", got)
	}
	last := m.transcript[len(m.transcript)-1]
	for _, want := range []string{"console.echo", "console.history", "console.prompt", "console.version"} {
		if !strings.Contains(last, want) {
			t.Errorf("candidate list %q missing %q", last, want)
		}
	}

	// Arguments are never completed.
	m.input.SetValue("console.echo tr")
	m.completeTarget()
	if got := m.input.Value(); got != "console.echo tr" {
		t.Errorf("argument completion changed input to %q", got)
	}
}
