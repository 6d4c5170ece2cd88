// File: doc.go
// Title: Console Package Documentation
// Description: Package documentation for the embeddable runtime console.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-17
// Modified: 2025-09-17
//
// Change History:
// - 2025-09-17 v0.1.0: Initial implementation

// Package console provides an embeddable runtime console: a registry of
// named variables bound to host-owned storage and named methods, driven
// by a small textual command language.
//
// A command line names a target followed by space-separated arguments.
// Naming a variable without arguments reads it, naming it with one
// argument writes it, and naming a method invokes it with the parsed
// arguments. Quoted runs ('...' or "...") join multiple words into one
// string argument, and the bare literals true and false normalize to
// the numeric booleans 1 and 0.
//
// Basic usage:
//
//	volume := 0.8
//	c := console.New(console.Options{})
//	_ = console.RegisterVar(c, "audio.volume", &volume, "playback volume", console.FlagDefault, nil)
//
//	out, err := c.Execute(ctx, "audio.volume 0.5")
//	// out == "0.5", volume == 0.5
//
// The console never copies values: every read and write goes through an
// accessor over the host's storage, so host-side changes are visible on
// the next read. Hosts with storage beyond Go's scalar types implement
// the Accessor interface themselves and register it with
// RegisterAccessor.
//
// Typed results are available through ExecuteAs:
//
//	v, err := console.ExecuteAs[float64](ctx, c, "audio.volume")
//
// A process-wide default console is available through Default for hosts
// that want registration from scattered packages without passing a
// console handle around.
package console
