// File: doc.go
// Title: Registry Package Documentation
// Description: Package documentation for the console registry, which holds
//              named variables bound to host storage and named methods.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-16
// Modified: 2025-09-16
//
// Change History:
// - 2025-09-16 v0.1.0: Initial implementation

// Package registry stores the named targets a console can dispatch to:
// variables bound to host-owned storage through Accessor implementations,
// and methods invoked with the parsed command.
//
// Variables are registered once; a second registration under the same name
// is logged and ignored, so the first binding stays authoritative for the
// registry's lifetime. All lookups return copies and are safe for
// concurrent use.
//
// The built-in accessors cover Go's scalar types with the conversion rules
// of the command language: integer text is parsed in base 10, decimal text
// as a float (truncated toward zero for integer storage), and boolean
// storage treats any non-zero number as true. Hosts with richer storage
// implement Accessor themselves.
package registry
