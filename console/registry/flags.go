// File: flags.go
// Title: Variable Flags
// Description: Bit flags attached to console variables at registration
//              time, controlling visibility and write access.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-16
// Modified: 2025-09-16
//
// Change History:
// - 2025-09-16 v0.1.0: Initial implementation

package registry

import "strings"

// Flags is a bit set attached to a variable at registration time.
type Flags uint32

const (
	// FlagDefault marks a plain variable with no special handling.
	FlagDefault Flags = 0

	// FlagDeveloper marks a variable intended for development builds.
	// The registry stores the flag; hosts decide what to do with it.
	FlagDeveloper Flags = 1 << 1

	// FlagReadOnly rejects command-driven writes. The host can still
	// mutate the bound storage directly.
	FlagReadOnly Flags = 1 << 2

	// FlagUnregistered turns the registration into a no-op, keeping the
	// variable out of the registry entirely.
	FlagUnregistered Flags = 1 << 3
)

// Has reports whether all bits of other are set.
func (f Flags) Has(other Flags) bool {
	return f&other == other
}

// IsReadOnly reports whether FlagReadOnly is set.
func (f Flags) IsReadOnly() bool {
	return f.Has(FlagReadOnly)
}

// IsDeveloper reports whether FlagDeveloper is set.
func (f Flags) IsDeveloper() bool {
	return f.Has(FlagDeveloper)
}

// IsUnregistered reports whether FlagUnregistered is set.
func (f Flags) IsUnregistered() bool {
	return f.Has(FlagUnregistered)
}

// String renders the set flags as a pipe-separated list.
func (f Flags) String() string {
	if f == FlagDefault {
		return "default"
	}
	names := make([]string, 0, 3)
	if f.IsDeveloper() {
		names = append(names, "developer")
	}
	if f.IsReadOnly() {
		names = append(names, "readonly")
	}
	if f.IsUnregistered() {
		names = append(names, "unregistered")
	}
	if len(names) == 0 {
		return "default"
	}
	return strings.Join(names, "|")
}
