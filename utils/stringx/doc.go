// Package stringx provides small string helpers used across mConsole.
//
// Package: stringx
// Title: String Utility Functions
// Description: Implements the handful of string operations the console core
//              and clients need beyond the standard library: blank checks for
//              input validation, Unicode-safe truncation for log previews,
//              and case-insensitive prefix matching for completion.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-14
// Modified: 2025-09-14
//
// Change History:
// - 2025-09-14 v0.1.0: Initial implementation
package stringx
