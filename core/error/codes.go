// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes raised by the console core. Codes are
//              stable string identifiers that callers can match on instead of
//              parsing error messages.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-12
// Modified: 2025-09-12
//
// Change History:
// - 2025-09-12 v0.1.0: Initial set of console error codes

package error

// Code represents a stable error code
type Code string

const (
	// CodeUnknown is the default code for errors created without one
	CodeUnknown Code = "UNKNOWN"

	// CodeInternal indicates an unexpected internal failure
	CodeInternal Code = "INTERNAL"

	// CodeInvalidInput indicates malformed caller input (blank command line,
	// empty registration name, nil handler)
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeInputTooLarge indicates a command line at or over the input bound
	CodeInputTooLarge Code = "INPUT_TOO_LARGE"

	// CodeUnterminatedQuote indicates a quoted run left open at end of input
	CodeUnterminatedQuote Code = "UNTERMINATED_QUOTE"

	// CodeTargetNotFound indicates a name matching neither variables nor methods
	CodeTargetNotFound Code = "TARGET_NOT_FOUND"

	// CodeReadOnly indicates a write attempt against a read-only variable
	CodeReadOnly Code = "READ_ONLY"

	// CodeTooManyArguments indicates a multi-argument command against a
	// variable with no same-named method
	CodeTooManyArguments Code = "TOO_MANY_ARGUMENTS"

	// CodeInvalidValue indicates token text that cannot be converted into the
	// storage type of the addressed variable
	CodeInvalidValue Code = "INVALID_VALUE"

	// CodeTypeMismatch indicates a typed access with a type parameter that
	// does not match the registered storage type
	CodeTypeMismatch Code = "TYPE_MISMATCH"

	// CodeNotFound indicates a missing resource outside the dispatch
	// tables, such as a configuration file
	CodeNotFound Code = "NOT_FOUND"

	// CodeConfigError indicates a configuration file that could not be
	// read or parsed
	CodeConfigError Code = "CONFIG_ERROR"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Category groups codes for logging and metrics
type Category string

const (
	CategoryParse    Category = "parse"
	CategoryLookup   Category = "lookup"
	CategoryWrite    Category = "write"
	CategoryInput    Category = "input"
	CategoryInternal Category = "internal"
)

// Category returns the category a code belongs to
func (c Code) Category() Category {
	switch c {
	case CodeInputTooLarge, CodeUnterminatedQuote:
		return CategoryParse
	case CodeTargetNotFound, CodeTypeMismatch, CodeNotFound:
		return CategoryLookup
	case CodeReadOnly, CodeTooManyArguments, CodeInvalidValue:
		return CategoryWrite
	case CodeInvalidInput, CodeConfigError:
		return CategoryInput
	default:
		return CategoryInternal
	}
}

// IsValid reports whether the code is one of the defined console codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeInputTooLarge,
		CodeUnterminatedQuote, CodeTargetNotFound, CodeReadOnly,
		CodeTooManyArguments, CodeInvalidValue, CodeTypeMismatch,
		CodeNotFound, CodeConfigError:
		return true
	default:
		return false
	}
}
