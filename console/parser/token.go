// File: token.go
// Title: Token Types and Classification
// Description: Defines token kinds, the Token type and the word classifier
//              deciding between boolean literals, numeric literals and
//              opaque strings.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-15
// Modified: 2025-09-15
//
// Change History:
// - 2025-09-15 v0.1.0: Initial implementation

package parser

import (
	"strconv"
)

// Kind classifies a token
type Kind int

const (
	// KindString is an opaque string argument (bare word or quoted run)
	KindString Kind = iota

	// KindInteger is a numeric argument without a decimal point
	KindInteger

	// KindDecimal is a numeric argument with exactly one decimal point
	KindDecimal

	// KindBoolTrue is the literal "true", normalized to text "1"
	KindBoolTrue

	// KindBoolFalse is the literal "false", normalized to text "0"
	KindBoolFalse
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindString:
		return "STRING"
	case KindInteger:
		return "INTEGER"
	case KindDecimal:
		return "DECIMAL"
	case KindBoolTrue:
		return "BOOL_TRUE"
	case KindBoolFalse:
		return "BOOL_FALSE"
	default:
		return "UNKNOWN"
	}
}

// Token is one classified command argument. Tokens are immutable after
// the tokenizer produces them.
type Token struct {
	Text string
	Kind Kind
}

// String returns a debug representation like STRING(hello world)
func (t Token) String() string {
	return t.Kind.String() + "(" + t.Text + ")"
}

// Int parses the token text as a base-10 integer
func (t Token) Int() (int64, error) {
	return strconv.ParseInt(t.Text, 10, 64)
}

// Float parses the token text as a float
func (t Token) Float() (float64, error) {
	return strconv.ParseFloat(t.Text, 64)
}

// IsNumeric reports whether the token carries an integer or decimal kind
func (t Token) IsNumeric() bool {
	return t.Kind == KindInteger || t.Kind == KindDecimal
}

// IsBool reports whether the token carries a boolean kind
func (t Token) IsBool() bool {
	return t.Kind == KindBoolTrue || t.Kind == KindBoolFalse
}

// NumericKind probes whether a word is a numeric literal: all digits with
// at most one decimal point. Returns the integer or decimal kind and true,
// or KindString and false. The empty word is never numeric.
func NumericKind(word string) (Kind, bool) {
	if len(word) == 0 {
		return KindString, false
	}
	hasPeriod := false
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c == '.' {
			if hasPeriod {
				return KindString, false
			}
			hasPeriod = true
			continue
		}
		if c < '0' || c > '9' {
			return KindString, false
		}
	}
	if hasPeriod {
		return KindDecimal, true
	}
	return KindInteger, true
}

// ClassifyWord classifies a whitespace-delimited word outside any quote
// run, returning its kind and normalized text. Boolean literals are
// case-sensitive and normalize to "1"/"0"; numeric words keep their text;
// everything else is an opaque string.
func ClassifyWord(word string) (Kind, string) {
	switch word {
	case "true":
		return KindBoolTrue, "1"
	case "false":
		return KindBoolFalse, "0"
	}
	if kind, ok := NumericKind(word); ok {
		return kind, word
	}
	return KindString, word
}

// isQuote reports whether c is one of the two recognized quote characters
func isQuote(c byte) bool {
	return c == '\'' || c == '"'
}
