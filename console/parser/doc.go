// Package parser implements the console command language: token
// classification and line tokenization.
//
// Package: parser
// Title: Console Command Tokenizer
// Description: This package turns one raw command line into a Command: a
//              target name plus a bounded sequence of classified tokens.
//              Words are classified as boolean literals, integer or decimal
//              numbers, or opaque strings; quoted runs spanning several
//              whitespace-delimited words collapse into a single string
//              token. Input length and token count are hard-bounded.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-15
// Modified: 2025-09-15
//
// Change History:
// - 2025-09-15 v0.1.0: Initial implementation
//
// The grammar is one command per line, no statement separators:
//
//	<target> [<arg>]*
//	arg := bool-literal | numeric-literal | quoted-string | bare-word
//
// Quote characters are recognized only at the edges of whitespace-split
// words; escaping a quote inside a quoted run is not supported.
package parser
