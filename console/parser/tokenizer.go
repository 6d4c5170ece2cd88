// File: tokenizer.go
// Title: Command Line Tokenizer
// Description: Implements the bounded tokenizer: input length check, space
//              splitting, the quote state machine joining quoted runs into
//              single string tokens, and the token count cap.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-15
// Modified: 2025-09-15
//
// Change History:
// - 2025-09-15 v0.1.0: Initial implementation

package parser

import (
	"strings"

	mconerror "github.com/msto63/mConsole/core/error"
)

const (
	// MaxInputLength is the raw line bound in bytes, checked before any
	// parsing. Lines at or over the bound are rejected, not truncated.
	MaxInputLength = 256

	// MaxTokens caps the number of argument tokens per command. Input
	// beyond the cap is discarded silently.
	MaxTokens = 16
)

// Tokenize parses one raw command line into a Command. The first word
// becomes the target; following words run through the quote state machine
// and the classifier. Errors: CodeInputTooLarge for oversized lines,
// CodeInvalidInput for blank lines, CodeUnterminatedQuote when a quoted
// run is still open at end of input.
func Tokenize(line string) (*Command, error) {
	if len(line) >= MaxInputLength {
		return nil, mconerror.New("command line exceeds input bound").
			WithCode(mconerror.CodeInputTooLarge).
			WithOperation("tokenize").
			WithDetail("length", len(line)).
			WithDetail("limit", MaxInputLength)
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, mconerror.New("command line is empty").
			WithCode(mconerror.CodeInvalidInput).
			WithOperation("tokenize")
	}

	cmd := &Command{Tokens: make([]Token, 0, MaxTokens)}

	// Quote runs accumulate whitespace-split pieces, joined by single
	// spaces, until a piece ends with a quote character. The trailing
	// quote is dropped on close; only the closing piece emits a token.
	inQuote := false
	acc := ""
	first := true

	for _, piece := range strings.Split(trimmed, " ") {
		if piece == "" { // collapsed delimiter run
			continue
		}

		if first { // first word is the target, never classified
			cmd.Target = piece
			first = false
			continue
		}

		if !inQuote {
			switch {
			case piece == "true" || piece == "false":
				kind, text := ClassifyWord(piece)
				cmd.Tokens = append(cmd.Tokens, Token{Text: text, Kind: kind})
			case isQuote(piece[0]):
				inQuote = true
				acc = piece[1:] + " "
			default:
				kind, text := ClassifyWord(piece)
				cmd.Tokens = append(cmd.Tokens, Token{Text: text, Kind: kind})
			}
		} else {
			if isQuote(piece[len(piece)-1]) {
				acc += piece
				acc = acc[:len(acc)-1]
				cmd.Tokens = append(cmd.Tokens, Token{Text: acc, Kind: KindString})
				acc = ""
				inQuote = false
			} else {
				acc += piece + " "
			}
		}

		if len(cmd.Tokens) >= MaxTokens {
			break
		}
	}

	if inQuote {
		return nil, mconerror.New("quoted string not terminated").
			WithCode(mconerror.CodeUnterminatedQuote).
			WithOperation("tokenize").
			WithDetail("target", cmd.Target)
	}

	return cmd, nil
}
