// © 2024 The UCUM Go Authors
//
// SPDX-License-Identifier: Apache-2.0

package ucum

import (
	"fmt"
	"strings"

	"gopkg.ucum.org/parser.go/internal/exc"
)

// ConfigurationError reports a malformed vocabulary: an empty set, a symbol
// outside printable ASCII, or a symbol appearing in more than one set. It
// is fatal to the grammar build that detected it and is never retried.
type ConfigurationError struct {
	Code    string
	message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("ucum: invalid vocabulary (%s): %s", e.Code, e.message)
}

// SyntaxError reports an input string the grammar could not consume. A
// failed parse is deterministic: the same input always fails identically.
type SyntaxError struct {
	// Offset is the 0-based character offset of the first position the
	// grammar could not consume.
	Offset int
	// Snippet is the input surrounding Offset.
	Snippet string
	// Expected names the terminal classes that would have been legal at
	// Offset, when known.
	Expected []string
	message  string
}

func (e *SyntaxError) Error() string {
	if len(e.Expected) > 0 {
		return fmt.Sprintf("ucum: syntax error at offset %d near %q: %s (expecting %s)",
			e.Offset, e.Snippet, e.message, strings.Join(e.Expected, ", "))
	}
	return fmt.Sprintf("ucum: syntax error at offset %d near %q: %s", e.Offset, e.Snippet, e.message)
}

// RangeError reports a factor or exponent literal whose magnitude exceeds
// the platform's int range.
type RangeError struct {
	// Offset is the 0-based character offset of the literal.
	Offset  int
	message string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("ucum: %s", e.message)
}

// newError maps an internal exception onto the public error taxonomy by
// its code band.
func newError(e exc.Exception, input string) error {
	switch {
	case exc.IsConfiguration(e.Code()):
		return &ConfigurationError{Code: e.Code(), message: e.Message()}
	case exc.IsRange(e.Code()):
		return &RangeError{Offset: e.Offset(), message: e.Message()}
	default:
		return &SyntaxError{
			Offset:   e.Offset(),
			Snippet:  snippet(input, e.Offset()),
			Expected: e.Expected(),
			message:  e.Message(),
		}
	}
}

func firstReported(reporter exc.Reporter, input string) error {
	reported := reporter.Reported()
	if len(reported) == 0 {
		// every failing lexer and parser path reports before unwinding
		panic("ucum: parse failed without reporting an exception")
	}
	return newError(reported[0], input)
}

const snippetRadius = 10

// snippet returns the slice of input surrounding offset, for error text.
func snippet(input string, offset int) string {
	lo := offset - snippetRadius
	if lo < 0 {
		lo = 0
	}
	hi := offset + snippetRadius
	if hi > len(input) {
		hi = len(input)
	}
	if lo > len(input) {
		lo = len(input)
	}
	return input[lo:hi]
}
