// © 2024 The UCUM Go Authors
//
// SPDX-License-Identifier: Apache-2.0

package exc

import "fmt"

// Exception is an error detected while building a grammar or consuming an
// input expression. Offset is the 0-based byte offset into the input at
// which the error was detected; it is -1 for errors that have no position,
// such as vocabulary problems found at grammar build time.
type Exception interface {
	error
	Code() string
	Message() string
	Offset() int
	// Expected names the terminal classes that would have been legal at
	// Offset. Empty for errors that are not token mismatches.
	Expected() []string
}

type exc struct {
	code     string
	message  string
	offset   int
	expected []string
}

func (e *exc) Error() string {
	if e.offset < 0 {
		return fmt.Sprintf("%s: %s", e.code, e.message)
	}
	return fmt.Sprintf("offset %d -- %s: %s", e.offset, e.code, e.message)
}

func (e *exc) Code() string {
	return e.code
}

func (e *exc) Message() string {
	return e.message
}

func (e *exc) Offset() int {
	return e.offset
}

func (e *exc) Expected() []string {
	return e.expected
}

func New(offset int, code string, message string) Exception {
	return &exc{
		offset:  offset,
		message: message,
		code:    code,
	}
}

// NewExpecting is New plus the set of terminal classes that were legal at
// the offset, for errors that should tell the caller what would have parsed.
func NewExpecting(offset int, code string, message string, expected []string) Exception {
	return &exc{
		offset:   offset,
		message:  message,
		code:     code,
		expected: expected,
	}
}
