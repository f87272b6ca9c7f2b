// © 2024 The UCUM Go Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package ucum parses unit expressions written in the UCUM (Unified Code
// for Units of Measure) syntax into a structured term sequence: unit atoms
// with optional metric prefixes and integer exponents, numeric factors,
// free-text annotations, parenthesized groups, and chaining with the "."
// and "/" operators.
//
// A Grammar is compiled once from a Vocabulary and reused:
//
//	g, err := ucum.NewGrammar(ucum.DefaultVocabulary())
//	...
//	terms, err := g.Parse("kg.m/s2")
//
// Parse is a shorthand over a lazily built process-wide grammar. Parsing
// is pure and synchronous; a shared Grammar is safe for concurrent use.
package ucum

import "sync"

var defaultGrammar = sync.OnceValues(func() (*Grammar, error) {
	return NewGrammar(DefaultVocabulary())
})

// Default returns the process-wide grammar compiled from
// DefaultVocabulary. It is built on first use and shared by every caller
// afterwards; it holds no external resources and needs no teardown.
func Default() (*Grammar, error) {
	return defaultGrammar()
}

// Parse parses input with the default grammar.
func Parse(input string) (Expression, error) {
	g, err := Default()
	if err != nil {
		return nil, err
	}
	return g.Parse(input)
}
