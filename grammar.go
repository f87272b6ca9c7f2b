// © 2024 The UCUM Go Authors
//
// SPDX-License-Identifier: Apache-2.0

package ucum

import (
	"fmt"
	"slices"

	"gopkg.ucum.org/parser.go/internal/exc"
	"gopkg.ucum.org/parser.go/internal/token"
)

// Grammar is the compiled form of a Vocabulary: each terminal class becomes
// a longest-match symbol table. A Grammar is immutable after construction
// and safe to share across concurrent Parse calls.
type Grammar struct {
	prefixes  *symbolSet
	metric    *symbolSet
	nonMetric *symbolSet
}

// NewGrammar validates the vocabulary and compiles it. It returns a
// *ConfigurationError when a set is empty, a symbol falls outside printable
// ASCII or contains a brace, or a symbol appears in more than one set.
func NewGrammar(v Vocabulary) (*Grammar, error) {
	if e := validateVocabulary(v); e != nil {
		return nil, newError(e, "")
	}
	return &Grammar{
		prefixes:  newSymbolSet(v.Prefixes),
		metric:    newSymbolSet(v.Metric),
		nonMetric: newSymbolSet(v.NonMetric),
	}, nil
}

// Parse parses one unit expression into its term sequence. A failed parse
// returns a *SyntaxError or *RangeError and no partial result. Concurrent
// calls on a shared Grammar are independent.
func (g *Grammar) Parse(input string) (Expression, error) {
	reporter := exc.NewReporter()
	lx := &lexer{grammar: g, input: input, reporter: reporter}
	tokens, ok := lx.tokens()
	if !ok {
		return nil, firstReported(reporter, input)
	}
	p := newParser(tokens, reporter)
	root := p.parseStart()
	if root == nil {
		return nil, firstReported(reporter, input)
	}
	terms, e := transformStart(root)
	if e != nil {
		return nil, newError(e, input)
	}
	return terms, nil
}

// matchAtom returns the longest atom of either class that s begins with.
// The returned type is meaningless when the match is empty.
func (g *Grammar) matchAtom(s string) (string, token.Type) {
	m := g.metric.match(s)
	n := g.nonMetric.match(s)
	if len(n) > len(m) {
		return n, token.TypeNonMetricAtom
	}
	return m, token.TypeMetricAtom
}

// symbolSet is one terminal class compiled for maximal munch: candidate
// lengths are tried longest first, so a symbol that is a string prefix of a
// longer symbol never shadows it.
type symbolSet struct {
	members map[string]struct{}
	lengths []int
}

func newSymbolSet(symbols []string) *symbolSet {
	set := &symbolSet{members: make(map[string]struct{}, len(symbols))}
	for _, s := range symbols {
		if _, ok := set.members[s]; ok {
			continue
		}
		set.members[s] = struct{}{}
		if !slices.Contains(set.lengths, len(s)) {
			set.lengths = append(set.lengths, len(s))
		}
	}
	slices.Sort(set.lengths)
	slices.Reverse(set.lengths)
	return set
}

// match returns the longest member that s begins with, or "".
func (t *symbolSet) match(s string) string {
	for _, l := range t.lengths {
		if l > len(s) {
			continue
		}
		if _, ok := t.members[s[:l]]; ok {
			return s[:l]
		}
	}
	return ""
}

func validateVocabulary(v Vocabulary) exc.Exception {
	classes := []struct {
		name    string
		symbols []string
	}{
		{"prefix", v.Prefixes},
		{"metric atom", v.Metric},
		{"non-metric atom", v.NonMetric},
	}
	owners := map[string]string{}
	for _, class := range classes {
		if len(class.symbols) == 0 {
			return exc.New(-1, exc.CodeEmptyVocabulary, fmt.Sprintf("the %s set is empty", class.name))
		}
		for _, sym := range class.symbols {
			if sym == "" {
				return exc.New(-1, exc.CodeBadSymbol, fmt.Sprintf("the %s set contains an empty symbol", class.name))
			}
			for x := 0; x < len(sym); x = x + 1 {
				b := sym[x]
				if b < 0x21 || b > 0x7E {
					return exc.New(-1, exc.CodeBadSymbol, fmt.Sprintf("%s symbol %q contains a byte outside printable ASCII", class.name, sym))
				}
				// braces delimit annotations and can never occur inside a symbol
				if b == '{' || b == '}' {
					return exc.New(-1, exc.CodeBadSymbol, fmt.Sprintf("%s symbol %q contains a brace", class.name, sym))
				}
			}
			if owner, ok := owners[sym]; ok && owner != class.name {
				return exc.New(-1, exc.CodeSymbolCollision, fmt.Sprintf("symbol %q appears in both the %s and %s sets", sym, owner, class.name))
			}
			owners[sym] = class.name
		}
	}
	return nil
}
