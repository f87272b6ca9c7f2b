// © 2024 The UCUM Go Authors
//
// SPDX-License-Identifier: Apache-2.0

package ucum

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.ucum.org/parser.go/internal/exc"
	"gopkg.ucum.org/parser.go/internal/token"
)

func TestParser(t *testing.T) {
	t.Parallel()

	g, err := NewGrammar(DefaultVocabulary())
	require.NoError(t, err)

	testCases := []struct {
		name     string
		input    string
		expected *astStart
	}{
		{
			name:  "single atom",
			input: "m",
			expected: &astStart{
				term: astTerm{components: []astTermComponent{
					{component: astComponent{annotatable: &astAnnotatable{
						simple: &astSimpleUnit{atom: token.New(token.TypeMetricAtom, "m", 0, 1)},
					}}},
				}},
			},
		},
		{
			name:  "leading divide with exponent",
			input: "/s2",
			expected: &astStart{
				leadingSlash: token.New(token.TypeSlash, "/", 0, 1),
				term: astTerm{components: []astTermComponent{
					{component: astComponent{annotatable: &astAnnotatable{
						simple:   &astSimpleUnit{atom: token.New(token.TypeMetricAtom, "s", 1, 2)},
						exponent: token.New(token.TypeInteger, "2", 2, 3),
					}}},
				}},
			},
		},
		{
			name:  "annotation-only component",
			input: "{cells}",
			expected: &astStart{
				term: astTerm{components: []astTermComponent{
					{component: astComponent{annotation: token.New(token.TypeAnnotation, "cells", 0, 7)}},
				}},
			},
		},
		{
			name:  "prefixed atom with annotation",
			input: "kg{dry}",
			expected: &astStart{
				term: astTerm{components: []astTermComponent{
					{component: astComponent{
						annotatable: &astAnnotatable{
							simple: &astSimpleUnit{
								prefix: token.New(token.TypePrefix, "k", 0, 1),
								atom:   token.New(token.TypeMetricAtom, "g", 1, 2),
							},
						},
						annotation: token.New(token.TypeAnnotation, "dry", 2, 7),
					}},
				}},
			},
		},
		{
			name:  "group with exponent",
			input: "(m.s)3",
			expected: &astStart{
				term: astTerm{components: []astTermComponent{
					{component: astComponent{annotatable: &astAnnotatable{
						group: &astTerm{components: []astTermComponent{
							{component: astComponent{annotatable: &astAnnotatable{
								simple: &astSimpleUnit{atom: token.New(token.TypeMetricAtom, "m", 1, 2)},
							}}},
							{
								operator: token.New(token.TypeDot, ".", 2, 3),
								component: astComponent{annotatable: &astAnnotatable{
									simple: &astSimpleUnit{atom: token.New(token.TypeMetricAtom, "s", 3, 4)},
								}},
							},
						}},
						exponent: token.New(token.TypeInteger, "3", 5, 6),
					}}},
				}},
			},
		},
		{
			name:     "operator with no right operand",
			input:    "m.",
			expected: (*astStart)(nil),
		},
		{
			name:     "leading dot",
			input:    ".m",
			expected: (*astStart)(nil),
		},
		{
			name:     "factor directly against an atom",
			input:    "2m",
			expected: (*astStart)(nil),
		},
		{
			name:     "unbalanced close paren",
			input:    "m)",
			expected: (*astStart)(nil),
		},
		{
			name:     "unclosed group",
			input:    "(m.s",
			expected: (*astStart)(nil),
		},
		{
			name:     "empty input",
			input:    "",
			expected: (*astStart)(nil),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reporter := exc.NewReporter()
			lx := &lexer{grammar: g, input: tc.input, reporter: reporter}
			tokens, ok := lx.tokens()
			require.True(t, ok)
			p := newParser(tokens, reporter)
			got := p.parseStart()
			require.Equal(t, tc.expected, got)
			if tc.expected == nil {
				require.NotEmpty(t, reporter.Reported())
			}
		})
	}
}
