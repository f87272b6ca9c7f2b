// © 2024 The UCUM Go Authors
//
// SPDX-License-Identifier: Apache-2.0

package token

import "fmt"

// Type classifies a token of a UCUM unit expression.
type Type int

const (
	TypeUnknown Type = iota
	// TypePrefix is a metric prefix symbol from the vocabulary.
	TypePrefix
	// TypeMetricAtom is a prefixable unit-atom symbol from the vocabulary.
	TypeMetricAtom
	// TypeNonMetricAtom is a never-prefixable unit-atom symbol.
	TypeNonMetricAtom
	// TypeInteger is an unsigned digit run with a non-zero leading digit.
	// It is a factor or an exponent depending on where it appears.
	TypeInteger
	// TypeSignedInteger is a "+" or "-" immediately followed by such a digit
	// run. Only legal as an exponent.
	TypeSignedInteger
	// TypeAnnotation is a brace-delimited free-text annotation. Value holds
	// the content without the braces; the span includes them.
	TypeAnnotation
	TypeDot
	TypeSlash
	TypeParenOpen
	TypeParenClose
)

var typeNames = map[Type]string{
	TypeUnknown:       "unknown",
	TypePrefix:        "prefix",
	TypeMetricAtom:    "metric-atom",
	TypeNonMetricAtom: "non-metric-atom",
	TypeInteger:       "integer",
	TypeSignedInteger: "signed-integer",
	TypeAnnotation:    "annotation",
	TypeDot:           ".",
	TypeSlash:         "/",
	TypeParenOpen:     "(",
	TypeParenClose:    ")",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Token is one lexed terminal. Start and End are 0-based byte offsets into
// the input; End is exclusive. Inputs are ASCII so byte offsets are also
// character offsets.
type Token struct {
	Type  Type
	Value string
	Start int
	End   int
}

func New(kind Type, value string, start int, end int) *Token {
	return &Token{
		Type:  kind,
		Value: value,
		Start: start,
		End:   end,
	}
}
