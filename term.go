package ucum

import (
	"strconv"
	"strings"
)

// Kind classifies a UnitTerm.
type Kind string

const (
	KindMetricUnit    Kind = "metric-unit"
	KindNonMetricUnit Kind = "non-metric-unit"
	KindFactor        Kind = "factor"
	KindGroup         Kind = "group"
)

// Operator is how a term combines with the term immediately preceding it
// in the enclosing sequence.
type Operator string

const (
	OperatorMultiply Operator = "multiply"
	OperatorDivide   Operator = "divide"
)

// UnitTerm is one term of a parsed unit expression. The JSON encoding
// omits absent fields, giving the interchange form directly.
type UnitTerm struct {
	// Kind is empty for an annotation-only term such as "{cells}".
	Kind Kind `json:"kind,omitempty"`
	// Symbol is the unit-atom symbol, set when Kind is a unit kind.
	Symbol string `json:"symbol,omitempty"`
	// Prefix is the metric prefix symbol. Only metric units carry one;
	// the grammar structurally forbids a prefix anywhere else.
	Prefix string `json:"prefix,omitempty"`
	// Exponent is the signed integer exponent. Zero means absent: the
	// grammar rejects a literal zero, and an absent exponent means 1.
	Exponent int `json:"exponent,omitempty"`
	// Value is the literal positive integer of a factor term.
	Value int `json:"value,omitempty"`
	// Annotation is the free-text annotation, nil when absent. A pointer
	// distinguishes the legal empty annotation "{}" from no annotation.
	Annotation *string `json:"annotation,omitempty"`
	// Members is the sub-expression of a group term.
	Members []UnitTerm `json:"members,omitempty"`
	// Operator combines this term with the one before it. It is empty on
	// the first term of an expression unless the expression began with a
	// leading divide, which inverts the whole chain.
	Operator Operator `json:"operator,omitempty"`
}

// Expression is the ordered sequence of terms denoted by a unit string.
// Order is significant: operators apply left to right.
type Expression []UnitTerm

// String renders the expression back into canonical UCUM text. Parsing the
// rendering yields an equal Expression, though not necessarily the original
// text: an explicit "+" on an exponent is not preserved.
func (x Expression) String() string {
	var builder strings.Builder
	x.render(&builder)
	return builder.String()
}

func (x Expression) render(builder *strings.Builder) {
	for i, term := range x {
		if term.Operator == OperatorDivide {
			_, _ = builder.WriteString("/")
		} else if i > 0 {
			_, _ = builder.WriteString(".")
		}
		term.render(builder)
	}
}

func (t UnitTerm) render(builder *strings.Builder) {
	switch t.Kind {
	case KindFactor:
		_, _ = builder.WriteString(strconv.Itoa(t.Value))
	case KindGroup:
		_, _ = builder.WriteString("(")
		Expression(t.Members).render(builder)
		_, _ = builder.WriteString(")")
	case KindMetricUnit, KindNonMetricUnit:
		_, _ = builder.WriteString(t.Prefix)
		_, _ = builder.WriteString(t.Symbol)
	}
	if t.Exponent != 0 {
		_, _ = builder.WriteString(strconv.Itoa(t.Exponent))
	}
	if t.Annotation != nil {
		_, _ = builder.WriteString("{")
		_, _ = builder.WriteString(*t.Annotation)
		_, _ = builder.WriteString("}")
	}
}
