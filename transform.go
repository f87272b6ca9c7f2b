package ucum

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.ucum.org/parser.go/internal/exc"
	"gopkg.ucum.org/parser.go/internal/token"
)

// The transform folds a parse tree into the public term sequence, one
// function per grammar rule. It assumes a structurally valid tree: node
// shapes the grammar cannot produce are invariant violations and panic
// rather than producing an empty result.

func transformStart(n *astStart) (Expression, exc.Exception) {
	terms, e := transformTerm(&n.term)
	if e != nil {
		return nil, e
	}
	if n.leadingSlash != nil {
		terms[0].Operator = OperatorDivide
	}
	return terms, nil
}

func transformTerm(n *astTerm) (Expression, exc.Exception) {
	if len(n.components) == 0 {
		panic("ucum: term node with no components")
	}
	terms := make(Expression, 0, len(n.components))
	for _, tc := range n.components {
		term, e := transformComponent(&tc.component)
		if e != nil {
			return nil, e
		}
		if tc.operator != nil {
			switch tc.operator.Type {
			case token.TypeDot:
				term.Operator = OperatorMultiply
			case token.TypeSlash:
				term.Operator = OperatorDivide
			default:
				panic(fmt.Sprintf("ucum: operator token of type %s", tc.operator.Type))
			}
		}
		terms = append(terms, *term)
	}
	return terms, nil
}

func transformComponent(n *astComponent) (*UnitTerm, exc.Exception) {
	if n.annotatable == nil {
		if n.annotation == nil {
			panic("ucum: component node with neither annotatable nor annotation")
		}
		value := n.annotation.Value
		return &UnitTerm{Annotation: &value}, nil
	}
	term, e := transformAnnotatable(n.annotatable)
	if e != nil {
		return nil, e
	}
	if n.annotation != nil {
		value := n.annotation.Value
		term.Annotation = &value
	}
	return term, nil
}

func transformAnnotatable(n *astAnnotatable) (*UnitTerm, exc.Exception) {
	var term *UnitTerm
	switch {
	case n.simple != nil:
		var e exc.Exception
		term, e = transformSimpleUnit(n.simple)
		if e != nil {
			return nil, e
		}
	case n.group != nil:
		members, e := transformTerm(n.group)
		if e != nil {
			return nil, e
		}
		term = &UnitTerm{Kind: KindGroup, Members: members}
	default:
		panic("ucum: annotatable node with neither simple unit nor group")
	}
	if n.exponent != nil {
		value, e := integerValue(n.exponent)
		if e != nil {
			return nil, e
		}
		term.Exponent = value
	}
	return term, nil
}

func transformSimpleUnit(n *astSimpleUnit) (*UnitTerm, exc.Exception) {
	switch {
	case n.factor != nil:
		value, e := integerValue(n.factor)
		if e != nil {
			return nil, e
		}
		return &UnitTerm{Kind: KindFactor, Value: value}, nil
	case n.atom != nil:
		kind := KindMetricUnit
		if n.atom.Type == token.TypeNonMetricAtom {
			kind = KindNonMetricUnit
		}
		term := &UnitTerm{Kind: kind, Symbol: n.atom.Value}
		if n.prefix != nil {
			// the grammar only pairs prefixes with metric atoms
			term.Prefix = n.prefix.Value
		}
		return term, nil
	default:
		panic("ucum: simple-unit node with neither atom nor factor")
	}
}

func integerValue(tok *token.Token) (int, exc.Exception) {
	value, err := strconv.Atoi(tok.Value)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, exc.New(tok.Start, exc.CodeIntegerRange, fmt.Sprintf("numeric literal %q does not fit in an int", tok.Value))
		}
		panic(fmt.Sprintf("ucum: unparseable numeric literal %q", tok.Value))
	}
	return value, nil
}
