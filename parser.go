package ucum

import (
	"fmt"

	"gopkg.ucum.org/parser.go/internal/exc"
	"gopkg.ucum.org/parser.go/internal/iter"
	"gopkg.ucum.org/parser.go/internal/token"
)

var annotatableExpected = []string{
	"prefix", "metric-atom", "non-metric-atom", "integer", "(",
}

type parserTokens struct {
	reporter exc.Reporter
	tokens   iter.Lookahead[*token.Token]
	// loc is the .End of the last consumed token; we keep track of it so
	// that unexpected-EOF errors get a meaningful offset.
	loc int
}

func newParser(tokens []*token.Token, reporter exc.Reporter) *parserTokens {
	return &parserTokens{
		reporter: reporter,
		tokens:   iter.NewLookahead(iter.NewSlice(tokens), 1),
	}
}

func (p *parserTokens) advance() {
	maybeToken := p.tokens.Lookahead(0)
	if maybeToken.IsPresent() {
		p.loc = maybeToken.Value().End
	}
	_ = p.tokens.Next()
}

func (p *parserTokens) peek() *token.Token {
	maybeToken := p.tokens.Lookahead(0)
	if !maybeToken.IsPresent() {
		return nil
	}
	return maybeToken.Value()
}

func (p *parserTokens) report(offset int, code string, message string, expected []string) {
	_ = p.reporter.Report(exc.NewExpecting(offset, code, message, expected))
}

// reports an error if there is no current token, or the current token isn't
// one of the expected types. advances on success.
func (p *parserTokens) expectOneOf(expectedTypes []token.Type) *token.Token {
	names := make([]string, len(expectedTypes))
	for x, expectedType := range expectedTypes {
		names[x] = expectedType.String()
	}
	maybeToken := p.peek()
	if maybeToken == nil {
		p.report(p.loc, exc.CodeUnexpectedEOF, fmt.Sprintf("unexpected end of expression (expecting %v)", names), names)
		return nil
	}
	for _, expectedType := range expectedTypes {
		if maybeToken.Type == expectedType {
			p.advance()
			return maybeToken
		}
	}
	p.report(maybeToken.Start, exc.CodeUnexpectedToken, fmt.Sprintf("unexpected %q (expecting %v)", maybeToken.Value, names), names)
	return nil
}

func (p *parserTokens) expectOne(expectedType token.Type) *token.Token {
	return p.expectOneOf([]token.Type{expectedType})
}

// start = DIVIDE term | term
//
// A leading divide has no left operand: it divides an implicit unit of 1,
// inverting the whole chain.
func (p *parserTokens) parseStart() *astStart {
	this := astStart{}
	if maybeToken := p.peek(); maybeToken != nil && maybeToken.Type == token.TypeSlash {
		p.advance()
		this.leadingSlash = maybeToken
	}
	maybeTerm := p.parseTerm()
	if maybeTerm == nil {
		return nil
	}
	this.term = *maybeTerm
	if maybeToken := p.peek(); maybeToken != nil {
		p.report(maybeToken.Start, exc.CodeUnexpectedToken,
			fmt.Sprintf("unexpected %q after the end of the expression", maybeToken.Value),
			[]string{token.TypeDot.String(), token.TypeSlash.String()})
		return nil
	}
	return &this
}

// term = term OPERATOR component | component
func (p *parserTokens) parseTerm() *astTerm {
	maybeComponent := p.parseComponent()
	if maybeComponent == nil {
		return nil
	}
	this := astTerm{components: []astTermComponent{{component: *maybeComponent}}}
	for {
		maybeToken := p.peek()
		if maybeToken == nil || (maybeToken.Type != token.TypeDot && maybeToken.Type != token.TypeSlash) {
			break
		}
		p.advance()
		maybeComponent = p.parseComponent()
		if maybeComponent == nil {
			return nil
		}
		this.components = append(this.components, astTermComponent{
			operator:  maybeToken,
			component: *maybeComponent,
		})
	}
	return &this
}

// component = annotatable ANNOTATION | annotatable | ANNOTATION
func (p *parserTokens) parseComponent() *astComponent {
	if maybeToken := p.peek(); maybeToken != nil && maybeToken.Type == token.TypeAnnotation {
		p.advance()
		return &astComponent{annotation: maybeToken}
	}
	maybeAnnotatable := p.parseAnnotatable()
	if maybeAnnotatable == nil {
		return nil
	}
	this := astComponent{annotatable: maybeAnnotatable}
	if maybeToken := p.peek(); maybeToken != nil && maybeToken.Type == token.TypeAnnotation {
		p.advance()
		this.annotation = maybeToken
	}
	return &this
}

// annotatable = simple-unit EXPONENT? | "(" term ")" EXPONENT?
func (p *parserTokens) parseAnnotatable() *astAnnotatable {
	this := astAnnotatable{}
	maybeToken := p.peek()
	if maybeToken == nil {
		p.report(p.loc, exc.CodeUnexpectedEOF, "unexpected end of expression (expecting a unit, factor, or group)", annotatableExpected)
		return nil
	}
	switch maybeToken.Type {
	case token.TypeParenOpen:
		p.advance()
		maybeTerm := p.parseTerm()
		if maybeTerm == nil {
			return nil
		}
		if p.expectOne(token.TypeParenClose) == nil {
			return nil
		}
		this.group = maybeTerm
	case token.TypePrefix, token.TypeMetricAtom, token.TypeNonMetricAtom, token.TypeInteger:
		maybeSimple := p.parseSimpleUnit()
		if maybeSimple == nil {
			return nil
		}
		this.simple = maybeSimple
	default:
		p.report(maybeToken.Start, exc.CodeUnexpectedToken,
			fmt.Sprintf("unexpected %q (expecting a unit, factor, or group)", maybeToken.Value), annotatableExpected)
		return nil
	}
	if maybeToken := p.peek(); maybeToken != nil && (maybeToken.Type == token.TypeInteger || maybeToken.Type == token.TypeSignedInteger) {
		p.advance()
		this.exponent = maybeToken
	}
	return &this
}

// simple-unit = METRIC-ATOM | PREFIX METRIC-ATOM | NON-METRIC-ATOM | FACTOR
func (p *parserTokens) parseSimpleUnit() *astSimpleUnit {
	maybeToken := p.expectOneOf([]token.Type{
		token.TypePrefix,
		token.TypeMetricAtom,
		token.TypeNonMetricAtom,
		token.TypeInteger,
	})
	if maybeToken == nil {
		return nil
	}
	switch maybeToken.Type {
	case token.TypePrefix:
		// the lexer only emits a prefix when a metric atom follows it
		maybeAtom := p.expectOne(token.TypeMetricAtom)
		if maybeAtom == nil {
			return nil
		}
		return &astSimpleUnit{prefix: maybeToken, atom: maybeAtom}
	case token.TypeInteger:
		return &astSimpleUnit{factor: maybeToken}
	default:
		return &astSimpleUnit{atom: maybeToken}
	}
}
