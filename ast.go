package ucum

import "gopkg.ucum.org/parser.go/internal/token"

// One node type per grammar rule. Nodes are ephemeral: they exist between a
// parse and its transform and are never exposed to callers.

type astStart struct {
	// non-nil when the expression begins with a leading divide, which
	// inverts the whole chain
	leadingSlash *token.Token
	term         astTerm
}

type astTerm struct {
	components []astTermComponent
}

// astTermComponent is one link of a term chain. operator is nil for the
// first component and a "." or "/" token for every later one.
type astTermComponent struct {
	operator  *token.Token
	component astComponent
}

type astComponent struct {
	// annotatable is nil for an annotation-only component such as "{cells}"
	annotatable *astAnnotatable
	annotation  *token.Token
}

type astAnnotatable struct {
	// exactly one of simple and group is set
	simple   *astSimpleUnit
	group    *astTerm
	exponent *token.Token
}

type astSimpleUnit struct {
	prefix *token.Token
	atom   *token.Token
	factor *token.Token
}
