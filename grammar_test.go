package ucum

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.ucum.org/parser.go/internal/exc"
)

func TestNewGrammarRejectsBadVocabularies(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		vocabulary Vocabulary
		wantCode   string
	}{
		{
			name: "empty non-metric set",
			vocabulary: Vocabulary{
				Prefixes: []string{"k"},
				Metric:   []string{"m"},
			},
			wantCode: exc.CodeEmptyVocabulary,
		},
		{
			name:       "everything empty",
			vocabulary: Vocabulary{},
			wantCode:   exc.CodeEmptyVocabulary,
		},
		{
			name: "prefix colliding with an atom",
			vocabulary: Vocabulary{
				Prefixes:  []string{"m"},
				Metric:    []string{"m"},
				NonMetric: []string{"d"},
			},
			wantCode: exc.CodeSymbolCollision,
		},
		{
			name: "atom in both classes",
			vocabulary: Vocabulary{
				Prefixes:  []string{"k"},
				Metric:    []string{"m", "h"},
				NonMetric: []string{"h"},
			},
			wantCode: exc.CodeSymbolCollision,
		},
		{
			name: "symbol with whitespace",
			vocabulary: Vocabulary{
				Prefixes:  []string{"k"},
				Metric:    []string{"m m"},
				NonMetric: []string{"d"},
			},
			wantCode: exc.CodeBadSymbol,
		},
		{
			name: "symbol with a brace",
			vocabulary: Vocabulary{
				Prefixes:  []string{"k"},
				Metric:    []string{"m"},
				NonMetric: []string{"{d}"},
			},
			wantCode: exc.CodeBadSymbol,
		},
		{
			name: "empty symbol",
			vocabulary: Vocabulary{
				Prefixes:  []string{""},
				Metric:    []string{"m"},
				NonMetric: []string{"d"},
			},
			wantCode: exc.CodeBadSymbol,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrammar(tc.vocabulary)
			require.Nil(t, g)
			var confErr *ConfigurationError
			require.ErrorAs(t, err, &confErr)
			require.Equal(t, tc.wantCode, confErr.Code)
		})
	}
}

func TestNewGrammarDefaultVocabulary(t *testing.T) {
	t.Parallel()

	g, err := NewGrammar(DefaultVocabulary())
	require.NoError(t, err)
	require.NotNil(t, g)
}

func TestSymbolSetMatch(t *testing.T) {
	t.Parallel()

	set := newSymbolSet([]string{"m", "mo", "mol", "[in_i]"})

	testCases := []struct {
		input    string
		expected string
	}{
		{input: "mol", expected: "mol"},
		{input: "mo", expected: "mo"},
		{input: "m", expected: "m"},
		{input: "mols", expected: "mol"},
		{input: "[in_i]2", expected: "[in_i]"},
		{input: "x", expected: ""},
		{input: "", expected: ""},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, set.match(tc.input), "match(%q)", tc.input)
	}
}

func TestDefaultGrammarIsShared(t *testing.T) {
	t.Parallel()

	first, err := Default()
	require.NoError(t, err)
	second, err := Default()
	require.NoError(t, err)
	require.Same(t, first, second)
}
