package ucum

// Vocabulary is the set of legal symbols a grammar is compiled from: metric
// prefixes, metric unit atoms (prefixable), and non-metric unit atoms
// (never prefixable). Symbols are case-sensitive printable ASCII and the
// three sets must be disjoint; NewGrammar rejects anything else. The
// Vocabulary is a plain value so a grammar can be rebuilt deterministically
// from a given snapshot without touching any external registry.
type Vocabulary struct {
	Prefixes  []string
	Metric    []string
	NonMetric []string
}

// DefaultVocabulary returns the built-in vocabulary snapshot: the standard
// UCUM prefixes plus a curated set of common unit atoms. The full UCUM
// registry assigns some symbols to both a prefix and an atom ("m" is milli
// and metre, "T" is tera and tesla); the vocabulary model keeps the sets
// disjoint, so each such overlap is resolved here for whichever reading is
// more common, and the loser is omitted.
// The result is a fresh copy on every call, so callers may extend it
// before building a grammar.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Prefixes: []string{
			"Y", "Z", "E", "P", "T", "G", "M", "k", "da", "c",
			"u", "n", "p", "f", "z", "y",
			"Ki", "Mi", "Gi", "Ti",
		},
		Metric: []string{
			"m", "g", "s", "A", "K", "cd", "mol",
			"rad", "sr", "Hz", "N", "Pa", "J", "W", "C", "V", "F",
			"Ohm", "S", "Wb", "Cel", "lm", "lx", "Bq", "Gy", "Sv",
			"l", "L", "t", "bar", "eV", "kat",
			"h", "By", "bit",
		},
		NonMetric: []string{
			"min", "d", "a", "wk", "mo",
			"%", "10*", "10^", "[pi]",
			"deg", "'", "''",
			"[in_i]", "[ft_i]", "[yd_i]", "[mi_i]",
			"[lb_av]", "[oz_av]", "[gal_us]",
			"AU", "[pH]", "[IU]",
		},
	}
}
