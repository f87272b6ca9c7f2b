package exc

// Grammar build problems (U00xx) are configuration errors. Input problems
// found while lexing or parsing (U01xx) are syntax errors. Numeric
// conversion problems (U02xx) are range errors. The public package maps
// each band onto its error type, so new codes must stay inside their band.
const (
	CodeEmptyVocabulary = "U0001"
	CodeSymbolCollision = "U0002"
	CodeBadSymbol       = "U0003"

	CodeUnexpectedRune         = "U0101"
	CodeUnexpectedToken        = "U0102"
	CodeUnexpectedEOF          = "U0103"
	CodeUnterminatedAnnotation = "U0104"
	CodeBadAnnotationRune      = "U0105"

	CodeIntegerRange = "U0201"
)

// IsConfiguration reports whether code belongs to the grammar build band.
func IsConfiguration(code string) bool {
	return code >= "U0001" && code <= "U0099"
}

// IsRange reports whether code belongs to the numeric conversion band.
func IsRange(code string) bool {
	return code >= "U0201" && code <= "U0299"
}
