// © 2024 The UCUM Go Authors
//
// SPDX-License-Identifier: Apache-2.0

package ucum

import (
	"fmt"

	"gopkg.ucum.org/parser.go/internal/exc"
	"gopkg.ucum.org/parser.go/internal/token"
)

// lexExpected names the terminal classes that can begin a token, for
// unexpected-character errors.
var lexExpected = []string{
	"prefix", "metric-atom", "non-metric-atom", "integer", "annotation",
	".", "/", "(", ")",
}

type lexer struct {
	grammar  *Grammar
	input    string
	reporter exc.Reporter
}

// tokens runs maximal-munch terminal selection over the whole input. At
// each offset the longest bare atom competes with the longest prefix plus
// following metric atom; more consumed characters wins and a tie keeps the
// bare atom (fewest PREFIX terminals). A winning symbol interpretation also
// beats a digit run of the same length (fewest FACTOR terminals). tokens
// returns false after reporting the first character it could not consume.
func (lx *lexer) tokens() ([]*token.Token, bool) {
	out := []*token.Token{}
	i := 0
	for i < len(lx.input) {
		rest := lx.input[i:]

		bare, bareKind := lx.grammar.matchAtom(rest)
		pre := lx.grammar.prefixes.match(rest)
		pairAtom := ""
		if pre != "" {
			pairAtom = lx.grammar.metric.match(rest[len(pre):])
		}
		symLen := len(bare)
		pair := pairAtom != "" && len(pre)+len(pairAtom) > len(bare)
		if pair {
			symLen = len(pre) + len(pairAtom)
		}
		digits := digitRun(rest)

		if symLen > 0 && symLen >= digits {
			if pair {
				out = append(out, token.New(token.TypePrefix, pre, i, i+len(pre)))
				out = append(out, token.New(token.TypeMetricAtom, pairAtom, i+len(pre), i+symLen))
			} else {
				out = append(out, token.New(bareKind, bare, i, i+symLen))
			}
			i = i + symLen
			continue
		}
		if digits > 0 {
			out = append(out, token.New(token.TypeInteger, rest[:digits], i, i+digits))
			i = i + digits
			continue
		}

		switch c := rest[0]; c {
		case '.':
			out = append(out, token.New(token.TypeDot, ".", i, i+1))
			i = i + 1
		case '/':
			out = append(out, token.New(token.TypeSlash, "/", i, i+1))
			i = i + 1
		case '(':
			out = append(out, token.New(token.TypeParenOpen, "(", i, i+1))
			i = i + 1
		case ')':
			out = append(out, token.New(token.TypeParenClose, ")", i, i+1))
			i = i + 1
		case '+', '-':
			d := digitRun(rest[1:])
			if d == 0 {
				lx.report(i, exc.CodeUnexpectedRune, fmt.Sprintf("expecting a non-zero digit after %q", string(c)))
				return nil, false
			}
			out = append(out, token.New(token.TypeSignedInteger, rest[:1+d], i, i+1+d))
			i = i + 1 + d
		case '{':
			tok, ok := lx.annotation(i)
			if !ok {
				return nil, false
			}
			out = append(out, tok)
			i = tok.End
		case '0':
			lx.report(i, exc.CodeUnexpectedRune, "a factor or exponent may not begin with 0")
			return nil, false
		default:
			lx.report(i, exc.CodeUnexpectedRune, fmt.Sprintf("unexpected character %q", string(c)))
			return nil, false
		}
	}
	return out, true
}

// annotation reads the brace-delimited annotation opening at start. The
// content ends at the first closing brace and may be empty; every content
// byte must be printable ASCII.
func (lx *lexer) annotation(start int) (*token.Token, bool) {
	for j := start + 1; j < len(lx.input); j = j + 1 {
		c := lx.input[j]
		if c == '}' {
			return token.New(token.TypeAnnotation, lx.input[start+1:j], start, j+1), true
		}
		if c < 0x21 || c > 0x7E {
			_ = lx.reporter.Report(exc.NewExpecting(j, exc.CodeBadAnnotationRune,
				fmt.Sprintf("character %q is not allowed inside an annotation", string(c)), []string{"}"}))
			return nil, false
		}
	}
	_ = lx.reporter.Report(exc.NewExpecting(len(lx.input), exc.CodeUnterminatedAnnotation,
		"input ends inside an annotation", []string{"}"}))
	return nil, false
}

func (lx *lexer) report(offset int, code string, message string) {
	_ = lx.reporter.Report(exc.NewExpecting(offset, code, message, lexExpected))
}

// digitRun returns the length of the digit run beginning s, or 0 when s
// does not begin with a non-zero digit. A leading zero is not a run: the
// grammar forbids the literal value zero by construction.
func digitRun(s string) int {
	if len(s) == 0 || s[0] < '1' || s[0] > '9' {
		return 0
	}
	n := 1
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n = n + 1
	}
	return n
}
