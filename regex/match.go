package regex

import (
	"regexp"
	"strings"

	"github.com/regexsoup-xyz/go-regexsoup/alphabet"
)

// Matcher tests word membership by compiling the tree once into an
// anchored native regexp. This is the fast path used for Monte-Carlo
// acceptance sampling; it agrees with the NFA/DFA pipeline on every
// finite word.
type Matcher struct {
	compiled *regexp.Regexp
}

// NewMatcher compiles ast into a reusable matcher.
func NewMatcher(ast Ast) *Matcher {
	return &Matcher{compiled: regexp.MustCompile("^(?:" + nativePattern(ast) + ")$")}
}

// Match reports whether the whole word is in the language of the tree.
func (m *Matcher) Match(word []alphabet.Symbol) bool {
	return m.compiled.MatchString(alphabet.Format(word))
}

// Match is a convenience wrapper that compiles ast and tests a single word.
func Match(ast Ast, word []alphabet.Symbol) bool {
	return NewMatcher(ast).Match(word)
}

// nativePattern mirrors the canonical renderer structure onto native
// regexp syntax. Every composite is wrapped in a non-capturing group so
// precedence never leaks between levels.
func nativePattern(ast Ast) string {
	switch n := ast.(type) {
	case Epsilon:
		return "(?:)"
	case Literal:
		return n.Sym.String()
	case Star:
		return "(?:" + nativePattern(n.Inner) + ")*"
	case Concat:
		var b strings.Builder
		b.WriteString("(?:")
		for _, c := range n.Children {
			b.WriteString(nativePattern(c))
		}
		b.WriteString(")")
		return b.String()
	case Alt:
		parts := make([]string, len(n.Children))
		for i, c := range n.Children {
			parts[i] = nativePattern(c)
		}
		return "(?:" + strings.Join(parts, "|") + ")"
	default:
		panic("regex: unknown ast node")
	}
}
