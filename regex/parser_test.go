package regex

import (
	"testing"

	"github.com/regexsoup-xyz/go-regexsoup/alphabet"
)

func TestParseShapes(t *testing.T) {
	tests := []struct {
		input string
		want  Ast
	}{
		{"ε", Eps()},
		{"a", Lit(alphabet.A)},
		{"A", Lit(alphabet.A)},
		{"abc", NewConcat(Lit(alphabet.A), Lit(alphabet.B), Lit(alphabet.C))},
		{"ab|c", NewAlt(
			NewConcat(Lit(alphabet.A), Lit(alphabet.B)),
			Lit(alphabet.C),
		)},
		{"ab*|cd", NewAlt(
			NewConcat(Lit(alphabet.A), NewStar(Lit(alphabet.B))),
			NewConcat(Lit(alphabet.C), Lit(alphabet.D)),
		)},
		// Parenthesized single atoms stay unwrapped.
		{"(a)", Lit(alphabet.A)},
		{"((a))", Lit(alphabet.A)},
		// Any number of stars collapses to one Star wrapper.
		{"a*", NewStar(Lit(alphabet.A))},
		{"a**", NewStar(Lit(alphabet.A))},
		{"a***", NewStar(Lit(alphabet.A))},
		{"(a|b)*", NewStar(NewAlt(Lit(alphabet.A), Lit(alphabet.B)))},
		{"εa", NewConcat(Eps(), Lit(alphabet.A))},
	}

	for _, tc := range tests {
		got, err := Parse(tc.input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tc.input, err)
		}
		if !Equal(got, tc.want) {
			t.Errorf("Parse(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",     // no expression at all
		"z",    // letter outside the alphabet
		"abz",  // valid prefix, bad literal
		"(",    // unbalanced
		"(a",   // unbalanced
		"a)",   // trailing input
		"a|",   // dangling alternation
		"*",    // star with no atom
		"a b",  // whitespace is not part of the grammar
		"a+b",  // unsupported operator
		"a{2}", // unsupported operator
	}

	for _, input := range inputs {
		ast, err := Parse(input)
		if err == nil {
			t.Errorf("Parse(%q) = %s, want error", input, ast)
			continue
		}
		if _, ok := err.(*ParseError); !ok {
			t.Errorf("Parse(%q) error is %T, want *ParseError", input, err)
		}
	}
}

func TestParseRenderRoundTrip(t *testing.T) {
	inputs := []string{
		"ε",
		"a",
		"abc",
		"ab|c",
		"ab*|cd",
		"(a|b)*",
		"a*(ba*)*",
		"ε|εεε*",
		"((a|(bc)))*",
	}

	for _, input := range inputs {
		ast, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", input, err)
		}
		again, err := Parse(Render(ast))
		if err != nil {
			t.Fatalf("Parse(Render(%q)) failed: %v", input, err)
		}
		if !Equal(ast, again) {
			t.Errorf("round trip of %q: got %s, want %s", input, again, ast)
		}
		if Render(ast) != Render(again) {
			t.Errorf("rendering of %q not stable: %q vs %q", input, Render(ast), Render(again))
		}
	}
}
