package regex

import (
	"testing"

	"github.com/regexsoup-xyz/go-regexsoup/alphabet"
)

func TestRenderCanonical(t *testing.T) {
	tests := []struct {
		ast  Ast
		want string
	}{
		{Eps(), "ε"},
		{Lit(alphabet.A), "a"},
		{NewConcat(Lit(alphabet.A), Lit(alphabet.B), Eps()), "(abε)"},
		{NewAlt(Lit(alphabet.A), Lit(alphabet.B), Eps()), "(a|b|ε)"},
		{NewStar(NewAlt(Lit(alphabet.A), Lit(alphabet.G))), "((a|g))*"},
		{NewStar(NewAlt(
			Lit(alphabet.A),
			NewConcat(Lit(alphabet.B), Lit(alphabet.C)),
		)), "((a|(bc)))*"},
		{NewStar(NewAlt(
			NewAlt(Lit(alphabet.A), Lit(alphabet.C)),
			NewConcat(Lit(alphabet.B), Lit(alphabet.C)),
		)), "(((a|c)|(bc)))*"},
	}

	for _, tc := range tests {
		if got := Render(tc.ast); got != tc.want {
			t.Errorf("Render = %q, want %q", got, tc.want)
		}
	}
}

func TestConstructorsUnwrapSingleChild(t *testing.T) {
	a := Lit(alphabet.A)
	if !Equal(NewConcat(a), a) {
		t.Error("NewConcat of one child should unwrap")
	}
	if !Equal(NewAlt(a), a) {
		t.Error("NewAlt of one child should unwrap")
	}
}

func TestConstructorsRejectEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewConcat() should panic")
		}
	}()
	NewConcat()
}

func TestSize(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"ε", 1},
		{"a", 1},
		{"a*", 2},
		{"abc", 4},
		{"ab|c", 5},
	}

	for _, tc := range tests {
		ast, err := Parse(tc.input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tc.input, err)
		}
		if got := Size(ast); got != tc.want {
			t.Errorf("Size(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestUsedAlphabet(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ε", ""},
		{"ε|εεε*", ""},
		{"a", "a"},
		{"abεc", "abc"},
		{"(c|b)*a", "abc"},
		{"aaa", "a"},
	}

	for _, tc := range tests {
		ast, err := Parse(tc.input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tc.input, err)
		}
		if got := alphabet.Format(UsedAlphabet(ast)); got != tc.want {
			t.Errorf("UsedAlphabet(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestEqual(t *testing.T) {
	a, _ := Parse("ab|c")
	b, _ := Parse("ab|c")
	c, _ := Parse("a(b|c)")

	if !Equal(a, b) {
		t.Error("identical parses should be equal")
	}
	if Equal(a, c) {
		t.Error("structurally different trees should not be equal")
	}
}
