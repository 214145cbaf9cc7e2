package regex

import (
	"testing"

	"github.com/regexsoup-xyz/go-regexsoup/alphabet"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		word    string
		want    bool
	}{
		{"ε", "", true},
		{"ε", "a", false},
		{"a", "a", true},
		{"a", "", false},
		{"a", "aa", false},
		{"a*", "", true},
		{"a*", "aaaa", true},
		{"a*", "aab", false},
		{"abc", "abc", true},
		{"abc", "ab", false},
		{"ab|c", "ab", true},
		{"ab|c", "c", true},
		{"ab|c", "abc", false},
		{"(a|b)*", "", true},
		{"(a|b)*", "abba", true},
		{"(a|b)*", "abca", false},
		{"ab*|cd", "abbbb", true},
		{"ab*|cd", "cd", true},
		{"ab*|cd", "ad", false},
		{"abεc", "abc", true},
		{"ε|εεε*", "", true},
		{"ε|εεε*", "a", false},
	}

	for _, tc := range tests {
		ast, err := Parse(tc.pattern)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tc.pattern, err)
		}
		word, err := alphabet.FromString(tc.word)
		if err != nil {
			t.Fatalf("FromString(%q) failed: %v", tc.word, err)
		}
		if got := Match(ast, word); got != tc.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tc.pattern, tc.word, got, tc.want)
		}
	}
}

func TestMatcherReuse(t *testing.T) {
	ast, err := Parse("(ab)*")
	if err != nil {
		t.Fatal(err)
	}
	m := NewMatcher(ast)

	words := map[string]bool{
		"":       true,
		"ab":     true,
		"abab":   true,
		"aba":    false,
		"ba":     false,
		"ababab": true,
	}
	for text, want := range words {
		word, _ := alphabet.FromString(text)
		if got := m.Match(word); got != want {
			t.Errorf("Match(%q) = %v, want %v", text, got, want)
		}
	}
}
