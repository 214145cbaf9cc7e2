package alphabet

import (
	"testing"
)

func TestFromStringRoundTrip(t *testing.T) {
	tests := []struct {
		input string
		want  []Symbol
	}{
		{"ABCJ", []Symbol{A, B, C, J}},
		{"abcj", []Symbol{A, B, C, J}},
		{"abCg", []Symbol{A, B, C, G}},
		{"", nil},
	}

	for _, tc := range tests {
		got, err := FromString(tc.input)
		if err != nil {
			t.Fatalf("FromString(%q) failed: %v", tc.input, err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("FromString(%q) = %v, want %v", tc.input, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("FromString(%q)[%d] = %v, want %v", tc.input, i, got[i], tc.want[i])
			}
		}
		// Formatting the symbols recovers the canonical lower-case word.
		if back, _ := FromString(Format(got)); Format(back) != Format(got) {
			t.Errorf("Format round trip broken for %q", tc.input)
		}
	}
}

func TestFromStringInvalid(t *testing.T) {
	for _, input := range []string{"Z", "abz", "a1b", "k"} {
		if _, err := FromString(input); err == nil {
			t.Errorf("FromString(%q) should fail", input)
		}
	}
}

func TestDomain(t *testing.T) {
	domain := Domain(3)
	if len(domain) != 3 {
		t.Fatalf("Domain(3) has %d symbols, want 3", len(domain))
	}
	for i, sym := range domain {
		if sym != Symbol(i) {
			t.Errorf("Domain(3)[%d] = %v, want %v", i, sym, Symbol(i))
		}
	}

	if got := len(All()); got != Count {
		t.Errorf("All() has %d symbols, want %d", got, Count)
	}
}

func TestDomainOutOfRange(t *testing.T) {
	for _, d := range []int{0, -1, 11} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Domain(%d) should panic", d)
				}
			}()
			Domain(d)
		}()
	}
}

func TestSymbolString(t *testing.T) {
	if A.String() != "a" || J.String() != "j" {
		t.Errorf("canonical rendering broken: a=%q j=%q", A.String(), J.String())
	}
	if got := Format([]Symbol{B, A, D}); got != "bad" {
		t.Errorf("Format = %q, want %q", got, "bad")
	}
}
