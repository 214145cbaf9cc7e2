// Package alphabet defines the closed ten-letter symbol set that every
// regular expression in this module ranges over. Symbols are totally
// ordered, render as lower-case letters, and map case-insensitively from
// input characters.
package alphabet

import (
	"fmt"
	"strings"
)

// Symbol is one of the ten letters a..j.
type Symbol int

const (
	A Symbol = iota
	B
	C
	D
	E
	F
	G
	H
	I
	J
)

// Count is the number of symbols in the full alphabet.
const Count = 10

// MaxDifficulty is the largest usable difficulty; difficulty d selects the
// first d symbols in canonical order.
const MaxDifficulty = Count

func (s Symbol) String() string {
	if s < A || s > J {
		return fmt.Sprintf("Symbol(%d)", int(s))
	}
	return string('a' + rune(s))
}

// FromChar maps a single character onto a symbol, accepting both cases.
func FromChar(r rune) (Symbol, error) {
	switch {
	case r >= 'a' && r <= 'j':
		return Symbol(r - 'a'), nil
	case r >= 'A' && r <= 'J':
		return Symbol(r - 'A'), nil
	default:
		return 0, fmt.Errorf("alphabet: character %q is not a valid symbol", r)
	}
}

// FromString converts a whole word into its symbol sequence. The error
// lists every offending character, not just the first.
func FromString(s string) ([]Symbol, error) {
	word := make([]Symbol, 0, len(s))
	var invalid []string
	for _, r := range s {
		sym, err := FromChar(r)
		if err != nil {
			invalid = append(invalid, string(r))
			continue
		}
		word = append(word, sym)
	}
	if len(invalid) > 0 {
		return nil, fmt.Errorf("alphabet: invalid characters %v", invalid)
	}
	return word, nil
}

// Format renders a word as its canonical lower-case string.
func Format(word []Symbol) string {
	var b strings.Builder
	for _, s := range word {
		b.WriteString(s.String())
	}
	return b.String()
}

// All returns the full alphabet in canonical order.
func All() []Symbol {
	return Domain(MaxDifficulty)
}

// Domain returns the first difficulty symbols in canonical order.
// Difficulty outside 1..MaxDifficulty panics; callers validate first.
func Domain(difficulty int) []Symbol {
	if difficulty < 1 || difficulty > MaxDifficulty {
		panic(fmt.Sprintf("alphabet: difficulty %d out of range", difficulty))
	}
	domain := make([]Symbol, difficulty)
	for i := range domain {
		domain[i] = Symbol(i)
	}
	return domain
}

// Contains reports whether sym is among the given symbols.
func Contains(domain []Symbol, sym Symbol) bool {
	for _, d := range domain {
		if d == sym {
			return true
		}
	}
	return false
}
