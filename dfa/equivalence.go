package dfa

import (
	"github.com/regexsoup-xyz/go-regexsoup/alphabet"
	"github.com/regexsoup-xyz/go-regexsoup/nfa"
	"github.com/regexsoup-xyz/go-regexsoup/regex"
)

// Equivalent decides whether two expression trees denote the same
// language.
//
// Trees over different literal sets are never equivalent: every tree
// denotes a non-empty language, so a symbol reachable in one tree always
// witnesses a word the other cannot accept. Checking the used alphabets
// first is therefore conclusive and avoids determinizing over mismatched
// alphabets. Otherwise both trees are determinized over the shared
// alphabet and the product automaton is searched for a state pair
// accepting in exactly one operand; reaching one refutes equivalence.
func Equivalent(a, b regex.Ast) bool {
	usedA := regex.UsedAlphabet(a)
	usedB := regex.UsedAlphabet(b)
	if !sameSymbols(usedA, usedB) {
		return false
	}

	da := FromNfa(nfa.Compile(a), usedA)
	db := FromNfa(nfa.Compile(b), usedA)
	return sameLanguage(da, db)
}

// sameLanguage performs the symmetric-difference emptiness search over
// product states. Both automata must share one alphabet ordering, which
// Equivalent guarantees.
func sameLanguage(a, b *Dfa) bool {
	type pair struct{ a, b int }

	start := pair{0, 0}
	visited := map[pair]bool{start: true}
	queue := []pair{start}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if a.Accept[p.a] != b.Accept[p.b] {
			return false
		}
		for i := range a.Alphabet {
			next := pair{a.Trans[p.a][i], b.Trans[p.b][i]}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return true
}

func sameSymbols(a, b []alphabet.Symbol) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
