// Package dfa determinizes automata from package nfa via worklist subset
// construction and decides language equivalence of expression trees with
// a product-automaton emptiness search.
package dfa

import (
	"fmt"
	"sort"

	"github.com/regexsoup-xyz/go-regexsoup/alphabet"
	"github.com/regexsoup-xyz/go-regexsoup/nfa"
)

// Dfa is a deterministic automaton over an explicit alphabet subset.
// States are dense indices with state 0 initial; Trans is total because
// the empty NFA subset is materialized as an absorbing trap state.
type Dfa struct {
	Alphabet []alphabet.Symbol
	Trans    [][]int // Trans[state][i] follows Alphabet[i]
	Accept   []bool
}

// adjacency is the per-state edge view of an NFA used during
// determinization.
type adjacency struct {
	eps [][]int
	sym []map[alphabet.Symbol][]int
}

func buildAdjacency(n nfa.Nfa) adjacency {
	count := n.MaxIndex + 1
	adj := adjacency{
		eps: make([][]int, count),
		sym: make([]map[alphabet.Symbol][]int, count),
	}
	for i := range adj.sym {
		adj.sym[i] = make(map[alphabet.Symbol][]int)
	}
	for _, e := range n.Edges {
		if e.Label == nil {
			adj.eps[e.From] = append(adj.eps[e.From], e.To)
		} else {
			adj.sym[e.From][*e.Label] = append(adj.sym[e.From][*e.Label], e.To)
		}
	}
	return adj
}

// closure expands the given state set with everything reachable over
// epsilon-edges, using an explicit stack instead of recursion.
func (adj adjacency) closure(set map[int]struct{}) map[int]struct{} {
	stack := make([]int, 0, len(set))
	for s := range set {
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, to := range adj.eps[s] {
			if _, seen := set[to]; !seen {
				set[to] = struct{}{}
				stack = append(stack, to)
			}
		}
	}
	return set
}

// move returns the raw successor set of the subset over one symbol.
func (adj adjacency) move(set map[int]struct{}, sym alphabet.Symbol) map[int]struct{} {
	next := make(map[int]struct{})
	for s := range set {
		for _, to := range adj.sym[s][sym] {
			next[to] = struct{}{}
		}
	}
	return next
}

// fingerprint gives a canonical key for a subset of NFA indices.
func fingerprint(set map[int]struct{}) string {
	ids := make([]int, 0, len(set))
	for s := range set {
		ids = append(ids, s)
	}
	sort.Ints(ids)
	return fmt.Sprint(ids)
}

func anyFinal(set map[int]struct{}, finals []int) bool {
	for _, f := range finals {
		if _, ok := set[f]; ok {
			return true
		}
	}
	return false
}

// FromNfa determinizes n over the given alphabet subset. Every symbol of
// every word later fed to the result must come from alpha; symbols absent
// from alpha simply do not exist for the constructed automaton.
func FromNfa(n nfa.Nfa, alpha []alphabet.Symbol) *Dfa {
	adj := buildAdjacency(n)

	d := &Dfa{Alphabet: append([]alphabet.Symbol(nil), alpha...)}
	index := make(map[string]int)

	addState := func(set map[int]struct{}) int {
		key := fingerprint(set)
		if id, ok := index[key]; ok {
			return id
		}
		id := len(d.Trans)
		index[key] = id
		d.Trans = append(d.Trans, make([]int, len(alpha)))
		d.Accept = append(d.Accept, anyFinal(set, n.Finals))
		return id
	}

	initial := adj.closure(map[int]struct{}{0: {}})
	queue := []map[int]struct{}{initial}
	addState(initial)
	processed := make(map[string]bool)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		key := fingerprint(current)
		if processed[key] {
			continue
		}
		processed[key] = true
		from := index[key]

		for i, sym := range alpha {
			next := adj.closure(adj.move(current, sym))
			nextKey := fingerprint(next)
			if _, known := index[nextKey]; !known {
				queue = append(queue, next)
			}
			d.Trans[from][i] = addState(next)
		}
	}
	return d
}

// Accepts walks the transition table over the word and reports whether the
// final state accepts. Symbols outside the automaton's alphabet make the
// walk fail closed.
func (d *Dfa) Accepts(word []alphabet.Symbol) bool {
	state := 0
	for _, sym := range word {
		i := d.symbolIndex(sym)
		if i < 0 {
			return false
		}
		state = d.Trans[state][i]
	}
	return d.Accept[state]
}

func (d *Dfa) symbolIndex(sym alphabet.Symbol) int {
	for i, s := range d.Alphabet {
		if s == sym {
			return i
		}
	}
	return -1
}

// States returns the number of subset states, trap included.
func (d *Dfa) States() int { return len(d.Trans) }
