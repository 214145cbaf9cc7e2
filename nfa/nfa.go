// Package nfa builds nondeterministic finite automata from regular
// expression trees. Automata are flat value types with integer state
// indices; the start state is always index 0. Fragments compose by
// relabeling one operand into a disjoint index block, so the same tree
// always compiles to the same automaton structure.
package nfa

import (
	"github.com/regexsoup-xyz/go-regexsoup/alphabet"
	"github.com/regexsoup-xyz/go-regexsoup/regex"
)

// Edge is a transition between two state indices. A nil Label denotes an
// epsilon-transition.
type Edge struct {
	From  int
	Label *alphabet.Symbol
	To    int
}

// Nfa is a nondeterministic finite automaton. MaxIndex records the largest
// state index present; no edge endpoint or final index may exceed it.
type Nfa struct {
	MaxIndex int
	Edges    []Edge
	Finals   []int
}

// empty is the automaton accepting no word. The expression grammar cannot
// denote it; it only seeds the union fold.
func empty() Nfa {
	return Nfa{MaxIndex: 0}
}

// Epsilon returns the automaton accepting only the empty word.
func Epsilon() Nfa {
	return Nfa{MaxIndex: 0, Finals: []int{0}}
}

// Literal returns the automaton accepting the single-letter word sym.
func Literal(sym alphabet.Symbol) Nfa {
	s := sym
	return Nfa{
		MaxIndex: 1,
		Edges:    []Edge{{From: 0, Label: &s, To: 1}},
		Finals:   []int{1},
	}
}

// shift relabels every index upward by the given amount, detaching the
// automaton from index 0 so it can be spliced into another one.
func (n Nfa) shift(by int) Nfa {
	edges := make([]Edge, len(n.Edges))
	for i, e := range n.Edges {
		edges[i] = Edge{From: e.From + by, Label: e.Label, To: e.To + by}
	}
	finals := make([]int, len(n.Finals))
	for i, f := range n.Finals {
		finals[i] = f + by
	}
	return Nfa{MaxIndex: n.MaxIndex + by, Edges: edges, Finals: finals}
}

// Concat splices right after n: right is shifted into the next free index
// block and every final of n gains an epsilon-edge to right's start. The
// result accepts L(n) followed by L(right).
func (n Nfa) Concat(right Nfa) Nfa {
	rightStart := n.MaxIndex + 1
	shifted := right.shift(rightStart)

	edges := make([]Edge, 0, len(n.Edges)+len(shifted.Edges)+len(n.Finals))
	edges = append(edges, n.Edges...)
	edges = append(edges, shifted.Edges...)
	for _, f := range n.Finals {
		edges = append(edges, Edge{From: f, To: rightStart})
	}

	return Nfa{MaxIndex: shifted.MaxIndex, Edges: edges, Finals: shifted.Finals}
}

// ConcatAll folds Concat over the parts left to right. The slice must be
// non-empty; the tree invariant guarantees it.
func ConcatAll(parts []Nfa) Nfa {
	if len(parts) == 0 {
		panic("nfa: ConcatAll requires at least one automaton")
	}
	result := parts[0]
	for _, p := range parts[1:] {
		result = result.Concat(p)
	}
	return result
}

// UnionAll introduces a fresh start state 0, shifts each part into its own
// index block and connects the start to each shifted part start with an
// epsilon-edge. Finals are the union of the shifted finals.
func UnionAll(parts []Nfa) Nfa {
	if len(parts) == 0 {
		panic("nfa: UnionAll requires at least one automaton")
	}
	if len(parts) == 1 {
		return parts[0]
	}

	result := empty()
	for _, p := range parts {
		start := result.MaxIndex + 1
		shifted := p.shift(start)

		edges := make([]Edge, 0, len(result.Edges)+len(shifted.Edges)+1)
		edges = append(edges, result.Edges...)
		edges = append(edges, shifted.Edges...)
		edges = append(edges, Edge{From: 0, To: start})

		finals := make([]int, 0, len(result.Finals)+len(shifted.Finals))
		finals = append(finals, result.Finals...)
		finals = append(finals, shifted.Finals...)

		result = Nfa{MaxIndex: shifted.MaxIndex, Edges: edges, Finals: finals}
	}
	return result
}

// Star shifts the automaton by one and reuses index 0 as both the new
// start and the sole final state, with epsilon-edges into the shifted
// start and back from each shifted final.
func Star(n Nfa) Nfa {
	shifted := n.shift(1)

	edges := make([]Edge, 0, len(shifted.Edges)+len(shifted.Finals)+1)
	edges = append(edges, shifted.Edges...)
	edges = append(edges, Edge{From: 0, To: 1})
	for _, f := range shifted.Finals {
		edges = append(edges, Edge{From: f, To: 0})
	}

	return Nfa{MaxIndex: shifted.MaxIndex, Edges: edges, Finals: []int{0}}
}

// Compile maps a regular expression tree onto an automaton by structural
// recursion over the five variants.
func Compile(ast regex.Ast) Nfa {
	switch n := ast.(type) {
	case regex.Epsilon:
		return Epsilon()
	case regex.Literal:
		return Literal(n.Sym)
	case regex.Star:
		return Star(Compile(n.Inner))
	case regex.Concat:
		return ConcatAll(compileAll(n.Children))
	case regex.Alt:
		return UnionAll(compileAll(n.Children))
	default:
		panic("nfa: unknown ast node")
	}
}

func compileAll(children []regex.Ast) []Nfa {
	parts := make([]Nfa, len(children))
	for i, c := range children {
		parts[i] = Compile(c)
	}
	return parts
}
