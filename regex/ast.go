// Package regex implements the regular-expression core: the expression
// tree, its parser and canonical renderer, and a direct matcher used for
// fast membership tests. Expressions range over the closed alphabet in
// package alphabet and always denote a non-empty language; the grammar has
// no "match nothing" constant, so every well-formed tree accepts at least
// one word.
package regex

import (
	"sort"
	"strings"

	"github.com/regexsoup-xyz/go-regexsoup/alphabet"
)

// Ast is the expression tree of a regular expression. The five variants
// are Epsilon, Literal, Star, Concat and Alt. Trees are immutable once
// constructed and own their children exclusively; copying the interface
// value is enough to share one safely.
type Ast interface {
	// String renders the canonical, fully parenthesized form.
	String() string

	isAst()
}

// Epsilon matches only the empty word.
type Epsilon struct{}

// Literal matches exactly one occurrence of its symbol.
type Literal struct {
	Sym alphabet.Symbol
}

// Star matches zero or more repetitions of words matched by Inner.
type Star struct {
	Inner Ast
}

// Concat matches the concatenation of each child's word in order.
// Canonical trees always hold at least two children.
type Concat struct {
	Children []Ast
}

// Alt matches any word matched by at least one child.
// Canonical trees always hold at least two children.
type Alt struct {
	Children []Ast
}

func (Epsilon) isAst() {}
func (Literal) isAst() {}
func (Star) isAst()    {}
func (Concat) isAst()  {}
func (Alt) isAst()     {}

// Eps returns the epsilon expression.
func Eps() Ast { return Epsilon{} }

// Lit returns a single-symbol literal expression.
func Lit(sym alphabet.Symbol) Ast { return Literal{Sym: sym} }

// NewStar wraps inner in a Kleene star.
func NewStar(inner Ast) Ast { return Star{Inner: inner} }

// NewConcat builds a concatenation, unwrapping a single child so that a
// one-element Concat is never materialized. Zero children is a programming
// error: construction is where canonical form is guaranteed.
func NewConcat(children ...Ast) Ast {
	switch len(children) {
	case 0:
		panic("regex: Concat requires at least one child")
	case 1:
		return children[0]
	default:
		return Concat{Children: children}
	}
}

// NewAlt builds an alternation with the same single-child unwrap rule as
// NewConcat.
func NewAlt(children ...Ast) Ast {
	switch len(children) {
	case 0:
		panic("regex: Alt requires at least one child")
	case 1:
		return children[0]
	default:
		return Alt{Children: children}
	}
}

func (Epsilon) String() string { return "ε" }

func (l Literal) String() string { return l.Sym.String() }

func (s Star) String() string { return "(" + s.Inner.String() + ")*" }

func (c Concat) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for _, child := range c.Children {
		b.WriteString(child.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (a Alt) String() string {
	parts := make([]string, len(a.Children))
	for i, child := range a.Children {
		parts[i] = child.String()
	}
	return "(" + strings.Join(parts, "|") + ")"
}

// Render returns the canonical printable form of ast. Parsing the result
// yields a structurally equal tree.
func Render(ast Ast) string { return ast.String() }

// Equal reports structural equality of two trees.
func Equal(a, b Ast) bool {
	switch x := a.(type) {
	case Epsilon:
		_, ok := b.(Epsilon)
		return ok
	case Literal:
		y, ok := b.(Literal)
		return ok && x.Sym == y.Sym
	case Star:
		y, ok := b.(Star)
		return ok && Equal(x.Inner, y.Inner)
	case Concat:
		y, ok := b.(Concat)
		return ok && equalChildren(x.Children, y.Children)
	case Alt:
		y, ok := b.(Alt)
		return ok && equalChildren(x.Children, y.Children)
	default:
		return false
	}
}

func equalChildren(a, b []Ast) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Size counts the nodes of the tree.
func Size(ast Ast) int {
	switch n := ast.(type) {
	case Epsilon, Literal:
		return 1
	case Star:
		return 1 + Size(n.Inner)
	case Concat:
		return 1 + sizeChildren(n.Children)
	case Alt:
		return 1 + sizeChildren(n.Children)
	default:
		panic("regex: unknown ast node")
	}
}

func sizeChildren(children []Ast) int {
	total := 0
	for _, c := range children {
		total += Size(c)
	}
	return total
}

// UsedAlphabet collects every literal symbol reachable in the tree, sorted
// in canonical order. Epsilon-only trees yield an empty set.
func UsedAlphabet(ast Ast) []alphabet.Symbol {
	set := make(map[alphabet.Symbol]struct{})
	collectSymbols(ast, set)
	used := make([]alphabet.Symbol, 0, len(set))
	for sym := range set {
		used = append(used, sym)
	}
	sort.Slice(used, func(i, j int) bool { return used[i] < used[j] })
	return used
}

func collectSymbols(ast Ast, set map[alphabet.Symbol]struct{}) {
	switch n := ast.(type) {
	case Epsilon:
	case Literal:
		set[n.Sym] = struct{}{}
	case Star:
		collectSymbols(n.Inner, set)
	case Concat:
		for _, c := range n.Children {
			collectSymbols(c, set)
		}
	case Alt:
		for _, c := range n.Children {
			collectSymbols(c, set)
		}
	}
}
