// Package quizgen synthesizes quiz answers: random expression trees of
// bounded size whose estimated acceptance rate over random words sits in
// a band around one half, so a quiz is neither trivially yes nor
// trivially no.
package quizgen

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/regexsoup-xyz/go-regexsoup/alphabet"
	"github.com/regexsoup-xyz/go-regexsoup/regex"
)

const (
	// MaxTreeSize bounds candidate trees by node count.
	MaxTreeSize = 12

	// MinAcceptRate and MaxAcceptRate delimit the open acceptance band a
	// candidate's estimated rate must fall strictly inside.
	MinAcceptRate = 0.2
	MaxAcceptRate = 1.0 - MinAcceptRate

	// Word lengths for acceptance sampling follow Binomial(wordLengthTrials,
	// wordLengthBias).
	wordLengthTrials = 15
	wordLengthBias   = 0.3

	defaultSampleSize  = 1000
	defaultMaxAttempts = 10000
)

// ErrBudgetExhausted is returned when no candidate landed in the
// acceptance band within the attempt budget. The loop terminates fast in
// practice; the cap only guards pathological parameter choices.
var ErrBudgetExhausted = errors.New("quizgen: attempt budget exhausted")

// Generator samples candidate trees until one qualifies as a quiz.
type Generator struct {
	rng         *rand.Rand
	sampleSize  int
	maxAttempts int
}

// New creates a generator with default sampling parameters and a
// randomly seeded source.
func New() *Generator {
	return &Generator{
		rng:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		sampleSize:  defaultSampleSize,
		maxAttempts: defaultMaxAttempts,
	}
}

// WithRand replaces the random source, making generation reproducible.
func (g *Generator) WithRand(rng *rand.Rand) *Generator {
	g.rng = rng
	return g
}

// WithSampleSize sets how many random words estimate a candidate's
// acceptance rate.
func (g *Generator) WithSampleSize(n int) *Generator {
	g.sampleSize = n
	return g
}

// WithMaxAttempts sets the defensive cap on rejection-sampling rounds.
func (g *Generator) WithMaxAttempts(n int) *Generator {
	g.maxAttempts = n
	return g
}

// Generate returns a quiz answer over the first difficulty symbols of the
// alphabet. Difficulty must lie in 1..alphabet.MaxDifficulty.
func (g *Generator) Generate(difficulty int) (regex.Ast, error) {
	if difficulty < 1 || difficulty > alphabet.MaxDifficulty {
		return nil, fmt.Errorf("quizgen: difficulty %d out of range 1..%d", difficulty, alphabet.MaxDifficulty)
	}
	domain := alphabet.Domain(difficulty)

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		candidate := g.sampleTree(domain, MaxTreeSize)
		rate := g.EstimateAcceptance(domain, candidate)
		if rate > MinAcceptRate && rate < MaxAcceptRate {
			return candidate, nil
		}
	}
	return nil, ErrBudgetExhausted
}

// EstimateAcceptance draws random words over the domain and returns the
// fraction the tree accepts, using the direct matcher.
func (g *Generator) EstimateAcceptance(domain []alphabet.Symbol, ast regex.Ast) float64 {
	matcher := regex.NewMatcher(ast)
	matched := 0
	for i := 0; i < g.sampleSize; i++ {
		if matcher.Match(g.randomWord(domain)) {
			matched++
		}
	}
	return float64(matched) / float64(g.sampleSize)
}

func (g *Generator) randomWord(domain []alphabet.Symbol) []alphabet.Symbol {
	length := g.binomial(wordLengthTrials, wordLengthBias)
	word := make([]alphabet.Symbol, length)
	for i := range word {
		word[i] = domain[g.rng.IntN(len(domain))]
	}
	return word
}

// sampleTree draws one tree of at most budget nodes. Node kinds are chosen
// by weight, with composite kinds zeroed out once the remaining budget
// cannot afford their minimum cost (Star needs 2 nodes, Concat and Alt
// need 3).
func (g *Generator) sampleTree(domain []alphabet.Symbol, budget int) regex.Ast {
	weights := []int{
		2,  // Epsilon
		10, // Literal
		0,  // Star
		0,  // Concat
		0,  // Alt
	}
	if budget >= 2 {
		weights[2] = 6
	}
	if budget >= 3 {
		weights[3] = 4
		weights[4] = 4
	}

	switch g.weightedIndex(weights) {
	case 0:
		return regex.Eps()
	case 1:
		return regex.Lit(domain[g.rng.IntN(len(domain))])
	case 2:
		return regex.NewStar(g.sampleTree(domain, budget-1))
	case 3:
		return regex.NewConcat(g.sampleForest(domain, budget-1)...)
	default:
		return regex.NewAlt(g.sampleForest(domain, budget-1)...)
	}
}

// sampleForest draws a sequence of subtrees whose sizes sum to at most
// budget, one per part of a random partition of the budget.
func (g *Generator) sampleForest(domain []alphabet.Symbol, budget int) []regex.Ast {
	parts := g.partition(budget)
	children := make([]regex.Ast, len(parts))
	for i, size := range parts {
		children[i] = g.sampleTree(domain, size)
	}
	return children
}

// partition splits budget into positive parts by dropping random cut
// points into [0, budget], deduplicating them together with the interval
// ends and taking segment widths. Budget must be at least 1, which the
// composite weight gating guarantees.
func (g *Generator) partition(budget int) []int {
	cutCount := g.binomial(budget, wordLengthBias)
	cuts := make([]int, 0, cutCount+2)
	cuts = append(cuts, 0, budget)
	for i := 0; i < cutCount; i++ {
		cuts = append(cuts, g.rng.IntN(budget+1))
	}
	sort.Ints(cuts)

	parts := make([]int, 0, len(cuts)-1)
	for i := 1; i < len(cuts); i++ {
		if width := cuts[i] - cuts[i-1]; width > 0 {
			parts = append(parts, width)
		}
	}
	return parts
}

// weightedIndex picks an index with probability proportional to its
// weight. At least one weight is always positive here.
func (g *Generator) weightedIndex(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	pick := g.rng.IntN(total)
	for i, w := range weights {
		if pick < w {
			return i
		}
		pick -= w
	}
	panic("quizgen: weighted choice out of bounds")
}

func (g *Generator) binomial(trials int, bias float64) int {
	hits := 0
	for i := 0; i < trials; i++ {
		if g.rng.Float64() < bias {
			hits++
		}
	}
	return hits
}
