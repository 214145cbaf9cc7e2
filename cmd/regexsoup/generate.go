package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/regexsoup-xyz/go-regexsoup/alphabet"
	"github.com/regexsoup-xyz/go-regexsoup/quizgen"
	"github.com/regexsoup-xyz/go-regexsoup/regex"
)

func generate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	difficulty := fs.Int("difficulty", 3, "Number of alphabet symbols in scope (1-10)")
	seed := fs.Uint64("seed", 0, "Random seed (0 picks one at random)")
	showRate := fs.Bool("rate", false, "Print the estimated acceptance rate")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: regexsoup generate [options]

Generate a quiz regular expression: a random tree of bounded size whose
acceptance rate over random words lies strictly between %.1f and %.1f.

Options:
`, quizgen.MinAcceptRate, quizgen.MaxAcceptRate)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	gen := quizgen.New()
	if *seed != 0 {
		gen.WithRand(rand.New(rand.NewPCG(*seed, *seed)))
	}

	ast, err := gen.Generate(*difficulty)
	if err != nil {
		return err
	}

	fmt.Println(regex.Render(ast))
	if *showRate {
		domain := alphabet.Domain(*difficulty)
		fmt.Printf("size: %d, acceptance rate: %.3f\n", regex.Size(ast), gen.EstimateAcceptance(domain, ast))
	}
	return nil
}
