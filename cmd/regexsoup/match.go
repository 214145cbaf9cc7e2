package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/regexsoup-xyz/go-regexsoup/alphabet"
	"github.com/regexsoup-xyz/go-regexsoup/dfa"
	"github.com/regexsoup-xyz/go-regexsoup/nfa"
	"github.com/regexsoup-xyz/go-regexsoup/regex"
)

func match(args []string) error {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	viaDfa := fs.Bool("dfa", false, "Match through the NFA/DFA pipeline instead of the direct matcher")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: regexsoup match [options] <expression> <word>

Test whether the whole word matches the expression. Pass "" (the literal
two-character input) as the word to test the empty word.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("match expects an expression and a word")
	}

	ast, err := regex.Parse(fs.Arg(0))
	if err != nil {
		return err
	}

	input := fs.Arg(1)
	var word []alphabet.Symbol
	if input != `""` {
		word, err = alphabet.FromString(input)
		if err != nil {
			return err
		}
	}

	var matched bool
	if *viaDfa {
		d := dfa.FromNfa(nfa.Compile(ast), regex.UsedAlphabet(ast))
		matched = d.Accepts(word)
	} else {
		matched = regex.Match(ast, word)
	}

	if matched {
		fmt.Println("Yes")
	} else {
		fmt.Println("No")
	}
	return nil
}
