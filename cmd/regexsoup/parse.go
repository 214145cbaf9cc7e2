package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/regexsoup-xyz/go-regexsoup/alphabet"
	"github.com/regexsoup-xyz/go-regexsoup/regex"
)

func parseCmd(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	showAlphabet := fs.Bool("alphabet", false, "Print the used alphabet")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: regexsoup parse [options] <expression>

Parse a regular expression and print its canonical, fully parenthesized
form. Literals are the letters a-j (case-insensitive); ε matches only the
empty word.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse expects exactly one expression")
	}

	ast, err := regex.Parse(fs.Arg(0))
	if err != nil {
		return err
	}

	fmt.Println(regex.Render(ast))
	if *showAlphabet {
		fmt.Printf("alphabet: %s\n", alphabet.Format(regex.UsedAlphabet(ast)))
	}
	return nil
}
