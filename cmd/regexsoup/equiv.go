package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/regexsoup-xyz/go-regexsoup/dfa"
	"github.com/regexsoup-xyz/go-regexsoup/regex"
)

func equiv(args []string) error {
	fs := flag.NewFlagSet("equiv", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: regexsoup equiv <expression> <expression>

Decide whether two regular expressions denote the same language.
Expressions over different literal sets are never equivalent.
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("equiv expects exactly two expressions")
	}

	a, err := regex.Parse(fs.Arg(0))
	if err != nil {
		return err
	}
	b, err := regex.Parse(fs.Arg(1))
	if err != nil {
		return err
	}

	if dfa.Equivalent(a, b) {
		fmt.Println("equivalent")
	} else {
		fmt.Println("not equivalent")
	}
	return nil
}
