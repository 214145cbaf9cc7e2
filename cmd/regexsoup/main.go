package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "play":
		if err := play(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "generate":
		if err := generate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "parse":
		if err := parseCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "match":
		if err := match(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "equiv":
		if err := equiv(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "history":
		if err := history(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("regexsoup version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`regexsoup - regular expression guessing game

Usage:
  regexsoup <command> [options]

Commands:
  play       Run an interactive quiz session
  generate   Generate a quiz regular expression
  parse      Parse a regular expression and print its canonical form
  match      Test whether a word matches a regular expression
  equiv      Decide whether two regular expressions are equivalent
  history    List archived sessions and their query logs
  help       Show this help message
  version    Show version information

Examples:
  # Play at difficulty 3 (alphabet a, b, c)
  regexsoup play --difficulty 3

  # Generate an answer without playing
  regexsoup generate --difficulty 2 --seed 42

  # Check a word against an expression
  regexsoup match '(a|b)*' abba

  # Compare two expressions
  regexsoup equiv '(a|b)*' 'a*(ba*)*'

For command-specific help, run:
  regexsoup <command> --help`)
}
