package regex

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/regexsoup-xyz/go-regexsoup/alphabet"
)

// ParseError reports malformed regular-expression text: an unknown literal
// character, unbalanced parentheses, or trailing input after a complete
// expression.
type ParseError struct {
	Input string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("regex: cannot parse %q: %s", e.Input, e.Msg)
}

// Grammar, highest to lowest precedence:
//
//	atom        := 'ε' | letter | '(' pattern ')'
//	factor      := atom '*'*          (any number of stars collapse to one)
//	concat      := factor+
//	pattern     := concat ('|' concat)*
//
// Single-child concatenations and alternations are unwrapped, so parsed
// trees are always canonical.
type patternNode struct {
	Alts []*concatNode `parser:"@@ ('|' @@)*"`
}

type concatNode struct {
	Factors []*factorNode `parser:"@@+"`
}

type factorNode struct {
	Atom  *atomNode `parser:"@@"`
	Stars []string  `parser:"@'*'*"`
}

type atomNode struct {
	Epsilon bool         `parser:"@Epsilon"`
	Letter  string       `parser:"| @Letter"`
	Group   *patternNode `parser:"| '(' @@ ')'"`
}

var regexLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Epsilon", Pattern: `ε`},
	{Name: "Letter", Pattern: `[A-Za-z]`},
	{Name: "Punct", Pattern: `[()|*]`},
})

var regexParser = participle.MustBuild[patternNode](
	participle.Lexer(regexLexer),
	participle.UseLookahead(2),
)

// Parse reads a regular expression in the fixed grammar above. The parse
// is deterministic; failures are reported as *ParseError.
func Parse(text string) (Ast, error) {
	root, err := regexParser.ParseString("", text)
	if err != nil {
		return nil, &ParseError{Input: text, Msg: err.Error()}
	}
	ast, err := root.toAst()
	if err != nil {
		return nil, &ParseError{Input: text, Msg: err.Error()}
	}
	return ast, nil
}

func (p *patternNode) toAst() (Ast, error) {
	children := make([]Ast, 0, len(p.Alts))
	for _, alt := range p.Alts {
		child, err := alt.toAst()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return NewAlt(children...), nil
}

func (c *concatNode) toAst() (Ast, error) {
	children := make([]Ast, 0, len(c.Factors))
	for _, f := range c.Factors {
		child, err := f.toAst()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return NewConcat(children...), nil
}

func (f *factorNode) toAst() (Ast, error) {
	base, err := f.Atom.toAst()
	if err != nil {
		return nil, err
	}
	// r** is r*, so one wrapper regardless of star count.
	if len(f.Stars) > 0 {
		return NewStar(base), nil
	}
	return base, nil
}

func (a *atomNode) toAst() (Ast, error) {
	switch {
	case a.Epsilon:
		return Eps(), nil
	case a.Letter != "":
		sym, err := alphabet.FromChar([]rune(a.Letter)[0])
		if err != nil {
			return nil, fmt.Errorf("unexpected literal %q", a.Letter)
		}
		return Lit(sym), nil
	case a.Group != nil:
		return a.Group.toAst()
	default:
		return nil, fmt.Errorf("empty atom")
	}
}
