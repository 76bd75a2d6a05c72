// Package parser implements the §6 grammar as a packrat grammar, grounded
// on launix-de/memcp's scm/packrat.go combinator wiring, and exposes the
// result as an *ast.Node tree — the seam between the external parser
// collaborator (spec §1, §6) and the in-scope reader (§4.1).
package parser

import (
	"fmt"

	packrat "github.com/launix-de/go-packrat/v2"

	"github.com/jamied157/jdlisp/ast"
)

// Grammar holds the compiled top-level parser for the `lispy` rule.
type Grammar struct {
	lispy packrat.Parser
}

// forwardParser defers to a parser resolved lazily, breaking the
// initialization cycle of the grammar's mutually-recursive expr/sexpr/qexpr
// rules (grounded on launix-de-memcp/scm/packrat.go's UndefinedParser).
type forwardParser struct{ get func() packrat.Parser }

func (f *forwardParser) Match(s *packrat.Scanner) *packrat.Node { return f.get().Match(s) }

// ruleParser tags every node a rule produces with that rule's own name,
// instead of leaving the reader to infer a tag from the matching
// combinator's Go type. number/decimal/boolean/symbol/string/comment and
// sexpr/qexpr are built from the same handful of combinator types
// (OrParser, AndParser, RegexParser), so a type switch over n.Parser
// can't tell them apart — sexpr and qexpr are both an AndParser, and
// boolean is an OrParser like expr itself. Wrapping each rule in a
// ruleParser makes its identity explicit on every node it matches.
type ruleParser struct {
	tag   string
	inner packrat.Parser
}

func (r *ruleParser) Match(s *packrat.Scanner) *packrat.Node {
	n := r.inner.Match(s)
	if n == nil {
		return nil
	}
	return &packrat.Node{Matched: n.Matched, Children: n.Children, Parser: r}
}

func rule(tag string, p packrat.Parser) *ruleParser {
	return &ruleParser{tag: tag, inner: p}
}

// New builds the §6 grammar: number, decimal, boolean, symbol, string,
// comment, sexpr, qexpr, expr, lispy.
func New() *Grammar {
	number := rule("number", packrat.NewRegexParser(`-?[0-9]+`, false, true))
	decimal := rule("decimal", packrat.NewRegexParser(`-?[0-9]+\.[0-9]*`, false, true))
	boolean := rule("boolean", packrat.NewOrParser(
		packrat.NewAtomParser("true", false, true),
		packrat.NewAtomParser("false", false, true),
	))
	symbol := rule("symbol", packrat.NewRegexParser(`[a-zA-Z0-9_+\-*/\\=<>!&|]+`, false, true))
	str := rule("string", packrat.NewRegexParser(`"(\\.|[^"])*"`, false, true))
	comment := rule("comment", packrat.NewRegexParser(`;[^\r\n]*`, false, true))

	var expr, sexpr, qexpr packrat.Parser

	// expr is mutually recursive with sexpr/qexpr; exprRef defers the
	// lookup until grammar construction has finished, the same
	// forward-declaration shape memcp's UndefinedParser fills for a
	// variable referenced before its parser is assigned.
	exprRef := &forwardParser{get: func() packrat.Parser { return expr }}
	sexpr = rule("sexpr", packrat.NewAndParser(
		packrat.NewAtomParser("(", false, true),
		packrat.NewKleeneParser(exprRef, packrat.NewEmptyParser()),
		packrat.NewAtomParser(")", false, true),
	))
	qexpr = rule("qexpr", packrat.NewAndParser(
		packrat.NewAtomParser("{", false, true),
		packrat.NewKleeneParser(exprRef, packrat.NewEmptyParser()),
		packrat.NewAtomParser("}", false, true),
	))
	expr = packrat.NewOrParser(decimal, number, boolean, symbol, str, comment, sexpr, qexpr)

	lispy := packrat.NewAndParser(
		packrat.NewKleeneParser(exprRef, packrat.NewEmptyParser()),
		packrat.NewEndParser(true),
	)
	return &Grammar{lispy: lispy}
}

// Parse runs the grammar over src and returns the root AST node.
func (g *Grammar) Parse(src string) (*ast.Node, error) {
	scanner := packrat.NewScanner(src, packrat.SkipWhitespaceAndCommentsRegex)
	node, err := packrat.Parse(g.lispy, scanner)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return toASTNode(node, "lispy"), nil
}

// toASTNode converts a packrat.Node into the ast.Node shape the reader
// consumes (§4.1's tag substring/contents/children accessors).
func toASTNode(n *packrat.Node, tag string) *ast.Node {
	out := &ast.Node{Tag: tag, Contents: n.Matched}
	for _, child := range n.Children {
		out.Children = append(out.Children, toASTNode(child, childTag(child)))
	}
	return out
}

// childTag derives a grammar rule name for a child node from the
// sub-parser that produced it. A ruleParser carries its rule's own tag
// directly; anything else is either plain punctuation (the literal
// bracket/paren AtomParsers inside sexpr/qexpr) or an untagged expr
// alternative.
func childTag(n *packrat.Node) string {
	switch p := n.Parser.(type) {
	case *ruleParser:
		return p.tag
	case *packrat.AtomParser:
		return "punct"
	default:
		return "expr"
	}
}
