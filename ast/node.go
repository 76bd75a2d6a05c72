// Package ast defines the tree shape produced by the external grammar
// parser and consumed by the reader (spec §4.1, §6): a tagged node with a
// contents string and ordered children, in the style of mpc's AST nodes.
package ast

import "strings"

// Node is one node of a parsed syntax tree. Tag is a pipe-joined set of
// grammar rule names the node matched (mirroring mpc's `tag` field, e.g.
// "number|regex|expr|sexpr|lispy"); Contents holds the matched text for
// leaf nodes; Children holds the ordered sub-nodes for composite nodes.
type Node struct {
	Tag      string
	Contents string
	Children []*Node
}

// HasTag reports whether name appears as one of the pipe-separated
// components of the node's tag, the substring dispatch the reader relies
// on (§4.1 "dispatches on the node's tag substring").
func (n *Node) HasTag(name string) bool {
	if n == nil {
		return false
	}
	for _, part := range strings.Split(n.Tag, "|") {
		if part == name {
			return true
		}
	}
	return false
}

// IsPunctuation reports whether the node is a bracket, paren, or a bare
// regex marker (a regex-tagged node with empty contents) the reader must
// skip over rather than recurse into. Comment nodes are not covered here;
// the reader skips them separately (§4.1: "children whose content is a bracket, paren, regex marker, or
// comment are skipped").
func (n *Node) IsPunctuation() bool {
	switch n.Contents {
	case "(", ")", "{", "}":
		return true
	}
	return n.HasTag("regex") && n.Contents == ""
}
