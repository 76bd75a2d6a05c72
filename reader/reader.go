// Package reader implements read(ast_node) -> V (spec §4.1): converting an
// external parser's AST node into a lisp.Value.
package reader

import (
	"strconv"
	"strings"

	"github.com/jamied157/jdlisp"
	"github.com/jamied157/jdlisp/ast"
)

// Read converts an AST node into a Value, per §4.1: numbers, decimals,
// booleans, symbols, and strings map to their scalar constructor; a
// conversion failure yields an Err rather than a Go error, since a parse
// failure in the value reader is a language-level condition, not a host
// one. sexpr/qexpr nodes (and the root node) build an ordered list,
// skipping punctuation/comment children and recursing into the rest.
func Read(n *ast.Node) lisp.Value {
	switch {
	case n.HasTag("number"):
		return readNumber(n)
	case n.HasTag("decimal"):
		return readDecimal(n)
	case n.HasTag("boolean"):
		return readBoolean(n)
	case n.HasTag("string"):
		return readString(n)
	case n.HasTag("symbol"):
		return lisp.Sym(n.Contents)
	case n.HasTag("comment"):
		return lisp.MakeOk()
	case n.HasTag("qexpr"):
		return lisp.MakeQExpr(readList(n)...)
	default:
		// sexpr nodes, the root node (tagged "lispy" by parser.Parse), and
		// any other untagged node all build an ordered SExpr.
		return lisp.MakeSExpr(readList(n)...)
	}
}

func readNumber(n *ast.Node) lisp.Value {
	i, err := strconv.ParseInt(n.Contents, 10, 64)
	if err != nil {
		return lisp.MakeErr("invalid number")
	}
	return lisp.Num(i)
}

func readDecimal(n *ast.Node) lisp.Value {
	f, err := strconv.ParseFloat(n.Contents, 64)
	if err != nil {
		return lisp.MakeErr("invalid decimal")
	}
	return lisp.Dec(f)
}

func readBoolean(n *ast.Node) lisp.Value {
	return lisp.Bool(n.Contents == "true")
}

// readString strips the surrounding quotes and unescapes the payload
// (§4.1). unescape mirrors the small, fixed escape set the grammar's
// string rule admits: \" \\ \t \n \r and \xHH/\uHHHH.
func readString(n *ast.Node) lisp.Value {
	raw := n.Contents
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		case 'x', 'u':
			width := 2
			if raw[i] == 'u' {
				width = 4
			}
			if i+width < len(raw) {
				if r, err := strconv.ParseUint(raw[i+1:i+1+width], 16, 32); err == nil {
					sb.WriteRune(rune(r))
					i += width
					break
				}
			}
			sb.WriteByte(raw[i])
		default:
			sb.WriteByte(raw[i])
		}
	}
	return lisp.Str(sb.String())
}

// readList builds an ordered list of the recursively-read, non-punctuation
// children of n. The returned type is deliberately ambiguous (SExpr vs
// QExpr share this shape); the caller retypes it via its own constructor.
func readList(n *ast.Node) []lisp.Value {
	var vals []lisp.Value
	for _, child := range n.Children {
		if child.IsPunctuation() {
			continue
		}
		if child.HasTag("comment") {
			continue
		}
		vals = append(vals, Read(child))
	}
	return vals
}
