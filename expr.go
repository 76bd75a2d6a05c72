package lisp

import (
	"io"
	"strings"
)

// SExpr is an ordered, evaluating list: the callable form (§3).
type SExpr struct{ list *Pair }

// MakeSExpr builds an SExpr from the given elements.
func MakeSExpr(vals ...Value) SExpr { return SExpr{list: MakeList(vals...)} }

// sexprOf wraps an existing Pair chain as an SExpr without copying it.
func sexprOf(p *Pair) SExpr { return SExpr{list: p} }

// Kind returns KindSExpr.
func (SExpr) Kind() Kind { return KindSExpr }

// IsAtom returns true only for the empty S-expression.
func (s SExpr) IsAtom() bool { return s.list == nil }

// Equal compares two SExpr values element-wise (§4.6).
func (s SExpr) Equal(other Value) bool {
	o, ok := other.(SExpr)
	return ok && pairEqual(s.list, o.list)
}

// Copy returns a deep copy of the S-expression.
func (s SExpr) Copy() Value { return SExpr{list: s.list.Copy()} }

// String renders the bracketed form "(...)" .
func (s SExpr) String() string {
	var sb strings.Builder
	_, _ = s.Print(&sb)
	return sb.String()
}

// Print writes the bracketed form "(...)" (§4.2).
func (s SExpr) Print(w io.Writer) (int, error) { return printPair(w, s.list, '(', ')') }

// Length returns the number of elements.
func (s SExpr) Length() int { return s.list.Length() }

// Elements returns the elements as a slice, in order.
func (s SExpr) Elements() []Value { return s.list.Slice() }

// Pairs exposes the backing cons cells.
func (s SExpr) Pairs() *Pair { return s.list }

// QExpr is an ordered, quoted list: inert under evaluation; carries code
// or data (§3).
type QExpr struct{ list *Pair }

// MakeQExpr builds a QExpr from the given elements.
func MakeQExpr(vals ...Value) QExpr { return QExpr{list: MakeList(vals...)} }

// qexprOf wraps an existing Pair chain as a QExpr without copying it.
func qexprOf(p *Pair) QExpr { return QExpr{list: p} }

// Kind returns KindQExpr.
func (QExpr) Kind() Kind { return KindQExpr }

// IsAtom returns true only for the empty Q-expression.
func (q QExpr) IsAtom() bool { return q.list == nil }

// Equal compares two QExpr values element-wise (§4.6).
func (q QExpr) Equal(other Value) bool {
	o, ok := other.(QExpr)
	return ok && pairEqual(q.list, o.list)
}

// Copy returns a deep copy of the Q-expression.
func (q QExpr) Copy() Value { return QExpr{list: q.list.Copy()} }

// String renders the braced form "{...}".
func (q QExpr) String() string {
	var sb strings.Builder
	_, _ = q.Print(&sb)
	return sb.String()
}

// Print writes the braced form "{...}" (§4.2).
func (q QExpr) Print(w io.Writer) (int, error) { return printPair(w, q.list, '{', '}') }

// Length returns the number of elements.
func (q QExpr) Length() int { return q.list.Length() }

// Elements returns the elements as a slice, in order.
func (q QExpr) Elements() []Value { return q.list.Slice() }

// Pairs exposes the backing cons cells.
func (q QExpr) Pairs() *Pair { return q.list }

// pairEqual compares two proper lists element-wise.
func pairEqual(a, b *Pair) bool {
	for a != nil && b != nil {
		if !a.car.Equal(b.car) {
			return false
		}
		a, b = a.Tail(), b.Tail()
	}
	return a == nil && b == nil
}
