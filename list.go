package lisp

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Pair is a cons cell: a value and a pointer to the tail. SExpr and QExpr
// are both backed by a Pair chain; a nil *Pair is the empty list.
type Pair struct {
	car Value
	cdr Value
}

// Cons creates a pair, prepending car in front of cdr.
func Cons(car, cdr Value) *Pair { return &Pair{car: car, cdr: cdr} }

// MakeList builds a proper list from the given values.
func MakeList(vals ...Value) *Pair {
	var lb listBuilder
	for _, v := range vals {
		lb.Add(v)
	}
	return lb.List()
}

// IsNilPair reports whether pair is the empty list.
func (pair *Pair) IsNilPair() bool { return pair == nil }

// Car returns the first element of a pair, or nil for the empty list.
func (pair *Pair) Car() Value {
	if pair == nil {
		return nil
	}
	return pair.car
}

// Cdr returns the tail of a pair, or nil for the empty list.
func (pair *Pair) Cdr() Value {
	if pair == nil {
		return nil
	}
	return pair.cdr
}

// SetCar replaces the first element of the pair in place.
func (pair *Pair) SetCar(v Value) {
	if pair != nil {
		pair.car = v
	}
}

// SetCdr replaces the tail of the pair in place.
func (pair *Pair) SetCdr(v Value) {
	if pair != nil {
		pair.cdr = v
	}
}

// Tail returns the cdr as a pair, or nil if it is not one.
func (pair *Pair) Tail() *Pair {
	if pair == nil {
		return nil
	}
	t, _ := pair.cdr.(*Pair)
	return t
}

// Length returns the number of elements in the (proper) list.
func (pair *Pair) Length() int {
	n := 0
	for range pair.Pairs() {
		n++
	}
	return n
}

// Nth returns the n'th element (0-based) of the list.
func (pair *Pair) Nth(n int) (Value, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative index %d", n)
	}
	i := 0
	for node := range pair.Pairs() {
		if i == n {
			return node.car, nil
		}
		i++
	}
	return nil, fmt.Errorf("index too large: %d", n)
}

// Last returns the last element of a non-empty proper list.
func (pair *Pair) Last() (Value, error) {
	if pair == nil {
		return nil, ErrImproper{Pair: pair}
	}
	node := pair
	for {
		next := node.Tail()
		if next == nil {
			if !IsNilValue(node.cdr) {
				return nil, ErrImproper{Pair: pair}
			}
			return node.car, nil
		}
		node = next
	}
}

// Reverse returns a reversed copy of the proper list.
func (pair *Pair) Reverse() *Pair {
	result := (*Pair)(nil)
	for node := range pair.Pairs() {
		result = Cons(node.car, result)
	}
	return result
}

// Copy returns a deep copy of the list: every cell is duplicated and every
// stored value is itself copied, so mutating the result never reaches the
// original (§8 property 3).
func (pair *Pair) Copy() *Pair {
	if pair == nil {
		return nil
	}
	var lb listBuilder
	for node := range pair.Pairs() {
		lb.Add(node.car.Copy())
	}
	return lb.List()
}

// Values iterates the elements of the proper list in order.
func (pair *Pair) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for node := pair; node != nil; node = node.Tail() {
			if !yield(node.car) {
				return
			}
		}
	}
}

// Pairs iterates the cons cells of the list in order.
func (pair *Pair) Pairs() iter.Seq[*Pair] {
	return func(yield func(*Pair) bool) {
		for node := pair; node != nil; node = node.Tail() {
			if !yield(node) {
				return
			}
		}
	}
}

// Slice collects the elements of the proper list into a slice.
func (pair *Pair) Slice() []Value {
	out := make([]Value, 0, pair.Length())
	for v := range pair.Values() {
		out = append(out, v)
	}
	return out
}

// String renders the bare space-separated element list, no brackets; SExpr
// and QExpr add their own delimiters.
func (pair *Pair) String() string {
	var sb strings.Builder
	first := true
	for v := range pair.Values() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(v.String())
	}
	return sb.String()
}

// IsNilValue reports whether v is nil or an empty list.
func IsNilValue(v Value) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case *Pair:
		return t == nil
	case SExpr:
		return t.list == nil
	case QExpr:
		return t.list == nil
	}
	return false
}

// ErrImproper is returned when an operation requiring a proper list
// encounters a dotted tail.
type ErrImproper struct{ Pair *Pair }

func (e ErrImproper) Error() string { return fmt.Sprintf("improper list: %v", e.Pair) }

// listBuilder appends values to a proper list in source order.
type listBuilder struct {
	first, last *Pair
}

func (lb *listBuilder) Add(v Value) {
	cell := Cons(v, nil)
	if lb.first == nil {
		lb.first = cell
		lb.last = cell
		return
	}
	lb.last.cdr = cell
	lb.last = cell
}

func (lb *listBuilder) List() *Pair { return lb.first }

// printPair writes a bracketed list to w using open/close delimiters.
func printPair(w io.Writer, pair *Pair, open, close byte) (int, error) {
	length, err := io.WriteString(w, string(open))
	if err != nil {
		return length, err
	}
	first := true
	for v := range pair.Values() {
		if !first {
			l, werr := io.WriteString(w, " ")
			length += l
			if werr != nil {
				return length, werr
			}
		}
		first = false
		l, werr := Print(w, v)
		length += l
		if werr != nil {
			return length, werr
		}
	}
	l, err := io.WriteString(w, string(close))
	return length + l, err
}
