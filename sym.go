package lisp

import "io"

// Sym is an identifier looked up in an environment.
type Sym string

// Kind returns KindSym.
func (Sym) Kind() Kind { return KindSym }

// IsAtom returns true: a symbol is not decomposable.
func (Sym) IsAtom() bool { return true }

// Equal compares two symbols by name.
func (s Sym) Equal(other Value) bool {
	o, ok := other.(Sym)
	return ok && s == o
}

// Copy returns the symbol unchanged: Sym is an immutable scalar.
func (s Sym) Copy() Value { return s }

// String returns the symbol's name.
func (s Sym) String() string { return string(s) }

// Print writes the symbol's literal form.
func (s Sym) Print(w io.Writer) (int, error) { return io.WriteString(w, string(s)) }

// symVariadic is the pseudo-formal that collects trailing actuals.
const symVariadic Sym = "&"
