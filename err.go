package lisp

import (
	"fmt"
	"io"
)

// Err is the single error taxonomy of the language: a human-readable
// message that propagates through evaluation like any other value (§7).
type Err struct{ Msg string }

// MakeErr builds an Err from a formatted message.
func MakeErr(format string, args ...any) Err {
	return Err{Msg: fmt.Sprintf(format, args...)}
}

// Kind returns KindErr.
func (Err) Kind() Kind { return KindErr }

// IsAtom returns true: an error is not decomposable.
func (Err) IsAtom() bool { return true }

// Equal compares two errors by message (§4.6 structural equality).
func (e Err) Equal(other Value) bool {
	o, ok := other.(Err)
	return ok && e.Msg == o.Msg
}

// Copy returns the error unchanged: Err carries no shared mutable state.
func (e Err) Copy() Value { return e }

// String returns the bare message.
func (e Err) String() string { return e.Msg }

// Print writes "Error: <msg>" (§4.2).
func (e Err) Print(w io.Writer) (int, error) {
	return io.WriteString(w, "Error: "+e.Msg)
}

// ErrTypeArg reports a type error for argument i (1-based) of builtin fn,
// naming the expected and actual kinds the way the original error table
// does (§7). Exported so the builtin package can report
// its own type errors in the canonical shape without duplicating it.
func ErrTypeArg(fn string, i int, got, expected Kind) Err {
	return MakeErr("Function %s passed incorrect type for argument %d. Got %s, Expected %s.", fn, i, got, expected)
}

// ErrArity reports an arity error for builtin fn.
func ErrArity(fn string, got, expected int) Err {
	return MakeErr("Function %s passed incorrect number of arguments. Got %d, Expected %d.", fn, got, expected)
}

// errUnbound reports a lookup failure for symbol sym (§4.3).
func errUnbound(sym string) Err {
	return MakeErr("Unbound Symbol '%s'.", sym)
}

// ErrArithTypeArg reports a type error for an arithmetic/comparison
// operator's argument. The exact wording (including "passsed" and the
// lowercase "expected") matches the scenario table verbatim rather than
// the canonical ErrTypeArg shape; see DESIGN.md.
func ErrArithTypeArg(fn string, i int, got Kind) Err {
	return MakeErr("Function %s passsed incorrect type for argument %d. Got %s, expected Number or Decimal", fn, i, got)
}
