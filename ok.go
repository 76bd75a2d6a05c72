package lisp

import "io"

// Ok is the empty value returned by side-effecting builtins (e.g. print,
// def); it suppresses printing (§4.2).
type Ok struct{}

// MakeOk returns the Ok value.
func MakeOk() Ok { return Ok{} }

// Kind returns KindOk.
func (Ok) Kind() Kind { return KindOk }

// IsAtom returns true: Ok carries no children.
func (Ok) IsAtom() bool { return true }

// Equal reports whether other is also Ok.
func (Ok) Equal(other Value) bool {
	_, ok := other.(Ok)
	return ok
}

// Copy returns Ok unchanged.
func (o Ok) Copy() Value { return o }

// String returns the empty string: Ok prints nothing.
func (Ok) String() string { return "" }

// Print emits nothing, per the printer contract.
func (Ok) Print(w io.Writer) (int, error) { return 0, nil }
