// Package lisp provides the value model, environment, evaluator and call
// protocol of the jdlisp interpreter: a small Lisp-family language built
// around a single tagged value type and a parent-chained lexical
// environment.
package lisp

import (
	"fmt"
	"io"
)

// Kind identifies the tag of a Value. Every Value belongs to exactly one
// Kind, matching the ten-variant value model of the language.
type Kind int

// The kinds of Value.
const (
	KindErr Kind = iota
	KindNum
	KindDec
	KindBool
	KindSym
	KindStr
	KindFun
	KindSExpr
	KindQExpr
	KindOk
)

var kindNames = [...]string{
	KindErr:   "Error",
	KindNum:   "Number",
	KindDec:   "Decimal",
	KindBool:  "Boolean",
	KindSym:   "Symbol",
	KindStr:   "String",
	KindFun:   "Function",
	KindSExpr: "S-Expression",
	KindQExpr: "Q-Expression",
	KindOk:    "Ok",
}

// String returns the human-readable name of the kind, used in error messages
// (§7: "function name, got type, expected type").
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Value is the generic interface every variant of the tagged value model
// must satisfy.
type Value interface {
	fmt.Stringer

	// Kind returns the tag of this value.
	Kind() Kind

	// IsAtom returns true if the value is not further decomposable.
	IsAtom() bool

	// Equal reports whether other is structurally equal to this value.
	Equal(other Value) bool

	// Copy returns an independent copy of the value: mutating the copy, or
	// anything reachable only through the copy, must never affect the
	// original.
	Copy() Value
}

// Printable is a value whose textual form differs from String(), or that
// can write itself without allocating an intermediate string.
type Printable interface {
	Print(w io.Writer) (int, error)
}

// Print writes the textual representation of v to w, the printer contract
// of §4.2 (val(V) -> text).
func Print(w io.Writer, v Value) (int, error) {
	if v == nil {
		return io.WriteString(w, "()")
	}
	if pr, ok := v.(Printable); ok {
		return pr.Print(w)
	}
	return io.WriteString(w, v.String())
}

// IsTruthy reports whether v counts as a true value: everything except
// Bool(false) and nil is truthy. The `if` builtin does not use this rule;
// it treats a zero Num or Dec as false.
func IsTruthy(v Value) bool {
	if b, ok := v.(Bool); ok {
		return bool(b)
	}
	return v != nil
}
