package lisp

import "io"

// Bool is a two-state value.
type Bool bool

// True and False are the two Bool values, returned by comparison builtins.
const (
	True  Bool = true
	False Bool = false
)

// Kind returns KindBool.
func (Bool) Kind() Kind { return KindBool }

// IsAtom returns true: a boolean is not decomposable.
func (Bool) IsAtom() bool { return true }

// Equal compares b against other, promoting across Num/Dec/Bool (true is
// 1, false is 0), so the comparison is symmetric with Num.Equal/Dec.Equal.
func (b Bool) Equal(other Value) bool {
	f, ok := numericValue(other)
	mine, _ := numericValue(b)
	return ok && mine == f
}

// Copy returns the boolean unchanged: Bool is an immutable scalar.
func (b Bool) Copy() Value { return b }

// String returns "true" or "false" (§4.2 literal form).
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Print writes the boolean's literal form.
func (b Bool) Print(w io.Writer) (int, error) { return io.WriteString(w, b.String()) }
