package lisp

import (
	"io"
	"strconv"
)

// Num is a 64-bit signed integer value.
type Num int64

// Kind returns KindNum.
func (Num) Kind() Kind { return KindNum }

// IsAtom returns true: a number is not decomposable.
func (Num) IsAtom() bool { return true }

// Equal compares n against other, promoting across Num/Dec/Bool per the
// symmetric numeric-equality rule of §9.
func (n Num) Equal(other Value) bool {
	f, ok := numericValue(other)
	return ok && float64(n) == f
}

// Copy returns n unchanged: Num is an immutable scalar.
func (n Num) Copy() Value { return n }

// String returns the decimal literal form.
func (n Num) String() string { return strconv.FormatInt(int64(n), 10) }

// Print writes the decimal literal form.
func (n Num) Print(w io.Writer) (int, error) { return io.WriteString(w, n.String()) }

// Dec is a 64-bit floating-point value.
type Dec float64

// Kind returns KindDec.
func (Dec) Kind() Kind { return KindDec }

// IsAtom returns true: a decimal is not decomposable.
func (Dec) IsAtom() bool { return true }

// Equal compares d against other, promoting across Num/Dec/Bool.
func (d Dec) Equal(other Value) bool {
	f, ok := numericValue(other)
	return ok && float64(d) == f
}

// Copy returns d unchanged: Dec is an immutable scalar.
func (d Dec) Copy() Value { return d }

// String returns the fixed six-decimal form used throughout the scenario
// table (§8 scenario 2: "3.000000").
func (d Dec) String() string { return strconv.FormatFloat(float64(d), 'f', 6, 64) }

// Print writes the decimal's literal form.
func (d Dec) Print(w io.Writer) (int, error) { return io.WriteString(w, d.String()) }

// numericValue returns v's value as a float64 if v is Num, Dec or Bool
// (promoted per §4.6), and whether the conversion succeeded.
func numericValue(v Value) (float64, bool) {
	switch t := v.(type) {
	case Num:
		return float64(t), true
	case Dec:
		return float64(t), true
	case Bool:
		if t {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// IsNumeric reports whether v is Num, Dec, or Bool (the promotable kinds).
func IsNumeric(v Value) bool {
	_, ok := numericValue(v)
	return ok
}

// promoteArgs scans args, reports whether any is Dec (after Bool->Num
// promotion), and returns the float64 view of every argument. Nothing in
// this package calls it; the builtin package's arithmetic/comparison
// prelude (§4.6) uses its own promote function.
func promoteArgs(args []Value) (floats []float64, anyDec bool, badIdx int, ok bool) {
	floats = make([]float64, len(args))
	for i, a := range args {
		f, isNum := numericValue(a)
		if !isNum {
			return nil, false, i, false
		}
		if _, isDec := a.(Dec); isDec {
			anyDec = true
		}
		floats[i] = f
	}
	return floats, anyDec, -1, true
}
