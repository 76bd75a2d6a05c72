// Package builtin implements the builtin library (§4.6): arithmetic,
// comparison, boolean, list, definition, control, I/O, introspection, and
// exit builtins, all pure consumers of the value model, environment, and
// call protocol in the parent package. Grounded on sxpf/builtins/number,
// sxpf/builtins/list, sxpf/builtins/define, sxpf/builtins/cond.
package builtin

import (
	"github.com/jamied157/jdlisp"
)

// promote scans args for the shared arithmetic/comparison prelude (§4.6):
// Bool promotes to Num, and if any argument is Dec, every Num promotes to
// Dec. Returns the promoted float view, whether the float (Dec) path
// applies, and a type error if some argument isn't numeric.
func promote(fn string, args []lisp.Value) ([]float64, bool, lisp.Value) {
	floats := make([]float64, len(args))
	anyDec := false
	for i, a := range args {
		switch t := a.(type) {
		case lisp.Num:
			floats[i] = float64(t)
		case lisp.Dec:
			floats[i] = float64(t)
			anyDec = true
		case lisp.Bool:
			if t {
				floats[i] = 1
			}
		default:
			return nil, false, lisp.ErrArithTypeArg(fn, i+1, a.Kind())
		}
	}
	return floats, anyDec, nil
}

func result(dec bool, f float64) lisp.Value {
	if dec {
		return lisp.Dec(f)
	}
	return lisp.Num(int64(f))
}

// Add implements `+`.
func Add(env *lisp.Env, args lisp.SExpr) lisp.Value {
	vals := args.Elements()
	floats, dec, errv := promote("+", vals)
	if errv != nil {
		return errv
	}
	if len(vals) == 0 {
		return lisp.ErrArity("+", 0, 1)
	}
	sum := floats[0]
	for _, f := range floats[1:] {
		sum += f
	}
	return result(dec, sum)
}

// Sub implements `-`, with single-argument negation.
func Sub(env *lisp.Env, args lisp.SExpr) lisp.Value {
	vals := args.Elements()
	floats, dec, errv := promote("-", vals)
	if errv != nil {
		return errv
	}
	switch len(floats) {
	case 0:
		return lisp.ErrArity("-", 0, 1)
	case 1:
		return result(dec, -floats[0])
	}
	diff := floats[0]
	for _, f := range floats[1:] {
		diff -= f
	}
	return result(dec, diff)
}

// Mul implements `*`.
func Mul(env *lisp.Env, args lisp.SExpr) lisp.Value {
	vals := args.Elements()
	floats, dec, errv := promote("*", vals)
	if errv != nil {
		return errv
	}
	if len(vals) == 0 {
		return lisp.ErrArity("*", 0, 1)
	}
	prod := floats[0]
	for _, f := range floats[1:] {
		prod *= f
	}
	return result(dec, prod)
}

// Div implements `/`, returning Err("Division By Zero!") on a zero
// denominator (§4.6).
func Div(env *lisp.Env, args lisp.SExpr) lisp.Value {
	vals := args.Elements()
	floats, dec, errv := promote("/", vals)
	if errv != nil {
		return errv
	}
	if len(vals) == 0 {
		return lisp.ErrArity("/", 0, 1)
	}
	quot := floats[0]
	for _, f := range floats[1:] {
		if f == 0 {
			return lisp.MakeErr("Division By Zero!")
		}
		quot /= f
	}
	return result(dec, quot)
}

// Mod implements `%`: integers only, exactly two operands (§4.6).
func Mod(env *lisp.Env, args lisp.SExpr) lisp.Value {
	vals := args.Elements()
	if len(vals) != 2 {
		return lisp.ErrArity("%", len(vals), 2)
	}
	a, aok := vals[0].(lisp.Num)
	if !aok {
		return lisp.ErrArithTypeArg("%", 1, vals[0].Kind())
	}
	b, bok := vals[1].(lisp.Num)
	if !bok {
		return lisp.ErrArithTypeArg("%", 2, vals[1].Kind())
	}
	if b == 0 {
		return lisp.MakeErr("Division By Zero!")
	}
	return a % b
}
