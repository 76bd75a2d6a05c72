package builtin

import "github.com/jamied157/jdlisp"

func arity2(fn string, args []lisp.Value) lisp.Value {
	if len(args) != 2 {
		return lisp.ErrArity(fn, len(args), 2)
	}
	return nil
}

func numCompare(fn string, env *lisp.Env, args lisp.SExpr, cmp func(a, b float64) bool) lisp.Value {
	vals := args.Elements()
	if errv := arity2(fn, vals); errv != nil {
		return errv
	}
	floats, _, errv := promote(fn, vals)
	if errv != nil {
		return errv
	}
	return lisp.Bool(cmp(floats[0], floats[1]))
}

// Greater implements `>`.
func Greater(env *lisp.Env, args lisp.SExpr) lisp.Value {
	return numCompare(">", env, args, func(a, b float64) bool { return a > b })
}

// Less implements `<`.
func Less(env *lisp.Env, args lisp.SExpr) lisp.Value {
	return numCompare("<", env, args, func(a, b float64) bool { return a < b })
}

// GreaterEqual implements `>=`.
func GreaterEqual(env *lisp.Env, args lisp.SExpr) lisp.Value {
	return numCompare(">=", env, args, func(a, b float64) bool { return a >= b })
}

// LessEqual implements `<=`.
func LessEqual(env *lisp.Env, args lisp.SExpr) lisp.Value {
	return numCompare("<=", env, args, func(a, b float64) bool { return a <= b })
}

// Eq implements `==`: structural equality (§4.6).
func Eq(env *lisp.Env, args lisp.SExpr) lisp.Value {
	vals := args.Elements()
	if errv := arity2("==", vals); errv != nil {
		return errv
	}
	return lisp.Bool(vals[0].Equal(vals[1]))
}

// Ne implements `!=`: structural inequality.
func Ne(env *lisp.Env, args lisp.SExpr) lisp.Value {
	vals := args.Elements()
	if errv := arity2("!=", vals); errv != nil {
		return errv
	}
	return lisp.Bool(!vals[0].Equal(vals[1]))
}
