package builtin

import "github.com/jamied157/jdlisp"

// And implements `&&`: binary, numeric-ish operands, produces Bool (§4.6).
func And(env *lisp.Env, args lisp.SExpr) lisp.Value {
	vals := args.Elements()
	if errv := arity2("&&", vals); errv != nil {
		return errv
	}
	floats, _, errv := promote("&&", vals)
	if errv != nil {
		return errv
	}
	return lisp.Bool(floats[0] != 0 && floats[1] != 0)
}

// Or implements `||`: binary, numeric-ish operands, produces Bool.
func Or(env *lisp.Env, args lisp.SExpr) lisp.Value {
	vals := args.Elements()
	if errv := arity2("||", vals); errv != nil {
		return errv
	}
	floats, _, errv := promote("||", vals)
	if errv != nil {
		return errv
	}
	return lisp.Bool(floats[0] != 0 || floats[1] != 0)
}

// Not implements `!`: unary, numeric-ish operand, produces Bool.
func Not(env *lisp.Env, args lisp.SExpr) lisp.Value {
	vals := args.Elements()
	if len(vals) != 1 {
		return lisp.ErrArity("!", len(vals), 1)
	}
	floats, _, errv := promote("!", vals)
	if errv != nil {
		return errv
	}
	return lisp.Bool(floats[0] == 0)
}
