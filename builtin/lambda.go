package builtin

import "github.com/jamied157/jdlisp"

// checkFormals validates that every element of a formals QExpr is a Sym,
// the definition-time check the original source performs before ever
// constructing the lambda (SPEC_FULL PART D item 1).
func checkFormals(fn string, q lisp.QExpr) lisp.Value {
	for i, v := range q.Elements() {
		if _, ok := v.(lisp.Sym); !ok {
			return lisp.MakeErr("Cannot define non-symbol. Got %s, Expected %s.", v.Kind(), lisp.KindSym)
		}
		_ = i
	}
	return nil
}

// Lambda implements `\`: builds a user lambda from a formals QExpr and a
// single-QExpr body, closing over env (§4.6).
func Lambda(env *lisp.Env, args lisp.SExpr) lisp.Value {
	vals := args.Elements()
	if len(vals) != 2 {
		return lisp.ErrArity("\\", len(vals), 2)
	}
	formals, ok := vals[0].(lisp.QExpr)
	if !ok {
		return lisp.ErrTypeArg("\\", 1, vals[0].Kind(), lisp.KindQExpr)
	}
	body, ok := vals[1].(lisp.QExpr)
	if !ok {
		return lisp.ErrTypeArg("\\", 2, vals[1].Kind(), lisp.KindQExpr)
	}
	if errv := checkFormals("\\", formals); errv != nil {
		return errv
	}
	return lisp.NewLambda(formals, body, lisp.NewEnv(env))
}

// Fun implements `fun`: sugars `def` + `\` for named-function definition,
// e.g. `(fun {add x y} {+ x y})` (§4.6).
func Fun(env *lisp.Env, args lisp.SExpr) lisp.Value {
	vals := args.Elements()
	if len(vals) != 2 {
		return lisp.ErrArity("fun", len(vals), 2)
	}
	head, ok := vals[0].(lisp.QExpr)
	if !ok {
		return lisp.ErrTypeArg("fun", 1, vals[0].Kind(), lisp.KindQExpr)
	}
	body, ok := vals[1].(lisp.QExpr)
	if !ok {
		return lisp.ErrTypeArg("fun", 2, vals[1].Kind(), lisp.KindQExpr)
	}
	elems := head.Elements()
	if len(elems) == 0 {
		return lisp.MakeErr("Function fun passed empty formals!")
	}
	name, ok := elems[0].(lisp.Sym)
	if !ok {
		return lisp.MakeErr("Cannot define non-symbol. Got %s, Expected %s.", elems[0].Kind(), lisp.KindSym)
	}
	formals := lisp.MakeQExpr(elems[1:]...)
	if errv := checkFormals("fun", formals); errv != nil {
		return errv
	}
	fn := lisp.NewLambda(formals, body, lisp.NewEnv(env))
	env.Def(name, fn)
	return lisp.MakeOk()
}
