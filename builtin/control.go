package builtin

import "github.com/jamied157/jdlisp"

// If implements `if`: arg 0 coerces to Bool (from Num/Dec, or must already
// be Bool); args 1 and 2 must be QExpr. The chosen branch is retyped to
// SExpr and evaluated; the other is dropped untouched (§4.6).
func If(env *lisp.Env, args lisp.SExpr) lisp.Value {
	vals := args.Elements()
	if len(vals) != 3 {
		return lisp.ErrArity("if", len(vals), 3)
	}
	cond, ok := asBool(vals[0])
	if !ok {
		return lisp.ErrTypeArg("if", 1, vals[0].Kind(), lisp.KindBool)
	}
	thenQ, ok := vals[1].(lisp.QExpr)
	if !ok {
		return lisp.ErrTypeArg("if", 2, vals[1].Kind(), lisp.KindQExpr)
	}
	elseQ, ok := vals[2].(lisp.QExpr)
	if !ok {
		return lisp.ErrTypeArg("if", 3, vals[2].Kind(), lisp.KindQExpr)
	}
	branch := elseQ
	if cond {
		branch = thenQ
	}
	return lisp.Eval(env, lisp.MakeSExpr(branch.Elements()...))
}

func asBool(v lisp.Value) (bool, bool) {
	switch t := v.(type) {
	case lisp.Bool:
		return bool(t), true
	case lisp.Num:
		return t != 0, true
	case lisp.Dec:
		return t != 0, true
	default:
		return false, false
	}
}
