package builtin

import "github.com/jamied157/jdlisp"

func define(fn string, env *lisp.Env, args lisp.SExpr, bind func(*lisp.Env, lisp.Sym, lisp.Value)) lisp.Value {
	vals := args.Elements()
	if len(vals) < 1 {
		return lisp.ErrArity(fn, len(vals), 1)
	}
	syms, ok := vals[0].(lisp.QExpr)
	if !ok {
		return lisp.ErrTypeArg(fn, 1, vals[0].Kind(), lisp.KindQExpr)
	}
	names := syms.Elements()
	values := vals[1:]
	if len(names) != len(values) {
		return lisp.ErrArity(fn, len(values), len(names))
	}
	for i, n := range names {
		sym, ok := n.(lisp.Sym)
		if !ok {
			return lisp.MakeErr("Cannot define non-symbol. Got %s, Expected %s.", n.Kind(), lisp.KindSym)
		}
		bind(env, sym, values[i])
	}
	return lisp.MakeOk()
}

// Def implements `def`: binds in the root environment (global).
func Def(env *lisp.Env, args lisp.SExpr) lisp.Value {
	return define("def", env, args, (*lisp.Env).Def)
}

// Put implements `=`: binds in the current environment (local).
func Put(env *lisp.Env, args lisp.SExpr) lisp.Value {
	return define("=", env, args, (*lisp.Env).Put)
}
