package builtin

import "github.com/jamied157/jdlisp"

// ListEnv implements `list_env`: returns a QExpr of every symbol bound in
// the current environment (§4.6).
func ListEnv(env *lisp.Env, args lisp.SExpr) lisp.Value {
	syms := env.Symbols()
	vals := make([]lisp.Value, len(syms))
	for i, s := range syms {
		vals[i] = s
	}
	return lisp.MakeQExpr(vals...)
}

// Exit implements `exit`: sets the quit flag observed by the REPL and
// returns a sentinel symbol (§4.6).
func Exit(env *lisp.Env, args lisp.SExpr) lisp.Value {
	env.SetQuit()
	return lisp.Sym("bye")
}
