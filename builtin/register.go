package builtin

import "github.com/jamied157/jdlisp"

// entry pairs a symbol name with the BuiltinFn it dispatches to.
type entry struct {
	name string
	fn   lisp.BuiltinFn
}

// staticEntries lists the builtins that need no IO/parser collaborator.
func staticEntries() []entry {
	return []entry{
		{"+", Add}, {"-", Sub}, {"*", Mul}, {"/", Div}, {"%", Mod},
		{">", Greater}, {"<", Less}, {">=", GreaterEqual}, {"<=", LessEqual},
		{"==", Eq}, {"!=", Ne},
		{"&&", And}, {"||", Or}, {"!", Not},
		{"list", List}, {"head", Head}, {"tail", Tail}, {"init", Init},
		{"cons", Cons}, {"len", Len}, {"join", Join}, {"eval", Eval},
		{"def", Def}, {"=", Put},
		{"\\", Lambda}, {"fun", Fun},
		{"if", If},
		{"list_env", ListEnv},
		{"exit", Exit},
	}
}

// Register binds every builtin into env: the operators, list, control,
// definition, and introspection builtins directly, and the I/O builtins
// (print, show, error, read, load) through io, which carries the output
// stream and the parser collaborator (§4.6; §9 design note on making the
// parser explicit).
func Register(env *lisp.Env, io *IO) {
	for _, e := range staticEntries() {
		env.Def(lisp.Sym(e.name), lisp.NewBuiltin(e.name, e.fn))
	}
	env.Def("print", lisp.NewBuiltin("print", io.Print))
	env.Def("show", lisp.NewBuiltin("show", io.Show))
	env.Def("error", lisp.NewBuiltin("error", io.Error))
	env.Def("read", lisp.NewBuiltin("read", io.Read))
	env.Def("load", lisp.NewBuiltin("load", io.Load))
}
